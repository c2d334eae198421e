package lifetime

import "reflect"

// Completable is a resource representing an in-flight value or event stream
// that must be closed out when its owner goes away.
type Completable interface {
	Complete() error
}

// Unsubscribable is a resource representing an active subscription to a
// stream, released by unsubscribing.
type Unsubscribable interface {
	Unsubscribe() error
}

// Disposable is a resource exposing a generic dispose operation with no
// stream semantics implied.
type Disposable interface {
	Dispose() error
}

// Destroyable is a resource that implements the same destroy-hook contract
// as the host component. A Registry is itself Destroyable, so registries
// nest through WatchService.
type Destroyable interface {
	Destroy() error
}

// Kind labels for diagnostics and log fields
const (
	KindSubject      = "subject"
	KindSubscription = "subscription"
	KindDisposable   = "disposable"
	KindService      = "service"
	KindNamed        = "named subscription"
)

// isTypedNil reports whether v is a non-nil interface wrapping a nil
// pointer, the one nil shape a == comparison against nil cannot see.
func isTypedNil(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
