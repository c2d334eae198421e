package lifetime

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/lifetime/pkg/errors"
	"github.com/arthur-debert/lifetime/pkg/logging"
	"github.com/arthur-debert/lifetime/pkg/registry"
)

// Registry accumulates disposable resources on behalf of one host component
// and releases all of them when Destroy is called. A Registry is owned
// exclusively by its component instance; it is not meant to be shared
// across goroutines without external synchronization.
type Registry struct {
	subjects      *registry.Set[Completable]
	subscriptions *registry.Set[Unsubscribable]
	disposables   *registry.Set[Disposable]
	services      *registry.Set[Destroyable]
	named         registry.Slots[Unsubscribable]
	logger        zerolog.Logger
	destroyed     bool
}

// New creates an empty Registry for a freshly constructed host component
func New() *Registry {
	return &Registry{
		subjects:      registry.NewSet[Completable](),
		subscriptions: registry.NewSet[Unsubscribable](),
		disposables:   registry.NewSet[Disposable](),
		services:      registry.NewSet[Destroyable](),
		named:         registry.NewSlots[Unsubscribable](),
		logger:        logging.GetLogger("lifetime"),
	}
}

// Watch classifies each resource by capability, first match wins:
// Completable, then Unsubscribable, then Disposable, then Destroyable.
// It returns the first argument unchanged so callers can register inline:
//
//	sub, err := reg.Watch(stream.Subscribe(onEvent))
//
// An unclassifiable element fails the call with ErrClassification;
// elements already classified earlier in the same batch stay registered.
func (r *Registry) Watch(resources ...any) (any, error) {
	var first any
	if len(resources) > 0 {
		first = resources[0]
	}

	for _, res := range resources {
		if err := r.classify(res); err != nil {
			return first, err
		}
	}
	return first, nil
}

// Watch registers first (and any additional resources) through the
// classifying entry point of r, returning first with its static type
// preserved for inline assignment.
func Watch[T any](r *Registry, first T, more ...any) (T, error) {
	resources := make([]any, 0, len(more)+1)
	resources = append(resources, first)
	resources = append(resources, more...)

	_, err := r.Watch(resources...)
	return first, err
}

// classify resolves the resource's kind once and stores it in the matching
// collection, so teardown never has to re-probe capability.
func (r *Registry) classify(res any) error {
	if err := r.checkRegistration(res, "Watch"); err != nil {
		return err
	}

	var kind string
	switch v := res.(type) {
	case Completable:
		r.subjects.Add(v)
		kind = KindSubject
	case Unsubscribable:
		r.subscriptions.Add(v)
		kind = KindSubscription
	case Disposable:
		r.disposables.Add(v)
		kind = KindDisposable
	case Destroyable:
		r.services.Add(v)
		kind = KindService
	default:
		return errors.Newf(errors.ErrClassification,
			"destroyable type could not be determined for %T", res)
	}

	r.logger.Debug().
		Str("kind", kind).
		Str("resource", fmt.Sprintf("%T", res)).
		Msg("Resource watched")
	return nil
}

// WatchSubjects registers one or more completable streams, bypassing
// classification. Returns the first argument unchanged.
func (r *Registry) WatchSubjects(subjects ...Completable) (Completable, error) {
	var first Completable
	if len(subjects) > 0 {
		first = subjects[0]
	}

	for _, s := range subjects {
		if err := r.checkRegistration(s, "WatchSubjects"); err != nil {
			return first, err
		}
		r.subjects.Add(s)
	}
	return first, nil
}

// WatchSubscription registers one or more subscriptions, bypassing
// classification. Returns the first argument unchanged.
func (r *Registry) WatchSubscription(subs ...Unsubscribable) (Unsubscribable, error) {
	var first Unsubscribable
	if len(subs) > 0 {
		first = subs[0]
	}

	for _, s := range subs {
		if err := r.checkRegistration(s, "WatchSubscription"); err != nil {
			return first, err
		}
		r.subscriptions.Add(s)
	}
	return first, nil
}

// WatchDisposable registers one or more disposables, bypassing
// classification. Returns the first argument unchanged.
func (r *Registry) WatchDisposable(disposables ...Disposable) (Disposable, error) {
	var first Disposable
	if len(disposables) > 0 {
		first = disposables[0]
	}

	for _, d := range disposables {
		if err := r.checkRegistration(d, "WatchDisposable"); err != nil {
			return first, err
		}
		r.disposables.Add(d)
	}
	return first, nil
}

// WatchService registers one or more lifecycle-bound services, bypassing
// classification. Returns the first argument unchanged.
func (r *Registry) WatchService(services ...Destroyable) (Destroyable, error) {
	var first Destroyable
	if len(services) > 0 {
		first = services[0]
	}

	for _, s := range services {
		if err := r.checkRegistration(s, "WatchService"); err != nil {
			return first, err
		}
		r.services.Add(s)
	}
	return first, nil
}

// WatchSubscriptionOnce stores sub under name, a single-occupancy slot. An
// existing occupant is unsubscribed synchronously before the replacement is
// stored; its failure propagates to the caller, in which case the slot is
// left vacant and sub is not registered. Returns the new subscription.
func (r *Registry) WatchSubscriptionOnce(name string, sub Unsubscribable) (Unsubscribable, error) {
	if r.destroyed {
		return nil, errors.New(errors.ErrDestroyed, "registry has been destroyed").
			WithDetail("operation", "WatchSubscriptionOnce")
	}
	if name == "" {
		return nil, errors.New(errors.ErrInvalidKey, "subscription name cannot be empty")
	}
	if sub == nil {
		return nil, errors.New(errors.ErrNilResource, "subscription is nil").
			WithDetail("operation", "WatchSubscriptionOnce")
	}
	if isTypedNil(sub) {
		return nil, errors.Newf(errors.ErrInvalidResource,
			"subscription %T has no usable unsubscribe (nil pointer)", sub).
			WithDetail("operation", "WatchSubscriptionOnce")
	}

	if old, ok := r.named.Take(name); ok {
		if err := old.Unsubscribe(); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTeardown,
				"previous occupant of %q failed to unsubscribe", name)
		}
		r.logger.Debug().Str("name", name).Msg("Replaced named subscription")
	}

	if _, _, err := r.named.Put(name, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// StopSubscriptionOnce unsubscribes and vacates the named slot. A vacant
// name is a no-op. The occupant's unsubscribe failure is returned to the
// caller: an explicit stop fails loud, unlike the isolated teardown sweep.
func (r *Registry) StopSubscriptionOnce(name string) error {
	sub, ok := r.named.Take(name)
	if !ok {
		return nil
	}

	if err := sub.Unsubscribe(); err != nil {
		return errors.Wrapf(err, errors.ErrTeardown,
			"subscription %q failed to unsubscribe", name)
	}

	r.logger.Debug().Str("name", name).Msg("Stopped named subscription")
	return nil
}

// Len returns the total number of resources currently watched
func (r *Registry) Len() int {
	return r.subjects.Len() +
		r.subscriptions.Len() +
		r.disposables.Len() +
		r.services.Len() +
		r.named.Len()
}

// checkRegistration rejects registrations on a destroyed registry and nil
// resources, before any collection is touched.
func (r *Registry) checkRegistration(res any, operation string) error {
	if r.destroyed {
		return errors.New(errors.ErrDestroyed, "registry has been destroyed").
			WithDetail("operation", operation)
	}
	if res == nil {
		return errors.New(errors.ErrNilResource, "watched resource is nil").
			WithDetail("operation", operation)
	}
	if isTypedNil(res) {
		return errors.Newf(errors.ErrInvalidResource,
			"watched resource %T is a nil pointer", res).
			WithDetail("operation", operation)
	}
	return nil
}
