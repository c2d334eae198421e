package lifetime

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/arthur-debert/lifetime/pkg/errors"
)

// Destroy releases every watched resource and is the hook the host
// framework invokes when the owning component is destroyed. Each release
// attempt is independently isolated: a returned error or a panic is
// recorded and the sweep moves on, so one buggy resource cannot leak the
// rest. Phase order is fixed: subjects, subscriptions, disposables,
// services, then named slots (in name order).
//
// The collected failures are logged as a single diagnostic and returned as
// one combined error; a non-nil return means some releases failed, never
// that the sweep stopped early. Destroy is idempotent: it clears all
// collections, further calls are no-ops, and later registrations fail with
// ErrDestroyed.
func (r *Registry) Destroy() error {
	if r.destroyed {
		return nil
	}
	r.destroyed = true

	var failures []error
	record := func(kind, name string, err error) {
		wrapped := errors.Wrapf(err, errors.ErrTeardown, "%s release failed", kind).
			WithDetail("kind", kind)
		if name != "" {
			wrapped = wrapped.WithDetail("name", name)
		}
		failures = append(failures, wrapped)

		r.logger.Debug().
			Err(err).
			Str("kind", kind).
			Str("name", name).
			Msg("Resource release failed")
	}

	for _, s := range r.subjects.Items() {
		if err := release(s.Complete); err != nil {
			record(KindSubject, "", err)
		}
	}

	for _, s := range r.subscriptions.Items() {
		if err := release(s.Unsubscribe); err != nil {
			record(KindSubscription, "", err)
		}
	}

	for _, d := range r.disposables.Items() {
		if err := release(d.Dispose); err != nil {
			record(KindDisposable, "", err)
		}
	}

	for _, s := range r.services.Items() {
		if err := release(s.Destroy); err != nil {
			record(KindService, "", err)
		}
	}

	for _, name := range r.named.Names() {
		sub, ok := r.named.Get(name)
		if !ok {
			continue
		}
		if err := release(sub.Unsubscribe); err != nil {
			record(KindNamed, name, err)
		}
	}

	r.subjects.Clear()
	r.subscriptions.Clear()
	r.disposables.Clear()
	r.services.Clear()
	r.named.Clear()

	if len(failures) > 0 {
		r.logger.Error().
			Int("failures", len(failures)).
			Errs("errors", failures).
			Msg("Teardown completed with failures")
	}

	return multierr.Combine(failures...)
}

// release invokes fn, converting a panic into an ordinary error so the
// sweep always reaches the next resource.
func release(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic during release: %v", rec)
		}
	}()
	return fn()
}
