// Package lifetime provides a resource-lifetime registry: a single
// collaborator that accumulates references to disposable resources created
// imperatively during a host component's life and releases all of them
// exactly once when that component is destroyed.
//
// Resources are classified by capability into five kinds: completable
// streams, unsubscribable subscriptions, generic disposables, nested
// lifecycle-bound services, and named single-occupancy subscriptions. The
// teardown sweep releases every stored resource and isolates failures so
// that one buggy resource cannot leak the rest.
package lifetime
