// Package testutil provides fake resources for testing lifetime registries.
//
// Each fake implements one capability interface, counts how many times its
// release operation ran, and can be given an overriding ...Func field to
// inject failures or panics. All test data should be defined inline and
// each test should be completely isolated with no shared state.
package testutil
