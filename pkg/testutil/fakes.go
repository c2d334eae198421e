package testutil

// FakeSubject is a fake implementation of the lifetime.Completable
// interface for testing.
type FakeSubject struct {
	CompleteFunc  func() error
	CompleteCalls int
}

// Complete records the call and runs the fake's complete function.
func (f *FakeSubject) Complete() error {
	f.CompleteCalls++
	if f.CompleteFunc != nil {
		return f.CompleteFunc()
	}
	return nil
}

// FakeSubscription is a fake implementation of the lifetime.Unsubscribable
// interface for testing.
type FakeSubscription struct {
	UnsubscribeFunc  func() error
	UnsubscribeCalls int
}

// Unsubscribe records the call and runs the fake's unsubscribe function.
func (f *FakeSubscription) Unsubscribe() error {
	f.UnsubscribeCalls++
	if f.UnsubscribeFunc != nil {
		return f.UnsubscribeFunc()
	}
	return nil
}

// FakeDisposable is a fake implementation of the lifetime.Disposable
// interface for testing.
type FakeDisposable struct {
	DisposeFunc  func() error
	DisposeCalls int
}

// Dispose records the call and runs the fake's dispose function.
func (f *FakeDisposable) Dispose() error {
	f.DisposeCalls++
	if f.DisposeFunc != nil {
		return f.DisposeFunc()
	}
	return nil
}

// FakeService is a fake implementation of the lifetime.Destroyable
// interface for testing.
type FakeService struct {
	DestroyFunc  func() error
	DestroyCalls int
}

// Destroy records the call and runs the fake's destroy function.
func (f *FakeService) Destroy() error {
	f.DestroyCalls++
	if f.DestroyFunc != nil {
		return f.DestroyFunc()
	}
	return nil
}
