package testutil

import (
	"fmt"
	"testing"
)

func TestFakesCountCalls(t *testing.T) {
	subject := &FakeSubject{}
	sub := &FakeSubscription{}
	disp := &FakeDisposable{}
	svc := &FakeService{}

	for i := 0; i < 2; i++ {
		_ = subject.Complete()
		_ = sub.Unsubscribe()
		_ = disp.Dispose()
		_ = svc.Destroy()
	}

	if subject.CompleteCalls != 2 {
		t.Errorf("CompleteCalls = %d, want 2", subject.CompleteCalls)
	}
	if sub.UnsubscribeCalls != 2 {
		t.Errorf("UnsubscribeCalls = %d, want 2", sub.UnsubscribeCalls)
	}
	if disp.DisposeCalls != 2 {
		t.Errorf("DisposeCalls = %d, want 2", disp.DisposeCalls)
	}
	if svc.DestroyCalls != 2 {
		t.Errorf("DestroyCalls = %d, want 2", svc.DestroyCalls)
	}
}

func TestFakesRunOverrides(t *testing.T) {
	want := fmt.Errorf("injected failure")
	sub := &FakeSubscription{
		UnsubscribeFunc: func() error { return want },
	}

	if got := sub.Unsubscribe(); got != want {
		t.Errorf("Unsubscribe() = %v, want %v", got, want)
	}

	if sub.UnsubscribeCalls != 1 {
		t.Errorf("UnsubscribeCalls = %d, want 1", sub.UnsubscribeCalls)
	}
}
