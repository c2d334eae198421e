package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/arthur-debert/lifetime/pkg/lifetime"
)

// eventStream stands in for an in-flight event stream the component opened
type eventStream struct {
	name   string
	closed bool
}

func (s *eventStream) Complete() error {
	s.closed = true
	return nil
}

// tickerSubscription adapts a time.Ticker to the subscription contract
type tickerSubscription struct {
	ticker *time.Ticker
}

func newTickerSubscription(interval time.Duration) *tickerSubscription {
	return &tickerSubscription{ticker: time.NewTicker(interval)}
}

func (t *tickerSubscription) Unsubscribe() error {
	t.ticker.Stop()
	return nil
}

// flakySocket always fails to unsubscribe, to show failure isolation
type flakySocket struct{}

func (f *flakySocket) Unsubscribe() error {
	return fmt.Errorf("socket already closed")
}

// scratchDir is a disposable temp workspace
type scratchDir struct {
	path string
}

func (d *scratchDir) Dispose() error {
	return os.RemoveAll(d.path)
}

// setupComponent registers the demo component's resources with reg, the way
// component logic would as it constructs them.
func setupComponent(reg *lifetime.Registry) error {
	if _, err := lifetime.Watch(reg, &eventStream{name: "clicks"}); err != nil {
		return err
	}

	if _, err := reg.WatchSubscription(newTickerSubscription(time.Second)); err != nil {
		return err
	}

	path, err := os.MkdirTemp("", "lifetime-demo-")
	if err != nil {
		return err
	}
	if _, err := reg.WatchDisposable(&scratchDir{path: path}); err != nil {
		return err
	}

	// Restart a named subscription, as if an input parameter changed.
	if _, err := reg.WatchSubscriptionOnce("params", newTickerSubscription(time.Second)); err != nil {
		return err
	}
	if _, err := reg.WatchSubscriptionOnce("params", newTickerSubscription(2*time.Second)); err != nil {
		return err
	}

	// One resource that will fail during the sweep.
	if _, err := reg.Watch(&flakySocket{}); err != nil {
		return err
	}

	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	reg := lifetime.New()

	if err := setupComponent(reg); err != nil {
		return err
	}
	pterm.Info.Printfln("component active, watching %d resources", reg.Len())

	err := reg.Destroy()
	if err == nil {
		pterm.Success.Println("component destroyed, all resources released")
		return nil
	}

	failures := multierr.Errors(err)
	for _, failure := range failures {
		pterm.Error.Println(failure)
	}

	// Teardown failures are diagnostics; the host keeps running.
	pterm.Warning.Printfln("component destroyed, %d of its resources failed to release", len(failures))
	return nil
}
