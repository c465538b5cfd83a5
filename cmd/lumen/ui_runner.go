package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lumen/internal/driver"
	"lumen/internal/ui"
)

type runOutcome[T any] struct {
	result T
	err    error
}

// runWithUI runs a directory job while a progress view follows its events.
// The view quits once the job returns and closes the event channel.
func runWithUI[T any](ctx context.Context, title string, files []string, run func(ctx context.Context, sink driver.ProgressSink) (T, error)) (T, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome[T], 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		res, err := run(ctx, driver.ChannelSink{Ch: events})
		outcomeCh <- runOutcome[T]{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()

	// The view also quits on ctrl+c while the job is still running: stop the
	// job and drain so it never blocks on a full channel.
	cancel()
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
