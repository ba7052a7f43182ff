package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taxscore/internal/driver"
	"taxscore/internal/ui"
)

// runScanWithUI drives a multi-file scan behind a live progress display.
// The scan runs in the background; its events feed the Bubble Tea model.
func runScanWithUI(ctx context.Context, title string, files []string, jobs int, scan driver.ScanFunc) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan []driver.FileResult, 1)

	go func() {
		results := driver.ScanAll(ctx, files, jobs, scan, driver.ChannelSink{Ch: events})
		outcomeCh <- results
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	results := <-outcomeCh
	if uiErr != nil {
		return results, uiErr
	}
	return results, nil
}
