package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// StepProgress reports progress through a fixed number of named steps.
type StepProgress struct {
	bar    *progressbar.ProgressBar
	writer io.Writer
}

// NewStepProgress creates a progress bar of total steps writing to w.
func NewStepProgress(w io.Writer, total int, description string) *StepProgress {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return &StepProgress{bar: bar, writer: w}
}

// Step names the step about to run and counts the previous one as done.
func (p *StepProgress) Step(name string) {
	p.bar.Describe("[cyan]" + name + "[reset]")
	if err := p.bar.Add(1); err != nil {
		slog.Warn("failed to update progress bar", "error", err)
	}
}

// Finish completes the bar.
func (p *StepProgress) Finish() {
	if err := p.bar.Finish(); err != nil {
		slog.Warn("failed to finish progress bar", "error", err)
	}
}
