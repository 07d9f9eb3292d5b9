package ui

import (
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar tracks a running conversion on the terminal. When the media duration
// is known the bar shows completion against it; otherwise it degrades to a
// spinner.
type Bar struct {
	bar   *progressbar.ProgressBar
	total time.Duration
}

// StartProgress creates a progress bar labelled with the operation.
func (c *Console) StartProgress(label string, total time.Duration) *Bar {
	totalMS := int64(-1)
	if total > 0 {
		totalMS = total.Milliseconds()
	}
	bar := progressbar.NewOptions64(
		totalMS,
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
	)
	return &Bar{bar: bar, total: total}
}

// Update advances the bar to the subprocess's reported output position.
func (b *Bar) Update(outTime time.Duration) {
	if b == nil || b.bar == nil {
		return
	}
	if b.total > 0 && outTime > b.total {
		outTime = b.total
	}
	_ = b.bar.Set64(outTime.Milliseconds())
}

// Finish completes and clears the bar.
func (b *Bar) Finish() {
	if b == nil || b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}
