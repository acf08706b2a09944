package cli

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// barProgress draws batch progress on a terminal writer
type barProgress struct {
	bar *progressbar.ProgressBar
}

func newBarProgress(w io.Writer) *barProgress {
	return &barProgress{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Analyzing files"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *barProgress) Start(total int) {
	p.bar.ChangeMax(total)
}

func (p *barProgress) Advance() {
	_ = p.bar.Add(1)
}

func (p *barProgress) Finish() {
	_ = p.bar.Finish()
}
