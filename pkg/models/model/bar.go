package model

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

type Bar struct {
	bar     *progressbar.ProgressBar
	current int
}

func NewBar(len int, description string) *Bar {
	return NewBarTo(os.Stderr, len, description)
}

func NewBarTo(w io.Writer, len int, description string) *Bar {
	return &Bar{bar: progressbar.NewOptions(len,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)}
}

// Step advances one unit and relabels the bar, e.g. with the running tally.
func (b *Bar) Step(description string) {
	b.current++
	b.bar.Describe(description)
	_ = b.bar.Add(1)
}

func (b *Bar) Current() int {
	return b.current
}

func (b *Bar) Close() {
	_ = b.bar.Finish()
	_ = b.bar.Close()
}
