package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/ziadkadry99/cubeclub/internal/catalog"
)

// Reporter provides progress feedback while sheets load and the site is
// written.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter for interactive use, or a
// CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Loading sheets"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "Loading %d sheets\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.w, "Sheets loaded")
}

// Track starts r for every category and returns a loader callback that
// advances it as each category settles and finishes it after the last. The
// returned finish func closes r early when a round is abandoned; it is a
// no-op once r has finished.
func Track(r Reporter) (catalog.ProgressFunc, func()) {
	var (
		mu       sync.Mutex
		done     int
		finished bool
	)
	finish := func() {
		if !finished {
			finished = true
			r.Finish()
		}
	}
	r.Start(len(catalog.Categories))

	update := func(cat catalog.Category, records int, err error) {
		mu.Lock()
		defer mu.Unlock()
		if finished {
			return
		}

		done++
		msg := fmt.Sprintf("%s: %d records", cat.Label(), records)
		if err != nil {
			msg = fmt.Sprintf("%s: failed", cat.Label())
		}
		r.Update(done, msg)
		if done == len(catalog.Categories) {
			finish()
		}
	}
	return update, func() {
		mu.Lock()
		defer mu.Unlock()
		finish()
	}
}
