// Package ui renders everything centerbrain shows a person: progress and
// diagnostics on stderr, and the item, recipe and technology cards of the
// show and research commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/gamma-delta/center-brain-archive/internal/ansi"
	"github.com/gamma-delta/center-brain-archive/internal/artifact"
	"github.com/gamma-delta/center-brain-archive/internal/integrity"
)

// Printer writes styled status lines. It writes to stderr unless built with
// NewWriter.
type Printer struct {
	w       io.Writer
	verbose bool
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewWriter returns a Printer writing to w.
func NewWriter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// SetVerbose enables Detail lines.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.w, ansi.Yellow+"⚠ "+ansi.Reset+"%s\n", msg)
}

// Info prints a plain status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// Detail prints msg only in verbose mode.
func (p *Printer) Detail(msg string) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.w, ansi.Dim+"  %s"+ansi.Reset+"\n", msg)
}

// PlanningWrite announces an artifact before anything is written.
func (p *Printer) PlanningWrite(path string, size int) {
	fmt.Fprintf(p.w, ansi.Cyan+"planning to write "+ansi.Reset+"%s to %s\n", humanize.Bytes(uint64(size)), path)
}

// Wrote confirms that both artifacts are in place.
func (p *Printer) Wrote(paths artifact.Paths, size int) {
	fmt.Fprintf(p.w, ansi.Green+ansi.Bold+"✓ wrote "+ansi.Reset+"%s and %s (%s)\n",
		paths.JSON, paths.Declarations, humanize.Bytes(uint64(size)))
}

// CheckResult reports artifact drift. It prints one line per stale file, or
// a single success line.
func (p *Printer) CheckResult(drifts []artifact.Drift) {
	if len(drifts) == 0 {
		fmt.Fprintln(p.w, ansi.Green+ansi.Bold+"✓ artifacts are up to date"+ansi.Reset)
		return
	}
	for _, d := range drifts {
		if d.Missing {
			fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"✗ missing "+ansi.Reset+"%s\n", d.Path)
			continue
		}
		fmt.Fprintf(p.w, ansi.Red+ansi.Bold+"✗ stale "+ansi.Reset+"%s\n", d.Path)
		p.Detail(fmt.Sprintf("on disk %s", d.Got))
		p.Detail(fmt.Sprintf("expected %s", d.Want))
	}
	fmt.Fprintf(p.w, ansi.Dim+"run `centerbrain generate` to refresh"+ansi.Reset+"\n")
}

// IntegrityReport prints every finding followed by a summary line. Info
// findings are only listed in verbose mode.
func (p *Printer) IntegrityReport(r *integrity.Report) {
	for _, f := range r.Findings {
		if f.Severity == integrity.SeverityInfo && !p.verbose {
			continue
		}
		color := severityColor(f.Severity)
		fmt.Fprintf(p.w, color+ansi.Bold+"%-7s"+ansi.Reset+" %s "+ansi.Dim+"[%s]"+ansi.Reset+" %s\n",
			f.Severity, f.Subject, f.Category, f.Message)
	}

	errs := r.Count(integrity.SeverityError)
	warnings := r.Count(integrity.SeverityWarning)
	infos := r.Count(integrity.SeverityInfo)
	summary := fmt.Sprintf("%d error(s), %d warning(s), %d note(s)", errs, warnings, infos)
	if r.Valid() {
		fmt.Fprintln(p.w, ansi.Green+ansi.Bold+"✓ tables are consistent"+ansi.Reset+": "+summary)
		return
	}
	fmt.Fprintln(p.w, ansi.Red+ansi.Bold+"✗ tables are inconsistent"+ansi.Reset+": "+summary)
}

func severityColor(s integrity.Severity) string {
	switch s {
	case integrity.SeverityError:
		return ansi.Red
	case integrity.SeverityWarning:
		return ansi.Yellow
	default:
		return ansi.Blue
	}
}
