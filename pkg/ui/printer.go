package ui

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Printer writes user-facing output. Logs go through zerolog on stderr;
// everything the user asked for goes through a Printer.
type Printer struct {
	out    io.Writer
	err    io.Writer
	format Format
}

// NewPrinter creates a printer writing results to out and errors to errOut.
// FormatAuto is resolved against out.
func NewPrinter(out, errOut io.Writer, format Format) *Printer {
	return &Printer{
		out:    out,
		err:    errOut,
		format: Resolve(format, out),
	}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) styled() bool {
	return p.format == FormatTerminal
}

// Entry prints the per-entry line of link and unlink, for example
// "Creating symlink: /src -> /dst"
func (p *Printer) Entry(verb, source, target string) {
	if !p.styled() {
		fmt.Fprintf(p.out, "%s: %s -> %s\n", verb, source, target)
		return
	}
	fmt.Fprintf(p.out, "%s: %s %s %s\n",
		verbStyle.Render(verb),
		pathStyle.Render(source),
		arrowStyle.Render("->"),
		pathStyle.Render(target))
}

// Action prints a single filesystem change below its entry line
func (p *Printer) Action(kind, source, target string, dryRun bool) {
	line := kind + ": "
	if source != "" {
		line += source + " -> "
	}
	line += target
	if dryRun {
		line = "would " + line
	}

	if !p.styled() {
		fmt.Fprintf(p.out, "  %s\n", line)
		return
	}
	if dryRun {
		fmt.Fprintf(p.out, "  %s\n", dryRunStyle.Render(line))
		return
	}
	fmt.Fprintf(p.out, "  %s\n", mutedStyle.Render(line))
}

// Message prints a plain informational line
func (p *Printer) Message(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.styled() {
		msg = successStyle.Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Error prints err as a single "Error: ..." report on the error writer
func (p *Printer) Error(err error) {
	prefix := "Error:"
	if p.styled() {
		prefix = errorStyle.Render(prefix)
	}
	fmt.Fprintf(p.err, "%s %s\n", prefix, err.Error())
}

// Status renders a status report as a list or, in yaml format, as a
// document
func (p *Printer) Status(report StatusReport) error {
	if p.format == FormatYAML {
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	width := 0
	for _, e := range report.Entries {
		if len(e.Status) > width {
			width = len(e.Status)
		}
	}

	for _, e := range report.Entries {
		label := fmt.Sprintf(" %-*s ", width, e.Status)
		line := fmt.Sprintf("%s -> %s", e.Target, e.Source)
		if p.styled() {
			label = badgeStyle(e.Status).Sprint(label)
			line = fmt.Sprintf("%s %s %s", pathStyle.Render(e.Target), arrowStyle.Render("->"), pathStyle.Render(e.Source))
		} else {
			label = "[" + strings.TrimSpace(label) + "]"
			label = fmt.Sprintf("%-*s", width+2, label)
		}
		if e.Detail != "" {
			detail := "(" + e.Detail + ")"
			if p.styled() {
				detail = mutedStyle.Render(detail)
			}
			line += " " + detail
		}
		fmt.Fprintf(p.out, "%s %s\n", label, line)
	}

	counts := report.Counts()
	var parts []string
	for _, s := range []Status{StatusLinked, StatusPending, StatusMerged, StatusStale, StatusConflict, StatusError} {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no entries")
	}
	summary := strings.Join(parts, ", ")
	if p.styled() {
		summary = mutedStyle.Render(summary)
	}
	fmt.Fprintln(p.out, summary)
	return nil
}
