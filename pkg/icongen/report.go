package icongen

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Reporter prints the human-readable progress lines. It is not meant to be
// parsed; diagnostics belong in the logger.
type Reporter struct {
	out     io.Writer
	heading *color.Color
	success *color.Color
	failure *color.Color
}

// NewReporter writes progress to w, colourised when colorize is set.
func NewReporter(w io.Writer, colorize bool) *Reporter {
	r := &Reporter{
		out:     w,
		heading: color.New(color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if !colorize {
		r.heading.DisableColor()
		r.success.DisableColor()
		r.failure.DisableColor()
	}
	return r
}

// Heading prints a title underlined with '='.
func (r *Reporter) Heading(title string) {
	r.heading.Fprintln(r.out, title)
	fmt.Fprintln(r.out, strings.Repeat("=", 30))
}

// Step prints a plain progress line.
func (r *Reporter) Step(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Success prints a green line.
func (r *Reporter) Success(format string, args ...any) {
	r.success.Fprintf(r.out, format+"\n", args...)
}

// Failure prints a red line.
func (r *Reporter) Failure(format string, args ...any) {
	r.failure.Fprintf(r.out, format+"\n", args...)
}
