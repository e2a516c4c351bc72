// Package ui renders CLI status and error output. The assembly core never
// prints; everything user-visible funnels through here.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	chemerr "github.com/CAREERS-Cyberteam/MHP/chem/errors"
)

// Success prints a green checkmark line
func Success(w io.Writer, format string, args ...interface{}) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ "+format+"\n", args...)
}

// Info prints a neutral status line
func Info(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Error prints a formatted error. Build errors get their code, kind and
// fragment context highlighted; anything else prints plainly.
func Error(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold)
	body := color.New(color.FgRed)

	var be *chemerr.BuildError
	if errors.As(err, &be) {
		red.Fprintf(w, "✗ %s [%s]\n", strings.ToUpper(be.Kind.String()), be.Code)
		body.Fprintf(w, "  %s\n", be.Message)
		if be.Fragment >= 0 {
			body.Fprintf(w, "  fragment index: %d\n", be.Fragment)
		}
		if be.Atom >= 0 {
			body.Fprintf(w, "  atom: %d\n", be.Atom)
		}
		if be.Position >= 0 {
			body.Fprintf(w, "  position: %d\n", be.Position)
		}
		return
	}
	red.Fprintf(w, "✗ error\n")
	body.Fprintf(w, "  %s\n", err)
}
