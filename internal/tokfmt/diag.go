package tokfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"retok/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// PrintDiagnostics writes a bag's diagnostics in the canonical terminal
// form: "<path>: <SEV> <CODE>: <message>", followed by the rendered source
// pointer when one is attached. Call bag.Sort() beforehand for stable
// output.
func PrintDiagnostics(w io.Writer, path string, bag *diag.Bag, useColor bool) {
	for _, d := range bag.Items() {
		sev := d.Severity.String()
		if useColor {
			switch d.Severity {
			case diag.SevError:
				sev = errorColor.Sprint(sev)
			case diag.SevWarning:
				sev = warningColor.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", path, sev, d.Code.ID(), d.Message)
		if d.Pointer != "" {
			fmt.Fprintln(w, d.Pointer)
		}
	}
}
