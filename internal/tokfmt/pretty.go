package tokfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// PrettyOpts controls the human-readable token listing.
type PrettyOpts struct {
	Color bool
}

const kindColumnWidth = 12

var (
	scopeColor   = color.New(color.FgCyan)
	valueColor   = color.New(color.FgGreen)
	commentColor = color.New(color.FgHiBlack)
)

// FormatPretty writes an aligned, optionally colored token listing.
func FormatPretty(w io.Writer, records []Record, opts PrettyOpts) error {
	for i, rec := range records {
		kind := runewidth.FillRight(rec.Kind, kindColumnWidth)
		if opts.Color {
			kind = colorFor(rec.Kind).Sprint(kind)
		}

		if _, err := fmt.Fprintf(w, "%3d: %s", i+1, kind); err != nil {
			return err
		}
		if rec.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", rec.Text); err != nil {
				return err
			}
		}
		if rec.Type != "" {
			if _, err := fmt.Fprintf(w, " %s=%v", rec.Type, rec.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d\n", rec.Line, rec.Col); err != nil {
			return err
		}
	}
	return nil
}

func colorFor(kind string) *color.Color {
	switch kind {
	case "scope-start", "scope-end":
		return scopeColor
	case "value", "sequence":
		return valueColor
	case "comment":
		return commentColor
	default:
		return color.New()
	}
}
