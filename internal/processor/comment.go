package processor

import (
	"regexp"

	"retok/internal/token"
)

// Comment recognizes a marker character followed by the rest of the line
// and emits a comment token carrying the text after the marker. A bare
// marker with nothing behind it is not a comment.
type Comment struct {
	re *regexp.Regexp
}

// NewComment creates a comment processor for the given leading marker.
func NewComment(marker rune) *Comment {
	return &Comment{re: regexp.MustCompile("^" + regexp.QuoteMeta(string(marker)) + "(.+)")}
}

func (p *Comment) Process(content string, offset int) ([]Step, error) {
	m := p.re.FindStringSubmatchIndex(content[offset:])
	if m == nil {
		return nil, nil
	}
	text := content[offset+m[2] : offset+m[3]]
	return emit(token.NewComment(text), m[1]), nil
}
