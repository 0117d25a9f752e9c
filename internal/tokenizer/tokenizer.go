package tokenizer

import (
	"errors"

	"retok/internal/diag"
	"retok/internal/processor"
	"retok/internal/token"
)

// Tokenizer converts text into a flat, ordered token stream.
type Tokenizer struct {
	procs []processor.Processor
}

// New creates a tokenizer from processors in priority order.
func New(procs ...processor.Processor) *Tokenizer {
	return &Tokenizer{procs: procs}
}

// Tokenize runs the full pass over src. On success the result covers the
// entire input and ends with a terminal EOF token. On failure no partial
// result is returned; the error carries a rendered source pointer.
func (t *Tokenizer) Tokenize(src string) (*Result, error) {
	res := newResult(src)
	pos := 0

	for {
		// A multi-token step may claim more input than exists (each
		// indent step consumes the full new depth); processors must
		// never see an offset past the end.
		if pos > len(src) {
			break
		}
		matched := false
		for _, p := range t.procs {
			steps, err := p.Process(src, pos)
			if err != nil {
				return nil, withPointer(err, src, pos)
			}
			if len(steps) == 0 {
				continue
			}
			// All tokens of one matched step share the round's
			// anchor offset.
			anchor := pos
			for _, st := range steps {
				if st.Tok != nil {
					res.add(*st.Tok, anchor)
				}
				pos += st.Consumed
			}
			matched = true
			break
		}
		if !matched {
			break
		}
	}

	if pos != len(src) {
		return nil, &diag.Error{
			Code:    diag.LexUnexpectedInput,
			Message: "unable to tokenize input",
			Pointer: NewPosition(src, min(pos, len(src))).Render(),
		}
	}

	for _, p := range t.procs {
		fin, ok := p.(processor.Finalizer)
		if !ok {
			continue
		}
		for _, tok := range fin.Finalize() {
			res.add(tok, len(src))
		}
	}
	res.add(token.NewEOF(), len(src))

	return res, nil
}

// withPointer attaches a rendered source pointer to a coded error that does
// not carry one yet.
func withPointer(err error, src string, offset int) error {
	var e *diag.Error
	if !errors.As(err, &e) {
		return err
	}
	if e.Pointer == "" {
		e.Pointer = NewPosition(src, offset).Render()
	}
	return e
}
