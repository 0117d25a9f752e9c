package token

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType tags the semantic type of a Value token.
type ValueType uint8

const (
	// TypeNone marks a token that carries no value payload.
	TypeNone ValueType = iota
	// TypeInt is a signed integer literal, converted to int64.
	TypeInt
	// TypeFloat is a floating point literal, converted to float64.
	TypeFloat
	// TypeString is a quoted string literal, quotes stripped.
	TypeString
	// TypeBool is a boolean literal, converted to bool.
	TypeBool
)

// String returns the string representation of ValueType.
func (vt ValueType) String() string {
	switch vt {
	case TypeNone:
		return "none"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	default:
		return fmt.Sprintf("ValueType(%d)", vt)
	}
}

// Converter turns captured text into a value of the tagged type.
type Converter func(text string) (any, error)

// DefaultConverter returns the parse-from-text conversion for the type.
// The boolean vocabulary ("true"/"True"/...) is matched by lowercase
// comparison since strconv accepts forms like "1" and "t" that the
// tokenizer never produces.
func DefaultConverter(vt ValueType) Converter {
	switch vt {
	case TypeInt:
		return func(text string) (any, error) {
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
	case TypeFloat:
		return func(text string) (any, error) {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, err
			}
			return v, nil
		}
	case TypeBool:
		return func(text string) (any, error) {
			return strings.ToLower(text) == "true", nil
		}
	default:
		return func(text string) (any, error) { return text, nil }
	}
}
