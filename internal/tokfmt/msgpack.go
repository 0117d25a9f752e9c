package tokfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// FormatMsgpack writes the token records as a msgpack array, the compact
// machine format shared with the driver's token cache.
func FormatMsgpack(w io.Writer, records []Record) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(records)
}
