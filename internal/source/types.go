package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped on load.
	FileHadBOM
)

// File captures metadata and content for a single input file. Content is
// kept verbatim apart from BOM stripping: line endings are the tokenizer's
// business, not the loader's.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}
