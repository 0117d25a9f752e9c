package source

import "path/filepath"

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func normalizePath(p string) string {
	// single form in cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}
