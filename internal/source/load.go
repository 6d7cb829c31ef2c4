package source

import (
	"fmt"
	"os"
)

// DefaultMaxFileSize caps how much of a single file a scan will read.
const DefaultMaxFileSize = 1 << 20 // 1 MiB

// ErrTooLarge marks files skipped because of the size cap.
type ErrTooLarge struct {
	Path string
	Size int64
	Max  int64
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("%s is %d bytes, over the %d byte scan limit", e.Path, e.Size, e.Max)
}

// Load reads and parses the file at path, refusing files over maxSize
// bytes. maxSize <= 0 means DefaultMaxFileSize. The returned File uses
// rel as its path in violations and reports.
func Load(path, rel string, maxSize int64) (*File, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, &ErrTooLarge{Path: rel, Size: info.Size(), Max: maxSize}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(rel, string(content)), nil
}
