package png

import (
	"fmt"
	"os"
)

// FilePerm is the mode used for created PNG files.
const FilePerm = 0644

// WriteFile writes encoded PNG data to path, returning the number of bytes
// written. The file is closed on every return path.
func WriteFile(path string, data []byte) (n int, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	n, err = f.Write(data)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	return n, nil
}
