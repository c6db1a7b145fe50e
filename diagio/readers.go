package diagio

import "github.com/autonomous-bits/diagsub/ioread"

// NewMemByteReaderFromFile reads path from src and wraps it in a
// path-associated MemByteReader, using the usual read-all-then-construct-
// reader pattern.
func NewMemByteReaderFromFile(src FileSource, path string) (*ioread.MemByteReader, error) {
	data, err := LoadBytes(src, path)
	if err != nil {
		return nil, err
	}
	return ioread.NewMemByteReaderWithPath(path, data), nil
}

// NewMemCharReaderFromFile reads path from src and wraps it in a
// path-associated MemCharReader.
func NewMemCharReaderFromFile(src FileSource, path string) (*ioread.MemCharReader, error) {
	data, err := LoadBytes(src, path)
	if err != nil {
		return nil, err
	}
	return ioread.NewMemCharReaderWithPath(path, data), nil
}
