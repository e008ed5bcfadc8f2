package ingest

import (
	"os"
	"sync/atomic"

	"core-temp/models"
	"core-temp/utils"
)

// FileReader ingests a whitespace-delimited temperature log from disk.
// The whole file is materialised in memory.
type FileReader struct {
	path   string
	bytes  uint64
	values uint64
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// Path returns the file this reader ingests.
func (r *FileReader) Path() string { return r.path }

// ReadText returns the raw file contents.
func (r *FileReader) ReadText() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", &models.IOError{Op: "read", Path: r.path, Err: err}
	}
	atomic.AddUint64(&r.bytes, uint64(len(data)))
	utils.L().Debug("read %d bytes from %s", len(data), r.path)
	return string(data), nil
}

// ReadFlat reads the file as one flat stream of numbers.
func (r *FileReader) ReadFlat() ([]float64, error) {
	text, err := r.ReadText()
	if err != nil {
		return nil, err
	}
	flat, err := ParseFlat(text)
	if err != nil {
		return nil, err
	}
	atomic.AddUint64(&r.values, uint64(len(flat)))
	return flat, nil
}

// ReadRows reads the file as fixed-width records, one per line.
func (r *FileReader) ReadRows(width int) ([][]float64, error) {
	text, err := r.ReadText()
	if err != nil {
		return nil, err
	}
	rows, err := ParseRows(text, width)
	if err != nil {
		return nil, err
	}
	atomic.AddUint64(&r.values, uint64(len(rows)*width))
	return rows, nil
}

// Stats returns bytes read and values parsed so far.
func (r *FileReader) Stats() (uint64, uint64) {
	return atomic.LoadUint64(&r.bytes), atomic.LoadUint64(&r.values)
}
