package views

import (
	"bufio"
	"encoding/csv"
	"os"

	"core-temp/models"
)

// CSVWriter is a buffered CSV writer for interval exports. It is not safe
// for concurrent use.
//
// Row encode errors are buffered by encoding/csv and surface from Flush or
// Close, so the per-row path never returns an error.
type CSVWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter creates the file at path and writes the header row.
func NewCSVWriter(path string, bufSizeBytes int, writeHeader bool, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &models.IOError{Op: "create", Path: path, Err: err}
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		path: path,
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if writeHeader && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, &models.IOError{Op: "write", Path: path, Err: err}
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row.
func (w *CSVWriter) WriteRow(row []string) {
	_ = w.csv.Write(row) // error is buffered; checked on Flush
	w.rows++
}

// WriteRecord appends the CSV row of any exportable model.
func (w *CSVWriter) WriteRecord(rec models.CSVRowWriter) {
	w.WriteRow(rec.CSVRow())
}

// Flush pushes buffered rows to the OS.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return &models.IOError{Op: "write", Path: w.path, Err: err}
	}
	if err := w.buf.Flush(); err != nil {
		return &models.IOError{Op: "write", Path: w.path, Err: err}
	}
	return nil
}

// Close flushes remaining data and closes the file.
func (w *CSVWriter) Close() error {
	ferr := w.Flush()
	if err := w.file.Close(); err != nil && ferr == nil {
		return &models.IOError{Op: "close", Path: w.path, Err: err}
	}
	return ferr
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 { return w.rows }

// WriteIntervalsCSV writes every interval of every channel to one CSV file
// at path and returns the number of data rows.
func WriteIntervalsCSV(path string, orig, interp *models.ChannelMatrix, dt float64, bufSizeBytes int) (uint64, error) {
	if err := CheckShapes(orig, interp); err != nil {
		return 0, err
	}
	w, err := NewCSVWriter(path, bufSizeBytes, true, SchemaColumns[ExportCSV])
	if err != nil {
		return 0, err
	}
	for k := 0; k < interp.NumChannels(); k++ {
		for _, iv := range Intervals(orig, interp, dt, k) {
			w.WriteRecord(&iv)
		}
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return w.Rows(), nil
}
