package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"core-temp/models"
)

// ExportKind identifies one of the output formats.
type ExportKind int

const (
	ExportText ExportKind = iota // one <stem>-core-<k>.txt per channel
	ExportCSV                    // <stem>-interp.csv, all channels
	ExportXLSX                   // <stem>-interp.xlsx, one sheet per channel
)

var exportNames = map[ExportKind]string{
	ExportText: "text",
	ExportCSV:  "csv",
	ExportXLSX: "xlsx",
}

func (e ExportKind) String() string {
	if n, ok := exportNames[e]; ok {
		return n
	}
	return "unknown"
}

// SchemaColumns is the column layout of the tabular exports. It mirrors
// models.Interval.CSVHeader and is kept here as the reference for both the
// CSV file and every workbook sheet.
var SchemaColumns = map[ExportKind][]string{
	ExportCSV:  models.Interval{}.CSVHeader(),
	ExportXLSX: {"t0", "t1", "y0", "slope"},
}

// Stem returns the input file name without its extension.
func Stem(basePath string) string {
	name := filepath.Base(basePath)
	s := strings.TrimSuffix(name, filepath.Ext(name))
	if s == "" {
		return name
	}
	return s
}

func outputDir(basePath, outDir string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(basePath)
}

// OutputPath returns the per-core text file path "<stem>-core-<k>.txt",
// placed in outDir or, when empty, next to basePath.
func OutputPath(basePath, outDir string, core int) string {
	return filepath.Join(outputDir(basePath, outDir), fmt.Sprintf("%s-core-%d.txt", Stem(basePath), core))
}

// ExportPath returns the combined export path for kind.
func ExportPath(basePath, outDir string, kind ExportKind) string {
	return filepath.Join(outputDir(basePath, outDir), fmt.Sprintf("%s-interp.%s", Stem(basePath), kind))
}
