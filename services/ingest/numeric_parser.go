package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"core-temp/models"
)

// ParseFlat splits text on whitespace and parses every token as a float64,
// preserving input order. The first non-numeric token aborts the parse.
func ParseFlat(text string) ([]float64, error) {
	fields := strings.Fields(text)
	out := make([]float64, 0, len(fields))
	for _, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &models.ParseError{Token: tok, Err: numErr(err)}
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseRows reads one record per line, each holding exactly width values.
// Blank lines are skipped; errors carry the 1-based line number.
func ParseRows(text string, width int) ([][]float64, error) {
	if width < 1 {
		return nil, models.ErrInvalidChannels
	}

	lines := strings.Split(text, "\n")
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != width {
			return nil, &models.ParseError{
				Line: i + 1,
				Err:  fmt.Errorf("%w: expected %d values, got %d", models.ErrFieldCount, width, len(fields)),
			}
		}

		row := make([]float64, width)
		for k, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &models.ParseError{Line: i + 1, Token: tok, Err: numErr(err)}
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// numErr strips strconv's "strconv.ParseFloat: parsing ..." prefix, which
// would repeat the token already carried by ParseError.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
