package controller

import (
	"context"
	"fmt"
	"os"
	"sync"

	"core-temp/models"
	"core-temp/utils"
	"core-temp/views"
)

// RecordingController is the final pipeline stage. It writes:
//   - one "<stem>-core-<k>.txt" per channel (always)
//   - "<stem>-interp.csv" with every interval (optional)
//   - "<stem>-interp.xlsx" with one sheet per channel (optional)
//
// There is no rollback: a failure part-way leaves earlier files on disk.
type RecordingController struct {
	cfg    utils.OutputConfig
	writer *views.InterpWriter

	mu           sync.Mutex
	files        []string
	linesWritten uint64
}

// NewRecordingController creates the output directory, if one is configured.
func NewRecordingController(cfg utils.OutputConfig) (*RecordingController, error) {
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", &models.IOError{Op: "create", Path: cfg.Dir, Err: err})
		}
	}

	rc := &RecordingController{
		cfg: cfg,
		writer: &views.InterpWriter{
			OutDir:       cfg.Dir,
			Workers:      cfg.Workers,
			BufSizeBytes: cfg.BufferSizeKB * 1024,
		},
	}
	utils.L().Debug("recording controller ready  dir=%q workers=%d", cfg.Dir, cfg.Workers)
	return rc, nil
}

// Record writes every configured output for orig and its interpolation and
// returns the paths written by this call, per-core files first. inputPath
// names the source file; outputs are derived from its stem.
func (rc *RecordingController) Record(ctx context.Context, orig, interp *models.ChannelMatrix, dt float64, inputPath string) ([]string, error) {
	// ── Per-core text files ──────────────────────────────────────────
	files, err := rc.writer.Write(ctx, orig, interp, dt, inputPath)
	if err != nil {
		return nil, err
	}
	lines := uint64(interp.NumChannels() * interp.Len())

	// ── Combined CSV ─────────────────────────────────────────────────
	if rc.cfg.CSV {
		path := views.ExportPath(inputPath, rc.cfg.Dir, views.ExportCSV)
		rows, err := views.WriteIntervalsCSV(path, orig, interp, dt, rc.cfg.BufferSizeKB*1024)
		if err != nil {
			return nil, err
		}
		files = append(files, path)
		utils.L().Info("csv export: %d rows -> %s", rows, path)
	}

	// ── Workbook ─────────────────────────────────────────────────────
	if rc.cfg.XLSX {
		path := views.ExportPath(inputPath, rc.cfg.Dir, views.ExportXLSX)
		if err := views.ExportWorkbook(path, orig, interp, dt); err != nil {
			return nil, err
		}
		files = append(files, path)
		utils.L().Info("xlsx export -> %s", path)
	}

	rc.mu.Lock()
	rc.files = files
	rc.linesWritten = lines
	rc.mu.Unlock()

	utils.L().Info("recording done  (files=%d, lines_written=%d)", len(files), lines)
	return append([]string(nil), files...), nil
}

// Files returns the paths written by the last successful Record.
func (rc *RecordingController) Files() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]string(nil), rc.files...)
}

// LinesWritten returns the number of interval lines the last successful
// Record wrote across the per-core text files.
func (rc *RecordingController) LinesWritten() uint64 {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.linesWritten
}
