package controller

import (
	"fmt"

	"core-temp/models"
	"core-temp/services/ingest"
	"core-temp/utils"
)

// IngestController turns an input file into a ChannelMatrix, choosing the
// parser and construction mode from the pipeline config.
type IngestController struct {
	cfg    utils.PipelineConfig
	dist   models.Distribution
	reader *ingest.FileReader
}

// NewIngestController validates the mode and distribution up front.
func NewIngestController(cfg utils.PipelineConfig) (*IngestController, error) {
	if cfg.Mode != utils.ModeRows && cfg.Mode != utils.ModeReshape {
		return nil, fmt.Errorf("unknown pipeline mode %q", cfg.Mode)
	}
	dist, err := models.ParseDistribution(cfg.Distribution)
	if err != nil {
		return nil, err
	}
	return &IngestController{cfg: cfg, dist: dist}, nil
}

// Load reads path and builds its channel matrix.
func (ic *IngestController) Load(path string) (*models.ChannelMatrix, error) {
	ic.reader = ingest.NewFileReader(path)

	var (
		m   *models.ChannelMatrix
		err error
	)
	switch ic.cfg.Mode {
	case utils.ModeReshape:
		var flat []float64
		if flat, err = ic.reader.ReadFlat(); err != nil {
			return nil, err
		}
		m, err = models.NewReshapedMatrix(flat, ic.cfg.Channels, ic.dist, ic.cfg.TimeStep)
	default:
		var rows [][]float64
		if rows, err = ic.reader.ReadRows(ic.cfg.Channels); err != nil {
			return nil, err
		}
		m, err = models.NewRowTaggedMatrix(rows, ic.cfg.Channels, ic.cfg.TimeStep)
	}
	if err != nil {
		return nil, err
	}

	utils.L().Info("ingested %s  mode=%s  shape=%s", ic.reader.Path(), ic.cfg.Mode, m.Shape())
	return m, nil
}

// Build parses in-memory text the same way Load parses a file.
func (ic *IngestController) Build(text string) (*models.ChannelMatrix, error) {
	if ic.cfg.Mode == utils.ModeReshape {
		flat, err := ingest.ParseFlat(text)
		if err != nil {
			return nil, err
		}
		return models.NewReshapedMatrix(flat, ic.cfg.Channels, ic.dist, ic.cfg.TimeStep)
	}
	rows, err := ingest.ParseRows(text, ic.cfg.Channels)
	if err != nil {
		return nil, err
	}
	return models.NewRowTaggedMatrix(rows, ic.cfg.Channels, ic.cfg.TimeStep)
}

// LogStats prints the reader counters of the last Load.
func (ic *IngestController) LogStats() {
	if ic.reader == nil {
		return
	}
	b, v := ic.reader.Stats()
	utils.L().Info("  ingest   bytes=%d  values=%d", b, v)
}
