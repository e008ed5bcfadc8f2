package controller

import (
	"context"

	"core-temp/models"
	"core-temp/utils"
)

// Pipeline wires the three stages:
//
//	input file ──► IngestController ──► InterpolationController ──► RecordingController
//	                     │                        │                        │
//	              ChannelMatrix            slope matrix          per-core .txt (+ csv/xlsx)
type Pipeline struct {
	Ingest *IngestController
	Interp *InterpolationController
	Record *RecordingController

	dt float64
}

// Result is what a pipeline run produced.
type Result struct {
	Original     *models.ChannelMatrix
	Interpolated *models.ChannelMatrix
	Files        []string
}

// NewPipeline builds every stage from cfg.
func NewPipeline(cfg *utils.Config) (*Pipeline, error) {
	ingestCtrl, err := NewIngestController(cfg.Pipeline)
	if err != nil {
		return nil, err
	}
	recordCtrl, err := NewRecordingController(cfg.Output)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Ingest: ingestCtrl,
		Interp: NewInterpolationController(cfg.Pipeline.TimeStep, cfg.Output.Workers),
		Record: recordCtrl,
		dt:     cfg.Pipeline.TimeStep,
	}, nil
}

// Run processes one input file end to end. Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context, inputPath string) (*Result, error) {
	orig, err := p.Ingest.Load(inputPath)
	if err != nil {
		return nil, err
	}
	interp, err := p.Interp.Run(ctx, orig)
	if err != nil {
		return nil, err
	}
	files, err := p.Record.Record(ctx, orig, interp, p.dt, inputPath)
	if err != nil {
		return nil, err
	}
	return &Result{Original: orig, Interpolated: interp, Files: files}, nil
}
