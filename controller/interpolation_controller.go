package controller

import (
	"context"

	"golang.org/x/sync/errgroup"

	"core-temp/models"
	"core-temp/services/interp"
	"core-temp/utils"
)

// InterpolationController derives the slope matrix of an ingested matrix.
// It runs one goroutine per channel (bounded by workers); channels share no
// state, so results are assembled back in channel order.
type InterpolationController struct {
	dt      float64
	workers int
}

// NewInterpolationController creates an interpolation stage. dt is the fixed
// step used for reshaped matrices.
func NewInterpolationController(dt float64, workers int) *InterpolationController {
	if workers <= 0 {
		workers = 1
	}
	return &InterpolationController{dt: dt, workers: workers}
}

// Run interpolates every channel of m.
func (ic *InterpolationController) Run(ctx context.Context, m *models.ChannelMatrix) (*models.ChannelMatrix, error) {
	if err := interp.CheckStep(m, ic.dt); err != nil {
		return nil, err
	}

	slopes := make([][]float64, m.NumChannels())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ic.workers)
	for k := range slopes {
		k := k
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slopes[k] = interp.Slopes(m, k, ic.dt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out, err := interp.Assemble(m, ic.dt, slopes)
	if err != nil {
		return nil, err
	}
	utils.L().Info("interpolated %s matrix  shape=%s -> %s", m.Origin(), m.Shape(), out.Shape())
	return out, nil
}
