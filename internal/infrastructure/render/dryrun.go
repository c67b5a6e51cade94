package render

import (
	"context"

	"github.com/google/uuid"

	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/domain"
	"github.com/LutzGaissmaier/StudiFlowStudibuch-sub001/internal/ports"
)

// DryRunProvider answers render requests locally without producing a video.
type DryRunProvider struct{}

var _ ports.RenderProvider = DryRunProvider{}

// Render echoes the requested geometry back with a synthetic location.
func (DryRunProvider) Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RenderResult{}, err
	}

	id := uuid.NewString()
	duration := 0.0
	if d, ok := req.Modifications["duration"].(float64); ok {
		duration = d
	}
	return domain.RenderResult{
		ID:       id,
		URL:      "dryrun://renders/" + id + "." + req.OutputFormat,
		Width:    req.Width,
		Height:   req.Height,
		Duration: duration,
		Format:   req.OutputFormat,
	}, nil
}
