package partsearch

import (
	"context"

	healthuc "github.com/kailas-cloud/partsearch/internal/usecase/health"
)

// HealthStatus represents the aggregated client health.
type HealthStatus struct {
	Status   string            // "ok" or "degraded"
	Checks   map[string]string // component → "ok"/"error"
	Products int
}

// Health reports catalog and store health. A degraded client still answers
// searches against whatever catalog is loaded.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:   string(report.Status),
		Checks:   checks,
		Products: c.catalog.Current().Len(),
	}
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
