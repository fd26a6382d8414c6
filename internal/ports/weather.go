package ports

import (
	"context"

	"github.com/bnema/wttrbot/internal/domain"
)

// ForecastProvider fetches the forecast for a canonical query.
type ForecastProvider interface {
	Fetch(ctx context.Context, query domain.Query) (domain.Forecast, error)
}
