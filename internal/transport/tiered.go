package transport

import (
	"context"
	"log/slog"

	"github.com/aself101/nba-api/internal/logging"
)

// Tiered tries the primary tier and, on any failure, falls through to the
// secondary tier. The two are always sequential; the secondary never races
// the primary. With no secondary configured it behaves exactly like the
// primary.
type Tiered struct {
	primary   Fetcher
	secondary Fetcher
	logger    *slog.Logger
}

// NewTiered composes the fallback policy. secondary may be nil.
func NewTiered(primary, secondary Fetcher, logger *slog.Logger) *Tiered {
	return &Tiered{primary: primary, secondary: secondary, logger: logger}
}

func (t *Tiered) Fetch(ctx context.Context, url string) ([]byte, error) {
	body, err := t.primary.Fetch(ctx, url)
	if err == nil {
		return body, nil
	}
	if t.secondary == nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, err
	}

	logging.Warn(t.logger, "primary fetch failed, trying secondary tier",
		"url", url, logging.FieldTier, "secondary", "error", err)
	return t.secondary.Fetch(ctx, url)
}
