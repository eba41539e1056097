package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clickgate/internal/model"
	"clickgate/internal/repository"

	"github.com/rs/zerolog/log"
)

// Recorder is the only writer of Analytics. Each Record call counts one click
// and spends one unit of the link's transfer quota in a single store transaction.
type Recorder struct {
	store repository.Store
	cache repository.LinkCache
	loc   *time.Location
	now   func() time.Time
}

// NewRecorder creates a new Recorder bucketing clicks in loc (time.Local when nil)
func NewRecorder(store repository.Store, cache repository.LinkCache, loc *time.Location) *Recorder {
	if loc == nil {
		loc = time.Local
	}
	return &Recorder{
		store: store,
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
}

// Record folds click into the analytics of shortCode. A zero ClickedAt means now.
// Failures are logged with enough context for manual reconciliation and are
// never retried here.
func (r *Recorder) Record(ctx context.Context, shortCode string, click model.ClickContext) error {
	if click.ClickedAt.IsZero() {
		click.ClickedAt = r.now()
	}
	at := click.ClickedAt.In(r.loc)

	err := r.store.RecordClick(ctx, shortCode, func(a *model.Analytics) {
		a.ApplyClick(click, at)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = ErrAnalyticsMissing
		}
		log.Error().
			Err(err).
			Str("short_code", shortCode).
			Str("clicked_at", click.ClickedAt.UTC().Format(time.RFC3339)).
			Msg("Failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}

	// the cached link carries the quota
	if r.cache != nil {
		if err := r.cache.DeleteLink(ctx, shortCode); err != nil {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to invalidate link cache")
		}
	}

	return nil
}
