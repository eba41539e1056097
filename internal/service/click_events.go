package service

import (
	"context"
	"errors"
	"fmt"

	"clickgate/internal/model"
	"clickgate/internal/repository"

	"github.com/rs/zerolog/log"
)

// ClickEventService consumes click events: every event becomes a ClickLog row
// and events flagged Retry are recorded again first.
type ClickEventService struct {
	store    repository.Store
	recorder RecorderInterface
}

// NewClickEventService creates a new ClickEventService
func NewClickEventService(store repository.Store, recorder RecorderInterface) *ClickEventService {
	return &ClickEventService{
		store:    store,
		recorder: recorder,
	}
}

// Handle processes one click event. It is safe to call again for a redelivered event.
func (s *ClickEventService) Handle(ctx context.Context, msg *model.ClickMessage) error {
	if msg.Retry {
		done, err := s.store.ClickLogExists(ctx, msg.EventID)
		if err != nil {
			return fmt.Errorf("failed to check click log: %w", err)
		}
		if done {
			log.Debug().Str("event_id", msg.EventID).Msg("Click already replayed")
			return nil
		}

		if err := s.recorder.Record(ctx, msg.ShortCode, msg.ClickContext()); err != nil {
			if errors.Is(err, ErrAnalyticsMissing) {
				// the link is gone, nothing left to replay into
				log.Warn().
					Str("event_id", msg.EventID).
					Str("short_code", msg.ShortCode).
					Msg("Dropping replayed click for missing analytics")
				return nil
			}
			return fmt.Errorf("failed to replay click: %w", err)
		}
		log.Info().
			Str("event_id", msg.EventID).
			Str("short_code", msg.ShortCode).
			Msg("Click replayed")
	}

	if err := s.store.SaveClickLog(ctx, msg.ClickLog()); err != nil {
		return fmt.Errorf("failed to save click log: %w", err)
	}
	return nil
}
