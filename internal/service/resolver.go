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

// Resolver runs the gate chain for a short code. It never mutates a Link or
// its Analytics; recording is left to the caller on SUCCESS.
type Resolver struct {
	links     LinkReader
	store     repository.Store
	passwords PasswordVerifier
	gates     []gate
	now       func() time.Time
}

// NewResolver creates a new Resolver
func NewResolver(links LinkReader, store repository.Store, passwords PasswordVerifier) *Resolver {
	return &Resolver{
		links:     links,
		store:     store,
		passwords: passwords,
		gates:     defaultGates(),
		now:       time.Now,
	}
}

// Resolve returns exactly one verdict for req. Gate outcomes are never errors:
// an error means an infrastructure fault or ErrAnalyticsMissing, and always
// comes with an INVALID verdict.
func (r *Resolver) Resolve(ctx context.Context, req *model.ResolveRequest) (*model.Resolution, error) {
	link, err := r.links.Get(ctx, req.ShortCode)
	if err != nil && !errors.Is(err, ErrLinkNotFound) {
		return model.NewResolution(model.VerdictInvalid), fmt.Errorf("failed to load link: %w", err)
	}

	res, stoppedBy := runGates(r.gates, &gateInput{
		link:      link,
		password:  req.Password,
		now:       r.now(),
		passwords: r.passwords,
	})
	if res.Verdict != model.VerdictSuccess {
		log.Debug().
			Str("short_code", req.ShortCode).
			Str("gate", stoppedBy).
			Str("verdict", string(res.Verdict)).
			Msg("Resolution stopped by gate")
		return res, nil
	}

	exists, err := r.store.AnalyticsExists(ctx, req.ShortCode)
	if err != nil {
		return model.NewResolution(model.VerdictInvalid), fmt.Errorf("failed to check analytics: %w", err)
	}
	if !exists {
		log.Error().
			Bool("alert", true).
			Str("short_code", req.ShortCode).
			Str("workspace_id", link.WorkspaceID).
			Msg("Link has no analytics record")
		return model.NewResolution(model.VerdictInvalid), ErrAnalyticsMissing
	}

	return res, nil
}
