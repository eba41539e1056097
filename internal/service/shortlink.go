package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"clickgate/internal/encoder"
	"clickgate/internal/model"
	"clickgate/internal/repository"
	"clickgate/pkg/util"

	"github.com/rs/zerolog/log"
)

// maxPasswordLength is the bcrypt input limit
const maxPasswordLength = 72

// reservedCodes are first path segments served by fixed routes. A link under
// one of them could never be reached.
var reservedCodes = map[string]struct{}{
	"api":     {},
	"health":  {},
	"swagger": {},
}

// IsReservedCode reports whether shortCode collides with a fixed route
func IsReservedCode(shortCode string) bool {
	_, ok := reservedCodes[strings.ToLower(shortCode)]
	return ok
}

// LinkService is the Link Registry. Reads go through the Redis link cache.
type LinkService struct {
	encoder   *encoder.Base32Encoder
	store     repository.Store
	cache     repository.LinkCache
	bloomSvc  BloomServiceInterface
	passwords PasswordVerifier
	cacheTTL  time.Duration
}

// NewLinkService creates a new Link Service
func NewLinkService(
	store repository.Store,
	cache repository.LinkCache,
	bloomSvc BloomServiceInterface,
	passwords PasswordVerifier,
	cacheTTL time.Duration,
) *LinkService {
	return &LinkService{
		encoder:   encoder.NewBase32Encoder(),
		store:     store,
		cache:     cache,
		bloomSvc:  bloomSvc,
		passwords: passwords,
		cacheTTL:  cacheTTL,
	}
}

// Register validates req and creates the Link together with its empty Analytics
func (s *LinkService) Register(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error) {
	if err := validateDestination(req.URL); err != nil {
		return nil, err
	}
	workspaceID := strings.TrimSpace(req.WorkspaceID)
	if workspaceID == "" {
		return nil, ErrInvalidWorkspace
	}
	if req.TransferLimit < 0 {
		return nil, ErrInvalidTransferLimit
	}
	if len(req.Password) > maxPasswordLength {
		return nil, ErrInvalidPassword
	}

	schedule, err := parseSchedule(req.Schedule)
	if err != nil {
		return nil, err
	}

	link := &model.Link{
		WorkspaceID:    workspaceID,
		DestinationURL: req.URL,
		IsActive:       true,
		Schedule:       schedule,
	}
	if req.TransferLimit > 0 {
		link.Transfer = model.TransferGate{
			Enabled:   true,
			Remaining: req.TransferLimit,
			Max:       req.TransferLimit,
		}
	}
	if req.Password != "" {
		hash, err := s.passwords.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		link.Password = model.PasswordGate{Enabled: true, Hash: hash}
	}

	if req.CustomCode != "" {
		if !encoder.ValidCode(req.CustomCode) || IsReservedCode(req.CustomCode) {
			return nil, ErrInvalidCode
		}
		taken, err := s.store.CheckExistsByCode(ctx, req.CustomCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check short code: %w", err)
		}
		if taken {
			return nil, ErrCodeTaken
		}
		link.ShortCode = req.CustomCode
	} else {
		link.ShortCode, err = s.generateWithCollision(ctx, workspaceID+"|"+req.URL)
		if err != nil {
			return nil, err
		}
	}

	version, cacheable := s.linkVersion(ctx, link.ShortCode)
	if err := s.store.CreateLink(ctx, link, model.NewAnalytics(link.ShortCode, workspaceID)); err != nil {
		log.Error().Err(err).Str("short_code", link.ShortCode).Msg("Failed to save link")
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	if err := s.bloomSvc.Add(ctx, link.ShortCode); err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to add to Bloom Filter")
	}
	if cacheable {
		s.cacheLink(ctx, link, version)
	}

	log.Info().
		Str("short_code", link.ShortCode).
		Str("workspace_id", workspaceID).
		Msg("Link registered")

	return link, nil
}

// Get returns the link for shortCode, from cache when possible
func (s *LinkService) Get(ctx context.Context, shortCode string) (*model.Link, error) {
	if s.cache != nil {
		link, err := s.cache.GetLink(ctx, shortCode)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Warn().Err(err).Str("short_code", shortCode).Msg("Link cache read failed")
		}
	}

	// The version must be read before the store so a click or toggle that
	// commits in between invalidates this refill.
	version, cacheable := s.linkVersion(ctx, shortCode)
	link, err := s.store.GetLinkByCode(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	if cacheable {
		s.cacheLink(ctx, link, version)
	}
	return link, nil
}

// SetActive turns a link on or off
func (s *LinkService) SetActive(ctx context.Context, shortCode string, active bool) error {
	err := s.store.SetActive(ctx, shortCode, active)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLinkNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	s.evict(ctx, shortCode)
	return nil
}

// Delete removes a link and its analytics
func (s *LinkService) Delete(ctx context.Context, shortCode string) error {
	err := s.store.DeleteLink(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLinkNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	s.evict(ctx, shortCode)
	return nil
}

// generateWithCollision walks hash, hash+1, ... at each length from 4 to 6
// until the Bloom Filter and then the store both report the code free.
func (s *LinkService) generateWithCollision(ctx context.Context, seed string) (string, error) {
	base := util.HashString(seed)
	for length := encoder.MinLength; length <= encoder.MaxLength; length++ {
		for i := 0; i < 1000; i++ {
			shortCode := s.encoder.Encode(base+uint64(i), length)

			maybe, err := s.bloomSvc.Exists(ctx, shortCode)
			if err == nil && maybe {
				continue
			}

			taken, err := s.store.CheckExistsByCode(ctx, shortCode)
			if err != nil {
				return "", fmt.Errorf("failed to check short code: %w", err)
			}
			if !taken {
				return shortCode, nil
			}
		}
	}
	return "", ErrMaxCapacityReached
}

// linkVersion reads the cache eviction counter. It reports false when the
// link must not be cached.
func (s *LinkService) linkVersion(ctx context.Context, shortCode string) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	version, err := s.cache.LinkVersion(ctx, shortCode)
	if err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Link cache version read failed")
		return 0, false
	}
	return version, true
}

func (s *LinkService) cacheLink(ctx context.Context, link *model.Link, version int64) {
	saved, err := s.cache.SaveLink(ctx, link, s.cacheTTL, version)
	if err != nil {
		log.Warn().Err(err).Str("short_code", link.ShortCode).Msg("Failed to cache link")
		return
	}
	if !saved {
		log.Debug().Str("short_code", link.ShortCode).Msg("Skipped stale link cache refill")
	}
}

func (s *LinkService) evict(ctx context.Context, shortCode string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteLink(ctx, shortCode); err != nil {
		log.Warn().Err(err).Str("short_code", shortCode).Msg("Failed to invalidate link cache")
	}
}

func validateDestination(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}

// parseSchedule turns the RFC3339 request bounds into a gate. A nil request
// disables the gate.
func parseSchedule(req *model.ScheduleRequest) (model.ScheduleGate, error) {
	if req == nil {
		return model.ScheduleGate{}, nil
	}

	gate := model.ScheduleGate{
		Enabled:          true,
		CountdownEnabled: req.Countdown,
		Message:          req.Message,
	}
	if req.StartAt != "" {
		t, err := time.Parse(time.RFC3339, req.StartAt)
		if err != nil {
			return gate, fmt.Errorf("%w: start_at: %v", ErrInvalidSchedule, err)
		}
		t = t.UTC()
		gate.StartAt = &t
	}
	if req.EndAt != "" {
		t, err := time.Parse(time.RFC3339, req.EndAt)
		if err != nil {
			return gate, fmt.Errorf("%w: end_at: %v", ErrInvalidSchedule, err)
		}
		t = t.UTC()
		gate.EndAt = &t
	}

	switch {
	case gate.StartAt == nil && gate.EndAt == nil:
		return gate, fmt.Errorf("%w: start_at or end_at is required", ErrInvalidSchedule)
	case gate.CountdownEnabled && gate.StartAt == nil:
		return gate, fmt.Errorf("%w: countdown needs start_at", ErrInvalidSchedule)
	case gate.StartAt != nil && gate.EndAt != nil && !gate.EndAt.After(*gate.StartAt):
		return gate, fmt.Errorf("%w: end_at must be after start_at", ErrInvalidSchedule)
	}
	return gate, nil
}
