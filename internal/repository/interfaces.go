package repository

import (
	"context"
	"errors"
	"time"

	"clickgate/internal/model"
)

// ErrNotFound is returned when a link, its analytics or a cache entry does not exist
var ErrNotFound = errors.New("record not found")

// Store is the Link Registry and Analytics store.
//
// RecordClick is the only write path for analytics: it decrements the transfer
// quota (never below zero) and applies fn to the locked Analytics row, both in
// one transaction.
type Store interface {
	CreateLink(ctx context.Context, link *model.Link, analytics *model.Analytics) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	CheckExistsByCode(ctx context.Context, shortCode string) (bool, error)
	SetActive(ctx context.Context, shortCode string, active bool) error
	DeleteLink(ctx context.Context, shortCode string) error
	GetAnalyticsByCode(ctx context.Context, shortCode string) (*model.Analytics, error)
	AnalyticsExists(ctx context.Context, shortCode string) (bool, error)
	RecordClick(ctx context.Context, shortCode string, fn func(a *model.Analytics)) error
	ListLinksByWorkspace(ctx context.Context, workspaceID string) ([]model.Link, error)
	ListAnalyticsByWorkspace(ctx context.Context, workspaceID string) ([]model.Analytics, error)
	SaveClickLog(ctx context.Context, clickLog *model.ClickLog) error
	ClickLogExists(ctx context.Context, eventID string) (bool, error)
	Close() error
}

// LinkCache is the read-through cache in front of the Store.
//
// Refills are versioned: read LinkVersion before loading the link from the
// Store, then SaveLink with that version. A DeleteLink in between makes the
// SaveLink a no-op.
type LinkCache interface {
	LinkVersion(ctx context.Context, shortCode string) (int64, error)
	SaveLink(ctx context.Context, link *model.Link, ttl time.Duration, version int64) (bool, error)
	GetLink(ctx context.Context, shortCode string) (*model.Link, error)
	DeleteLink(ctx context.Context, shortCode string) error
	Close() error
}

var (
	_ Store     = (*SQLRepository)(nil)
	_ Store     = (*MemoryRepository)(nil)
	_ LinkCache = (*RedisRepository)(nil)
)
