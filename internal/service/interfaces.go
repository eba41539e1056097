package service

import (
	"context"

	"clickgate/internal/model"
)

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, shortCode string) error
	Exists(ctx context.Context, shortCode string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// PasswordVerifier hashes and checks link passwords
type PasswordVerifier interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// LinkReader loads a Link by short code, returning ErrLinkNotFound when absent
type LinkReader interface {
	Get(ctx context.Context, shortCode string) (*model.Link, error)
}

// LinkServiceInterface defines the Link Registry operations
type LinkServiceInterface interface {
	LinkReader
	Register(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error)
	SetActive(ctx context.Context, shortCode string, active bool) error
	Delete(ctx context.Context, shortCode string) error
}

// ResolverInterface decides the verdict for a short code
type ResolverInterface interface {
	Resolve(ctx context.Context, req *model.ResolveRequest) (*model.Resolution, error)
}

// RecorderInterface records one successful resolution
type RecorderInterface interface {
	Record(ctx context.Context, shortCode string, click model.ClickContext) error
}

// ReporterInterface serves the read side of analytics
type ReporterInterface interface {
	WorkspaceReport(ctx context.Context, workspaceID string) (*model.WorkspaceReport, error)
	LinkAnalytics(ctx context.Context, shortCode string) (*model.Analytics, error)
}

// ClickEventHandlerInterface consumes click events from the message queue
type ClickEventHandlerInterface interface {
	Handle(ctx context.Context, msg *model.ClickMessage) error
}
