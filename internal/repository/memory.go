package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"clickgate/internal/model"
)

// MemoryRepository is an in-process Store. A single mutex serialises writers,
// so RecordClick is exact under contention.
type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	links     map[string]*model.Link
	analytics map[string]*model.Analytics
	clickLogs map[string]*model.ClickLog
	now       func() time.Time
}

// NewMemoryRepository creates an empty in-memory store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		links:     make(map[string]*model.Link),
		analytics: make(map[string]*model.Analytics),
		clickLogs: make(map[string]*model.ClickLog),
		now:       time.Now,
	}
}

// CreateLink stores a link and its analytics
func (r *MemoryRepository) CreateLink(ctx context.Context, link *model.Link, analytics *model.Analytics) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[link.ShortCode]; ok {
		return fmt.Errorf("duplicate short code %q", link.ShortCode)
	}

	now := r.now().UTC()
	r.nextID++
	link.ID = r.nextID
	link.CreatedAt = now
	link.UpdatedAt = now
	analytics.ID = r.nextID
	analytics.UpdatedAt = now

	r.links[link.ShortCode] = cloneLink(link)
	r.analytics[analytics.ShortCode] = cloneAnalytics(analytics)
	return nil
}

// GetLinkByCode returns a copy of the stored link
func (r *MemoryRepository) GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.links[shortCode]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneLink(l), nil
}

// CheckExistsByCode checks if a short code is taken
func (r *MemoryRepository) CheckExistsByCode(ctx context.Context, shortCode string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.links[shortCode]
	return ok, nil
}

// SetActive toggles the active flag
func (r *MemoryRepository) SetActive(ctx context.Context, shortCode string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.links[shortCode]
	if !ok {
		return ErrNotFound
	}
	l.IsActive = active
	l.UpdatedAt = r.now().UTC()
	return nil
}

// DeleteLink removes a link and its analytics
func (r *MemoryRepository) DeleteLink(ctx context.Context, shortCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.links[shortCode]; !ok {
		return ErrNotFound
	}
	delete(r.links, shortCode)
	delete(r.analytics, shortCode)
	return nil
}

// GetAnalyticsByCode returns a copy of the stored analytics
func (r *MemoryRepository) GetAnalyticsByCode(ctx context.Context, shortCode string) (*model.Analytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.analytics[shortCode]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneAnalytics(a), nil
}

// AnalyticsExists reports whether the companion analytics exist
func (r *MemoryRepository) AnalyticsExists(ctx context.Context, shortCode string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.analytics[shortCode]
	return ok, nil
}

// RecordClick applies fn and decrements the quota under the write lock
func (r *MemoryRepository) RecordClick(ctx context.Context, shortCode string, fn func(a *model.Analytics)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.analytics[shortCode]
	if !ok {
		return ErrNotFound
	}
	if l, ok := r.links[shortCode]; ok && l.Transfer.Enabled && l.Transfer.Remaining > 0 {
		l.Transfer.Remaining--
	}

	fn(a)
	a.UpdatedAt = r.now().UTC()
	return nil
}

// ListLinksByWorkspace returns the links of a workspace ordered by id
func (r *MemoryRepository) ListLinksByWorkspace(ctx context.Context, workspaceID string) ([]model.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var links []model.Link
	for _, l := range r.links {
		if l.WorkspaceID == workspaceID {
			links = append(links, *cloneLink(l))
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

// ListAnalyticsByWorkspace returns the analytics of a workspace ordered by id
func (r *MemoryRepository) ListAnalyticsByWorkspace(ctx context.Context, workspaceID string) ([]model.Analytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []model.Analytics
	for _, a := range r.analytics {
		if a.WorkspaceID == workspaceID {
			list = append(list, *cloneAnalytics(a))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// SaveClickLog stores a click log; a duplicate event id is ignored
func (r *MemoryRepository) SaveClickLog(ctx context.Context, clickLog *model.ClickLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clickLogs[clickLog.EventID]; ok {
		return nil
	}
	c := *clickLog
	c.ID = int64(len(r.clickLogs) + 1)
	r.clickLogs[clickLog.EventID] = &c
	return nil
}

// ClickLogExists reports whether an event was already logged
func (r *MemoryRepository) ClickLogExists(ctx context.Context, eventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.clickLogs[eventID]
	return ok, nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}

func cloneLink(l *model.Link) *model.Link {
	c := *l
	if l.Schedule.StartAt != nil {
		t := *l.Schedule.StartAt
		c.Schedule.StartAt = &t
	}
	if l.Schedule.EndAt != nil {
		t := *l.Schedule.EndAt
		c.Schedule.EndAt = &t
	}
	return &c
}

func cloneAnalytics(a *model.Analytics) *model.Analytics {
	c := *a
	c.UniqueVisitors = append(model.VisitorSet(nil), a.UniqueVisitors...)
	c.DailyStats = make(model.DailyStats, len(a.DailyStats))
	for i, d := range a.DailyStats {
		d.UniqueVisitors = append(model.VisitorSet(nil), d.UniqueVisitors...)
		c.DailyStats[i] = d
	}
	c.LocationStats = make(model.LocationStats, len(a.LocationStats))
	for k, v := range a.LocationStats {
		c.LocationStats[k] = v
	}
	return &c
}
