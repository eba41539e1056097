package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"clickgate/internal/model"
	"clickgate/internal/repository"
)

// topLocationLimit is how many countries a workspace report lists
const topLocationLimit = 5

// Reporter computes read-only rollups over already recorded analytics
type Reporter struct {
	store repository.Store
}

// NewReporter creates a new Reporter
func NewReporter(store repository.Store) *Reporter {
	return &Reporter{store: store}
}

// LinkAnalytics returns the analytics of one link
func (r *Reporter) LinkAnalytics(ctx context.Context, shortCode string) (*model.Analytics, error) {
	a, err := r.store.GetAnalyticsByCode(ctx, shortCode)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return a, nil
}

// WorkspaceReport sums the analytics of every link of a workspace. Every ratio
// is 0 when its denominator is 0.
func (r *Reporter) WorkspaceReport(ctx context.Context, workspaceID string) (*model.WorkspaceReport, error) {
	links, err := r.store.ListLinksByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	list, err := r.store.ListAnalyticsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}

	rep := &model.WorkspaceReport{
		WorkspaceID: workspaceID,
		TotalLinks:  int64(len(links)),
	}
	for _, l := range links {
		if l.IsActive {
			rep.ActiveLinks++
		}
	}

	var (
		devices   model.DeviceStats
		browsers  model.BrowserStats
		hours     model.HourlyStats
		weekdays  model.WeeklyStats
		locations = make(map[string]int64)
	)
	for _, a := range list {
		rep.TotalClicks += a.TotalClicks
		rep.TotalLands += a.Lands
		rep.UniqueVisitors += int64(a.UniqueVisitorCount())

		devices.Desktop += a.DeviceStats.Desktop
		devices.Mobile += a.DeviceStats.Mobile
		devices.Tablet += a.DeviceStats.Tablet
		devices.Others += a.DeviceStats.Others

		browsers.Chrome += a.BrowserStats.Chrome
		browsers.Firefox += a.BrowserStats.Firefox
		browsers.Safari += a.BrowserStats.Safari
		browsers.Edge += a.BrowserStats.Edge
		browsers.Opera += a.BrowserStats.Opera
		browsers.Others += a.BrowserStats.Others

		for i, n := range a.HourlyStats {
			hours[i] += n
		}
		for i, n := range a.WeeklyStats {
			weekdays[i] += n
		}
		for country, n := range a.LocationStats {
			locations[country] += n
		}
	}

	rep.DevicePercent = percentages(devices.Map(), devices.Total())
	rep.BrowserPercent = percentages(browsers.Map(), browsers.Total())
	rep.UniqueLocations = len(locations)
	rep.TopLocations = topLocations(locations, rep.TotalClicks, topLocationLimit)
	rep.CTR = percent(rep.TotalLands, rep.TotalClicks)
	if rep.TotalLinks > 0 {
		rep.AverageClicksPerLink = round2(float64(rep.TotalClicks) / float64(rep.TotalLinks))
	}
	rep.MostActiveWeekday = argmax(weekdays[:])
	rep.MostActiveWeekdayName = time.Weekday(rep.MostActiveWeekday).String()
	rep.MostActiveHour = argmax(hours[:])

	return rep, nil
}

func percentages(buckets map[string]int64, total int64) map[string]float64 {
	out := make(map[string]float64, len(buckets))
	for name, n := range buckets {
		out[name] = percent(n, total)
	}
	return out
}

// topLocations sorts by clicks descending, then country name
func topLocations(locations map[string]int64, total int64, limit int) []model.LocationShare {
	shares := make([]model.LocationShare, 0, len(locations))
	for country, n := range locations {
		shares = append(shares, model.LocationShare{
			Country: country,
			Clicks:  n,
			Percent: percent(n, total),
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Clicks != shares[j].Clicks {
			return shares[i].Clicks > shares[j].Clicks
		}
		return shares[i].Country < shares[j].Country
	})
	if len(shares) > limit {
		shares = shares[:limit]
	}
	return shares
}

// argmax returns the first index holding the largest value
func argmax(values []int64) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

func percent(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
