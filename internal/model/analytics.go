package model

import (
	"sort"
	"strings"
	"time"
)

const (
	// DateLayout is the day-granularity key used by DailyStats
	DateLayout = "2006-01-02"
	// UnknownCountry buckets clicks whose country could not be resolved
	UnknownCountry = "Unknown"
)

// Device buckets
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceOthers  = "others"
)

// Browser buckets
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserOthers  = "others"
)

// Analytics is the usage record of one link. It is created with its Link and
// mutated only through ApplyClick.
type Analytics struct {
	ID             int64         `json:"-" gorm:"primaryKey;autoIncrement"`
	ShortCode      string        `json:"short_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	WorkspaceID    string        `json:"workspace_id" gorm:"type:varchar(64);index;not null"`
	TotalClicks    int64         `json:"total_clicks" gorm:"not null;default:0"`
	Lands          int64         `json:"lands" gorm:"not null;default:0"`
	UniqueVisitors VisitorSet    `json:"unique_visitors" gorm:"serializer:json"`
	DeviceStats    DeviceStats   `json:"device_stats" gorm:"serializer:json"`
	BrowserStats   BrowserStats  `json:"browser_stats" gorm:"serializer:json"`
	DailyStats     DailyStats    `json:"daily_stats" gorm:"serializer:json"`
	HourlyStats    HourlyStats   `json:"hourly_stats" gorm:"serializer:json"`
	WeeklyStats    WeeklyStats   `json:"weekly_stats" gorm:"serializer:json"`
	LocationStats  LocationStats `json:"location_stats" gorm:"serializer:json"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Analytics
func (Analytics) TableName() string {
	return "link_analytics"
}

// NewAnalytics returns the empty record created alongside a link.
func NewAnalytics(shortCode, workspaceID string) *Analytics {
	return &Analytics{
		ShortCode:      shortCode,
		WorkspaceID:    workspaceID,
		UniqueVisitors: VisitorSet{},
		DailyStats:     DailyStats{},
		LocationStats:  LocationStats{},
	}
}

// ClickContext describes one successful resolution as classified upstream.
type ClickContext struct {
	Fingerprint string    `json:"fingerprint"`
	DeviceType  string    `json:"device_type"`
	BrowserName string    `json:"browser_name"`
	Country     string    `json:"country"`
	ClickedAt   time.Time `json:"clicked_at"`
}

// ApplyClick folds one click into every bucket. at must already be in the
// reporting timezone; it selects the day, hour and weekday buckets.
func (a *Analytics) ApplyClick(c ClickContext, at time.Time) {
	a.TotalClicks++
	if c.Fingerprint != "" {
		a.UniqueVisitors = a.UniqueVisitors.Add(c.Fingerprint)
	}
	a.DeviceStats.Inc(c.DeviceType)
	a.BrowserStats.Inc(c.BrowserName)
	a.DailyStats = a.DailyStats.Record(at.Format(DateLayout), c.Fingerprint)
	a.HourlyStats[at.Hour()]++
	a.WeeklyStats[int(at.Weekday())]++

	country := strings.TrimSpace(c.Country)
	if country == "" {
		country = UnknownCountry
	}
	if a.LocationStats == nil {
		a.LocationStats = LocationStats{}
	}
	a.LocationStats[country]++
}

// UniqueVisitorCount is the size of the global visitor set.
func (a *Analytics) UniqueVisitorCount() int {
	return len(a.UniqueVisitors)
}

// VisitorSet is an append-only set of visitor fingerprints.
type VisitorSet []string

// Contains reports whether fp is in the set
func (s VisitorSet) Contains(fp string) bool {
	for _, v := range s {
		if v == fp {
			return true
		}
	}
	return false
}

// Add appends fp if absent.
func (s VisitorSet) Add(fp string) VisitorSet {
	if s.Contains(fp) {
		return s
	}
	return append(s, fp)
}

// DeviceStats counts clicks per device class
type DeviceStats struct {
	Desktop int64 `json:"desktop"`
	Mobile  int64 `json:"mobile"`
	Tablet  int64 `json:"tablet"`
	Others  int64 `json:"others"`
}

// Inc increments the bucket for deviceType. Unrecognised types go to Others.
func (d *DeviceStats) Inc(deviceType string) {
	switch strings.ToLower(strings.TrimSpace(deviceType)) {
	case DeviceDesktop:
		d.Desktop++
	case DeviceMobile:
		d.Mobile++
	case DeviceTablet:
		d.Tablet++
	default:
		d.Others++
	}
}

// Total is the sum of all buckets
func (d DeviceStats) Total() int64 {
	return d.Desktop + d.Mobile + d.Tablet + d.Others
}

// Map returns the buckets keyed by name
func (d DeviceStats) Map() map[string]int64 {
	return map[string]int64{
		DeviceDesktop: d.Desktop,
		DeviceMobile:  d.Mobile,
		DeviceTablet:  d.Tablet,
		DeviceOthers:  d.Others,
	}
}

// BrowserStats counts clicks per browser family
type BrowserStats struct {
	Chrome  int64 `json:"chrome"`
	Firefox int64 `json:"firefox"`
	Safari  int64 `json:"safari"`
	Edge    int64 `json:"edge"`
	Opera   int64 `json:"opera"`
	Others  int64 `json:"others"`
}

// Inc increments the bucket for browserName, case-insensitively.
func (b *BrowserStats) Inc(browserName string) {
	switch strings.ToLower(strings.TrimSpace(browserName)) {
	case BrowserChrome:
		b.Chrome++
	case BrowserFirefox:
		b.Firefox++
	case BrowserSafari:
		b.Safari++
	case BrowserEdge:
		b.Edge++
	case BrowserOpera:
		b.Opera++
	default:
		b.Others++
	}
}

// Total is the sum of all buckets
func (b BrowserStats) Total() int64 {
	return b.Chrome + b.Firefox + b.Safari + b.Edge + b.Opera + b.Others
}

// Map returns the buckets keyed by name
func (b BrowserStats) Map() map[string]int64 {
	return map[string]int64{
		BrowserChrome:  b.Chrome,
		BrowserFirefox: b.Firefox,
		BrowserSafari:  b.Safari,
		BrowserEdge:    b.Edge,
		BrowserOpera:   b.Opera,
		BrowserOthers:  b.Others,
	}
}

// DailyStat is the click summary of one calendar day
type DailyStat struct {
	Date           string     `json:"date"`
	TotalClicks    int64      `json:"total_clicks"`
	UniqueVisitors VisitorSet `json:"unique_visitors"`
}

// DailyStats holds one entry per day with clicks, ordered by date.
type DailyStats []DailyStat

// Record counts a click on date, keeping the slice sorted and dates unique.
func (d DailyStats) Record(date, fingerprint string) DailyStats {
	i := sort.Search(len(d), func(i int) bool { return d[i].Date >= date })
	if i < len(d) && d[i].Date == date {
		d[i].TotalClicks++
		if fingerprint != "" {
			d[i].UniqueVisitors = d[i].UniqueVisitors.Add(fingerprint)
		}
		return d
	}

	entry := DailyStat{Date: date, TotalClicks: 1, UniqueVisitors: VisitorSet{}}
	if fingerprint != "" {
		entry.UniqueVisitors = VisitorSet{fingerprint}
	}
	d = append(d, DailyStat{})
	copy(d[i+1:], d[i:])
	d[i] = entry
	return d
}

// Find returns the entry for date, if any
func (d DailyStats) Find(date string) (DailyStat, bool) {
	i := sort.Search(len(d), func(i int) bool { return d[i].Date >= date })
	if i < len(d) && d[i].Date == date {
		return d[i], true
	}
	return DailyStat{}, false
}

// HourlyStats counts clicks per hour of day, 0-23
type HourlyStats [24]int64

// WeeklyStats counts clicks per weekday, 0 = Sunday
type WeeklyStats [7]int64

// LocationStats counts clicks per country name
type LocationStats map[string]int64
