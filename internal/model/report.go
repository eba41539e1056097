package model

// WorkspaceReport is the read-side rollup over every link of a workspace
type WorkspaceReport struct {
	WorkspaceID           string             `json:"workspace_id"`
	TotalLinks            int64              `json:"total_links"`
	ActiveLinks           int64              `json:"active_links"`
	TotalClicks           int64              `json:"total_clicks"`
	TotalLands            int64              `json:"total_lands"`
	UniqueVisitors        int64              `json:"unique_visitors"`
	DevicePercent         map[string]float64 `json:"device_percent"`
	BrowserPercent        map[string]float64 `json:"browser_percent"`
	UniqueLocations       int                `json:"unique_locations"`
	TopLocations          []LocationShare    `json:"top_locations"`
	CTR                   float64            `json:"ctr"`
	AverageClicksPerLink  float64            `json:"average_clicks_per_link"`
	MostActiveWeekday     int                `json:"most_active_weekday"`
	MostActiveWeekdayName string             `json:"most_active_weekday_name"`
	MostActiveHour        int                `json:"most_active_hour"`
}

// LocationShare is one country's share of the workspace clicks
type LocationShare struct {
	Country string  `json:"country"`
	Clicks  int64   `json:"clicks"`
	Percent float64 `json:"percent"`
}
