package model

import (
	"time"
)

// Link is the per-shortcode configuration consulted by the resolver.
type Link struct {
	ID             int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortCode      string       `json:"short_code" gorm:"type:varchar(32);uniqueIndex;not null"`
	WorkspaceID    string       `json:"workspace_id" gorm:"type:varchar(64);index;not null"`
	DestinationURL string       `json:"destination_url" gorm:"type:varchar(2048);not null"`
	IsActive       bool         `json:"is_active" gorm:"not null"`
	Password       PasswordGate `json:"password" gorm:"embedded;embeddedPrefix:password_"`
	Transfer       TransferGate `json:"transfer" gorm:"embedded;embeddedPrefix:transfer_"`
	Schedule       ScheduleGate `json:"schedule" gorm:"embedded;embeddedPrefix:schedule_"`
	CreatedAt      time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// PasswordGate protects a link behind a bcrypt hash.
type PasswordGate struct {
	Enabled bool   `json:"enabled"`
	Hash    string `json:"hash" gorm:"type:varchar(255)"`
}

// TransferGate caps the number of successful resolutions.
// Remaining is never replenished.
type TransferGate struct {
	Enabled   bool  `json:"enabled"`
	Remaining int64 `json:"remaining"`
	Max       int64 `json:"max"`
}

// Exhausted reports whether the quota has run out.
func (g TransferGate) Exhausted() bool {
	return g.Enabled && g.Remaining <= 0
}

// ScheduleGate restricts a link to a UTC time window. A nil bound is open.
type ScheduleGate struct {
	Enabled          bool       `json:"enabled"`
	StartAt          *time.Time `json:"start_at"`
	EndAt            *time.Time `json:"end_at"`
	CountdownEnabled bool       `json:"countdown_enabled"`
	Message          string     `json:"message" gorm:"type:varchar(512)"`
}

// CreateLinkRequest represents the request to register a short link
type CreateLinkRequest struct {
	URL           string           `json:"url" binding:"required"`
	WorkspaceID   string           `json:"workspace_id" binding:"required"`
	CustomCode    string           `json:"custom_code"`
	Password      string           `json:"password"`
	TransferLimit int64            `json:"transfer_limit"`
	Schedule      *ScheduleRequest `json:"schedule"`
}

// ScheduleRequest carries RFC3339 bounds for the schedule gate
type ScheduleRequest struct {
	StartAt   string `json:"start_at"`
	EndAt     string `json:"end_at"`
	Countdown bool   `json:"countdown"`
	Message   string `json:"message"`
}

// SetActiveRequest toggles a link on or off
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// LinkResponse is the public view of a Link. The password hash never leaves the service.
type LinkResponse struct {
	ShortLink      string            `json:"short_link"`
	ShortCode      string            `json:"short_code"`
	WorkspaceID    string            `json:"workspace_id"`
	DestinationURL string            `json:"destination_url"`
	IsActive       bool              `json:"is_active"`
	PasswordLocked bool              `json:"password_locked"`
	Transfer       *TransferGate     `json:"transfer,omitempty"`
	Schedule       *ScheduleResponse `json:"schedule,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ScheduleResponse is the public view of a ScheduleGate
type ScheduleResponse struct {
	StartAt   *time.Time `json:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty"`
	Countdown bool       `json:"countdown"`
	Message   string     `json:"message,omitempty"`
}

// NewLinkResponse builds the public view of l served under domain.
func NewLinkResponse(l *Link, domain string) *LinkResponse {
	resp := &LinkResponse{
		ShortLink:      domain + "/" + l.ShortCode,
		ShortCode:      l.ShortCode,
		WorkspaceID:    l.WorkspaceID,
		DestinationURL: l.DestinationURL,
		IsActive:       l.IsActive,
		PasswordLocked: l.Password.Enabled,
		CreatedAt:      l.CreatedAt,
	}
	if l.Transfer.Enabled {
		t := l.Transfer
		resp.Transfer = &t
	}
	if l.Schedule.Enabled {
		resp.Schedule = &ScheduleResponse{
			StartAt:   l.Schedule.StartAt,
			EndAt:     l.Schedule.EndAt,
			Countdown: l.Schedule.CountdownEnabled,
			Message:   l.Schedule.Message,
		}
	}
	return resp
}
