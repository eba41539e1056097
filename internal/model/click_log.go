package model

import (
	"time"
)

// ClickLog is the durable per-click audit row written by the click event consumer
type ClickLog struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	EventID     string    `json:"event_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	ShortCode   string    `json:"short_code" gorm:"type:varchar(32);index;not null"`
	Fingerprint string    `json:"fingerprint" gorm:"type:varchar(64)"`
	DeviceType  string    `json:"device_type" gorm:"type:varchar(16)"`
	BrowserName string    `json:"browser_name" gorm:"type:varchar(16)"`
	Country     string    `json:"country" gorm:"type:varchar(64)"`
	Referer     string    `json:"referer" gorm:"type:varchar(512)"`
	Replayed    bool      `json:"replayed"`
	ClickedAt   time.Time `json:"clicked_at" gorm:"index"`
}

// TableName returns the table name for ClickLog
func (ClickLog) TableName() string {
	return "click_logs"
}

// ClickMessage is the click event sent to RocketMQ. Retry marks a click whose
// synchronous recording failed and must be replayed by the consumer.
type ClickMessage struct {
	EventID     string    `json:"event_id"`
	ShortCode   string    `json:"short_code"`
	Fingerprint string    `json:"fingerprint"`
	DeviceType  string    `json:"device_type"`
	BrowserName string    `json:"browser_name"`
	Country     string    `json:"country"`
	Referer     string    `json:"referer"`
	ClickedAt   time.Time `json:"clicked_at"`
	Retry       bool      `json:"retry"`
}

// NewClickMessage builds the event for a click
func NewClickMessage(eventID, shortCode, referer string, c ClickContext, retry bool) *ClickMessage {
	return &ClickMessage{
		EventID:     eventID,
		ShortCode:   shortCode,
		Fingerprint: c.Fingerprint,
		DeviceType:  c.DeviceType,
		BrowserName: c.BrowserName,
		Country:     c.Country,
		Referer:     referer,
		ClickedAt:   c.ClickedAt,
		Retry:       retry,
	}
}

// ClickContext rebuilds the classified context carried by the message
func (m *ClickMessage) ClickContext() ClickContext {
	return ClickContext{
		Fingerprint: m.Fingerprint,
		DeviceType:  m.DeviceType,
		BrowserName: m.BrowserName,
		Country:     m.Country,
		ClickedAt:   m.ClickedAt,
	}
}

// ClickLog converts the message into its audit row
func (m *ClickMessage) ClickLog() *ClickLog {
	return &ClickLog{
		EventID:     m.EventID,
		ShortCode:   m.ShortCode,
		Fingerprint: m.Fingerprint,
		DeviceType:  m.DeviceType,
		BrowserName: m.BrowserName,
		Country:     m.Country,
		Referer:     m.Referer,
		Replayed:    m.Retry,
		ClickedAt:   m.ClickedAt,
	}
}
