package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_TableName(t *testing.T) {
	l := Link{}
	assert.Equal(t, "links", l.TableName())
}

func TestTransferGate_Exhausted(t *testing.T) {
	tests := []struct {
		name     string
		gate     TransferGate
		expected bool
	}{
		{name: "disabled", gate: TransferGate{Enabled: false, Remaining: 0}, expected: false},
		{name: "remaining", gate: TransferGate{Enabled: true, Remaining: 3, Max: 5}, expected: false},
		{name: "zero", gate: TransferGate{Enabled: true, Remaining: 0, Max: 5}, expected: true},
		{name: "negative", gate: TransferGate{Enabled: true, Remaining: -1, Max: 5}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.gate.Exhausted())
		})
	}
}

func TestNewLinkResponse(t *testing.T) {
	start := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l := &Link{
		ShortCode:      "ABCD",
		WorkspaceID:    "ws-1",
		DestinationURL: "https://example.com",
		IsActive:       true,
		Password:       PasswordGate{Enabled: true, Hash: "$2a$10$secret"},
		Transfer:       TransferGate{Enabled: true, Remaining: 4, Max: 5},
		Schedule:       ScheduleGate{Enabled: true, StartAt: &start, CountdownEnabled: true, Message: "soon"},
	}

	resp := NewLinkResponse(l, "https://s.example.com")

	assert.Equal(t, "https://s.example.com/ABCD", resp.ShortLink)
	assert.True(t, resp.PasswordLocked)
	require.NotNil(t, resp.Transfer)
	assert.Equal(t, int64(4), resp.Transfer.Remaining)
	require.NotNil(t, resp.Schedule)
	assert.True(t, resp.Schedule.Countdown)
	assert.Equal(t, &start, resp.Schedule.StartAt)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "$2a$10$secret")
}

func TestNewLinkResponse_NoGates(t *testing.T) {
	resp := NewLinkResponse(&Link{ShortCode: "ABCD", IsActive: true}, "http://localhost")

	assert.False(t, resp.PasswordLocked)
	assert.Nil(t, resp.Transfer)
	assert.Nil(t, resp.Schedule)
}

func TestLink_JSONRoundTripKeepsHash(t *testing.T) {
	// The cache stores the full link, including the hash the password gate needs.
	l := Link{ShortCode: "ABCD", Password: PasswordGate{Enabled: true, Hash: "h"}}

	data, err := json.Marshal(l)
	require.NoError(t, err)

	var back Link
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "h", back.Password.Hash)
}
