package model

import "time"

// Verdict is the closed set of outcomes of resolving a short code
type Verdict string

const (
	VerdictInvalid            Verdict = "INVALID"
	VerdictInactive           Verdict = "INACTIVE"
	VerdictShowCounter        Verdict = "SHOW_COUNTER"
	VerdictExpired            Verdict = "EXPIRED"
	VerdictMaxTransferReached Verdict = "MAX_TRANSFER_REACHED"
	VerdictShowPasswordPrompt Verdict = "SHOW_PASSWORD_PROMPT"
	VerdictPasswordIncorrect  Verdict = "PASSWORD_INCORRECT"
	VerdictSuccess            Verdict = "SUCCESS"
)

// ResolveRequest is the inbound resolution request. An empty Password means
// no password was supplied.
type ResolveRequest struct {
	ShortCode string
	Password  string
}

// Countdown is the payload of SHOW_COUNTER
type Countdown struct {
	StartAt time.Time `json:"start_at"`
	Message string    `json:"message,omitempty"`
}

// Resolution is a verdict plus its optional payload.
// Destination is set only for SUCCESS, Countdown only for SHOW_COUNTER.
type Resolution struct {
	Verdict     Verdict    `json:"verdict"`
	Destination string     `json:"destination,omitempty"`
	Countdown   *Countdown `json:"countdown,omitempty"`
}

// NewResolution returns a payload-free resolution
func NewResolution(v Verdict) *Resolution {
	return &Resolution{Verdict: v}
}
