package service

import (
	"time"

	"clickgate/internal/model"
)

// gateInput is everything a gate may look at. link is nil when the code is unknown.
type gateInput struct {
	link      *model.Link
	password  string
	now       time.Time
	passwords PasswordVerifier
}

// gate either stops resolution with a verdict or lets the next gate run.
type gate struct {
	name  string
	check func(in *gateInput) (*model.Resolution, bool)
}

// defaultGates is the fixed evaluation order. A disabled or expired link never
// reveals whether it is password protected.
func defaultGates() []gate {
	return []gate{
		{name: "exists", check: checkExists},
		{name: "active", check: checkActive},
		{name: "schedule", check: checkSchedule},
		{name: "transfer", check: checkTransfer},
		{name: "password", check: checkPassword},
	}
}

// runGates returns the first stopping verdict, or SUCCESS when every gate passes.
func runGates(gates []gate, in *gateInput) (*model.Resolution, string) {
	for _, g := range gates {
		if res, stop := g.check(in); stop {
			return res, g.name
		}
	}
	return &model.Resolution{
		Verdict:     model.VerdictSuccess,
		Destination: in.link.DestinationURL,
	}, ""
}

func checkExists(in *gateInput) (*model.Resolution, bool) {
	if in.link == nil {
		return model.NewResolution(model.VerdictInvalid), true
	}
	return nil, false
}

func checkActive(in *gateInput) (*model.Resolution, bool) {
	if !in.link.IsActive {
		return model.NewResolution(model.VerdictInactive), true
	}
	return nil, false
}

func checkSchedule(in *gateInput) (*model.Resolution, bool) {
	s := in.link.Schedule
	if !s.Enabled {
		return nil, false
	}

	switch EvaluateWindow(s.StartAt, s.EndAt, in.now) {
	case WindowNotStarted:
		// without a countdown the link is not born yet
		if !s.CountdownEnabled {
			return model.NewResolution(model.VerdictInvalid), true
		}
		return &model.Resolution{
			Verdict: model.VerdictShowCounter,
			Countdown: &model.Countdown{
				StartAt: s.StartAt.UTC(),
				Message: s.Message,
			},
		}, true
	case WindowExpired:
		return model.NewResolution(model.VerdictExpired), true
	}
	return nil, false
}

func checkTransfer(in *gateInput) (*model.Resolution, bool) {
	if in.link.Transfer.Exhausted() {
		return model.NewResolution(model.VerdictMaxTransferReached), true
	}
	return nil, false
}

func checkPassword(in *gateInput) (*model.Resolution, bool) {
	if !in.link.Password.Enabled {
		return nil, false
	}
	if in.password == "" {
		return model.NewResolution(model.VerdictShowPasswordPrompt), true
	}
	if !in.passwords.Verify(in.link.Password.Hash, in.password) {
		return model.NewResolution(model.VerdictPasswordIncorrect), true
	}
	return nil, false
}
