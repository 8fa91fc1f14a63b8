package app

import (
	"time"

	"github.com/abhilash/crammer/internal/api"
	"github.com/abhilash/crammer/internal/deck"
)

// setsLoadedMsg is sent when the set listing fetch completes.
type setsLoadedMsg struct {
	Sets []api.SetSummary
	Err  error
}

// setLoadedMsg is sent when a full set fetch completes.
type setLoadedMsg struct {
	Set *deck.Set
	Err error
}

// publishDoneMsg is sent when the post-submit progress push completes.
// Failures are reported on the results screen, never fatal.
type publishDoneMsg struct {
	Err error
}

// overrideDoneMsg is sent when an override adjustment push completes.
type overrideDoneMsg struct {
	Err error
}

// timerTickMsg advances the elapsed clock once a second during a test.
type timerTickMsg time.Time
