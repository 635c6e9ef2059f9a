package service

import "time"

// FadeInDuration is the length of the confirmation view's entry
// transition.
const FadeInDuration = 500 * time.Millisecond

// Route names a destination screen the shell navigates to.
type Route string

// RouteOverview returns the user to the account overview.
const RouteOverview Route = "overview"

// Confirmation is the terminal state of a successful transfer: the
// acknowledged facts handed over by the submission, nothing more.
type Confirmation struct {
	Amount    int64
	ToAccount string
	ToBank    string
}

// OpacityAt maps elapsed time since mount onto the entry transition's
// opacity, a linear ramp from 0 to 1 over FadeInDuration.
func (c *Confirmation) OpacityAt(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= FadeInDuration {
		return 1
	}
	return float64(elapsed) / float64(FadeInDuration)
}

// Acknowledge ends the transfer session and names where the shell goes
// next. Reachable exactly once per successful submission.
func (c *Confirmation) Acknowledge() Route {
	return RouteOverview
}
