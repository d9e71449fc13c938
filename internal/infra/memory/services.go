package memory

import "context"

// AdStub stands in for the platform ad SDK. Availability is fixed at
// construction; ShowAd fires the dismissal callback immediately since
// there is no real interstitial to wait on.
type AdStub struct {
	Available bool
}

func (a *AdStub) LoadAd(context.Context) {}

func (a *AdStub) CanShowAd() bool { return a.Available }

func (a *AdStub) ShowAd(onDismissed func()) {
	if onDismissed != nil {
		onDismissed()
	}
}

// StaticEntitlements grants or denies the ad-free entitlement to every
// player uniformly.
type StaticEntitlements struct {
	Active bool
}

func (e *StaticEntitlements) HasActiveEntitlement(context.Context, string) bool {
	return e.Active
}

// NopLeaderboard drops submissions. Used when no Redis is configured.
type NopLeaderboard struct{}

func (NopLeaderboard) SubmitScore(context.Context, string, string, int) {}
