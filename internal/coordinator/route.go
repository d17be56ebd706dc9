package coordinator

import (
	"errors"

	"gitrack/internal/nav"
)

var errInactive = errors.New("coordinator is not active")

// route maps a selected item to the leaf that shows it. Repository defaults
// to the one the parent screen was showing.
func route(item nav.Item, parent nav.Params) (nav.Kind, nav.Params, bool) {
	switch ref := item.(type) {
	case nav.IssueRef:
		return nav.KindIssueDetail, nav.Params{Repo: repoOr(ref.Repo, parent.Repo), Number: ref.Number}, true
	case nav.MilestoneRef:
		return nav.KindMilestoneDetail, nav.Params{Repo: repoOr(ref.Repo, parent.Repo), Milestone: ref.Number}, true
	case nav.UserRef:
		return nav.KindUserProfile, nav.Params{Repo: parent.Repo, Login: ref.Login}, true
	default:
		return nav.KindUnknown, nav.Params{}, false
	}
}

func repoOr(repo, fallback string) string {
	if repo != "" {
		return repo
	}
	return fallback
}

// presentationFor decides whether a leaf is pushed or presented.
func presentationFor(kind nav.Kind) nav.Presentation {
	if kind == nav.KindUserProfile {
		return nav.PresentModal
	}
	return nav.PresentPush
}

// signalFor maps confirmations that end or reshape the main flow to signals.
func signalFor(c nav.Confirmation) (Signal, bool) {
	switch c.Action {
	case nav.ActionSwitchTarget:
		return SignalSwitchTarget, true
	case nav.ActionTargetSelected:
		return SignalTargetChanged, true
	default:
		return 0, false
	}
}
