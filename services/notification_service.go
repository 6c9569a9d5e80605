package services

import (
	"log"

	"kindred_server/models"
)

// Notifier delivers fire-and-forget events to the notification collaborator.
// Delivery failures are the notifier's problem; callers never roll back a
// write because a notification did not go out.
type Notifier interface {
	MatchCreated(match models.Match)
	VoteCast(profile models.SharedProfile, vote models.FamilyVote)
}

// LogNotifier is the fallback Notifier used when no socket hub is attached
type LogNotifier struct{}

func (LogNotifier) MatchCreated(match models.Match) {
	log.Printf("🎉 Match created: %s ❤️ %s (matchId=%s)", match.UserA, match.UserB, match.MatchID)
}

func (LogNotifier) VoteCast(profile models.SharedProfile, vote models.FamilyVote) {
	log.Printf("🗳️ Vote cast on shared profile %s by %s: %s", profile.SharedProfileID, vote.MemberID, vote.Vote)
}
