package models

// ✅ Vote values a family member may cast
const (
	VoteApprove = "approve"
	VoteDecline = "decline"
	VoteDiscuss = "discuss"
)

// ✅ Consensus statuses (approved and declined are terminal)
const (
	ConsensusPending    = "pending"
	ConsensusDiscussing = "discussing"
	ConsensusApproved   = "approved"
	ConsensusDeclined   = "declined"
)

// ✅ Family member statuses
const (
	MemberStatusPending = "pending"
	MemberStatusActive  = "active"
)

// ✅ Match statuses
const (
	MatchStatusActive   = "active"
	MatchStatusArchived = "archived"
)
