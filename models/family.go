package models

// SharedProfile is a candidate a user has shared with their family circle
// for a group decision. RequiredVotes is a policy parameter fixed at share
// time; it is not derived from the member count.
type SharedProfile struct {
	SharedProfileID string `dynamodbav:"sharedProfileId" json:"sharedProfileId"` // Partition Key
	CandidateID     string `dynamodbav:"candidateId" json:"candidateId"`
	SharerID        string `dynamodbav:"sharerId" json:"sharerId"`
	RequiredVotes   int    `dynamodbav:"requiredVotes" json:"requiredVotes"`
	Status          string `dynamodbav:"status" json:"status"` // pending, discussing, approved, declined
	ViewCount       int    `dynamodbav:"viewCount" json:"viewCount"`
	SharedAt        string `dynamodbav:"sharedAt" json:"sharedAt"`
}

// FamilyMember links a sharer to an invited member of their circle
type FamilyMember struct {
	SharerID  string `dynamodbav:"sharerId" json:"sharerId"` // Partition Key
	MemberID  string `dynamodbav:"memberId" json:"memberId"` // Sort Key
	Status    string `dynamodbav:"status" json:"status"`     // pending, active
	InvitedAt string `dynamodbav:"invitedAt" json:"invitedAt"`
}

// FamilyVote is one member's vote on a shared candidate.
// Unique per (sharedProfileId, memberId); resubmission overwrites.
type FamilyVote struct {
	SharedProfileID string `dynamodbav:"sharedProfileId" json:"sharedProfileId"` // Partition Key
	MemberID        string `dynamodbav:"memberId" json:"memberId"`               // Sort Key
	Vote            string `dynamodbav:"vote" json:"vote"` // approve, decline, discuss
	Comment         string `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	VotedAt         string `dynamodbav:"votedAt" json:"votedAt"`
}

// Table names for the family consensus feature
const (
	SharedProfilesTable = "SharedProfiles"
	FamilyMembersTable  = "FamilyMembers"
	FamilyVotesTable    = "FamilyVotes"
)
