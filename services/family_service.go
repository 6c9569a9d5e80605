package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// FamilyService manages family circles and the group consensus over shared
// candidates.
type FamilyService struct {
	Dynamo   *DynamoService
	Notifier Notifier
}

// ConsensusSummary is the aggregate view of one shared profile
type ConsensusSummary struct {
	Profile      models.SharedProfile `json:"profile"`
	ApproveCount int                  `json:"approveCount"`
	DeclineCount int                  `json:"declineCount"`
	DiscussCount int                  `json:"discussCount"`
	Votes        []models.FamilyVote  `json:"votes"`
}

// InviteMember records a pending invite into the sharer's family circle.
// Re-inviting an existing member is a no-op.
func (s *FamilyService) InviteMember(ctx context.Context, sharerID, memberID string) error {
	if sharerID == "" || memberID == "" {
		return NewValidationError("memberId", "sharer and member ids must not be empty")
	}
	if sharerID == memberID {
		return NewValidationError("memberId", "sharer cannot invite themselves")
	}

	member := models.FamilyMember{
		SharerID:  sharerID,
		MemberID:  memberID,
		Status:    models.MemberStatusPending,
		InvitedAt: time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.FamilyMembersTable, member, "sharerId")
	if err != nil {
		return fmt.Errorf("failed to save invite: %w", err)
	}
	if created {
		log.Printf("✉️ %s invited %s to their family circle", sharerID, memberID)
	}
	return nil
}

// AcceptInvite flips a pending membership to active
func (s *FamilyService) AcceptInvite(ctx context.Context, sharerID, memberID string) error {
	key := map[string]types.AttributeValue{
		"sharerId": &types.AttributeValueMemberS{Value: sharerID},
		"memberId": &types.AttributeValueMemberS{Value: memberID},
	}
	updateExpression := "SET #s = :active"
	expressionValues := map[string]types.AttributeValue{
		":active": &types.AttributeValueMemberS{Value: models.MemberStatusActive},
	}
	expressionNames := map[string]string{
		"#s": "status",
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.FamilyMembersTable, updateExpression, key, expressionValues, expressionNames, "attribute_exists(sharerId)")
	if err == ErrConditionFailed {
		return ErrNotFound
	}
	return err
}

// ListActiveMembers returns the active members of a sharer's circle
func (s *FamilyService) ListActiveMembers(ctx context.Context, sharerID string) ([]models.FamilyMember, error) {
	keyCondition := "sharerId = :sharer"
	expressionValues := map[string]types.AttributeValue{
		":sharer": &types.AttributeValueMemberS{Value: sharerID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.FamilyMembersTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch family members: %w", err)
	}

	var members []models.FamilyMember
	if err := attributevalue.UnmarshalListOfMaps(items, &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal family members: %w", err)
	}

	active := members[:0]
	for _, m := range members {
		if m.Status == models.MemberStatusActive {
			active = append(active, m)
		}
	}
	return active, nil
}

// ShareProfile puts a candidate in front of the sharer's family circle.
// requiredVotes is a policy parameter fixed at share time; it may exceed the
// number of active members, in which case a terminal status is simply
// unreachable until the circle grows.
func (s *FamilyService) ShareProfile(ctx context.Context, sharerID, candidateID string, requiredVotes int) (*models.SharedProfile, error) {
	if sharerID == "" || candidateID == "" {
		return nil, NewValidationError("candidateId", "sharer and candidate ids must not be empty")
	}
	if requiredVotes < 1 {
		return nil, NewValidationError("requiredVotes", "must be at least 1")
	}

	profile := models.SharedProfile{
		SharedProfileID: uuid.NewString(),
		CandidateID:     candidateID,
		SharerID:        sharerID,
		RequiredVotes:   requiredVotes,
		Status:          models.ConsensusPending,
		SharedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.SharedProfilesTable, profile); err != nil {
		return nil, fmt.Errorf("failed to share profile: %w", err)
	}

	log.Printf("👨‍👩‍👧 %s shared candidate %s (quorum %d)", sharerID, candidateID, requiredVotes)
	return &profile, nil
}

// GetSharedProfile fetches one shared profile, or ErrNotFound
func (s *FamilyService) GetSharedProfile(ctx context.Context, sharedProfileID string) (*models.SharedProfile, error) {
	key := map[string]types.AttributeValue{
		"sharedProfileId": &types.AttributeValueMemberS{Value: sharedProfileID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.SharedProfilesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shared profile: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var profile models.SharedProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shared profile: %w", err)
	}
	return &profile, nil
}

// CastVote upserts one member's vote and recomputes the consensus status
// from the full vote set. Resubmission overwrites the member's previous
// vote. Votes on a terminal profile are still recorded for history but the
// status no longer moves.
func (s *FamilyService) CastVote(ctx context.Context, sharedProfileID, memberID, vote, comment string) (*models.SharedProfile, error) {
	switch vote {
	case models.VoteApprove, models.VoteDecline, models.VoteDiscuss:
	default:
		return nil, NewValidationError("vote", fmt.Sprintf("must be %q, %q, or %q", models.VoteApprove, models.VoteDecline, models.VoteDiscuss))
	}

	profile, err := s.GetSharedProfile(ctx, sharedProfileID)
	if err != nil {
		return nil, err
	}

	isMember, err := s.isActiveMember(ctx, profile.SharerID, memberID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, NewValidationError("memberId", fmt.Sprintf("%s is not an active member of %s's family circle", memberID, profile.SharerID))
	}

	familyVote := models.FamilyVote{
		SharedProfileID: sharedProfileID,
		MemberID:        memberID,
		Vote:            vote,
		Comment:         comment,
		VotedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.FamilyVotesTable, familyVote); err != nil {
		return nil, fmt.Errorf("failed to save vote: %w", err)
	}
	log.Printf("🗳️ %s voted %s on shared profile %s", memberID, vote, sharedProfileID)

	updated, err := s.recomputeStatus(ctx, profile)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.VoteCast(*updated, familyVote)
	}
	return updated, nil
}

// ListVotes returns every vote cast on a shared profile
func (s *FamilyService) ListVotes(ctx context.Context, sharedProfileID string) ([]models.FamilyVote, error) {
	keyCondition := "sharedProfileId = :sid"
	expressionValues := map[string]types.AttributeValue{
		":sid": &types.AttributeValueMemberS{Value: sharedProfileID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.FamilyVotesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}

	var votes []models.FamilyVote
	if err := attributevalue.UnmarshalListOfMaps(items, &votes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal votes: %w", err)
	}
	return votes, nil
}

// GetConsensus returns the shared profile with its tallies
func (s *FamilyService) GetConsensus(ctx context.Context, sharedProfileID string) (*ConsensusSummary, error) {
	profile, err := s.GetSharedProfile(ctx, sharedProfileID)
	if err != nil {
		return nil, err
	}
	votes, err := s.ListVotes(ctx, sharedProfileID)
	if err != nil {
		return nil, err
	}

	approve, decline, discuss := TallyVotes(votes)
	return &ConsensusSummary{
		Profile:      *profile,
		ApproveCount: approve,
		DeclineCount: decline,
		DiscussCount: discuss,
		Votes:        votes,
	}, nil
}

// RecordView bumps the informational view counter. It never participates in
// the status computation.
func (s *FamilyService) RecordView(ctx context.Context, sharedProfileID string) error {
	key := map[string]types.AttributeValue{
		"sharedProfileId": &types.AttributeValueMemberS{Value: sharedProfileID},
	}
	updateExpression := "ADD viewCount :inc"
	expressionValues := map[string]types.AttributeValue{
		":inc": &types.AttributeValueMemberN{Value: "1"},
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.SharedProfilesTable, updateExpression, key, expressionValues, nil, "attribute_exists(sharedProfileId)")
	if err == ErrConditionFailed {
		return ErrNotFound
	}
	return err
}

// TallyVotes counts distinct voters per vote value. The vote table holds one
// row per member, but the counts are still deduplicated by member id so a
// caller passing a raw slice cannot double-count.
func TallyVotes(votes []models.FamilyVote) (approve, decline, discuss int) {
	seen := make(map[string]string, len(votes))
	for _, v := range votes {
		seen[v.MemberID] = v.Vote
	}
	for _, vote := range seen {
		switch vote {
		case models.VoteApprove:
			approve++
		case models.VoteDecline:
			decline++
		case models.VoteDiscuss:
			discuss++
		}
	}
	return approve, decline, discuss
}

// DeriveConsensusStatus computes the status a shared profile should carry
// given its quorum and the full current vote set. Approve and decline use
// the same quorum rule; any vote moves a pending profile to discussing.
func DeriveConsensusStatus(requiredVotes int, votes []models.FamilyVote) string {
	approve, decline, _ := TallyVotes(votes)
	switch {
	case approve >= requiredVotes:
		return models.ConsensusApproved
	case decline >= requiredVotes:
		return models.ConsensusDeclined
	case len(votes) > 0:
		return models.ConsensusDiscussing
	default:
		return models.ConsensusPending
	}
}

// recomputeStatus re-aggregates the full vote set and writes the derived
// status. It never applies a delta to a cached count. Terminal statuses are
// sticky: the write is conditioned on the stored status still being
// non-terminal, and a lost condition leaves the previous consistent status
// in place.
func (s *FamilyService) recomputeStatus(ctx context.Context, profile *models.SharedProfile) (*models.SharedProfile, error) {
	votes, err := s.ListVotes(ctx, profile.SharedProfileID)
	if err != nil {
		return nil, err
	}

	newStatus := DeriveConsensusStatus(profile.RequiredVotes, votes)

	if profile.Status == models.ConsensusApproved || profile.Status == models.ConsensusDeclined {
		return profile, nil
	}
	if newStatus == profile.Status {
		return profile, nil
	}

	key := map[string]types.AttributeValue{
		"sharedProfileId": &types.AttributeValueMemberS{Value: profile.SharedProfileID},
	}
	updateExpression := "SET #s = :status"
	expressionValues := map[string]types.AttributeValue{
		":status":   &types.AttributeValueMemberS{Value: newStatus},
		":approved": &types.AttributeValueMemberS{Value: models.ConsensusApproved},
		":declined": &types.AttributeValueMemberS{Value: models.ConsensusDeclined},
	}
	expressionNames := map[string]string{
		"#s": "status",
	}
	condition := "attribute_exists(sharedProfileId) AND #s <> :approved AND #s <> :declined"

	_, err = s.Dynamo.UpdateItem(ctx, models.SharedProfilesTable, updateExpression, key, expressionValues, expressionNames, condition)
	if err == ErrConditionFailed {
		// Another voter reached a terminal status first, or the profile went
		// away mid-recompute. Either way the stored status stays as is.
		current, err := s.GetSharedProfile(ctx, profile.SharedProfileID)
		if err == ErrNotFound {
			return profile, nil
		}
		return current, err
	}
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Shared profile %s moved to %s", profile.SharedProfileID, newStatus)
	updated := *profile
	updated.Status = newStatus
	return &updated, nil
}

// isActiveMember checks whether memberID is an active member of sharerID's circle
func (s *FamilyService) isActiveMember(ctx context.Context, sharerID, memberID string) (bool, error) {
	members, err := s.ListActiveMembers(ctx, sharerID)
	if err != nil {
		return false, err
	}
	for _, m := range members {
		if m.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}
