package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindred_server/models"
	"kindred_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// InteractionService records like edges and maintains the match registry
type InteractionService struct {
	Dynamo   *DynamoService
	Notifier Notifier
}

// LikeResult reports the outcome of a like call
type LikeResult struct {
	Matched bool   `json:"matched"`
	MatchID string `json:"matchId,omitempty"`
}

// Like records a directed like edge and, when the reciprocal edge exists,
// ensures exactly one Match for the unordered pair. Both writes are
// conditional puts, so repeated calls and racing reciprocal calls are
// no-ops rather than errors, and the pair key constraint guarantees a
// single Match regardless of completion order.
func (s *InteractionService) Like(ctx context.Context, likerID, likedID string) (*LikeResult, error) {
	if likerID == "" || likedID == "" {
		return nil, NewValidationError("userId", "liker and liked ids must not be empty")
	}
	if likerID == likedID {
		return nil, NewValidationError("likedId", "users cannot like themselves")
	}

	edge := models.LikeEvent{
		LikerID:   likerID,
		LikedID:   likedID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.LikesTable, edge, "likerId")
	if err != nil {
		return nil, fmt.Errorf("failed to save like: %w", err)
	}
	if created {
		log.Printf("💖 %s liked %s", likerID, likedID)
	}

	// The reciprocal check runs even for repeat likes so a match missed to a
	// transient failure is healed on retry.
	reciprocal, err := s.HasLiked(ctx, likedID, likerID)
	if err != nil {
		return nil, err
	}
	if !reciprocal {
		return &LikeResult{Matched: false}, nil
	}

	match, created, err := s.ensureMatch(ctx, likerID, likedID)
	if err != nil {
		return nil, err
	}
	if created && s.Notifier != nil {
		// Fire-and-forget: the Notifier cannot fail the like, it has no
		// error to return.
		s.Notifier.MatchCreated(*match)
	}

	return &LikeResult{Matched: true, MatchID: match.MatchID}, nil
}

// HasLiked reports whether the directed edge likerID -> likedID exists
func (s *InteractionService) HasLiked(ctx context.Context, likerID, likedID string) (bool, error) {
	key := map[string]types.AttributeValue{
		"likerId": &types.AttributeValueMemberS{Value: likerID},
		"likedId": &types.AttributeValueMemberS{Value: likedID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.LikesTable, key)
	if err != nil {
		return false, fmt.Errorf("failed to check like edge: %w", err)
	}
	return item != nil, nil
}

// GetLikedUserIDs returns the set of users likerID has liked. Discovery uses
// this as its exclusion-set source.
func (s *InteractionService) GetLikedUserIDs(ctx context.Context, likerID string) (map[string]struct{}, error) {
	keyCondition := "likerId = :liker"
	expressionValues := map[string]types.AttributeValue{
		":liker": &types.AttributeValueMemberS{Value: likerID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.LikesTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes for %s: %w", likerID, err)
	}

	liked := make(map[string]struct{}, len(items))
	for _, item := range items {
		var edge models.LikeEvent
		if err := attributevalue.UnmarshalMap(item, &edge); err != nil {
			log.Printf("❌ Error unmarshalling like edge: %v", err)
			continue
		}
		liked[edge.LikedID] = struct{}{}
	}
	return liked, nil
}

// GetMatch returns the Match for an unordered pair, or ErrNotFound
func (s *InteractionService) GetMatch(ctx context.Context, userA, userB string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: utils.PairKey(userA, userB)},
	}
	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

// GetMatchesForUser returns all matches a user participates in
func (s *InteractionService) GetMatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	err := s.Dynamo.ScanWithFilter(ctx, models.MatchesTable, func(item map[string]types.AttributeValue) bool {
		return attributeEquals(item, "userA", userID) || attributeEquals(item, "userB", userID)
	}, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches for %s: %w", userID, err)
	}
	return matches, nil
}

// ensureMatch creates the Match for the pair if it does not exist yet.
// The pair key is canonical (sorted ids), so two racing creators resolve to
// a single row; the loser of the conditional put re-reads the winner's row.
func (s *InteractionService) ensureMatch(ctx context.Context, userA, userB string) (*models.Match, bool, error) {
	a, b := utils.SortPair(userA, userB)
	match := models.Match{
		PairKey:   utils.PairKey(userA, userB),
		MatchID:   uuid.NewString(),
		UserA:     a,
		UserB:     b,
		Status:    models.MatchStatusActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "pairKey")
	if err != nil {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}
	if created {
		log.Printf("🎉 Match created: %s ❤️ %s", a, b)
		return &match, true, nil
	}

	existing, err := s.GetMatch(ctx, userA, userB)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func attributeEquals(item map[string]types.AttributeValue, field, value string) bool {
	if attr, ok := item[field]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value == value
		}
	}
	return false
}
