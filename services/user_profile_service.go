package services

import (
	"context"
	"fmt"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile adds a new user profile. Profiles start active; the
// activation timestamp drives discovery ordering.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.UserID == "" {
		return nil, NewValidationError("userId", "must not be empty")
	}

	profile.Active = true
	if profile.ActivatedAt == "" {
		profile.ActivatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListActiveProfiles returns every active profile whose id is not in the
// excluding set
func (ups *UserProfileService) ListActiveProfiles(ctx context.Context, excluding map[string]struct{}) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		if active, ok := item["active"]; ok {
			if v, ok := active.(*types.AttributeValueMemberBOOL); !ok || !v.Value {
				return false
			}
		} else {
			return false
		}
		if id, ok := item["userId"]; ok {
			if v, ok := id.(*types.AttributeValueMemberS); ok {
				if _, excluded := excluding[v.Value]; excluded {
					return false
				}
			}
		}
		return true
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active profiles: %w", err)
	}
	return profiles, nil
}

// DeactivateUserProfile marks a profile inactive so discovery stops
// returning it. The profile row itself is kept.
func (ups *UserProfileService) DeactivateUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	updateExpression := "SET #a = :inactive"
	expressionValues := map[string]types.AttributeValue{
		":inactive": &types.AttributeValueMemberBOOL{Value: false},
	}
	expressionNames := map[string]string{
		"#a": "active",
	}

	_, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key, expressionValues, expressionNames, "")
	return err
}
