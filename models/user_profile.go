package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID      string   `dynamodbav:"userId" json:"userId"` // ✅ Partition Key
	DisplayName string   `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Bio         string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Gender      string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`
	Interests   []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	Active      bool     `dynamodbav:"active" json:"active"`
	ActivatedAt string   `dynamodbav:"activatedAt,omitempty" json:"activatedAt,omitempty"` // RFC3339, set when the profile goes active
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
