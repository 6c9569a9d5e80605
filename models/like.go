package models

// LikeEvent is a directed "like" edge. At most one per ordered pair;
// inserts are conditional on the edge being absent, never updated or deleted.
type LikeEvent struct {
	LikerID   string `dynamodbav:"likerId" json:"likerId"` // Partition Key
	LikedID   string `dynamodbav:"likedId" json:"likedId"` // Sort Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// LikesTable is the DynamoDB table name for like edges
const LikesTable = "Likes"
