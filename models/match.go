package models

// Match records a confirmed mutual pairing. PairKey is the canonical sorted
// id pair, so the table's partition key doubles as the uniqueness constraint:
// at most one Match can ever exist for an unordered pair.
type Match struct {
	PairKey   string `dynamodbav:"pairKey" json:"pairKey"` // Partition Key, "a#b" with a < b
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserA     string `dynamodbav:"userA" json:"userA"`
	UserB     string `dynamodbav:"userB" json:"userB"`
	Status    string `dynamodbav:"status" json:"status"` // active, archived
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for confirmed matches
const MatchesTable = "Matches"
