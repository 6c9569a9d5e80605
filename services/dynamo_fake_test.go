package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamoClient is an in-memory DynamoDBAPI implementation covering the
// expression shapes the services emit: keyed puts/gets/deletes, conditional
// puts, single-partition queries, full scans, and SET/ADD updates with
// attribute_exists / equality / inequality conditions.
type fakeDynamoClient struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

// tableKeys maps each table to its key attribute names in key order
var tableKeys = map[string][]string{
	models.QuestionsTable:      {"questionId"},
	models.AnswersTable:        {"userId", "questionId"},
	models.LikesTable:          {"likerId", "likedId"},
	models.MatchesTable:        {"pairKey"},
	models.SharedProfilesTable: {"sharedProfileId"},
	models.FamilyMembersTable:  {"sharerId", "memberId"},
	models.FamilyVotesTable:    {"sharedProfileId", "memberId"},
	models.UserProfilesTable:   {"userId"},
}

func newFakeDynamo() *DynamoService {
	return &DynamoService{Client: &fakeDynamoClient{
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if attr, ok := item[name]; ok {
		if v, ok := attr.(*types.AttributeValueMemberS); ok {
			return v.Value
		}
	}
	return ""
}

func (f *fakeDynamoClient) itemKey(table string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range tableKeys[table] {
		parts = append(parts, stringAttr(item, attr))
	}
	return strings.Join(parts, "|")
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	dup := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}

// resolvePlaceholder turns "#name" into the real attribute name
func resolvePlaceholder(token string, names map[string]string) string {
	if strings.HasPrefix(token, "#") {
		if real, ok := names[token]; ok {
			return real
		}
	}
	return token
}

// checkCondition evaluates the condition shapes used by the services:
// clauses joined by AND, each one of attribute_exists(a),
// attribute_not_exists(a), a = :v, or a <> :v. A nil item only satisfies
// attribute_not_exists clauses.
func checkCondition(
	condition string,
	item map[string]types.AttributeValue,
	values map[string]types.AttributeValue,
	names map[string]string,
) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return true
	}
	for _, clause := range strings.Split(condition, " AND ") {
		clause = strings.TrimSpace(strings.Trim(strings.TrimSpace(clause), "()"))
		switch {
		case strings.HasPrefix(clause, "attribute_not_exists"):
			if item != nil {
				return false
			}
		case strings.HasPrefix(clause, "attribute_exists"):
			if item == nil {
				return false
			}
		case strings.Contains(clause, "<>"):
			parts := strings.SplitN(clause, "<>", 2)
			attr := resolvePlaceholder(strings.TrimSpace(parts[0]), names)
			want, _ := values[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS)
			if item == nil || want == nil {
				return false
			}
			if stringAttr(item, attr) == want.Value {
				return false
			}
		case strings.Contains(clause, "="):
			parts := strings.SplitN(clause, "=", 2)
			attr := resolvePlaceholder(strings.TrimSpace(parts[0]), names)
			want, _ := values[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS)
			if item == nil || want == nil {
				return false
			}
			if stringAttr(item, attr) != want.Value {
				return false
			}
		}
	}
	return true
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	key := f.itemKey(table, params.Item)

	if params.ConditionExpression != nil {
		existing := f.tables[table][key]
		if !checkCondition(*params.ConditionExpression, existing, params.ExpressionAttributeValues, params.ExpressionAttributeNames) {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}

	f.tables[table][key] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	item := f.tables[table][f.itemKey(table, params.Key)]
	if item == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	delete(f.tables[table], f.itemKey(table, params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName

	// Parse "attr = :placeholder" clauses joined by AND
	type clause struct{ attr, value string }
	var clauses []clause
	for _, part := range strings.Split(*params.KeyConditionExpression, " AND ") {
		sides := strings.SplitN(part, "=", 2)
		if len(sides) != 2 {
			continue
		}
		attr := resolvePlaceholder(strings.TrimSpace(sides[0]), params.ExpressionAttributeNames)
		placeholder := strings.TrimSpace(sides[1])
		if v, ok := params.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS); ok {
			clauses = append(clauses, clause{attr: attr, value: v.Value})
		}
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[table] {
		match := true
		for _, c := range clauses {
			if stringAttr(item, c.attr) != c.value {
				match = false
				break
			}
		}
		if match {
			items = append(items, copyItem(item))
		}
	}

	if params.Limit != nil && int32(len(items)) > *params.Limit {
		items = items[:*params.Limit]
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	var items []map[string]types.AttributeValue
	for _, item := range f.tables[table] {
		items = append(items, copyItem(item))
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *params.TableName
	if f.tables[table] == nil {
		f.tables[table] = make(map[string]map[string]types.AttributeValue)
	}
	key := f.itemKey(table, params.Key)
	existing := f.tables[table][key]

	if params.ConditionExpression != nil {
		if !checkCondition(*params.ConditionExpression, existing, params.ExpressionAttributeValues, params.ExpressionAttributeNames) {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}

	item := existing
	if item == nil {
		item = copyItem(params.Key)
	} else {
		item = copyItem(item)
	}

	expr := strings.TrimSpace(*params.UpdateExpression)
	switch {
	case strings.HasPrefix(expr, "SET "):
		for _, assignment := range strings.Split(strings.TrimPrefix(expr, "SET "), ",") {
			sides := strings.SplitN(assignment, "=", 2)
			if len(sides) != 2 {
				continue
			}
			attr := resolvePlaceholder(strings.TrimSpace(sides[0]), params.ExpressionAttributeNames)
			item[attr] = params.ExpressionAttributeValues[strings.TrimSpace(sides[1])]
		}
	case strings.HasPrefix(expr, "ADD "):
		fields := strings.Fields(strings.TrimPrefix(expr, "ADD "))
		attr := resolvePlaceholder(fields[0], params.ExpressionAttributeNames)
		delta := 0
		if v, ok := params.ExpressionAttributeValues[fields[1]].(*types.AttributeValueMemberN); ok {
			delta, _ = strconv.Atoi(v.Value)
		}
		current := 0
		if v, ok := item[attr].(*types.AttributeValueMemberN); ok {
			current, _ = strconv.Atoi(v.Value)
		}
		item[attr] = &types.AttributeValueMemberN{Value: strconv.Itoa(current + delta)}
	}

	f.tables[table][key] = item
	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}
