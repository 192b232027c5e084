package repository

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"colohub/internal/domain/entities"
	"colohub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSessionStateTableName = "session_state"
	defaultSessionStateKey       = "colohub:session-state"
)

// sessionStateItem is the single DynamoDB row mirroring the state tree. The
// whole tree is serialized into one JSON blob under one namespaced key, so
// the table behaves as an opaque key-value store.
type sessionStateItem struct {
	ID        string `dynamodbav:"id"`
	State     string `dynamodbav:"state"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SessionStateDynamoRepository persists the session state snapshot.
//
// Table requirements:
//   - PK: id (string)
//
// Exactly one item per configured state key is ever written; every Save
// overwrites it wholesale.
type SessionStateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	stateKey  string
}

var _ interfaces.ISessionStateRepository = (*SessionStateDynamoRepository)(nil)

func NewSessionStateDynamoRepository(ddb *dynamodb.Client) *SessionStateDynamoRepository {
	return &SessionStateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSION_STATE_TABLE", defaultSessionStateTableName),
		stateKey:  getenvDefault("SESSION_STATE_KEY", defaultSessionStateKey),
	}
}

func (r *SessionStateDynamoRepository) Load(ctx context.Context) (entities.SessionState, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: r.stateKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SessionState{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.SessionState{}, false, nil
	}

	var it sessionStateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SessionState{}, false, err
	}

	var state entities.SessionState
	if err := json.Unmarshal([]byte(it.State), &state); err != nil {
		return entities.SessionState{}, false, err
	}
	return state, true, nil
}

func (r *SessionStateDynamoRepository) Save(ctx context.Context, state entities.SessionState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}

	it := sessionStateItem{
		ID:        r.stateKey,
		State:     string(blob),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
