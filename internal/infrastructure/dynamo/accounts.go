package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/id"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AccountRepo provides typed DynamoDB operations for the accounts table.
// Lookup methods return (nil, nil) when no account matches, so callers can
// distinguish absence from infrastructure failure.
type AccountRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAccountRepo(client *dynamodb.Client, tableName string) *AccountRepo {
	return &AccountRepo{client: client, tableName: tableName}
}

// Create persists a new account, assigning its id and timestamps.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	created := *a
	created.ID = id.New()
	now := time.Now().UTC()
	created.CreatedAt = now
	created.UpdatedAt = now

	item, err := attributevalue.MarshalMap(created)
	if err != nil {
		return nil, fmt.Errorf("marshal account: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(account_id)"),
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update persists a replacement instance of an existing account.
func (r *AccountRepo) Update(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return nil, fmt.Errorf("marshal account: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AccountRepo) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("account_id", accountID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email-index"),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: email}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var a domain.Account
	if err := attributevalue.UnmarshalMap(out.Items[0], &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Exists reports whether an account with the given email is registered.
func (r *AccountRepo) Exists(ctx context.Context, email string) (bool, error) {
	a, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return a != nil, nil
}

// FindAll scans the whole table. Intended for admin/test use, not hot paths.
func (r *AccountRepo) FindAll(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []domain.Account
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		accounts = append(accounts, page...)
		if out.LastEvaluatedKey == nil {
			return accounts, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// DeleteAll removes every account. Test-support capability only.
func (r *AccountRepo) DeleteAll(ctx context.Context) error {
	accounts, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	// BatchWriteItem accepts at most 25 requests per call.
	const batchSize = 25
	for start := 0; start < len(accounts); start += batchSize {
		end := start + batchSize
		if end > len(accounts) {
			end = len(accounts)
		}
		var writes []types.WriteRequest
		for _, a := range accounts[start:end] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: strKey("account_id", a.ID)},
			})
		}
		_, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: writes},
		})
		if err != nil {
			return err
		}
	}
	return nil
}
