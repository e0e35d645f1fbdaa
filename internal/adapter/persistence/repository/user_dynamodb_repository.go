package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserDynamoRepository persists user profiles in DynamoDB (PK id, the account id).
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	var it userItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// Upsert writes the profile and keeps the first created_at.
func (r *UserDynamoRepository) Upsert(ctx context.Context, u entities.User) (entities.User, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.tableName),
		Key:              stringKey(u.ID),
		UpdateExpression: aws.String("SET #name = :name, #email = :email, #role = :role, #created_at = if_not_exists(#created_at, :created_at)"),
		ExpressionAttributeNames: map[string]string{
			"#name":       "name",
			"#email":      "email",
			"#role":       "role",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: u.Name},
			":email":      &types.AttributeValueMemberS{Value: u.Email},
			":role":       &types.AttributeValueMemberS{Value: string(u.Role)},
			":created_at": &types.AttributeValueMemberS{Value: formatTime(createdAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.User{}, err
	}
	var it userItem
	if err := unmarshalItem(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) List(ctx context.Context) ([]entities.User, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.User, 0, len(raw))
	for _, m := range raw {
		var it userItem
		if err := unmarshalItem(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromUserItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i].Email) < strings.ToLower(out[j].Email) })
	return out, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Role:      entities.UserRole(it.Role),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
