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
	"github.com/google/uuid"
)

type supplierItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CNPJ          string `json:"cnpj"`
	CorporateName string `json:"corporate_name"`
	TradeName     string `json:"trade_name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactName   string `json:"contact_name"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
}

// SupplierDynamoRepository persists suppliers in DynamoDB (PK id).
// The supplier list is small, so CNPJ lookups scan instead of using an index.
type SupplierDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb DynamoAPI, tableName string) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SupplierDynamoRepository) Create(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	av, err := marshalItem(toSupplierItem(s))
	if err != nil {
		return entities.Supplier{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	return s, nil
}

func (r *SupplierDynamoRepository) GetByID(ctx context.Context, id string) (entities.Supplier, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	if len(out.Item) == 0 {
		return entities.Supplier{}, nil
	}
	var it supplierItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(it), nil
}

func (r *SupplierDynamoRepository) GetByCNPJ(ctx context.Context, cnpj string) (entities.Supplier, error) {
	items, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String("#cnpj = :cnpj"),
		ExpressionAttributeNames:  map[string]string{"#cnpj": "cnpj"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":cnpj": &types.AttributeValueMemberS{Value: cnpj}},
	})
	if err != nil || len(items) == 0 {
		return entities.Supplier{}, err
	}
	return items[0], nil
}

// Update replaces every attribute except created_at.
func (r *SupplierDynamoRepository) Update(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	it := toSupplierItem(s)
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	var sets []string
	for attr, v := range map[string]string{
		"name":           it.Name,
		"cnpj":           it.CNPJ,
		"corporate_name": it.CorporateName,
		"trade_name":     it.TradeName,
		"address":        it.Address,
		"phone":          it.Phone,
		"email":          it.Email,
		"contact_name":   it.ContactName,
		"notes":          it.Notes,
	} {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: v}
	}
	sort.Strings(sets)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey(s.ID),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Supplier{}, nil
		}
		return entities.Supplier{}, err
	}
	var stored supplierItem
	if err := unmarshalItem(out.Attributes, &stored); err != nil {
		return entities.Supplier{}, err
	}
	return fromSupplierItem(stored), nil
}

func (r *SupplierDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	return err
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	out, err := r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out, nil
}

func (r *SupplierDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Supplier, error) {
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(raw))
	for _, m := range raw {
		var it supplierItem
		if err := unmarshalItem(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromSupplierItem(it))
	}
	return out, nil
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:            s.ID,
		Name:          s.Name,
		CNPJ:          s.CNPJ,
		CorporateName: s.CorporateName,
		TradeName:     s.TradeName,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		ContactName:   s.ContactName,
		Notes:         s.Notes,
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:            it.ID,
		Name:          it.Name,
		CNPJ:          it.CNPJ,
		CorporateName: it.CorporateName,
		TradeName:     it.TradeName,
		Address:       it.Address,
		Phone:         it.Phone,
		Email:         it.Email,
		ContactName:   it.ContactName,
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
