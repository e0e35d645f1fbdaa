package repository

import (
	"context"
	"sort"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type vehicleItem struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	VehicleType string `json:"vehicle_type"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}

// VehicleDynamoRepository persists vehicles in DynamoDB (PK id).
type VehicleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	av, err := marshalItem(toVehicleItem(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}
	var it vehicleItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	it := toVehicleItem(v)
	str := func(s string) types.AttributeValue { return &types.AttributeValueMemberS{Value: s} }
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey(v.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #plate = :plate, #brand = :brand, #model = :model, " +
			"#year = :year, #vehicle_type = :vehicle_type, #active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#plate":        "plate",
			"#brand":        "brand",
			"#model":        "model",
			"#year":         "year",
			"#vehicle_type": "vehicle_type",
			"#active":       "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":plate":        str(it.Plate),
			":brand":        str(it.Brand),
			":model":        str(it.Model),
			":year":         str(it.Year),
			":vehicle_type": str(it.VehicleType),
			":active":       &types.AttributeValueMemberBOOL{Value: it.Active},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Vehicle{}, nil
		}
		return entities.Vehicle{}, err
	}
	var stored vehicleItem
	if err := unmarshalItem(out.Attributes, &stored); err != nil {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(stored), nil
}

func (r *VehicleDynamoRepository) List(ctx context.Context, onlyActive bool) ([]entities.Vehicle, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if onlyActive {
		in.FilterExpression = aws.String("#active = :active")
		in.ExpressionAttributeNames = map[string]string{"#active": "active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":active": &types.AttributeValueMemberBOOL{Value: true}}
	}
	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(raw))
	for _, m := range raw {
		var it vehicleItem
		if err := unmarshalItem(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromVehicleItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:          v.ID,
		Plate:       v.Plate,
		Brand:       v.Brand,
		Model:       v.Model,
		Year:        v.Year,
		VehicleType: v.VehicleType,
		Active:      v.Active,
		CreatedAt:   formatTime(v.CreatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:          it.ID,
		Plate:       it.Plate,
		Brand:       it.Brand,
		Model:       it.Model,
		Year:        it.Year,
		VehicleType: it.VehicleType,
		Active:      it.Active,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
