package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const checklistSeqCounter = "checklists"

type checklistItem struct {
	ID                string                      `json:"id"`
	Seq               int64                       `json:"seq,omitempty"`
	Status            string                      `json:"status"`
	CreatedBy         string                      `json:"created_by"`
	VehicleID         *string                     `json:"vehicle_id,omitempty"`
	SupplierID        *string                     `json:"supplier_id,omitempty"`
	Notes             string                      `json:"notes"`
	Items             *entities.Items             `json:"items,omitempty"`
	Media             []entities.MediaItem        `json:"media"`
	BudgetAttachments []entities.BudgetAttachment `json:"budgetAttachments"`
	FuelGaugePhotos   entities.FuelGaugePhotos    `json:"fuelGaugePhotos"`
	IsLocked          bool                        `json:"is_locked"`
	CreatedAt         string                      `json:"created_at"`
	UpdatedAt         string                      `json:"updated_at"`
}

// ChecklistDynamoRepository persists checklists in DynamoDB.
//
// Table requirements:
//   - checklists: PK id (string)
//   - counters:   PK name (string), numeric attribute value
//
// Writes that touch media, budget attachments or fuel photos carry a condition
// on is_locked and status, so a read-only document cannot gain attachments
// even when a stale client tries.
type ChecklistDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	countersTable string
	now           func() time.Time
}

var _ interfaces.IChecklistRepository = (*ChecklistDynamoRepository)(nil)

func NewChecklistDynamoRepository(ddb DynamoAPI, tableName, countersTable string) *ChecklistDynamoRepository {
	return &ChecklistDynamoRepository{
		ddb:           ddb,
		tableName:     tableName,
		countersTable: countersTable,
		now:           time.Now,
	}
}

func (r *ChecklistDynamoRepository) Get(ctx context.Context, id string) (entities.Checklist, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checklist{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checklist{}, nil
	}
	return decodeChecklist(out.Item)
}

func (r *ChecklistDynamoRepository) Insert(ctx context.Context, c entities.Checklist) (entities.Checklist, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	seq, err := r.nextSeq(ctx)
	if err != nil {
		return entities.Checklist{}, fmt.Errorf("allocate seq: %w", err)
	}
	c.Seq = &seq
	now := r.now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	av, err := marshalItem(toChecklistItem(c))
	if err != nil {
		return entities.Checklist{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if _, ok := conditionFailed(err); ok {
			return entities.Checklist{}, nil
		}
		return entities.Checklist{}, err
	}
	return c.Clone(), nil
}

// nextSeq increments the checklist counter atomically.
func (r *ChecklistDynamoRepository) nextSeq(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: checklistSeqCounter},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s has no numeric value", checklistSeqCounter)
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *ChecklistDynamoRepository) Update(ctx context.Context, id string, patch entities.ChecklistPatch) (entities.Checklist, error) {
	expr, err := buildChecklistUpdate(patch, formatTime(r.now()))
	if err != nil {
		return entities.Checklist{}, err
	}
	cond := "attribute_exists(#id)"
	if patch.TouchesAttachments() {
		cond += " AND " + writableCondition
		expr.addWritableValues()
	}
	return r.conditionalUpdate(ctx, id, expr, cond, func(entities.Checklist) error {
		return interfaces.ErrChecklistLocked
	})
}

func (r *ChecklistDynamoRepository) Finalize(ctx context.Context, id string, patch entities.ChecklistPatch, expectedUpdatedAt time.Time) (entities.Checklist, error) {
	status := entities.ChecklistStatusFinalizado
	locked := true
	patch.Status = &status
	patch.IsLocked = &locked

	expr, err := buildChecklistUpdate(patch, formatTime(r.now()))
	if err != nil {
		return entities.Checklist{}, err
	}
	expr.addWritableValues()
	cond := "attribute_exists(#id) AND " + writableCondition
	if !expectedUpdatedAt.IsZero() {
		cond += " AND #updated_at = :expected_updated_at"
		expr.values[":expected_updated_at"] = &types.AttributeValueMemberS{Value: formatTime(expectedUpdatedAt)}
	}
	return r.conditionalUpdate(ctx, id, expr, cond, func(old entities.Checklist) error {
		if old.IsReadOnly() {
			return interfaces.ErrChecklistLocked
		}
		return interfaces.ErrChecklistModified
	})
}

// conditionalUpdate runs the update and classifies a failed condition: a
// missing document is the repository not-found convention, anything else is
// resolved by onConflict from the stored document.
func (r *ChecklistDynamoRepository) conditionalUpdate(
	ctx context.Context,
	id string,
	expr updateExpr,
	cond string,
	onConflict func(old entities.Checklist) error,
) (entities.Checklist, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 stringKey(id),
		ConditionExpression:                 aws.String(cond),
		UpdateExpression:                    aws.String(expr.String()),
		ExpressionAttributeValues:           expr.values,
		ExpressionAttributeNames:            mergeNames(expr.names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		old, ok := conditionFailed(err)
		if !ok {
			return entities.Checklist{}, err
		}
		if len(old) == 0 {
			return entities.Checklist{}, nil
		}
		stored, derr := decodeChecklist(old)
		if derr != nil {
			return entities.Checklist{}, derr
		}
		log.Printf("[storage][dynamodb] conditional write refused id=%s status=%s locked=%t", id, stored.Status, stored.IsLocked)
		return entities.Checklist{}, onConflict(stored)
	}
	if len(out.Attributes) == 0 {
		return entities.Checklist{}, nil
	}
	return decodeChecklist(out.Attributes)
}

func (r *ChecklistDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       stringKey(id),
	})
	return err
}

// List scans with status and created_at filters; results are newest first.
func (r *ChecklistDynamoRepository) List(ctx context.Context, filter entities.ChecklistFilter) ([]entities.Checklist, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.From != nil {
		conds = append(conds, "#created_at >= :from")
		names["#created_at"] = "created_at"
		values[":from"] = &types.AttributeValueMemberS{Value: formatTime(*filter.From)}
	}
	if filter.To != nil {
		conds = append(conds, "#created_at <= :to")
		names["#created_at"] = "created_at"
		values[":to"] = &types.AttributeValueMemberS{Value: formatTime(*filter.To)}
	}
	if len(conds) > 0 {
		in.FilterExpression = aws.String(strings.Join(conds, " AND "))
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Checklist, 0, len(raw))
	for _, it := range raw {
		c, err := decodeChecklist(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

const writableCondition = "#is_locked = :false AND #status <> :finalizado"

type updateExpr struct {
	sets   []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func (e updateExpr) String() string {
	return "SET " + strings.Join(e.sets, ", ")
}

func (e *updateExpr) set(attr string, v types.AttributeValue) {
	name := "#" + strings.ToLower(attr)
	e.sets = append(e.sets, name+" = :"+strings.ToLower(attr))
	e.names[name] = attr
	e.values[":"+strings.ToLower(attr)] = v
}

func (e *updateExpr) addWritableValues() {
	e.names["#is_locked"] = "is_locked"
	e.names["#status"] = "status"
	e.values[":false"] = &types.AttributeValueMemberBOOL{Value: false}
	e.values[":finalizado"] = &types.AttributeValueMemberS{Value: string(entities.ChecklistStatusFinalizado)}
}

// buildChecklistUpdate turns the non-nil patch fields into SET clauses.
// updated_at is always written.
func buildChecklistUpdate(p entities.ChecklistPatch, now string) (updateExpr, error) {
	e := updateExpr{names: map[string]string{}, values: map[string]types.AttributeValue{}}
	str := func(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }
	optional := func(v *string) types.AttributeValue {
		if v == nil || *v == "" {
			return &types.AttributeValueMemberNULL{Value: true}
		}
		return str(*v)
	}

	if p.Status != nil {
		e.set("status", str(string(*p.Status)))
	}
	if p.IsLocked != nil {
		e.set("is_locked", &types.AttributeValueMemberBOOL{Value: *p.IsLocked})
	}
	if p.CreatedBy != nil {
		e.set("created_by", str(*p.CreatedBy))
	}
	if p.VehicleID != nil {
		e.set("vehicle_id", optional(p.VehicleID))
	}
	if p.SupplierID != nil {
		e.set("supplier_id", optional(p.SupplierID))
	}
	if p.Notes != nil {
		e.set("notes", str(*p.Notes))
	}

	docs := []struct {
		attr string
		v    any
		ok   bool
	}{
		{"items", p.Items, p.Items != nil},
		{"media", derefSlice(p.Media), p.Media != nil},
		{"budgetAttachments", derefSlice(p.BudgetAttachments), p.BudgetAttachments != nil},
		{"fuelGaugePhotos", p.FuelGaugePhotos, p.FuelGaugePhotos != nil},
	}
	for _, d := range docs {
		if !d.ok {
			continue
		}
		av, err := marshalValue(d.v)
		if err != nil {
			return updateExpr{}, fmt.Errorf("marshal %s: %w", d.attr, err)
		}
		e.set(d.attr, av)
	}

	e.set("updated_at", str(now))
	return e, nil
}

// derefSlice keeps an explicitly empty list as an empty list attribute.
func derefSlice[T any](p *[]T) []T {
	if p == nil || *p == nil {
		return []T{}
	}
	return *p
}

func decodeChecklist(m map[string]types.AttributeValue) (entities.Checklist, error) {
	var it checklistItem
	if err := unmarshalItem(m, &it); err != nil {
		return entities.Checklist{}, err
	}
	return fromChecklistItem(it), nil
}

func toChecklistItem(c entities.Checklist) checklistItem {
	var seq int64
	if c.Seq != nil {
		seq = *c.Seq
	}
	media := c.Media
	if media == nil {
		media = []entities.MediaItem{}
	}
	budget := c.BudgetAttachments
	if budget == nil {
		budget = []entities.BudgetAttachment{}
	}
	return checklistItem{
		ID:                c.ID,
		Seq:               seq,
		Status:            string(c.Status),
		CreatedBy:         c.CreatedBy,
		VehicleID:         c.VehicleID,
		SupplierID:        c.SupplierID,
		Notes:             c.Notes,
		Items:             c.Items,
		Media:             media,
		BudgetAttachments: budget,
		FuelGaugePhotos:   c.FuelGaugePhotos,
		IsLocked:          c.IsLocked,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
	}
}

func fromChecklistItem(it checklistItem) entities.Checklist {
	c := entities.Checklist{
		ID:                it.ID,
		Status:            entities.ChecklistStatus(it.Status),
		CreatedBy:         it.CreatedBy,
		VehicleID:         it.VehicleID,
		SupplierID:        it.SupplierID,
		Notes:             it.Notes,
		Items:             it.Items,
		Media:             it.Media,
		BudgetAttachments: it.BudgetAttachments,
		FuelGaugePhotos:   it.FuelGaugePhotos,
		IsLocked:          it.IsLocked,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.Seq != 0 {
		seq := it.Seq
		c.Seq = &seq
	}
	return c
}
