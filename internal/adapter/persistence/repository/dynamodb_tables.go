package repository

import (
	"context"
	"errors"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableCreator is the subset of *dynamodb.Client used by EnsureTables.
type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// TableNames lists the tables of the service.
type TableNames struct {
	Checklists string
	Suppliers  string
	Vehicles   string
	Users      string
	Counters   string
}

// EnsureTables creates every missing table with on-demand billing. Existing
// tables are left untouched. It returns the names that were created.
func EnsureTables(ctx context.Context, ddb TableCreator, names TableNames) ([]string, error) {
	specs := []struct {
		table string
		key   string
	}{
		{names.Checklists, "id"},
		{names.Suppliers, "id"},
		{names.Vehicles, "id"},
		{names.Users, "id"},
		{names.Counters, "name"},
	}

	var created []string
	for _, s := range specs {
		_, err := ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
			TableName:   aws.String(s.table),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(s.key), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(s.key), KeyType: types.KeyTypeHash},
			},
		})
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Printf("[storage][dynamodb] table exists name=%s", s.table)
				continue
			}
			return created, err
		}
		log.Printf("[storage][dynamodb] table created name=%s", s.table)
		created = append(created, s.table)
	}
	return created, nil
}
