package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"repairflow/internal/domain/entities"
	"repairflow/internal/domain/errs"
	"repairflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var errOrderMissing = errors.New("repair order missing for report transition")

type technicianReportItem struct {
	ID            string `dynamodbav:"id"`
	OrderID       string `dynamodbav:"order_id"`
	TechnicianID  string `dynamodbav:"technician_id"`
	CustomerID    string `dynamodbav:"customer_id"`
	Diagnosis     string `dynamodbav:"diagnosis"`
	ActionPlan    string `dynamodbav:"action_plan"`
	EstimatedCost string `dynamodbav:"estimated_cost,omitempty"`
	EstimatedTime string `dynamodbav:"estimated_time"`
	Status        string `dynamodbav:"status"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	LastUpdatedAt string `dynamodbav:"last_updated_at"`
}

// TechnicianReportDynamoRepository persists TechnicianReport entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// A report's id is the id of its order, so the create condition on the key
// enforces one report per order. Every overwrite is conditioned on the stored version. Transitions also touch
// the orders table, so both tables must live in the same account and region.
type TechnicianReportDynamoRepository struct {
	ddb         dynamoAPI
	tableName   string
	ordersTable string
}

var _ interfaces.ITechnicianReportRepository = (*TechnicianReportDynamoRepository)(nil)

func NewTechnicianReportDynamoRepository(ddb *dynamodb.Client, tableName, ordersTable string) *TechnicianReportDynamoRepository {
	return &TechnicianReportDynamoRepository{ddb: ddb, tableName: tableName, ordersTable: ordersTable}
}

func (r *TechnicianReportDynamoRepository) Create(ctx context.Context, rep entities.TechnicianReport) (entities.TechnicianReport, error) {
	if rep.ID == "" || rep.ID != rep.OrderID {
		return entities.TechnicianReport{}, fmt.Errorf("report id %q must equal its order id %q", rep.ID, rep.OrderID)
	}
	av, err := attributevalue.MarshalMap(toTechnicianReportItem(rep))
	if err != nil {
		return entities.TechnicianReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TechnicianReport{}, fmt.Errorf("%w: report for order %s", errs.ErrAlreadyExists, rep.OrderID)
		}
		return entities.TechnicianReport{}, err
	}
	return rep, nil
}

func (r *TechnicianReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.TechnicianReport, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TechnicianReport{}, err
	}
	if len(out.Item) == 0 {
		return entities.TechnicianReport{}, nil
	}

	var it technicianReportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TechnicianReport{}, err
	}
	return fromTechnicianReportItem(it)
}

// GetByOrderID is a consistent read of the report keyed by orderID.
func (r *TechnicianReportDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.TechnicianReport, error) {
	rep, err := r.GetByID(ctx, orderID)
	if err != nil {
		return entities.TechnicianReport{}, err
	}
	if rep.ID != "" && rep.OrderID != orderID {
		return entities.TechnicianReport{}, fmt.Errorf("report %s belongs to order %s, not %s", rep.ID, rep.OrderID, orderID)
	}
	return rep, nil
}

func (r *TechnicianReportDynamoRepository) Update(ctx context.Context, rep entities.TechnicianReport, expectedVersion int64) (entities.TechnicianReport, error) {
	av, err := attributevalue.MarshalMap(toTechnicianReportItem(rep))
	if err != nil {
		return entities.TechnicianReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":expected": int64Value(expectedVersion)},
	})
	if err != nil {
		return entities.TechnicianReport{}, versionConflict(err)
	}
	return rep, nil
}

func (r *TechnicianReportDynamoRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       stringKey("id", id),
		ConditionExpression:       aws.String("#version = :expected"),
		ExpressionAttributeNames:  map[string]string{"#version": "version"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":expected": int64Value(expectedVersion)},
	})
	return versionConflict(err)
}

// CommitTransition writes the report and the owning order's status in a single
// transaction. Either both items change or neither does.
func (r *TechnicianReportDynamoRepository) CommitTransition(ctx context.Context, rep entities.TechnicianReport, expectedVersion int64, orderStatus entities.RepairOrderStatus) (entities.TechnicianReport, error) {
	av, err := attributevalue.MarshalMap(toTechnicianReportItem(rep))
	if err != nil {
		return entities.TechnicianReport{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                 aws.String(r.tableName),
					Item:                      av,
					ConditionExpression:       aws.String("#version = :expected"),
					ExpressionAttributeNames:  map[string]string{"#version": "version"},
					ExpressionAttributeValues: map[string]types.AttributeValue{":expected": int64Value(expectedVersion)},
				},
			},
			{Update: orderStatusUpdate(r.ordersTable, rep.OrderID, orderStatus, rep.LastUpdatedAt)},
		},
	})
	if err != nil {
		return entities.TechnicianReport{}, transactionFailure(err)
	}
	return rep, nil
}

// transactionFailure inspects the per-item cancellation reasons. Item 0 is the
// report, item 1 the order.
func transactionFailure(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" {
			continue
		}
		if i == 0 {
			return errs.ErrConcurrentModification
		}
		return errOrderMissing
	}
	if len(tce.CancellationReasons) > 0 {
		return fmt.Errorf("transaction cancelled (%s): %w", aws.ToString(tce.CancellationReasons[0].Code), err)
	}
	return err
}

func toTechnicianReportItem(rep entities.TechnicianReport) technicianReportItem {
	it := technicianReportItem{
		ID:            rep.ID,
		OrderID:       rep.OrderID,
		TechnicianID:  rep.TechnicianID,
		CustomerID:    rep.CustomerID,
		Diagnosis:     rep.Diagnosis,
		ActionPlan:    rep.ActionPlan,
		EstimatedTime: rep.EstimatedTime,
		Status:        rep.Status,
		Version:       rep.Version,
		CreatedAt:     formatTime(rep.CreatedAt),
		LastUpdatedAt: formatTime(rep.LastUpdatedAt),
	}
	if rep.EstimatedCost != nil {
		it.EstimatedCost = floatToString(*rep.EstimatedCost)
	}
	return it
}

func fromTechnicianReportItem(it technicianReportItem) (entities.TechnicianReport, error) {
	rep := entities.TechnicianReport{
		ID:            it.ID,
		OrderID:       it.OrderID,
		TechnicianID:  it.TechnicianID,
		CustomerID:    it.CustomerID,
		Diagnosis:     it.Diagnosis,
		ActionPlan:    it.ActionPlan,
		EstimatedTime: it.EstimatedTime,
		Status:        it.Status,
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		LastUpdatedAt: parseTime(it.LastUpdatedAt),
	}
	if it.EstimatedCost != "" {
		cost, err := strconv.ParseFloat(it.EstimatedCost, 64)
		if err != nil {
			return entities.TechnicianReport{}, fmt.Errorf("report %s: stored estimated_cost %q: %w", it.ID, it.EstimatedCost, err)
		}
		rep.EstimatedCost = &cost
	}
	return rep, nil
}
