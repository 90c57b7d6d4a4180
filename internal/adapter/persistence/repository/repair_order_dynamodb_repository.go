package repository

import (
	"context"
	"time"

	"repairflow/internal/domain/entities"
	"repairflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const customerIDIndex = "customer_id-index"

type repairOrderItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	TechnicianID       string `dynamodbav:"technician_id"`
	ItemName           string `dynamodbav:"item_name"`
	ItemCondition      string `dynamodbav:"item_condition"`
	IssueDescription   string `dynamodbav:"issue_description"`
	PaymentMethodID    string `dynamodbav:"payment_method_id"`
	DesiredServiceDate string `dynamodbav:"desired_service_date"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// RepairOrderDynamoRepository persists RepairOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: customer_id (string)
type RepairOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRepairOrderRepository = (*RepairOrderDynamoRepository)(nil)

func NewRepairOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *RepairOrderDynamoRepository {
	return &RepairOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *RepairOrderDynamoRepository) Create(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	av, err := attributevalue.MarshalMap(toRepairOrderItem(o))
	if err != nil {
		return entities.RepairOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	return o, nil
}

func (r *RepairOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.RepairOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RepairOrder{}, nil
	}

	var it repairOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RepairOrder{}, err
	}
	return fromRepairOrderItem(it), nil
}

func (r *RepairOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.RepairOrder, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(customerIDIndex),
		KeyConditionExpression:   aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{"#customer_id": "customer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})

	orders := []entities.RepairOrder{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []repairOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			orders = append(orders, fromRepairOrderItem(it))
		}
	}
	return orders, nil
}

// orderStatusUpdate builds the order half of a transition commit.
func orderStatusUpdate(tableName, orderID string, status entities.RepairOrderStatus, now time.Time) *types.Update {
	return &types.Update{
		TableName:           aws.String(tableName),
		Key:                 stringKey("id", orderID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	}
}

func toRepairOrderItem(o entities.RepairOrder) repairOrderItem {
	it := repairOrderItem{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		TechnicianID:     o.TechnicianID,
		ItemName:         o.ItemName,
		ItemCondition:    o.ItemCondition,
		IssueDescription: o.IssueDescription,
		PaymentMethodID:  o.PaymentMethodID,
		Status:           string(o.Status),
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
	if !o.DesiredServiceDate.IsZero() {
		it.DesiredServiceDate = o.DesiredServiceDate.UTC().Format(dateLayout)
	}
	return it
}

func fromRepairOrderItem(it repairOrderItem) entities.RepairOrder {
	desired, _ := time.Parse(dateLayout, it.DesiredServiceDate)
	return entities.RepairOrder{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		TechnicianID:       it.TechnicianID,
		ItemName:           it.ItemName,
		ItemCondition:      it.ItemCondition,
		IssueDescription:   it.IssueDescription,
		PaymentMethodID:    it.PaymentMethodID,
		DesiredServiceDate: desired,
		Status:             entities.RepairOrderStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
