package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"payment_service/internal/domain/entities"
	"payment_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID                  string      `dynamodbav:"id"`
	CreatedAt           string      `dynamodbav:"created_at"`
	Amount              ddbDecimal  `dynamodbav:"amount"`
	Currency            string      `dynamodbav:"currency"`
	DebtorIban          string      `dynamodbav:"debtor_iban"`
	CreditorIban        string      `dynamodbav:"creditor_iban"`
	Type                string      `dynamodbav:"type"`
	Details             *string     `dynamodbav:"details,omitempty"`
	CreditorBankBic     *string     `dynamodbav:"creditor_bank_bic,omitempty"`
	IsCanceled          bool        `dynamodbav:"is_canceled"`
	CancellationFee     *ddbDecimal `dynamodbav:"cancellation_fee,omitempty"`
	NotificationSuccess *bool       `dynamodbav:"notification_success,omitempty"`
	Version             int64       `dynamodbav:"version"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - version: number attribute, bumped on every write; conditional updates
//     on it provide the optimistic-concurrency guarantee for cancellation.
//
// Amount is stored as a number attribute so the active-payments filter can be
// evaluated server-side.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	p.ID = uuid.NewString()
	p.Version = 1

	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

// Update is a compare-and-swap on the version attribute: the write commits
// only while the stored version still equals expectedVersion. The check lives
// in the store, so two racing cancellations resolve to exactly one winner.
func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment, expectedVersion int64) (entities.Payment, error) {
	updateExpr := "SET #is_canceled = :is_canceled, #version = :new_version"
	values := map[string]types.AttributeValue{
		":is_canceled":      &types.AttributeValueMemberBOOL{Value: p.IsCanceled},
		":new_version":      &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
		":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
	}
	names := map[string]string{
		"#id":          "id",
		"#is_canceled": "is_canceled",
		"#version":     "version",
	}
	if p.CancellationFee != nil {
		updateExpr += ", #cancellation_fee = :cancellation_fee"
		values[":cancellation_fee"] = &types.AttributeValueMemberN{Value: p.CancellationFee.String()}
		names["#cancellation_fee"] = "cancellation_fee"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrVersionConflict
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) ListActive(ctx context.Context, amountMin, amountMax *decimal.Decimal) ([]entities.Payment, error) {
	filter := "#is_canceled = :is_canceled"
	values := map[string]types.AttributeValue{
		":is_canceled": &types.AttributeValueMemberBOOL{Value: false},
	}
	names := map[string]string{
		"#is_canceled": "is_canceled",
	}
	if amountMin != nil {
		filter += " AND #amount >= :amount_min"
		values[":amount_min"] = &types.AttributeValueMemberN{Value: amountMin.String()}
		names["#amount"] = "amount"
	}
	if amountMax != nil {
		filter += " AND #amount <= :amount_max"
		values[":amount_max"] = &types.AttributeValueMemberN{Value: amountMax.String()}
		names["#amount"] = "amount"
	}

	payments := make([]entities.Payment, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  names,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			p, err := fromPaymentItem(it)
			if err != nil {
				return nil, err
			}
			payments = append(payments, p)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return payments, nil
}

// SetNotificationOutcome records the asynchronous notification result. It is
// not guarded by a version check but still bumps the stamp so every write
// keeps it monotonic.
func (r *PaymentDynamoRepository) SetNotificationOutcome(ctx context.Context, id string, success bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #notification_success = :success, #version = #version + :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":success": &types.AttributeValueMemberBOOL{Value: success},
			":one":     &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":                   "id",
			"#notification_success": "notification_success",
			"#version":              "version",
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:                  p.ID,
		CreatedAt:           p.CreatedAt.UTC().Format(time.RFC3339Nano),
		Amount:              ddbDecimal{p.Amount},
		Currency:            string(p.Currency),
		DebtorIban:          p.DebtorIban,
		CreditorIban:        p.CreditorIban,
		Type:                string(p.Type),
		Details:             p.Details,
		CreditorBankBic:     p.CreditorBankBic,
		IsCanceled:          p.IsCanceled,
		NotificationSuccess: p.NotificationSuccess,
		Version:             p.Version,
	}
	if p.CancellationFee != nil {
		it.CancellationFee = &ddbDecimal{*p.CancellationFee}
	}
	return it
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s has malformed created_at %q: %w", it.ID, it.CreatedAt, err)
	}
	p := entities.Payment{
		ID:                  it.ID,
		CreatedAt:           createdAt,
		Amount:              it.Amount.Decimal,
		Currency:            entities.CurrencyType(it.Currency),
		DebtorIban:          it.DebtorIban,
		CreditorIban:        it.CreditorIban,
		Type:                entities.PaymentType(it.Type),
		Details:             it.Details,
		CreditorBankBic:     it.CreditorBankBic,
		IsCanceled:          it.IsCanceled,
		NotificationSuccess: it.NotificationSuccess,
		Version:             it.Version,
	}
	if it.CancellationFee != nil {
		fee := it.CancellationFee.Decimal
		p.CancellationFee = &fee
	}
	return p, nil
}
