package repository

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// ddbDecimal stores a decimal.Decimal as a DynamoDB number attribute so that
// amount bounds can be compared server-side in filter expressions.

type ddbDecimal struct {
	decimal.Decimal
}

func (d ddbDecimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.String()}, nil
}

func (d *ddbDecimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("expected number attribute, got %T", av)
	}
	v, err := decimal.NewFromString(n.Value)
	if err != nil {
		return err
	}
	d.Decimal = v
	return nil
}
