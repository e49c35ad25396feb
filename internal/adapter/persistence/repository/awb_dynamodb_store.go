package repository

import (
	"context"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultAWBsTableName = "awbs"

type awbItem struct {
	ID                string     `dynamodbav:"id"`
	AWBNumber         string     `dynamodbav:"awb_number"`
	FreightCharge     ddbDecimal `dynamodbav:"freight_charge"`
	FuelSurcharge     ddbDecimal `dynamodbav:"fuel_surcharge"`
	SecuritySurcharge ddbDecimal `dynamodbav:"security_surcharge"`
	OtherCharges      ddbDecimal `dynamodbav:"other_charges"`
	TotalCharge       ddbDecimal `dynamodbav:"total_charge"`
	Weight            ddbDecimal `dynamodbav:"weight"`
	Status            string     `dynamodbav:"status"`
}

// AWBDynamoStore reads AWB charge rows.
//
// Table requirements:
//   - PK: id (string)
type AWBDynamoStore struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IAWBStore = (*AWBDynamoStore)(nil)

func NewAWBDynamoStore(ddb DynamoDBAPI, tableName string) *AWBDynamoStore {
	return &AWBDynamoStore{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultAWBsTableName),
	}
}

func (s *AWBDynamoStore) GetAll(ctx context.Context) ([]entities.AWBChargeRecord, error) {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})

	out := make([]entities.AWBChargeRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it awbItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAWBItem(it))
		}
	}
	return out, nil
}

func toAWBItem(a entities.AWBChargeRecord) awbItem {
	return awbItem{
		ID:                a.ID,
		AWBNumber:         a.AWBNumber,
		FreightCharge:     newDDBDecimal(a.FreightCharge),
		FuelSurcharge:     newDDBDecimal(a.FuelSurcharge),
		SecuritySurcharge: newDDBDecimal(a.SecuritySurcharge),
		OtherCharges:      newDDBDecimal(a.OtherCharges),
		TotalCharge:       newDDBDecimal(a.TotalCharge),
		Weight:            newDDBDecimal(a.Weight),
		Status:            string(a.Status),
	}
}

func fromAWBItem(it awbItem) entities.AWBChargeRecord {
	return entities.AWBChargeRecord{
		ID:                it.ID,
		AWBNumber:         it.AWBNumber,
		FreightCharge:     it.FreightCharge.Decimal,
		FuelSurcharge:     it.FuelSurcharge.Decimal,
		SecuritySurcharge: it.SecuritySurcharge.Decimal,
		OtherCharges:      it.OtherCharges.Decimal,
		TotalCharge:       it.TotalCharge.Decimal,
		Weight:            it.Weight.Decimal,
		Status:            entities.AWBStatus(it.Status),
	}
}
