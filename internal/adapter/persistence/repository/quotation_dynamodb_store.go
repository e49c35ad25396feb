package repository

import (
	"context"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuotationsTableName = "quotations"

type cargoItemItem struct {
	Description     string     `dynamodbav:"description"`
	Quantity        int        `dynamodbav:"quantity"`
	Weight          ddbDecimal `dynamodbav:"weight"`
	OriginCost      ddbDecimal `dynamodbav:"origin_cost"`
	FreightCost     ddbDecimal `dynamodbav:"freight_cost"`
	DestinationCost ddbDecimal `dynamodbav:"destination_cost"`
	AdditionalCost  ddbDecimal `dynamodbav:"additional_cost"`
}

type quotationItem struct {
	ID              string          `dynamodbav:"id"`
	QuotationNumber string          `dynamodbav:"quotation_number"`
	CustomerName    string          `dynamodbav:"customer_name"`
	CustomerID      string          `dynamodbav:"customer_id"`
	Origin          string          `dynamodbav:"origin"`
	Destination     string          `dynamodbav:"destination"`
	SellingPrice    ddbDecimal      `dynamodbav:"selling_price"`
	Status          string          `dynamodbav:"status"`
	CargoItems      []cargoItemItem `dynamodbav:"cargo_items"`
}

// QuotationDynamoStore reads quotations owned by the sales side.
//
// Table requirements:
//   - PK: id (string)
//   - status attribute; only "approved" rows are returned
type QuotationDynamoStore struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IQuotationStore = (*QuotationDynamoStore)(nil)

func NewQuotationDynamoStore(ddb DynamoDBAPI, tableName string) *QuotationDynamoStore {
	return &QuotationDynamoStore{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultQuotationsTableName),
	}
}

func (s *QuotationDynamoStore) GetApprovedQuotations(ctx context.Context) ([]entities.Quotation, error) {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: entities.QuotationStatusApproved},
		},
	})

	out := make([]entities.Quotation, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromQuotationItem(it))
		}
	}
	return out, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:              q.ID,
		QuotationNumber: q.QuotationNumber,
		CustomerName:    q.CustomerName,
		CustomerID:      q.CustomerID,
		Origin:          q.Origin,
		Destination:     q.Destination,
		SellingPrice:    newDDBDecimal(q.SellingPrice),
		Status:          q.Status,
		CargoItems:      make([]cargoItemItem, 0, len(q.CargoItems)),
	}
	for _, c := range q.CargoItems {
		it.CargoItems = append(it.CargoItems, cargoItemItem{
			Description:     c.Description,
			Quantity:        c.Quantity,
			Weight:          newDDBDecimal(c.Weight),
			OriginCost:      newDDBDecimal(c.OriginCost),
			FreightCost:     newDDBDecimal(c.FreightCost),
			DestinationCost: newDDBDecimal(c.DestinationCost),
			AdditionalCost:  newDDBDecimal(c.AdditionalCost),
		})
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	q := entities.Quotation{
		ID:              it.ID,
		QuotationNumber: it.QuotationNumber,
		CustomerName:    it.CustomerName,
		CustomerID:      it.CustomerID,
		Origin:          it.Origin,
		Destination:     it.Destination,
		SellingPrice:    it.SellingPrice.Decimal,
		Status:          it.Status,
		CargoItems:      make([]entities.CargoItem, 0, len(it.CargoItems)),
	}
	for _, c := range it.CargoItems {
		q.CargoItems = append(q.CargoItems, entities.CargoItem{
			Description:     c.Description,
			Quantity:        c.Quantity,
			Weight:          c.Weight.Decimal,
			OriginCost:      c.OriginCost.Decimal,
			FreightCost:     c.FreightCost.Decimal,
			DestinationCost: c.DestinationCost.Decimal,
			AdditionalCost:  c.AdditionalCost.Decimal,
		})
	}
	return q
}
