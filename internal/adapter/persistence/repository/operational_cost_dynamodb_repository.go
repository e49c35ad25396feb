package repository

import (
	"context"
	"errors"
	"log"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultOperationalCostsTableName = "operational_costs"

type costItemItem struct {
	ID                 string     `dynamodbav:"id"`
	Description        string     `dynamodbav:"description"`
	VendorName         string     `dynamodbav:"vendor_name,omitempty"`
	Amount             ddbDecimal `dynamodbav:"amount"`
	ActualAmount       ddbDecimal `dynamodbav:"actual_amount"`
	Variance           ddbDecimal `dynamodbav:"variance"`
	VariancePercentage ddbDecimal `dynamodbav:"variance_percentage"`
	Approved           bool       `dynamodbav:"approved"`
	InvoiceNumber      string     `dynamodbav:"invoice_number,omitempty"`
	DueDate            string     `dynamodbav:"due_date,omitempty"`
	CreatedAt          string     `dynamodbav:"created_at"`
}

type categoryItem struct {
	QuotationCost      ddbDecimal     `dynamodbav:"quotation_cost"`
	ActualCost         ddbDecimal     `dynamodbav:"actual_cost"`
	Variance           ddbDecimal     `dynamodbav:"variance"`
	VariancePercentage ddbDecimal     `dynamodbav:"variance_percentage"`
	Status             string         `dynamodbav:"status"`
	Items              []costItemItem `dynamodbav:"items"`
}

type totalsItem struct {
	TotalQuotationCost        ddbDecimal `dynamodbav:"total_quotation_cost"`
	TotalActualCost           ddbDecimal `dynamodbav:"total_actual_cost"`
	TotalVariance             ddbDecimal `dynamodbav:"total_variance"`
	TotalVariancePercentage   ddbDecimal `dynamodbav:"total_variance_percentage"`
	MarginImpact              ddbDecimal `dynamodbav:"margin_impact"`
	ProjectedMargin           ddbDecimal `dynamodbav:"projected_margin"`
	ProjectedMarginPercentage ddbDecimal `dynamodbav:"projected_margin_percentage"`
	OverallVarianceStatus     string     `dynamodbav:"overall_variance_status"`
	WarningCategories         int        `dynamodbav:"warning_categories"`
	CriticalCategories        int        `dynamodbav:"critical_categories"`
}

type milestoneItem struct {
	ID                   string `dynamodbav:"id"`
	Title                string `dynamodbav:"title"`
	Description          string `dynamodbav:"description,omitempty"`
	TargetDate           string `dynamodbav:"target_date,omitempty"`
	CompletedDate        string `dynamodbav:"completed_date,omitempty"`
	Status               string `dynamodbav:"status"`
	ResponsiblePerson    string `dynamodbav:"responsible_person,omitempty"`
	CompletionPercentage int    `dynamodbav:"completion_percentage"`
}

type operationalCostItem struct {
	ID                   string                  `dynamodbav:"id"`
	QuotationID          string                  `dynamodbav:"quotation_id,omitempty"`
	QuotationNumber      string                  `dynamodbav:"quotation_number,omitempty"`
	CustomerName         string                  `dynamodbav:"customer_name,omitempty"`
	TotalQuotationValue  ddbDecimal              `dynamodbav:"total_quotation_value"`
	CostCategories       map[string]categoryItem `dynamodbav:"cost_categories"`
	Totals               totalsItem              `dynamodbav:"totals"`
	WarningThreshold     ddbDecimal              `dynamodbav:"warning_threshold"`
	CriticalThreshold    ddbDecimal              `dynamodbav:"critical_threshold"`
	CurrentApprovalStage int                     `dynamodbav:"current_approval_stage"`
	Milestones           []milestoneItem         `dynamodbav:"milestones"`
	AWBIDs               []string                `dynamodbav:"awb_ids"`
	Status               string                  `dynamodbav:"status"`
	CreatedAt            string                  `dynamodbav:"created_at"`
	UpdatedAt            string                  `dynamodbav:"updated_at"`
}

// OperationalCostDynamoRepository persists operational cost records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The whole record is written on every save; derived variance fields are
// stored as computed so the table can be read without the engine.
type OperationalCostDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOperationalCostRepository = (*OperationalCostDynamoRepository)(nil)

func NewOperationalCostDynamoRepository(ddb DynamoDBAPI, tableName string) *OperationalCostDynamoRepository {
	return &OperationalCostDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultOperationalCostsTableName),
	}
}

func (r *OperationalCostDynamoRepository) Create(ctx context.Context, rec entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	av, err := attributevalue.MarshalMap(toOperationalCostItem(rec))
	if err != nil {
		return entities.OperationalCostRecord{}, err
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
		log.Printf("[opcost][repository] create failed id=%s err=%v", rec.ID, err)
		return entities.OperationalCostRecord{}, err
	}
	return rec, nil
}

func (r *OperationalCostDynamoRepository) GetByID(ctx context.Context, id string) (entities.OperationalCostRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OperationalCostRecord{}, nil
	}

	var it operationalCostItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OperationalCostRecord{}, err
	}
	return fromOperationalCostItem(it), nil
}

func (r *OperationalCostDynamoRepository) List(ctx context.Context) ([]entities.OperationalCostRecord, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.OperationalCostRecord, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it operationalCostItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOperationalCostItem(it))
		}
	}
	return items, nil
}

// Update replaces an existing record. A missing record yields a zero value.
func (r *OperationalCostDynamoRepository) Update(ctx context.Context, rec entities.OperationalCostRecord) (entities.OperationalCostRecord, error) {
	av, err := attributevalue.MarshalMap(toOperationalCostItem(rec))
	if err != nil {
		return entities.OperationalCostRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OperationalCostRecord{}, nil
		}
		log.Printf("[opcost][repository] update failed id=%s err=%v", rec.ID, err)
		return entities.OperationalCostRecord{}, err
	}
	return rec, nil
}

func (r *OperationalCostDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toOperationalCostItem(rec entities.OperationalCostRecord) operationalCostItem {
	it := operationalCostItem{
		ID:                   rec.ID,
		QuotationID:          rec.QuotationID,
		QuotationNumber:      rec.QuotationNumber,
		CustomerName:         rec.CustomerName,
		TotalQuotationValue:  newDDBDecimal(rec.TotalQuotationValue),
		CostCategories:       make(map[string]categoryItem, len(rec.CostCategories)),
		Totals:               toTotalsItem(rec.Totals),
		WarningThreshold:     newDDBDecimal(rec.VarianceThresholds.Warning),
		CriticalThreshold:    newDDBDecimal(rec.VarianceThresholds.Critical),
		CurrentApprovalStage: rec.CurrentApprovalStage,
		Milestones:           make([]milestoneItem, 0, len(rec.Milestones)),
		AWBIDs:               append([]string{}, rec.AWBIDs...),
		Status:               string(rec.Status),
		CreatedAt:            formatTime(rec.CreatedAt),
		UpdatedAt:            formatTime(rec.UpdatedAt),
	}
	for key, c := range rec.CostCategories {
		ci := categoryItem{
			QuotationCost:      newDDBDecimal(c.QuotationCost),
			ActualCost:         newDDBDecimal(c.ActualCost),
			Variance:           newDDBDecimal(c.Variance),
			VariancePercentage: newDDBDecimal(c.VariancePercentage),
			Status:             string(c.Status),
			Items:              make([]costItemItem, 0, len(c.Items)),
		}
		for _, item := range c.Items {
			ci.Items = append(ci.Items, costItemItem{
				ID:                 item.ID,
				Description:        item.Description,
				VendorName:         item.VendorName,
				Amount:             newDDBDecimal(item.Amount),
				ActualAmount:       newDDBDecimal(item.ActualAmount),
				Variance:           newDDBDecimal(item.Variance),
				VariancePercentage: newDDBDecimal(item.VariancePercentage),
				Approved:           item.Approved,
				InvoiceNumber:      item.InvoiceNumber,
				DueDate:            formatTimePtr(item.DueDate),
				CreatedAt:          formatTime(item.CreatedAt),
			})
		}
		it.CostCategories[string(key)] = ci
	}
	for _, m := range rec.Milestones {
		it.Milestones = append(it.Milestones, milestoneItem{
			ID:                   m.ID,
			Title:                m.Title,
			Description:          m.Description,
			TargetDate:           formatTimePtr(m.TargetDate),
			CompletedDate:        formatTimePtr(m.CompletedDate),
			Status:               string(m.Status),
			ResponsiblePerson:    m.ResponsiblePerson,
			CompletionPercentage: m.CompletionPercentage,
		})
	}
	return it
}

func fromOperationalCostItem(it operationalCostItem) entities.OperationalCostRecord {
	rec := entities.OperationalCostRecord{
		ID:                  it.ID,
		QuotationID:         it.QuotationID,
		QuotationNumber:     it.QuotationNumber,
		CustomerName:        it.CustomerName,
		TotalQuotationValue: it.TotalQuotationValue.Decimal,
		CostCategories:      make(map[entities.CategoryKey]entities.CategoryState, len(it.CostCategories)),
		Totals:              fromTotalsItem(it.Totals),
		VarianceThresholds: entities.VarianceThresholds{
			Warning:  it.WarningThreshold.Decimal,
			Critical: it.CriticalThreshold.Decimal,
		},
		CurrentApprovalStage: it.CurrentApprovalStage,
		Milestones:           make([]entities.Milestone, 0, len(it.Milestones)),
		AWBIDs:               append([]string{}, it.AWBIDs...),
		Status:               entities.RecordStatus(it.Status),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
	for key, ci := range it.CostCategories {
		c := entities.CategoryState{
			QuotationCost:      ci.QuotationCost.Decimal,
			ActualCost:         ci.ActualCost.Decimal,
			Variance:           ci.Variance.Decimal,
			VariancePercentage: ci.VariancePercentage.Decimal,
			Status:             entities.VarianceStatus(ci.Status),
			Items:              make([]entities.CostItem, 0, len(ci.Items)),
		}
		for _, item := range ci.Items {
			c.Items = append(c.Items, entities.CostItem{
				ID:                 item.ID,
				Description:        item.Description,
				VendorName:         item.VendorName,
				Amount:             item.Amount.Decimal,
				ActualAmount:       item.ActualAmount.Decimal,
				Variance:           item.Variance.Decimal,
				VariancePercentage: item.VariancePercentage.Decimal,
				Approved:           item.Approved,
				InvoiceNumber:      item.InvoiceNumber,
				DueDate:            parseTimePtr(item.DueDate),
				CreatedAt:          parseTime(item.CreatedAt),
			})
		}
		rec.CostCategories[entities.CategoryKey(key)] = c
	}
	for _, m := range it.Milestones {
		rec.Milestones = append(rec.Milestones, entities.Milestone{
			ID:                   m.ID,
			Title:                m.Title,
			Description:          m.Description,
			TargetDate:           parseTimePtr(m.TargetDate),
			CompletedDate:        parseTimePtr(m.CompletedDate),
			Status:               entities.MilestoneStatus(m.Status),
			ResponsiblePerson:    m.ResponsiblePerson,
			CompletionPercentage: m.CompletionPercentage,
		})
	}
	return rec
}

func toTotalsItem(t entities.RollupResult) totalsItem {
	return totalsItem{
		TotalQuotationCost:        newDDBDecimal(t.TotalQuotationCost),
		TotalActualCost:           newDDBDecimal(t.TotalActualCost),
		TotalVariance:             newDDBDecimal(t.TotalVariance),
		TotalVariancePercentage:   newDDBDecimal(t.TotalVariancePercentage),
		MarginImpact:              newDDBDecimal(t.MarginImpact),
		ProjectedMargin:           newDDBDecimal(t.ProjectedMargin),
		ProjectedMarginPercentage: newDDBDecimal(t.ProjectedMarginPercentage),
		OverallVarianceStatus:     string(t.OverallVarianceStatus),
		WarningCategories:         t.WarningCategories,
		CriticalCategories:        t.CriticalCategories,
	}
}

func fromTotalsItem(t totalsItem) entities.RollupResult {
	return entities.RollupResult{
		TotalQuotationCost:        t.TotalQuotationCost.Decimal,
		TotalActualCost:           t.TotalActualCost.Decimal,
		TotalVariance:             t.TotalVariance.Decimal,
		TotalVariancePercentage:   t.TotalVariancePercentage.Decimal,
		MarginImpact:              t.MarginImpact.Decimal,
		ProjectedMargin:           t.ProjectedMargin.Decimal,
		ProjectedMarginPercentage: t.ProjectedMarginPercentage.Decimal,
		OverallVarianceStatus:     entities.VarianceStatus(t.OverallVarianceStatus),
		WarningCategories:         t.WarningCategories,
		CriticalCategories:        t.CriticalCategories,
	}
}
