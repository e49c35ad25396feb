package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleRecord(t *testing.T, id string) entities.OperationalCostRecord {
	t.Helper()
	n := 0
	e := variance.NewEngineWith(func() string {
		n++
		return fmt.Sprintf("%s-%d", id, n)
	}, func() time.Time { return testNow })

	r, err := e.NewRecord(entities.DefaultVarianceThresholds())
	if err != nil {
		t.Fatalf("new record: %v", err)
	}
	r, err = e.SelectQuotation(r, entities.Quotation{
		ID:              "q-1",
		QuotationNumber: "QT-2024-001",
		CustomerName:    "PT Nusantara",
		SellingPrice:    dec("10000000"),
		CargoItems:      []entities.CargoItem{{FreightCost: dec("5000000")}},
	})
	if err != nil {
		t.Fatalf("select quotation: %v", err)
	}
	freightItem := r.CostCategories[entities.CategoryFreight].Items[0].ID
	if r, err = e.UpdateItem(r, entities.CategoryFreight, freightItem, variance.SetActualAmount{Value: dec("6000000")}); err != nil {
		t.Fatalf("update item: %v", err)
	}
	due := testNow.Add(72 * time.Hour)
	if r, _, err = e.AddItem(r, entities.CategoryOrigin, variance.CostItemDraft{Description: "Trucking", DueDate: &due}); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if r, _, err = e.AddMilestone(r, variance.MilestoneDraft{Title: "Departed", TargetDate: &due, CompletionPercentage: 40}); err != nil {
		t.Fatalf("add milestone: %v", err)
	}
	if r, err = e.LinkAWB(r, "awb-1"); err != nil {
		t.Fatalf("link awb: %v", err)
	}
	r.ID = id
	return r
}

func TestOperationalCostDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewOperationalCostDynamoRepository(newFakeDynamo(), "")
	in := sampleRecord(t, "rec-1")

	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(ctx, "rec-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.ID != "rec-1" || got.QuotationNumber != "QT-2024-001" || got.Status != entities.RecordStatusActive {
		t.Fatalf("unexpected header: %+v", got)
	}
	if !got.TotalQuotationValue.Equal(dec("10000000")) {
		t.Fatalf("total quotation value=%s", got.TotalQuotationValue)
	}
	freight := got.CostCategories[entities.CategoryFreight]
	if !freight.Variance.Equal(dec("1000000")) || !freight.VariancePercentage.Equal(dec("20")) || freight.Status != entities.VarianceStatusCritical {
		t.Fatalf("unexpected freight: %+v", freight)
	}
	if len(freight.Items) != 1 || !freight.Items[0].ActualAmount.Equal(dec("6000000")) {
		t.Fatalf("unexpected freight items: %+v", freight.Items)
	}
	origin := got.CostCategories[entities.CategoryOrigin]
	if len(origin.Items) != 1 || origin.Items[0].DueDate == nil || !origin.Items[0].DueDate.Equal(testNow.Add(72*time.Hour)) {
		t.Fatalf("unexpected origin items: %+v", origin.Items)
	}
	if !got.Totals.ProjectedMargin.Equal(dec("4000000")) || got.Totals.OverallVarianceStatus != entities.VarianceStatusCritical {
		t.Fatalf("unexpected totals: %+v", got.Totals)
	}
	if !got.VarianceThresholds.Warning.Equal(dec("5")) || !got.VarianceThresholds.Critical.Equal(dec("10")) {
		t.Fatalf("unexpected thresholds: %+v", got.VarianceThresholds)
	}
	if len(got.Milestones) != 1 || got.Milestones[0].CompletionPercentage != 40 || got.Milestones[0].CompletedDate != nil {
		t.Fatalf("unexpected milestones: %+v", got.Milestones)
	}
	if len(got.AWBIDs) != 1 || got.AWBIDs[0] != "awb-1" {
		t.Fatalf("unexpected awb ids: %v", got.AWBIDs)
	}
	if !got.CreatedAt.Equal(testNow) || !got.UpdatedAt.Equal(testNow) {
		t.Fatalf("unexpected timestamps: %v %v", got.CreatedAt, got.UpdatedAt)
	}

	// The stored derived fields must match a fresh recomputation.
	again := variance.Recompute(got)
	if !again.Totals.TotalVariance.Equal(got.Totals.TotalVariance) {
		t.Fatalf("stored totals drifted: %s vs %s", got.Totals.TotalVariance, again.Totals.TotalVariance)
	}
}

func TestOperationalCostDynamoRepository_Conditions(t *testing.T) {
	ctx := context.Background()
	repo := NewOperationalCostDynamoRepository(newFakeDynamo(), "opcost_test")
	in := sampleRecord(t, "rec-1")

	t.Run("create twice", func(t *testing.T) {
		if _, err := repo.Create(ctx, in); err != nil {
			t.Fatalf("create: %v", err)
		}
		_, err := repo.Create(ctx, in)
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", got, err)
		}
	})

	t.Run("update existing and missing", func(t *testing.T) {
		in.Status = entities.RecordStatusCompleted
		got, err := repo.Update(ctx, in)
		if err != nil || got.Status != entities.RecordStatusCompleted {
			t.Fatalf("update: %+v err=%v", got, err)
		}

		ghost := sampleRecord(t, "ghost")
		got, err = repo.Update(ctx, ghost)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value for missing record, got %+v err=%v", got, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "rec-1")
		if err != nil || !deleted {
			t.Fatalf("expected deleted, got %v err=%v", deleted, err)
		}
		deleted, err = repo.Delete(ctx, "rec-1")
		if err != nil || deleted {
			t.Fatalf("expected not deleted, got %v err=%v", deleted, err)
		}
	})
}

func TestOperationalCostDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewOperationalCostDynamoRepository(ddb, "")

	for _, id := range []string{"rec-1", "rec-2", "rec-3"} {
		if _, err := repo.Create(ctx, sampleRecord(t, id)); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if ddb.scans != 2 {
		t.Fatalf("expected 2 scan pages, got %d", ddb.scans)
	}

	ddb.err = errThrottled
	if _, err := repo.List(ctx); !errors.Is(err, errThrottled) {
		t.Fatalf("expected scan error, got %v", err)
	}
}

func TestDDBDecimal_Unmarshal(t *testing.T) {
	var d ddbDecimal
	if err := d.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberN{Value: "12.50"}); err != nil || !d.Equal(dec("12.5")) {
		t.Fatalf("number attribute: %s err=%v", d, err)
	}
	if err := d.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: ""}); err != nil || !d.IsZero() {
		t.Fatalf("empty string attribute: %s err=%v", d, err)
	}
	if err := d.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "abc"}); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := d.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberBOOL{Value: true}); err == nil {
		t.Fatalf("expected type error")
	}
}
