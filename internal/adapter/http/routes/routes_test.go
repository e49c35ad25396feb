package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_opcost/internal/adapter/persistence/memory"
	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func memoryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		StorageDriver: config.StorageMemory,
		Thresholds:    entities.DefaultVarianceThresholds(),
	}
	stores := Stores{
		Records: memory.NewOperationalCostRepository(),
		Quotations: memory.NewQuotationStore(entities.Quotation{
			ID:              "q-1",
			QuotationNumber: "Q-2024-001",
			CustomerName:    "PT Nusantara Logistics",
			SellingPrice:    decimal.NewFromInt(65000000),
			Status:          entities.QuotationStatusApproved,
			CargoItems: []entities.CargoItem{{
				Description:     "Electronics",
				OriginCost:      decimal.NewFromInt(5000000),
				FreightCost:     decimal.NewFromInt(10000000),
				DestinationCost: decimal.NewFromInt(5000000),
				AdditionalCost:  decimal.NewFromInt(2000000),
			}},
		}),
		AWBs: memory.NewAWBStore(entities.AWBChargeRecord{
			ID:          "awb-1",
			TotalCharge: decimal.NewFromInt(10000000),
			Weight:      decimal.NewFromInt(250),
			Status:      entities.AWBStatusDelivered,
		}),
	}
	return NewRouter(cfg, stores)
}

func do(t *testing.T, r *gin.Engine, method, path, body string, want int) map[string]interface{} {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != want {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, want, w.Code, w.Body.String())
	}
	out := map[string]interface{}{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return out
}

func category(t *testing.T, rec map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	cats, _ := rec["cost_categories"].([]interface{})
	for _, c := range cats {
		m := c.(map[string]interface{})
		if m["key"] == key {
			return m
		}
	}
	t.Fatalf("category %s not found in %v", key, rec["cost_categories"])
	return nil
}

func TestRouter_VarianceWorkflow(t *testing.T) {
	r := memoryRouter(t)

	do(t, r, http.MethodGet, "/v1/ping", "", http.StatusOK)

	rec := do(t, r, http.MethodPost, "/v1/operational-costs", `{"quotation_id":"q-1"}`, http.StatusCreated)
	id, _ := rec["id"].(string)
	if id == "" {
		t.Fatalf("missing id in %v", rec)
	}
	freight := category(t, rec, "freight")
	items, _ := freight["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected one seeded freight item, got %v", freight["items"])
	}
	itemID := items[0].(map[string]interface{})["id"].(string)

	rec = do(t, r, http.MethodPatch, "/v1/operational-costs/"+id+"/categories/freight/items/"+itemID,
		`{"field":"actual_amount","value":"12000000"}`, http.StatusOK)
	freight = category(t, rec, "freight")
	if freight["status"] != string(entities.VarianceStatusCritical) {
		t.Fatalf("expected critical freight, got %v", freight["status"])
	}

	v := do(t, r, http.MethodGet, "/v1/operational-costs/"+id+"/variance", "", http.StatusOK)
	if v["record_id"] != id {
		t.Fatalf("unexpected variance body %v", v)
	}

	rec = do(t, r, http.MethodPost, "/v1/operational-costs/"+id+"/approval/advance", "", http.StatusOK)
	if rec["current_approval_stage"].(float64) != 1 {
		t.Fatalf("unexpected stage %v", rec["current_approval_stage"])
	}

	do(t, r, http.MethodPost, "/v1/operational-costs/"+id+"/awbs", `{"awb_id":"awb-1"}`, http.StatusOK)
	summary := do(t, r, http.MethodGet, "/v1/operational-costs/"+id+"/awbs/summary", "", http.StatusOK)
	if summary["record_id"] != id {
		t.Fatalf("unexpected summary %v", summary)
	}

	do(t, r, http.MethodDelete, "/v1/operational-costs/"+id, "", http.StatusNoContent)
	do(t, r, http.MethodGet, "/v1/operational-costs/"+id, "", http.StatusNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notifications?limit=50", nil))
	var feed []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(feed) == 0 || feed[0]["action"] != "delete" {
		t.Fatalf("expected newest notification to be delete, got %v", feed)
	}
}

func TestRouter_RejectsUnknownCategory(t *testing.T) {
	r := memoryRouter(t)
	rec := do(t, r, http.MethodPost, "/v1/operational-costs", `{}`, http.StatusCreated)
	id := rec["id"].(string)

	do(t, r, http.MethodPost, "/v1/operational-costs/"+id+"/categories/customs/items", `{"description":"x"}`, http.StatusBadRequest)
}
