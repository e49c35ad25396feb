package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight_opcost/internal/adapter/http/handlers/mocks"
	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"
	"freight_opcost/internal/usecase"
	"freight_opcost/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIOperationalCostUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOperationalCostUseCase(ctrl)
	h := NewOperationalCostHandler(uc)

	r := gin.New()
	r.GET("/v1/approval-stages", h.ListApprovalStages)
	r.GET("/v1/quotations/approved", h.ListApprovedQuotations)
	r.POST("/v1/operational-costs", h.Create)
	r.GET("/v1/operational-costs", h.List)
	r.GET("/v1/operational-costs/:id", h.GetByID)
	r.DELETE("/v1/operational-costs/:id", h.Delete)
	r.GET("/v1/operational-costs/:id/variance", h.GetVariance)
	r.PUT("/v1/operational-costs/:id/quotation", h.SelectQuotation)
	r.PUT("/v1/operational-costs/:id/thresholds", h.SetThresholds)
	r.PATCH("/v1/operational-costs/:id/status", h.SetStatus)
	r.POST("/v1/operational-costs/:id/approval/advance", h.AdvanceApproval)
	r.POST("/v1/operational-costs/:id/approval/retreat", h.RetreatApproval)
	r.PUT("/v1/operational-costs/:id/categories/:category/costs", h.SetCategoryCosts)
	r.POST("/v1/operational-costs/:id/categories/:category/items", h.AddCostItem)
	r.PATCH("/v1/operational-costs/:id/categories/:category/items/:item_id", h.UpdateCostItem)
	r.DELETE("/v1/operational-costs/:id/categories/:category/items/:item_id", h.RemoveCostItem)
	r.POST("/v1/operational-costs/:id/milestones", h.AddMilestone)
	r.PUT("/v1/operational-costs/:id/milestones/:milestone_id", h.UpdateMilestone)
	r.DELETE("/v1/operational-costs/:id/milestones/:milestone_id", h.RemoveMilestone)
	r.POST("/v1/operational-costs/:id/awbs", h.LinkAWB)
	r.DELETE("/v1/operational-costs/:id/awbs/:awb_id", h.UnlinkAWB)
	r.GET("/v1/operational-costs/:id/awbs/summary", h.GetAWBSummary)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body.Code
}

func sampleRecord() entities.OperationalCostRecord {
	return entities.OperationalCostRecord{
		ID:                 "oc-1",
		QuotationNumber:    "Q-2024-001",
		Status:             entities.RecordStatusActive,
		VarianceThresholds: entities.DefaultVarianceThresholds(),
		CostCategories: map[entities.CategoryKey]entities.CategoryState{
			entities.CategoryFreight: {
				QuotationCost: decimal.NewFromInt(10000000),
				ActualCost:    decimal.NewFromInt(12000000),
				Status:        entities.VarianceStatusCritical,
				Items:         []entities.CostItem{{ID: "it-1", Description: "Air freight"}},
			},
		},
	}
}

func TestOperationalCostHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodPost, "/v1/operational-costs", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial thresholds", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodPost, "/v1/operational-costs", `{"variance_thresholds":{"warning":"5"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_REQUEST" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("created from quotation", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			CreateRecord(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, in usecase.CreateRecordInput) (entities.OperationalCostRecord, error) {
				if in.QuotationID != "q-1" {
					t.Errorf("unexpected quotation id %q", in.QuotationID)
				}
				if in.Thresholds == nil || !in.Thresholds.Critical.Equal(decimal.NewFromInt(15)) {
					t.Errorf("unexpected thresholds %+v", in.Thresholds)
				}
				return sampleRecord(), nil
			})

		w := serve(r, http.MethodPost, "/v1/operational-costs", `{"quotation_id":"q-1","variance_thresholds":{"warning":"7.5","critical":"15"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "oc-1" {
			t.Fatalf("unexpected body %v", body)
		}
		if cats, ok := body["cost_categories"].([]interface{}); !ok || len(cats) != 4 {
			t.Fatalf("expected four categories, got %v", body["cost_categories"])
		}
	})

	t.Run("unknown quotation", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(entities.OperationalCostRecord{}, usecase.ErrQuotationNotFound)

		w := serve(r, http.MethodPost, "/v1/operational-costs", `{"quotation_id":"missing"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOperationalCostHandler_ReadEndpoints(t *testing.T) {
	t.Run("approval stages", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodGet, "/v1/approval-stages", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var stages []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &stages); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(stages) != len(entities.ApprovalStages()) {
			t.Fatalf("unexpected stages %v", stages)
		}
	})

	t.Run("approved quotations", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().ListApprovedQuotations(gomock.Any()).Return([]entities.Quotation{{ID: "q-1", QuotationNumber: "Q-1"}}, nil)

		w := serve(r, http.MethodGet, "/v1/quotations/approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().List(gomock.Any()).Return([]entities.OperationalCostRecord{sampleRecord()}, nil)

		w := serve(r, http.MethodGet, "/v1/operational-costs", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "oc-9").Return(entities.OperationalCostRecord{}, usecase.ErrRecordNotFound)

		w := serve(r, http.MethodGet, "/v1/operational-costs/oc-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "RECORD_NOT_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("variance", func(t *testing.T) {
		r, uc := newTestRouter(t)
		rec := sampleRecord()
		uc.EXPECT().GetVariance(gomock.Any(), "oc-1").Return(usecase.VarianceReport{
			RecordID:   rec.ID,
			Categories: rec.CostCategories,
			Thresholds: rec.VarianceThresholds,
		}, nil)

		w := serve(r, http.MethodGet, "/v1/operational-costs/oc-1/variance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("awb summary", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().GetAWBSummary(gomock.Any(), "oc-1").Return(usecase.AWBReport{RecordID: "oc-1"}, nil)

		w := serve(r, http.MethodGet, "/v1/operational-costs/oc-1/awbs/summary", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOperationalCostHandler_Delete(t *testing.T) {
	r, uc := newTestRouter(t)
	uc.EXPECT().Delete(gomock.Any(), "oc-1").Return(nil)

	w := serve(r, http.MethodDelete, "/v1/operational-costs/oc-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOperationalCostHandler_CostItems(t *testing.T) {
	t.Run("add item", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			AddCostItem(gomock.Any(), "oc-1", entities.CategoryFreight, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, _ entities.CategoryKey, d variance.CostItemDraft) (entities.OperationalCostRecord, entities.CostItem, error) {
				if d.Description != "Fuel surcharge" || d.VendorName != "Carrier A" {
					t.Errorf("unexpected draft %+v", d)
				}
				return sampleRecord(), entities.CostItem{ID: "it-2", Description: d.Description}, nil
			})

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/categories/freight/items", `{"description":"Fuel surcharge","vendor_name":"Carrier A"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			AddCostItem(gomock.Any(), "oc-1", entities.CategoryKey("customs"), gomock.Any()).
			Return(entities.OperationalCostRecord{}, entities.CostItem{}, variance.ErrInvalidCategory)

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/categories/customs/items", `{"description":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CATEGORY" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("update amount", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			UpdateCostItem(gomock.Any(), "oc-1", entities.CategoryFreight, "it-1", variance.SetActualAmount{Value: decimal.NewFromInt(12000000)}).
			Return(sampleRecord(), nil)

		w := serve(r, http.MethodPatch, "/v1/operational-costs/oc-1/categories/freight/items/it-1", `{"field":"actual_amount","value":"12000000"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown field is rejected before the use case", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodPatch, "/v1/operational-costs/oc-1/categories/freight/items/it-1", `{"field":"color","value":"red"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_COST_ITEM_UPDATE" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("bad amount", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodPatch, "/v1/operational-costs/oc-1/categories/freight/items/it-1", `{"field":"amount","value":"abc"}`)
		if code := errorCode(t, w); code != "INVALID_AMOUNT" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			UpdateCostItem(gomock.Any(), "oc-1", entities.CategoryFreight, "nope", gomock.Any()).
			Return(entities.OperationalCostRecord{}, variance.ErrCostItemNotFound)

		w := serve(r, http.MethodPatch, "/v1/operational-costs/oc-1/categories/freight/items/nope", `{"field":"approved","value":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().RemoveCostItem(gomock.Any(), "oc-1", entities.CategoryFreight, "it-1").Return(sampleRecord(), nil)

		w := serve(r, http.MethodDelete, "/v1/operational-costs/oc-1/categories/freight/items/it-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("manual category costs", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			SetCategoryCosts(gomock.Any(), "oc-1", entities.CategoryOrigin, decimal.NewFromInt(100), decimal.NewFromInt(90)).
			Return(sampleRecord(), nil)

		w := serve(r, http.MethodPut, "/v1/operational-costs/oc-1/categories/origin/costs", `{"quotation_cost":"100","actual_cost":"90"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOperationalCostHandler_Workflow(t *testing.T) {
	t.Run("advance blocked", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().AdvanceApproval(gomock.Any(), "oc-1").Return(entities.OperationalCostRecord{}, usecase.ErrApprovalBlocked)

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/approval/advance", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("retreat", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().RetreatApproval(gomock.Any(), "oc-1").Return(sampleRecord(), nil)

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/approval/retreat", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("thresholds", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().
			SetThresholds(gomock.Any(), "oc-1", entities.VarianceThresholds{Warning: decimal.NewFromInt(20), Critical: decimal.NewFromInt(10)}).
			Return(entities.OperationalCostRecord{}, variance.ErrInvalidThresholds)

		w := serve(r, http.MethodPut, "/v1/operational-costs/oc-1/thresholds", `{"warning":"20","critical":"10"}`)
		if code := errorCode(t, w); code != "INVALID_THRESHOLDS" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("status", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().SetStatus(gomock.Any(), "oc-1", entities.RecordStatusCompleted).Return(sampleRecord(), nil)

		w := serve(r, http.MethodPatch, "/v1/operational-costs/oc-1/status", `{"status":"Completed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("select quotation trims id", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().SelectQuotation(gomock.Any(), "oc-1", "q-2").Return(sampleRecord(), nil)

		w := serve(r, http.MethodPut, "/v1/operational-costs/oc-1/quotation", `{"quotation_id":"  q-2 "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOperationalCostHandler_MilestonesAndAWBs(t *testing.T) {
	t.Run("add milestone", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().AddMilestone(gomock.Any(), "oc-1", gomock.Any()).Return(sampleRecord(), entities.Milestone{ID: "m-1", Title: "Booking"}, nil)

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/milestones", `{"title":"Booking","completion_percentage":0}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("milestone missing title", func(t *testing.T) {
		r, _ := newTestRouter(t)
		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/milestones", `{"description":"no title"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update milestone out of range", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().UpdateMilestone(gomock.Any(), "oc-1", "m-1", gomock.Any()).Return(entities.OperationalCostRecord{}, variance.ErrInvalidCompletion)

		w := serve(r, http.MethodPut, "/v1/operational-costs/oc-1/milestones/m-1", `{"title":"Booking","completion_percentage":120}`)
		if code := errorCode(t, w); code != "INVALID_MILESTONE" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("remove milestone", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().RemoveMilestone(gomock.Any(), "oc-1", "m-1").Return(sampleRecord(), nil)

		w := serve(r, http.MethodDelete, "/v1/operational-costs/oc-1/milestones/m-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("link awb", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().LinkAWB(gomock.Any(), "oc-1", "awb-1").Return(sampleRecord(), nil)

		w := serve(r, http.MethodPost, "/v1/operational-costs/oc-1/awbs", `{"awb_id":"awb-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unlink awb", func(t *testing.T) {
		r, uc := newTestRouter(t)
		uc.EXPECT().UnlinkAWB(gomock.Any(), "oc-1", "awb-1").Return(sampleRecord(), nil)

		w := serve(r, http.MethodDelete, "/v1/operational-costs/oc-1/awbs/awb-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapOperationalCostError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrInvalidRecordID, http.StatusBadRequest, "INVALID_REQUEST"},
		{variance.ErrInvalidRecordStatus, http.StatusBadRequest, "INVALID_STATUS"},
		{usecase.ErrInvalidAWBID, http.StatusBadRequest, "INVALID_AWB_ID"},
		{variance.ErrMilestoneNotFound, http.StatusNotFound, "MILESTONE_NOT_FOUND"},
		{fmt.Errorf("%w: throttled", usecase.ErrPersistenceFailure), http.StatusServiceUnavailable, "PERSISTENCE_FAILURE"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapOperationalCostError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Errorf("%v: got %d %s, want %d %s", tc.err, appErr.HTTPStatus, appErr.Code, tc.status, tc.code)
		}
	}
}
