package handlers

import (
	"errors"
	"log"
	"net/http"

	request "freight_opcost/internal/adapter/http/dto/request"
	response "freight_opcost/internal/adapter/http/dto/response"
	"freight_opcost/internal/domain/entities"
	"freight_opcost/internal/domain/variance"
	"freight_opcost/internal/usecase"
	"freight_opcost/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// OperationalCostHandler handles HTTP requests for operational cost records.
type OperationalCostHandler struct {
	usecase usecase.IOperationalCostUseCase
}

func NewOperationalCostHandler(uc usecase.IOperationalCostUseCase) *OperationalCostHandler {
	return &OperationalCostHandler{usecase: uc}
}

func (h *OperationalCostHandler) ListApprovalStages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromApprovalStages(entities.ApprovalStages()))
}

func (h *OperationalCostHandler) ListApprovedQuotations(c *gin.Context) {
	qs, err := h.usecase.ListApprovedQuotations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

func (h *OperationalCostHandler) Create(c *gin.Context) {
	var payload request.CreateOperationalCostRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	th, err := payload.ResolveThresholds()
	if err != nil {
		writeError(c, err)
		return
	}

	rec, err := h.usecase.CreateRecord(c.Request.Context(), usecase.CreateRecordInput{
		QuotationID: payload.QuotationID,
		Thresholds:  th,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(rec))
}

func (h *OperationalCostHandler) List(c *gin.Context) {
	recs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecords(recs))
}

func (h *OperationalCostHandler) GetByID(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(rec))
}

func (h *OperationalCostHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OperationalCostHandler) GetVariance(c *gin.Context) {
	rep, err := h.usecase.GetVariance(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVarianceReport(rep))
}

func (h *OperationalCostHandler) SelectQuotation(c *gin.Context) {
	var payload request.SelectQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondRecord(c)(h.usecase.SelectQuotation(c.Request.Context(), c.Param("id"), payload.ResolveQuotationID()))
}

func (h *OperationalCostHandler) SetThresholds(c *gin.Context) {
	var payload request.ThresholdsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondRecord(c)(h.usecase.SetThresholds(c.Request.Context(), c.Param("id"), payload.Resolve()))
}

func (h *OperationalCostHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondRecord(c)(h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus()))
}

func (h *OperationalCostHandler) AdvanceApproval(c *gin.Context) {
	h.respondRecord(c)(h.usecase.AdvanceApproval(c.Request.Context(), c.Param("id")))
}

func (h *OperationalCostHandler) RetreatApproval(c *gin.Context) {
	h.respondRecord(c)(h.usecase.RetreatApproval(c.Request.Context(), c.Param("id")))
}

func (h *OperationalCostHandler) SetCategoryCosts(c *gin.Context) {
	var payload request.CategoryCostsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	quotationCost, actualCost := payload.Resolve()
	h.respondRecord(c)(h.usecase.SetCategoryCosts(c.Request.Context(), c.Param("id"), categoryParam(c), quotationCost, actualCost))
}

func (h *OperationalCostHandler) AddCostItem(c *gin.Context) {
	var payload request.CostItemCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	rec, item, err := h.usecase.AddCostItem(c.Request.Context(), c.Param("id"), categoryParam(c), payload.ResolveDraft())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.CostItemCreatedResponse{
		Item:   response.FromCostItem(item),
		Record: response.FromRecord(rec),
	})
}

func (h *OperationalCostHandler) UpdateCostItem(c *gin.Context) {
	var payload request.CostItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	upd, err := payload.ResolveUpdate()
	if err != nil {
		writeError(c, err)
		return
	}
	h.respondRecord(c)(h.usecase.UpdateCostItem(c.Request.Context(), c.Param("id"), categoryParam(c), c.Param("item_id"), upd))
}

func (h *OperationalCostHandler) RemoveCostItem(c *gin.Context) {
	h.respondRecord(c)(h.usecase.RemoveCostItem(c.Request.Context(), c.Param("id"), categoryParam(c), c.Param("item_id")))
}

func (h *OperationalCostHandler) AddMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	rec, m, err := h.usecase.AddMilestone(c.Request.Context(), c.Param("id"), payload.ResolveDraft())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.MilestoneCreatedResponse{
		Milestone: response.FromMilestone(m),
		Record:    response.FromRecord(rec),
	})
}

func (h *OperationalCostHandler) UpdateMilestone(c *gin.Context) {
	var payload request.MilestoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondRecord(c)(h.usecase.UpdateMilestone(c.Request.Context(), c.Param("id"), c.Param("milestone_id"), payload.ResolveDraft()))
}

func (h *OperationalCostHandler) RemoveMilestone(c *gin.Context) {
	h.respondRecord(c)(h.usecase.RemoveMilestone(c.Request.Context(), c.Param("id"), c.Param("milestone_id")))
}

func (h *OperationalCostHandler) LinkAWB(c *gin.Context) {
	var payload request.LinkAWBRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondRecord(c)(h.usecase.LinkAWB(c.Request.Context(), c.Param("id"), payload.AWBID))
}

func (h *OperationalCostHandler) UnlinkAWB(c *gin.Context) {
	h.respondRecord(c)(h.usecase.UnlinkAWB(c.Request.Context(), c.Param("id"), c.Param("awb_id")))
}

func (h *OperationalCostHandler) GetAWBSummary(c *gin.Context) {
	rep, err := h.usecase.GetAWBSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAWBReport(rep))
}

// respondRecord writes a 200 with the record or the mapped error.
func (h *OperationalCostHandler) respondRecord(c *gin.Context) func(entities.OperationalCostRecord, error) {
	return func(rec entities.OperationalCostRecord, err error) {
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromRecord(rec))
	}
}

func categoryParam(c *gin.Context) entities.CategoryKey {
	return entities.CategoryKey(c.Param("category"))
}

func writeError(c *gin.Context, err error) {
	appErr := mapOperationalCostError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[opcost][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOperationalCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID), errors.Is(err, request.ErrInvalidPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Cost category must be origin, freight, destination or additional", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidThresholds):
		return pkg.NewDomainErrorSimple("INVALID_THRESHOLDS", "Thresholds must be non-negative and critical must not be below warning", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a decimal number", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidItemUpdate), errors.Is(err, request.ErrUnknownItemField):
		return pkg.NewDomainErrorSimple("INVALID_COST_ITEM_UPDATE", "Unsupported cost item update", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidMilestone), errors.Is(err, variance.ErrInvalidCompletion):
		return pkg.NewDomainErrorSimple("INVALID_MILESTONE", "Invalid milestone", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidRecordStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be Active, Completed or Cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAWBID):
		return pkg.NewDomainErrorSimple("INVALID_AWB_ID", "Invalid AWB id", http.StatusBadRequest)
	case errors.Is(err, variance.ErrInvalidQuotation):
		return pkg.NewDomainErrorSimple("INVALID_QUOTATION", "Invalid quotation", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Operational cost record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Approved quotation not found", http.StatusNotFound)
	case errors.Is(err, variance.ErrCostItemNotFound):
		return pkg.NewDomainErrorSimple("COST_ITEM_NOT_FOUND", "Cost item not found", http.StatusNotFound)
	case errors.Is(err, variance.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalBlocked):
		return pkg.NewDomainErrorSimple("APPROVAL_BLOCKED", "Critical variance must be resolved before management approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage is unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
