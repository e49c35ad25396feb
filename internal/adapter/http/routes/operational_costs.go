package routes

import (
	"freight_opcost/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOperationalCosts   = "/operational-costs"
	PathApprovalStages     = "/approval-stages"
	PathApprovedQuotations = "/quotations/approved"
	PathNotifications      = "/notifications"
)

func addOperationalCostRoutes(rg *gin.RouterGroup, h *handlers.OperationalCostHandler) {
	rg.GET(PathApprovalStages, h.ListApprovalStages)
	rg.GET(PathApprovedQuotations, h.ListApprovedQuotations)

	records := rg.Group(PathOperationalCosts)
	{
		records.POST("", h.Create)
		records.GET("", h.List)
		records.GET("/:id", h.GetByID)
		records.DELETE("/:id", h.Delete)

		records.PUT("/:id/quotation", h.SelectQuotation)
		records.PUT("/:id/thresholds", h.SetThresholds)
		records.PATCH("/:id/status", h.SetStatus)
		records.POST("/:id/approval/advance", h.AdvanceApproval)
		records.POST("/:id/approval/retreat", h.RetreatApproval)
		records.GET("/:id/variance", h.GetVariance)
	}

	categories := records.Group("/:id/categories/:category")
	{
		// Manual mode: replaces the category items with one synthetic line.
		categories.PUT("/costs", h.SetCategoryCosts)
		categories.POST("/items", h.AddCostItem)
		categories.PATCH("/items/:item_id", h.UpdateCostItem)
		categories.DELETE("/items/:item_id", h.RemoveCostItem)
	}

	milestones := records.Group("/:id/milestones")
	{
		milestones.POST("", h.AddMilestone)
		milestones.PUT("/:milestone_id", h.UpdateMilestone)
		milestones.DELETE("/:milestone_id", h.RemoveMilestone)
	}

	awbs := records.Group("/:id/awbs")
	{
		awbs.POST("", h.LinkAWB)
		awbs.GET("/summary", h.GetAWBSummary)
		awbs.DELETE("/:awb_id", h.UnlinkAWB)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	rg.GET(PathNotifications, h.List)
}
