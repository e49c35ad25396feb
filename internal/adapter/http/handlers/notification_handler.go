package handlers

import (
	"net/http"
	"strconv"

	response "freight_opcost/internal/adapter/http/dto/response"
	"freight_opcost/internal/domain/entities"
	"freight_opcost/pkg"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 20

// NotificationFeed lists recently emitted notifications, newest first.
type NotificationFeed interface {
	Recent(limit int) []entities.Notification
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

func (h *NotificationHandler) List(c *gin.Context) {
	limit := defaultNotificationLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "limit must be a positive integer", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, response.FromNotifications(h.feed.Recent(limit)))
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
