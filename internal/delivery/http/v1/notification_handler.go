package v1

import (
	"net/http"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/notifier"
	"peso-job-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
	hub            *notifier.Hub
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewNotificationHandler registers notification routes including the
// real-time websocket endpoint.
func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase, hub *notifier.Hub) {
	handler := &NotificationHandler{notificationUC: notificationUC, hub: hub}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.ListMine)
		notifications.POST("/:id/read", handler.MarkRead)
		notifications.GET("/ws", handler.Connect)
	}
}

// ListMine godoc
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Param        page      query  int  false  "Page"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListMine(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyUserID))
	page, pageSize := pageParams(c)

	notifications, total, err := h.notificationUC.ListMine(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications retrieved", response.Paginated{
		Items: notifications, Total: total, Page: page, PageSize: pageSize,
	})
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyUserID))

	if err := h.notificationUC.MarkRead(c.Request.Context(), accountID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked read", nil)
}

// Connect upgrades to a websocket for real-time notification pushes.
// Auth happened in the middleware; the connection is bound to the
// authenticated account.
func (h *NotificationHandler) Connect(c *gin.Context) {
	accountID := c.GetString(string(domain.KeyUserID))

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Warn("Websocket upgrade failed", "account_id", accountID, "error", err)
		return
	}

	client := notifier.NewClient(h.hub, conn, accountID)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
