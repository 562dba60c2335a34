package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-marketplace-backend/internal/database"
	"fashion-marketplace-backend/internal/models"
)

type OrdersHandler struct {
	dbClient *database.Client
}

func NewOrdersHandler(dbClient *database.Client) *OrdersHandler {
	return &OrdersHandler{dbClient: dbClient}
}

func (h *OrdersHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status filter"})
		return
	}

	orders, err := h.dbClient.ListOrders(status)
	if err != nil {
		respondError(c, "list orders", err)
		return
	}

	resp := models.OrderListResponse{Orders: make([]models.OrderResponse, len(orders))}
	for i := range orders {
		resp.Orders[i] = toOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.dbClient.GetOrder(orderID)
	if err != nil {
		respondError(c, "get order", err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "order_id")
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order status"})
		return
	}

	order, err := h.dbClient.UpdateOrderStatus(orderID, models.OrderStatus(req.Status))
	if err != nil {
		respondError(c, "update order status", err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ListMyOrders shows a designer the orders on their own products.
func (h *OrdersHandler) ListMyOrders(c *gin.Context) {
	designerID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.dbClient.ListOrdersByDesigner(designerID)
	if err != nil {
		respondError(c, "list orders", err)
		return
	}

	resp := models.OrderListResponse{Orders: make([]models.OrderResponse, len(orders))}
	for i := range orders {
		resp.Orders[i] = toOrderResponse(&orders[i])
	}
	c.JSON(http.StatusOK, resp)
}
