package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

// OrderHandler manages outsourced product and order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// CreateProduct handles POST /api/products.
func (h *OrderHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed product payload")
		return
	}
	product, err := h.facade.CreateOutsourcedProduct(c.Request.Context(), model.ProductInput{
		Name:           req.Name,
		Description:    req.Description,
		EstimatedPrice: req.EstimatedPrice,
		SupplierID:     req.SupplierID,
		Category:       req.Category,
		Specifications: req.Specifications,
		Images:         req.Images,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductDTO(*product))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed order payload")
		return
	}

	in := model.OrderInput{
		QuotationID:      req.QuotationID,
		SalesOrderID:     req.OrderID,
		CustomerID:       req.CustomerID,
		CustomerName:     req.CustomerName,
		Product:          fromProductDTO(req.Product),
		Quantity:         req.Quantity,
		AgreedPrice:      req.AgreedPrice,
		AdvanceAmount:    req.AdvanceAmount,
		SupplierOrderRef: req.SupplierOrderRef,
		TrackingInfo:     req.TrackingInfo,
		Notes:            req.Notes,
	}
	if req.ExpectedDelivery != "" {
		expected, err := parseDate(req.ExpectedDelivery, false)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		in.ExpectedDelivery = expected
	}

	order, err := h.facade.CreateOutsourcedOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Search: strings.TrimSpace(c.Query("search")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		badRequest(c, "unknown status")
		return
	}

	var err error
	if filter.CustomerID, err = optionalInt64(c, "customerId"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if filter.SupplierID, err = optionalInt64(c, "supplierId"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if filter.DateFrom, err = optionalDate(c, "dateFrom", false); err != nil {
		badRequest(c, err.Error())
		return
	}
	if filter.DateTo, err = optionalDate(c, "dateTo", true); err != nil {
		badRequest(c, err.Error())
		return
	}

	orders, err := h.facade.GetOutsourcedOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Update handles PATCH /api/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed order payload")
		return
	}

	update := model.OrderUpdate{
		AdvanceAmount:    req.AdvanceAmount,
		SupplierOrderRef: req.SupplierOrderRef,
		TrackingInfo:     req.TrackingInfo,
		Notes:            req.Notes,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		update.Status = &status
	}
	if req.PaymentStatus != nil {
		payment := model.PaymentStatus(*req.PaymentStatus)
		update.PaymentStatus = &payment
	}
	if req.ExpectedDelivery != nil {
		t, err := parseDate(*req.ExpectedDelivery, false)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		update.ExpectedDelivery = &t
	}
	if req.ActualDelivery != nil {
		t, err := parseDate(*req.ActualDelivery, false)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		update.ActualDelivery = &t
	}

	h.respondUpdate(c, func() (*model.Order, bool, error) {
		return h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), update)
	})
}

// UpdateStatus handles POST /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		badRequest(c, "status is required")
		return
	}
	h.respondUpdate(c, func() (*model.Order, bool, error) {
		return h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), req.Notes)
	})
}

func (h *OrderHandler) respondUpdate(c *gin.Context, update func() (*model.Order, bool, error)) {
	order, found, err := update()
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}
