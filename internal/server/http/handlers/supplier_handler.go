package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

// SupplierHandler manages supplier registry endpoints.
type SupplierHandler struct {
	facade SupplierFacade
}

// NewSupplierHandler constructs SupplierHandler.
func NewSupplierHandler(facade SupplierFacade) *SupplierHandler {
	return &SupplierHandler{facade: facade}
}

// List handles GET /api/suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	filter := model.SupplierFilter{
		Status:      model.SupplierStatus(c.Query("status")),
		City:        c.Query("city"),
		Reliability: model.Reliability(c.Query("reliability")),
		Specialty:   c.Query("specialty"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		badRequest(c, "unknown status")
		return
	}
	if filter.Reliability != "" && !filter.Reliability.Valid() {
		badRequest(c, "unknown reliability")
		return
	}

	suppliers, err := h.facade.GetSuppliers(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSupplierResponses(suppliers))
}

// Create handles POST /api/suppliers.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed supplier payload")
		return
	}

	created, err := h.facade.AddSupplier(c.Request.Context(), model.Supplier{
		Name:            req.Name,
		Contact:         req.Contact,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		City:            req.City,
		Reliability:     model.Reliability(req.Reliability),
		AvgDeliveryDays: req.AvgDeliveryDays,
		Specialties:     req.Specialties,
		Status:          model.SupplierStatus(req.Status),
		Rating:          req.Rating,
		Notes:           req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSupplierResponse(*created))
}

// Update handles PATCH /api/suppliers/:id.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid supplier id")
		return
	}
	var req dto.SupplierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed supplier payload")
		return
	}

	update := model.SupplierUpdate{
		Name:            req.Name,
		Contact:         req.Contact,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		City:            req.City,
		AvgDeliveryDays: req.AvgDeliveryDays,
		Specialties:     req.Specialties,
		Rating:          req.Rating,
		Notes:           req.Notes,
	}
	if req.Reliability != nil {
		r := model.Reliability(*req.Reliability)
		update.Reliability = &r
	}
	if req.Status != nil {
		s := model.SupplierStatus(*req.Status)
		update.Status = &s
	}

	updated, found, err := h.facade.UpdateSupplier(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		notFound(c, "supplier")
		return
	}
	c.JSON(http.StatusOK, toSupplierResponse(*updated))
}

// Suitable handles GET /api/suppliers/suitable.
func (h *SupplierHandler) Suitable(c *gin.Context) {
	suppliers, err := h.facade.GetSuitableSuppliers(c.Request.Context(), c.Query("name"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSupplierResponses(suppliers))
}
