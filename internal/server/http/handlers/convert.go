package handlers

import (
	"github.com/polkiloo/outsourcing/internal/domain/model"
	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

func toSupplierResponse(s model.Supplier) dto.SupplierResponse {
	specialties := s.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.SupplierResponse{
		ID:              s.ID,
		Name:            s.Name,
		Contact:         s.Contact,
		Phone:           s.Phone,
		Email:           s.Email,
		Address:         s.Address,
		City:            s.City,
		Reliability:     string(s.Reliability),
		AvgDeliveryDays: s.AvgDeliveryDays,
		Specialties:     specialties,
		Status:          string(s.Status),
		Rating:          s.Rating,
		Notes:           s.Notes,
	}
}

func toSupplierResponses(suppliers []model.Supplier) []dto.SupplierResponse {
	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		resp = append(resp, toSupplierResponse(s))
	}
	return resp
}

func toProductDTO(p model.Product) dto.Product {
	out := dto.Product{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		EstimatedPrice:    p.EstimatedPrice,
		SupplierID:        p.SupplierID,
		SupplierName:      p.SupplierName,
		EstimatedDelivery: p.EstimatedDelivery,
		Category:          p.Category,
		Specifications:    p.Specifications,
		Images:            p.Images,
	}
	if !p.CreatedAt.IsZero() {
		created := p.CreatedAt
		out.CreatedAt = &created
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

func fromProductDTO(p dto.Product) model.Product {
	out := model.Product{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		EstimatedPrice:    p.EstimatedPrice,
		SupplierID:        p.SupplierID,
		SupplierName:      p.SupplierName,
		EstimatedDelivery: p.EstimatedDelivery,
		Category:          p.Category,
		Specifications:    p.Specifications,
		Images:            p.Images,
	}
	if p.CreatedAt != nil {
		out.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		QuotationID:      o.QuotationID,
		OrderID:          o.SalesOrderID,
		CustomerID:       o.CustomerID,
		CustomerName:     o.CustomerName,
		Product:          toProductDTO(o.Product),
		Quantity:         o.Quantity,
		AgreedPrice:      o.AgreedPrice,
		TotalAmount:      o.TotalAmount,
		Status:           string(o.Status),
		OrderDate:        o.OrderDate,
		ExpectedDelivery: o.ExpectedDelivery,
		ActualDelivery:   o.ActualDelivery,
		PaymentStatus:    string(o.PaymentStatus),
		AdvanceAmount:    o.AdvanceAmount,
		SupplierOrderRef: o.SupplierOrderRef,
		TrackingInfo:     o.TrackingInfo,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toSearchResults(results []model.SupplierQuotes) []dto.SearchResultResponse {
	resp := make([]dto.SearchResultResponse, 0, len(results))
	for _, r := range results {
		quotes := make([]dto.QuoteResponse, 0, len(r.Products))
		for _, q := range r.Products {
			quotes = append(quotes, dto.QuoteResponse{
				Name:           q.Name,
				Description:    q.Description,
				EstimatedPrice: q.EstimatedPrice,
				Availability:   string(q.Availability),
				DeliveryDays:   q.DeliveryDays,
			})
		}
		resp = append(resp, dto.SearchResultResponse{
			Supplier: toSupplierResponse(r.Supplier),
			Products: quotes,
		})
	}
	return resp
}
