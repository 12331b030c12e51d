package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

type StatisticsHandler struct {
	facade StatisticsFacade
}

func NewStatisticsHandler(facade StatisticsFacade) *StatisticsHandler {
	return &StatisticsHandler{facade: facade}
}

// Get handles GET /api/statistics.
func (h *StatisticsHandler) Get(c *gin.Context) {
	stats, err := h.facade.GetOrderStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatisticsResponse{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalValue:      stats.TotalValue,
		AvgDeliveryTime: stats.AvgDeliveryTime,
	})
}
