package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves external product searches.
type SearchHandler struct {
	facade SearchFacade
}

func NewSearchHandler(facade SearchFacade) *SearchHandler {
	return &SearchHandler{facade: facade}
}

// Search handles GET /api/search.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		badRequest(c, "query is required")
		return
	}
	results, err := h.facade.SearchExternalProducts(c.Request.Context(), query, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSearchResults(results))
}
