package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/logger"
	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

const dateLayout = "2006-01-02"

// respondError maps domain errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotFound), errors.Is(err, domainErrors.ErrSupplierNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context(), zap.NewNop()).Error("request failed", zap.Error(err))
		c.JSON(status, dto.ErrorResponse{Error: http.StatusText(status)})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: what + " not found"})
}

// parseDate accepts an RFC 3339 timestamp or a plain date.
// A plain date used as an upper bound covers the whole day.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func optionalDate(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalInt64(c *gin.Context, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return &v, nil
}
