package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/outsourcing/internal/server/http/dto"
)

// DecompressRequest transparently handles gzip encoded request bodies.
// Response compression is left to gin-contrib/gzip.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip body"})
			return
		}
		defer reader.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
