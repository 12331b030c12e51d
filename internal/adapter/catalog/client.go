package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/outsourcing/internal/domain/model"
)

const (
	defaultRetryAfter = 5 * time.Second
	maxParallel       = 4
)

// TooManyRequestsError represents rate limiting signal from a supplier catalog.
type TooManyRequestsError struct {
	SupplierID int64
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("catalog rate limited supplier %d, retry after %s", e.SupplierID, e.RetryAfter)
}

// HTTPClient asks a supplier catalog API for product quotes.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *zap.Logger
}

// productsResponse mirrors the catalog products payload.
type productsResponse struct {
	Products []productPayload `json:"products"`
}

type productPayload struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	Availability   string  `json:"availability"`
	DeliveryDays   int     `json:"deliveryDays"`
}

// NewHTTPClient creates catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *zap.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Quotes queries every supplier concurrently. The first failure cancels the
// remaining requests; results keep supplier order.
func (c *HTTPClient) Quotes(ctx context.Context, query string, suppliers []model.Supplier) ([]model.SupplierQuotes, error) {
	result := make([]model.SupplierQuotes, len(suppliers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, sup := range suppliers {
		g.Go(func() error {
			quotes, err := c.fetch(ctx, query, sup)
			if err != nil {
				return err
			}
			result[i] = model.SupplierQuotes{Supplier: sup, Products: quotes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) fetch(ctx context.Context, query string, sup model.Supplier) ([]model.Quote, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/suppliers/", strconv.FormatInt(sup.ID, 10), "products")
	endpoint.RawQuery = url.Values{"q": []string{query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data productsResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, fmt.Errorf("decode catalog response: %w", err)
		}
		quotes := make([]model.Quote, 0, len(data.Products))
		for _, p := range data.Products {
			quotes = append(quotes, toQuote(p, sup))
		}
		return quotes, nil
	case http.StatusNoContent:
		return []model.Quote{}, nil
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{
			SupplierID: sup.ID,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("catalog request failed",
			zap.Int64("supplier_id", sup.ID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

func toQuote(p productPayload, sup model.Supplier) model.Quote {
	q := model.Quote{
		Name:           p.Name,
		Description:    p.Description,
		EstimatedPrice: p.EstimatedPrice,
		Availability:   model.Availability(p.Availability),
		DeliveryDays:   p.DeliveryDays,
	}
	if q.Availability != model.AvailabilityInStock {
		q.Availability = model.AvailabilityOrderRequired
	}
	if q.DeliveryDays <= 0 {
		q.DeliveryDays = sup.AvgDeliveryDays
	}
	return q
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return defaultRetryAfter
}
