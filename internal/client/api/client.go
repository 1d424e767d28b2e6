package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/countries-explorer/internal/models"
)

// DefaultBaseURL is the public REST Countries endpoint
const DefaultBaseURL = "https://restcountries.com/v3.1"

// userAgent identifies the client to the public API
const userAgent = "countries-explorer/1.0 (https://github.com/iudanet/countries-explorer)"

// ErrNotFound indicates that no country records match the request
var ErrNotFound = errors.New("no matching countries found")

// Client представляет HTTP клиент для REST Countries API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
// baseURL без завершающего слеша, например https://restcountries.com/v3.1
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// All returns the full country list
func (c *Client) All(ctx context.Context) ([]models.Country, error) {
	countries, err := c.doGet(ctx, "/all")
	if err != nil {
		return nil, fmt.Errorf("fetch all countries: %w", err)
	}
	return countries, nil
}

// ByName returns countries whose name contains name (case-insensitive,
// partial match is performed by the API)
func (c *Client) ByName(ctx context.Context, name string) ([]models.Country, error) {
	countries, err := c.doGet(ctx, "/name/"+url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("fetch countries by name %q: %w", name, err)
	}
	return countries, nil
}

// ByRegion returns countries belonging to region
func (c *Client) ByRegion(ctx context.Context, region string) ([]models.Country, error) {
	countries, err := c.doGet(ctx, "/region/"+url.PathEscape(region))
	if err != nil {
		return nil, fmt.Errorf("fetch countries by region %q: %w", region, err)
	}
	return countries, nil
}

// ByCode returns the single country identified by its three-letter code.
// The API wraps the record in a one-element collection; it is unwrapped here.
func (c *Client) ByCode(ctx context.Context, code string) (*models.Country, error) {
	countries, err := c.doGet(ctx, "/alpha/"+url.PathEscape(code))
	if err != nil {
		return nil, fmt.Errorf("fetch country by code %q: %w", code, err)
	}
	return &countries[0], nil
}

// doGet выполняет GET запрос и декодирует список стран
// Невалидные записи (без кода или имени) отбрасываются на границе;
// если после фильтрации не осталось ни одной записи - это ErrNotFound
func (c *Client) doGet(ctx context.Context, path string) ([]models.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// API отвечает 404 когда ни одна страна не подходит под запрос
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Тело ошибки не несет полезной нагрузки, достаточно статуса
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	var countries []models.Country
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Валидация на границе: отбрасываем неполные записи
	valid := countries[:0]
	for i := range countries {
		if countries[i].Valid() {
			valid = append(valid, countries[i])
		}
	}

	if len(valid) == 0 {
		return nil, ErrNotFound
	}

	return valid, nil
}
