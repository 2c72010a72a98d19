// Package client es el cliente HTTP del API para el CLI de la tienda.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gifted-solutions/storefront-api/internal/application/dto"
)

// Client consume los endpoints públicos del API de la vitrina.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye el cliente apuntando a baseURL (ej. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Products obtiene el catálogo activo, filtrado en el servidor por búsqueda y
// categoría (ambos opcionales).
func (c *Client) Products(ctx context.Context, search, category string) (*dto.ProductListResponse, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}
	endpoint := c.baseURL + "/api/products"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	var out dto.ProductListResponse
	if err := c.getJSON(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Product obtiene un producto activo por ID.
func (c *Client) Product(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/products/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories obtiene las categorías distintas del catálogo activo.
func (c *Client) Categories(ctx context.Context) (*dto.CategoryListResponse, error) {
	var out dto.CategoryListResponse
	if err := c.getJSON(ctx, c.baseURL+"/api/categories", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var e dto.ErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return fmt.Errorf("api: %s (%s)", e.Message, e.Code)
		}
		return fmt.Errorf("api: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
