package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magerest/magento-go/pkg/magento"
)

type recordedPut struct {
	path string
	body map[string]interface{}
}

type productUpdateServer struct {
	mu      sync.Mutex
	puts    []recordedPut
	configs string
}

func (s *productUpdateServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rest/V1/store/storeConfigs":
			_, _ = w.Write([]byte(s.configs))
		case r.URL.Path == "/rest/V1/products/attributes":
			_, _ = w.Write([]byte(`{"items":[
				{"attribute_id":1,"attribute_code":"price","scope":"global"},
				{"attribute_id":2,"attribute_code":"special_price","scope":"website"}
			],"total_count":2}`))
		case r.Method == http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			var payload map[string]interface{}
			_ = json.Unmarshal(body, &payload)

			s.mu.Lock()
			s.puts = append(s.puts, recordedPut{path: r.URL.Path, body: payload})
			s.mu.Unlock()

			_, _ = w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	})
}

func (s *productUpdateServer) recorded() []recordedPut {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedPut(nil), s.puts...)
}

func TestUpdateAttributesSingleStore(t *testing.T) {
	t.Parallel()

	server := &productUpdateServer{configs: `[{"id":1,"code":"default","website_id":1}]`}
	c := newTestClient(t, server.handler())

	err := c.Products().UpdateAttributes(context.Background(), "SKU-1", map[string]interface{}{
		"price": 19.99,
	}, "")
	require.NoError(t, err)

	// Single-store updates write the default scope and repeat on "all".
	puts := server.recorded()
	require.Len(t, puts, 2)
	assert.Equal(t, "/rest/V1/products/SKU-1", puts[0].path)
	assert.Equal(t, "/rest/all/V1/products/SKU-1", puts[1].path)
}

func TestUpdateAttributesMultiStoreWebsiteScope(t *testing.T) {
	t.Parallel()

	server := &productUpdateServer{configs: `[
		{"id":1,"code":"default","website_id":1},
		{"id":2,"code":"en_gb","website_id":2}
	]`}
	c := newTestClient(t, server.handler())

	err := c.Products().UpdateAttributes(context.Background(), "SKU-1", map[string]interface{}{
		"name":          "Hat",
		"special_price": 9.99,
	}, "")
	require.NoError(t, err)

	// The website scoped attribute is repeated on "all"; the store view
	// attribute is not.
	puts := server.recorded()
	require.Len(t, puts, 2)
	assert.Equal(t, "/rest/V1/products/SKU-1", puts[0].path)
	assert.Equal(t, "/rest/all/V1/products/SKU-1", puts[1].path)

	first := puts[0].body["product"].(map[string]interface{})
	assert.Equal(t, "Hat", first["name"])
	assert.Equal(t, 9.99, first["special_price"])

	second := puts[1].body["product"].(map[string]interface{})
	assert.NotContains(t, second, "name")
	assert.Equal(t, 9.99, second["special_price"])
}

func TestUpdateAttributesMultiStoreNoWebsiteAttrs(t *testing.T) {
	t.Parallel()

	server := &productUpdateServer{configs: `[
		{"id":1,"code":"default","website_id":1},
		{"id":2,"code":"en_gb","website_id":2}
	]`}
	c := newTestClient(t, server.handler())

	err := c.Products().UpdateAttributes(context.Background(), "SKU-1", map[string]interface{}{
		"name": "Hat",
	}, "")
	require.NoError(t, err)

	// No website scoped attributes, so no second request.
	assert.Len(t, server.recorded(), 1)
}

func TestUpdateAttributesAllScopeWritesOnce(t *testing.T) {
	t.Parallel()

	server := &productUpdateServer{configs: `[
		{"id":1,"code":"default","website_id":1},
		{"id":2,"code":"en_gb","website_id":2}
	]`}
	c := newTestClient(t, server.handler())

	err := c.Products().UpdateAttributes(context.Background(), "SKU-1", map[string]interface{}{
		"special_price": 9.99,
	}, "all")
	require.NoError(t, err)

	puts := server.recorded()
	require.Len(t, puts, 1)
	assert.Equal(t, "/rest/all/V1/products/SKU-1", puts[0].path)
}

func TestUpdateAttributesEmptyPayload(t *testing.T) {
	t.Parallel()

	c := newOfflineClient(t, &magento.Config{Domain: "store.example.com"})

	err := c.Products().UpdateAttributes(context.Background(), "SKU-1", nil, "")
	assert.ErrorIs(t, err, magento.ErrEmptyPayload)
}

func TestUpdateCustomAttributesPacksPayload(t *testing.T) {
	t.Parallel()

	server := &productUpdateServer{configs: `[{"id":1,"code":"default","website_id":1}]`}
	c := newTestClient(t, server.handler())

	err := c.Products().UpdateCustomAttributes(context.Background(), "SKU-1", map[string]interface{}{
		"meta_title": "Hat",
	}, "")
	require.NoError(t, err)

	puts := server.recorded()
	require.Len(t, puts, 2)

	product := puts[0].body["product"].(map[string]interface{})
	packed := product["custom_attributes"].([]interface{})
	require.Len(t, packed, 1)
	entry := packed[0].(map[string]interface{})
	assert.Equal(t, "meta_title", entry["attribute_code"])
	assert.Equal(t, "Hat", entry["value"])
}

func TestProductsBySKU(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/SKU-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"sku":"SKU-1","name":"Hat","price":19.99}`))
	}))

	product, err := c.Products().BySKU(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Equal(t, 42, product.ID)
	assert.Equal(t, "Hat", product.Name)
}

func TestProductsBySKUNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := c.Products().BySKU(context.Background(), "MISSING")
	assert.ErrorIs(t, err, magento.ErrNoResult)
}

func TestProductsByEntityID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products", r.URL.Path)
		assert.Equal(t, "entity_id", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][field]"))
		assert.Equal(t, "42", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][value]"))
		_, _ = w.Write([]byte(`{"items":[{"id":42,"sku":"SKU-1"}],"total_count":1}`))
	}))

	product, err := c.Products().ByEntityID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", product.SKU)
}

func TestProductsStock(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/stockItems/SKU-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"item_id":1,"product_id":42,"qty":7,"is_in_stock":true}`))
	}))

	stock, err := c.Products().Stock(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.EqualValues(t, 7, stock.Qty)
	assert.True(t, stock.IsInStock)
}
