package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/magerest/magento-go/internal/constants"
	mhttp "github.com/magerest/magento-go/internal/http"
	"github.com/magerest/magento-go/pkg/magento"
)

var (
	_ magento.OrdersManager            = (*ordersManager)(nil)
	_ magento.OrderItemsManager        = (*orderItemsManager)(nil)
	_ magento.InvoicesManager          = (*invoicesManager)(nil)
	_ magento.ProductsManager          = (*productsManager)(nil)
	_ magento.ProductAttributesManager = (*productAttributesManager)(nil)
	_ magento.AttributeSetsManager     = (*attributeSetsManager)(nil)
	_ magento.AttributeOptionsManager  = (*attributeOptionsManager)(nil)
	_ magento.MediaEntriesManager      = (*mediaEntriesManager)(nil)
	_ magento.CustomersManager         = (*customersManager)(nil)
	_ magento.CategoriesManager        = (*categoriesManager)(nil)
	_ magento.ShipmentsManager         = (*shipmentsManager)(nil)
	_ magento.TaxClassesManager        = (*taxClassesManager)(nil)
	_ magento.ResourceManager          = (*genericManager)(nil)
	_ magento.Store                    = (*Store)(nil)
)

// baseManager carries the shared endpoint plumbing every resource manager
// builds on: search execution, item retrieval and the write operations.
type baseManager struct {
	client *Client

	// endpoint is the path component for item operations.
	endpoint string
	// searchEndpoint is the path component for searchCriteria queries;
	// some endpoints (customers, taxClasses) search on a /search suffix.
	searchEndpoint string
	// identifier is the primary key field used in criteria queries.
	identifier string
	// wrapKey, when set, wraps write payloads the way the endpoint
	// expects ({"product": {...}}, {"entity": {...}}).
	wrapKey string
}

func (m *baseManager) Endpoint() string {
	return m.endpoint
}

func (m *baseManager) searchURL() string {
	return m.client.URLFor(m.searchEndpoint)
}

func (m *baseManager) itemURL(id string) string {
	return m.client.URLFor(m.endpoint + "/" + url.PathEscape(id))
}

func (m *baseManager) apiError(method string, resp *mhttp.Response) error {
	return &magento.APIError{
		Method:     method,
		Endpoint:   m.endpoint,
		StatusCode: resp.StatusCode,
		Message:    resp.ErrorSummary(),
	}
}

// ExecuteSearch runs a searchCriteria query and returns the raw records.
func (m *baseManager) ExecuteSearch(ctx context.Context, query *magento.Query) ([]magento.Record, error) {
	return searchTyped[magento.Record](ctx, m, query)
}

// ByID retrieves a single raw record by its identifier.
func (m *baseManager) ByID(ctx context.Context, id string) (magento.Record, error) {
	var record magento.Record
	if err := m.getJSON(ctx, m.itemURL(id), &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Create POSTs a payload to the endpoint.
func (m *baseManager) Create(ctx context.Context, payload magento.Record) (magento.Record, error) {
	resp, err := m.client.http.Post(ctx, m.client.URLFor(m.endpoint), m.wrap(payload))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, m.apiError(http.MethodPost, resp)
	}
	var record magento.Record
	if err := resp.JSON(&record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update PUTs a payload to the endpoint item.
func (m *baseManager) Update(ctx context.Context, id string, payload magento.Record) (magento.Record, error) {
	resp, err := m.client.http.Put(ctx, m.itemURL(id), m.wrap(payload))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, m.apiError(http.MethodPut, resp)
	}
	var record magento.Record
	if err := resp.JSON(&record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes an endpoint item.
func (m *baseManager) Delete(ctx context.Context, id string) (bool, error) {
	resp, err := m.client.http.Delete(ctx, m.itemURL(id))
	if err != nil {
		return false, err
	}
	if !resp.OK() {
		return false, m.apiError(http.MethodDelete, resp)
	}
	var ok bool
	if err := resp.JSON(&ok); err != nil {
		// Some endpoints answer a deletion with the deleted entity
		// instead of a boolean.
		return true, nil
	}
	return ok, nil
}

func (m *baseManager) wrap(payload magento.Record) interface{} {
	if m.wrapKey == "" {
		return payload
	}
	return map[string]interface{}{m.wrapKey: payload}
}

// getJSON retrieves a URL and decodes a 2xx body into v. A 404 maps to
// ErrNoResult so callers can distinguish absence from failure.
func (m *baseManager) getJSON(ctx context.Context, requestURL string, v interface{}) error {
	resp, err := m.client.http.Get(ctx, requestURL, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", magento.ErrNoResult, requestURL)
	}
	if !resp.OK() {
		return m.apiError(http.MethodGet, resp)
	}
	return resp.JSON(v)
}

// searchTyped runs a searchCriteria query and decodes the result items.
func searchTyped[T any](ctx context.Context, m *baseManager, query *magento.Query) ([]T, error) {
	if query == nil {
		query = magento.NewQuery()
	}
	resp, err := m.client.http.Get(ctx, m.searchURL(), query.Values())
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, m.apiError(http.MethodGet, resp)
	}
	var result magento.SearchResult[T]
	if err := resp.JSON(&result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// searchAllTyped pages through every result of a query. The page size is
// pinned and pages are fetched until a short page arrives.
func searchAllTyped[T any](ctx context.Context, m *baseManager, query *magento.Query) ([]T, error) {
	if query == nil {
		query = magento.NewQuery()
	}
	var all []T
	for page := 1; ; page++ {
		query.Paginate(page, constants.DefaultPageSize)
		items, err := searchTyped[T](ctx, m, query)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < constants.DefaultPageSize {
			return all, nil
		}
	}
}

// firstTyped runs a query and returns the first matching item.
func firstTyped[T any](ctx context.Context, m *baseManager, query *magento.Query) (*T, error) {
	items, err := searchTyped[T](ctx, m, query)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", magento.ErrNoResult, m.endpoint)
	}
	return &items[0], nil
}

// getTyped retrieves a single endpoint item by its identifier.
func getTyped[T any](ctx context.Context, m *baseManager, id string) (*T, error) {
	var item T
	if err := m.getJSON(ctx, m.itemURL(id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}
