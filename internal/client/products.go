package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magerest/magento-go/internal/constants"
	"github.com/magerest/magento-go/pkg/magento"
)

type productsManager struct {
	baseManager
}

func newProductsManager(c *Client) *productsManager {
	return &productsManager{baseManager{
		client:         c,
		endpoint:       "products",
		searchEndpoint: "products",
		identifier:     "sku",
		wrapKey:        "product",
	}}
}

func (m *productsManager) Search(ctx context.Context, query *magento.Query) ([]magento.Product, error) {
	return searchTyped[magento.Product](ctx, &m.baseManager, query)
}

// BySKU retrieves a product by SKU. SKUs may contain slashes and spaces,
// so the path component is escaped.
func (m *productsManager) BySKU(ctx context.Context, sku string) (*magento.Product, error) {
	return getTyped[magento.Product](ctx, &m.baseManager, sku)
}

// ByEntityID retrieves a product by its numeric id. The item endpoint only
// addresses SKUs, so this goes through a criteria search.
func (m *productsManager) ByEntityID(ctx context.Context, entityID int) (*magento.Product, error) {
	query := magento.NewQuery().AddCriteria("entity_id", entityID, magento.ConditionEqual)
	return firstTyped[magento.Product](ctx, &m.baseManager, query)
}

// Stock retrieves the inventory record of a product.
func (m *productsManager) Stock(ctx context.Context, sku string) (*magento.StockItem, error) {
	var stock magento.StockItem
	requestURL := m.client.URLFor("stockItems/" + url.PathEscape(sku))
	if err := m.getJSON(ctx, requestURL, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

// UpdateAttributes updates top-level product attributes with attribute
// scoping taken into account.
//
// On a single-store installation the update is written on the default
// scope and repeated on the "all" scope, so both the store view and the
// admin values change. On a multi-store installation the update is written
// on the requested scope (empty means the client scope); the subset of
// website scoped attributes is then repeated on the "all" scope, since
// those values are shared across store views and a scoped write alone
// would not persist them.
func (m *productsManager) UpdateAttributes(ctx context.Context, sku string, attributes map[string]interface{}, scope string) error {
	return m.scopedUpdate(ctx, sku, attributes, scope, func(attrs map[string]interface{}) magento.Record {
		payload := magento.Record{"sku": sku}
		for k, v := range attrs {
			payload[k] = v
		}
		return payload
	})
}

// UpdateCustomAttributes behaves like UpdateAttributes for attributes that
// live in the custom_attributes list of the product.
func (m *productsManager) UpdateCustomAttributes(ctx context.Context, sku string, attributes map[string]interface{}, scope string) error {
	return m.scopedUpdate(ctx, sku, attributes, scope, func(attrs map[string]interface{}) magento.Record {
		return magento.Record{
			"sku":               sku,
			"custom_attributes": magento.PackAttributes(attrs),
		}
	})
}

func (m *productsManager) scopedUpdate(ctx context.Context, sku string, attributes map[string]interface{}, scope string, build func(map[string]interface{}) magento.Record) error {
	if len(attributes) == 0 {
		return magento.ErrEmptyPayload
	}
	if scope == "" {
		scope = m.client.Scope()
	}

	single, err := m.client.store.IsSingleStore(ctx)
	if err != nil {
		return err
	}

	if single {
		if err := m.putProduct(ctx, sku, build(attributes), ""); err != nil {
			return err
		}
		return m.putProduct(ctx, sku, build(attributes), constants.StoreCodeAll)
	}

	if err := m.putProduct(ctx, sku, build(attributes), scope); err != nil {
		return err
	}
	if scope == constants.StoreCodeAll {
		return nil
	}

	websiteAttrs, err := m.client.store.FilterWebsiteAttrs(ctx, attributes)
	if err != nil {
		return err
	}
	if len(websiteAttrs) == 0 {
		return nil
	}
	return m.putProduct(ctx, sku, build(websiteAttrs), constants.StoreCodeAll)
}

func (m *productsManager) putProduct(ctx context.Context, sku string, payload magento.Record, scope string) error {
	requestURL := m.client.URLForScope("products/"+url.PathEscape(sku), scope)
	resp, err := m.client.http.Put(ctx, requestURL, map[string]interface{}{"product": payload})
	if err != nil {
		return err
	}
	if !resp.OK() {
		return m.apiError(http.MethodPut, resp)
	}
	return nil
}

type productAttributesManager struct {
	baseManager
}

func newProductAttributesManager(c *Client) *productAttributesManager {
	return &productAttributesManager{baseManager{
		client:         c,
		endpoint:       "products/attributes",
		searchEndpoint: "products/attributes",
		identifier:     "attribute_code",
	}}
}

// All returns every product attribute of the store, paging through the
// full result set. The position criterion matches all attributes; the
// endpoint rejects queries without any filter group.
func (m *productAttributesManager) All(ctx context.Context) ([]magento.ProductAttribute, error) {
	query := magento.NewQuery().AddCriteria("position", 0, magento.ConditionGreaterEqual)
	return searchAllTyped[magento.ProductAttribute](ctx, &m.baseManager, query)
}

// ByCode retrieves a single attribute by its attribute code.
func (m *productAttributesManager) ByCode(ctx context.Context, attributeCode string) (*magento.ProductAttribute, error) {
	return getTyped[magento.ProductAttribute](ctx, &m.baseManager, attributeCode)
}

// Types returns the available frontend input types.
func (m *productAttributesManager) Types(ctx context.Context) ([]magento.Record, error) {
	var types []magento.Record
	if err := m.getJSON(ctx, m.client.URLFor("products/attributes/types"), &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (m *productAttributesManager) Search(ctx context.Context, query *magento.Query) ([]magento.ProductAttribute, error) {
	return searchTyped[magento.ProductAttribute](ctx, &m.baseManager, query)
}
