package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type orderItemsManager struct {
	baseManager
}

func newOrderItemsManager(c *Client) *orderItemsManager {
	return &orderItemsManager{baseManager{
		client:         c,
		endpoint:       "orders/items",
		searchEndpoint: "orders/items",
		identifier:     "item_id",
	}}
}

func (m *orderItemsManager) Search(ctx context.Context, query *magento.Query) ([]magento.OrderItem, error) {
	return searchTyped[magento.OrderItem](ctx, &m.baseManager, query)
}

func (m *orderItemsManager) Get(ctx context.Context, itemID int) (*magento.OrderItem, error) {
	return getTyped[magento.OrderItem](ctx, &m.baseManager, strconv.Itoa(itemID))
}

func (m *orderItemsManager) ByProductID(ctx context.Context, productID int) ([]magento.OrderItem, error) {
	query := magento.NewQuery().AddCriteria("product_id", productID, magento.ConditionEqual)
	return m.Search(ctx, query)
}

func (m *orderItemsManager) BySKU(ctx context.Context, sku string) ([]magento.OrderItem, error) {
	query := magento.NewQuery().AddCriteria("sku", sku, magento.ConditionEqual)
	return m.Search(ctx, query)
}
