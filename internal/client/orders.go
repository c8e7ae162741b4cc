package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type ordersManager struct {
	baseManager
}

func newOrdersManager(c *Client) *ordersManager {
	return &ordersManager{baseManager{
		client:         c,
		endpoint:       "orders",
		searchEndpoint: "orders",
		identifier:     "entity_id",
		wrapKey:        "entity",
	}}
}

func (m *ordersManager) Search(ctx context.Context, query *magento.Query) ([]magento.Order, error) {
	return searchTyped[magento.Order](ctx, &m.baseManager, query)
}

func (m *ordersManager) Get(ctx context.Context, entityID int) (*magento.Order, error) {
	return getTyped[magento.Order](ctx, &m.baseManager, strconv.Itoa(entityID))
}

// ByIncrementID retrieves an order by the customer facing order number.
func (m *ordersManager) ByIncrementID(ctx context.Context, incrementID string) (*magento.Order, error) {
	query := magento.NewQuery().AddCriteria("increment_id", incrementID, magento.ConditionEqual)
	return firstTyped[magento.Order](ctx, &m.baseManager, query)
}
