package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type invoicesManager struct {
	baseManager
}

func newInvoicesManager(c *Client) *invoicesManager {
	return &invoicesManager{baseManager{
		client:         c,
		endpoint:       "invoices",
		searchEndpoint: "invoices",
		identifier:     "entity_id",
		wrapKey:        "entity",
	}}
}

func (m *invoicesManager) Search(ctx context.Context, query *magento.Query) ([]magento.Invoice, error) {
	return searchTyped[magento.Invoice](ctx, &m.baseManager, query)
}

func (m *invoicesManager) Get(ctx context.Context, entityID int) (*magento.Invoice, error) {
	return getTyped[magento.Invoice](ctx, &m.baseManager, strconv.Itoa(entityID))
}

func (m *invoicesManager) ByOrderID(ctx context.Context, orderID int) ([]magento.Invoice, error) {
	query := magento.NewQuery().AddCriteria("order_id", orderID, magento.ConditionEqual)
	return m.Search(ctx, query)
}

// ByOrderNumber retrieves the invoices of an order by its customer facing
// order number. The invoice search indexes order ids, not increment ids,
// so the order is resolved first.
func (m *invoicesManager) ByOrderNumber(ctx context.Context, incrementID string) ([]magento.Invoice, error) {
	order, err := newOrdersManager(m.client).ByIncrementID(ctx, incrementID)
	if err != nil {
		return nil, err
	}
	return m.ByOrderID(ctx, order.EntityID)
}
