package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type shipmentsManager struct {
	baseManager
}

func newShipmentsManager(c *Client) *shipmentsManager {
	return &shipmentsManager{baseManager{
		client:         c,
		endpoint:       "shipments",
		searchEndpoint: "shipments",
		identifier:     "entity_id",
		wrapKey:        "entity",
	}}
}

func (m *shipmentsManager) Search(ctx context.Context, query *magento.Query) ([]magento.Shipment, error) {
	return searchTyped[magento.Shipment](ctx, &m.baseManager, query)
}

func (m *shipmentsManager) Get(ctx context.Context, entityID int) (*magento.Shipment, error) {
	return getTyped[magento.Shipment](ctx, &m.baseManager, strconv.Itoa(entityID))
}

func (m *shipmentsManager) ByOrderID(ctx context.Context, orderID int) ([]magento.Shipment, error) {
	query := magento.NewQuery().AddCriteria("order_id", orderID, magento.ConditionEqual)
	return m.Search(ctx, query)
}
