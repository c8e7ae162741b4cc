package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type customersManager struct {
	baseManager
}

func newCustomersManager(c *Client) *customersManager {
	return &customersManager{baseManager{
		client:         c,
		endpoint:       "customers",
		searchEndpoint: "customers/search",
		identifier:     "id",
		wrapKey:        "customer",
	}}
}

func (m *customersManager) Search(ctx context.Context, query *magento.Query) ([]magento.Customer, error) {
	return searchTyped[magento.Customer](ctx, &m.baseManager, query)
}

func (m *customersManager) Get(ctx context.Context, customerID int) (*magento.Customer, error) {
	return getTyped[magento.Customer](ctx, &m.baseManager, strconv.Itoa(customerID))
}

func (m *customersManager) ByEmail(ctx context.Context, email string) (*magento.Customer, error) {
	query := magento.NewQuery().AddCriteria("email", email, magento.ConditionEqual)
	return firstTyped[magento.Customer](ctx, &m.baseManager, query)
}
