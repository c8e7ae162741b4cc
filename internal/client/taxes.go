package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type taxClassesManager struct {
	baseManager
}

func newTaxClassesManager(c *Client) *taxClassesManager {
	return &taxClassesManager{baseManager{
		client:         c,
		endpoint:       "taxClasses",
		searchEndpoint: "taxClasses/search",
		identifier:     "class_id",
		wrapKey:        "taxClass",
	}}
}

func (m *taxClassesManager) Search(ctx context.Context, query *magento.Query) ([]magento.TaxClass, error) {
	return searchTyped[magento.TaxClass](ctx, &m.baseManager, query)
}

func (m *taxClassesManager) Get(ctx context.Context, classID int) (*magento.TaxClass, error) {
	return getTyped[magento.TaxClass](ctx, &m.baseManager, strconv.Itoa(classID))
}
