package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type attributeSetsManager struct {
	baseManager
}

func newAttributeSetsManager(c *Client) *attributeSetsManager {
	return &attributeSetsManager{baseManager{
		client:         c,
		endpoint:       "products/attribute-sets",
		searchEndpoint: "products/attribute-sets/sets/list",
		identifier:     "attribute_set_id",
		wrapKey:        "attributeSet",
	}}
}

func (m *attributeSetsManager) Search(ctx context.Context, query *magento.Query) ([]magento.AttributeSet, error) {
	return searchTyped[magento.AttributeSet](ctx, &m.baseManager, query)
}

func (m *attributeSetsManager) Get(ctx context.Context, attributeSetID int) (*magento.AttributeSet, error) {
	return getTyped[magento.AttributeSet](ctx, &m.baseManager, strconv.Itoa(attributeSetID))
}

// ByName retrieves an attribute set by its admin facing name.
func (m *attributeSetsManager) ByName(ctx context.Context, name string) (*magento.AttributeSet, error) {
	query := magento.NewQuery().AddCriteria("attribute_set_name", name, magento.ConditionEqual)
	return firstTyped[magento.AttributeSet](ctx, &m.baseManager, query)
}
