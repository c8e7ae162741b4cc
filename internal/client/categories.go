package client

import (
	"context"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

type categoriesManager struct {
	baseManager
}

func newCategoriesManager(c *Client) *categoriesManager {
	return &categoriesManager{baseManager{
		client:         c,
		endpoint:       "categories",
		searchEndpoint: "categories/list",
		identifier:     "entity_id",
	}}
}

// Root returns the category tree starting at the store root category.
func (m *categoriesManager) Root(ctx context.Context) (*magento.Category, error) {
	var root magento.Category
	if err := m.getJSON(ctx, m.client.URLFor(m.endpoint), &root); err != nil {
		return nil, err
	}
	return &root, nil
}

// All returns the category tree flattened into a list.
func (m *categoriesManager) All(ctx context.Context) ([]magento.Category, error) {
	root, err := m.Root(ctx)
	if err != nil {
		return nil, err
	}
	var flat []magento.Category
	var walk func(magento.Category)
	walk = func(c magento.Category) {
		flat = append(flat, c)
		for _, child := range c.ChildrenData {
			walk(child)
		}
	}
	walk(*root)
	return flat, nil
}

func (m *categoriesManager) Get(ctx context.Context, categoryID int) (*magento.Category, error) {
	return getTyped[magento.Category](ctx, &m.baseManager, strconv.Itoa(categoryID))
}

// ByName searches categories by name; exact selects equality over a
// substring match.
func (m *categoriesManager) ByName(ctx context.Context, name string, exact bool) ([]magento.Category, error) {
	query := magento.NewQuery()
	if exact {
		query.AddCriteria("name", name, magento.ConditionEqual)
	} else {
		query.AddCriteria("name", "%"+name+"%", magento.ConditionLike)
	}
	return searchTyped[magento.Category](ctx, &m.baseManager, query)
}
