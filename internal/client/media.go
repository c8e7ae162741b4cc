package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/magerest/magento-go/pkg/magento"
)

// mediaEntriesManager operates on the media gallery of a single product.
type mediaEntriesManager struct {
	baseManager
	product *magento.Product
}

func newMediaEntriesManager(c *Client, product *magento.Product) *mediaEntriesManager {
	endpoint := fmt.Sprintf("products/%s/media", url.PathEscape(product.SKU))
	return &mediaEntriesManager{
		baseManager: baseManager{
			client:         c,
			endpoint:       endpoint,
			searchEndpoint: endpoint,
			identifier:     "id",
		},
		product: product,
	}
}

// Product returns the product this manager operates on.
func (m *mediaEntriesManager) Product() *magento.Product {
	return m.product
}

// All returns every media gallery entry of the product.
func (m *mediaEntriesManager) All(ctx context.Context) ([]magento.MediaEntry, error) {
	var entries []magento.MediaEntry
	if err := m.getJSON(ctx, m.client.URLFor(m.endpoint), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get retrieves a single media gallery entry.
func (m *mediaEntriesManager) Get(ctx context.Context, entryID int) (*magento.MediaEntry, error) {
	return getTyped[magento.MediaEntry](ctx, &m.baseManager, strconv.Itoa(entryID))
}

// UpdateEntry updates a media gallery entry in place.
func (m *mediaEntriesManager) UpdateEntry(ctx context.Context, entry magento.MediaEntry) error {
	payload := map[string]interface{}{"entry": entry}
	resp, err := m.client.http.Put(ctx, m.itemURL(strconv.Itoa(entry.ID)), payload)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return m.apiError(http.MethodPut, resp)
	}
	return nil
}

// Enable makes the entry visible in the product gallery.
func (m *mediaEntriesManager) Enable(ctx context.Context, entry magento.MediaEntry) error {
	entry.Disabled = false
	return m.UpdateEntry(ctx, entry)
}

// Disable hides the entry from the product gallery without deleting it.
func (m *mediaEntriesManager) Disable(ctx context.Context, entry magento.MediaEntry) error {
	entry.Disabled = true
	return m.UpdateEntry(ctx, entry)
}

// ExecuteSearch returns all media entries as raw records; the endpoint
// answers with a bare array and supports no searchCriteria.
func (m *mediaEntriesManager) ExecuteSearch(ctx context.Context, query *magento.Query) ([]magento.Record, error) {
	var records []magento.Record
	if err := m.getJSON(ctx, m.client.URLFor(m.endpoint), &records); err != nil {
		return nil, err
	}
	return records, nil
}
