package client_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magerest/magento-go/pkg/magento"
)

func TestOrdersByIncrementID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/orders", r.URL.Path)
		assert.Equal(t, "increment_id", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][field]"))
		assert.Equal(t, "000000123", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][value]"))
		_, _ = w.Write([]byte(`{"items":[{"entity_id":9,"increment_id":"000000123","status":"complete"}],"total_count":1}`))
	}))

	order, err := c.Orders().ByIncrementID(context.Background(), "000000123")
	require.NoError(t, err)
	assert.Equal(t, 9, order.EntityID)
	assert.Equal(t, "complete", order.Status)
}

func TestOrdersByIncrementIDNoResult(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[],"total_count":0}`))
	}))

	_, err := c.Orders().ByIncrementID(context.Background(), "000000999")
	assert.ErrorIs(t, err, magento.ErrNoResult)
}

func TestInvoicesByOrderNumber(t *testing.T) {
	t.Parallel()

	// The invoice search indexes order ids, so the order is resolved
	// first and its entity id drives the invoice query.
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/V1/orders":
			_, _ = w.Write([]byte(`{"items":[{"entity_id":9,"increment_id":"000000123"}],"total_count":1}`))
		case "/rest/V1/invoices":
			assert.Equal(t, "order_id", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][field]"))
			assert.Equal(t, "9", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][value]"))
			_, _ = w.Write([]byte(`{"items":[{"entity_id":77,"order_id":9}],"total_count":1}`))
		default:
			http.NotFound(w, r)
		}
	}))

	invoices, err := c.Invoices().ByOrderNumber(context.Background(), "000000123")
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, 77, invoices[0].EntityID)
}

func TestCustomersSearchUsesSearchEndpoint(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/customers/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"id":5,"email":"jane@example.com"}],"total_count":1}`))
	}))

	customer, err := c.Customers().ByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, customer.ID)
}

func TestCustomersGetUsesItemEndpoint(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/customers/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"email":"jane@example.com"}`))
	}))

	customer, err := c.Customers().Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", customer.Email)
}

func TestTaxClassesSearchEndpoint(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/taxClasses/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"class_id":2,"class_name":"Taxable Goods","class_type":"PRODUCT"}],"total_count":1}`))
	}))

	classes, err := c.TaxClasses().Search(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Taxable Goods", classes[0].ClassName)
}

func TestAttributeSetsByName(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/attribute-sets/sets/list", r.URL.Path)
		assert.Equal(t, "attribute_set_name", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][field]"))
		assert.Equal(t, "Bag", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][value]"))
		_, _ = w.Write([]byte(`{"items":[{"attribute_set_id":9,"attribute_set_name":"Bag","entity_type_id":4}],"total_count":1}`))
	}))

	set, err := c.AttributeSets().ByName(context.Background(), "Bag")
	require.NoError(t, err)
	assert.Equal(t, 9, set.AttributeSetID)
	assert.Equal(t, "Bag", set.AttributeSetName)
}

func TestAttributeSetsGet(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/attribute-sets/9", r.URL.Path)
		_, _ = w.Write([]byte(`{"attribute_set_id":9,"attribute_set_name":"Bag","entity_type_id":4}`))
	}))

	set, err := c.AttributeSets().Get(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "Bag", set.AttributeSetName)
}

func TestCategoriesAllFlattensTree(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/categories", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id":1,"name":"Root","children_data":[
				{"id":2,"name":"Men","children_data":[{"id":4,"name":"Tops","children_data":[]}]},
				{"id":3,"name":"Women","children_data":[]}
			]}`))
	}))

	categories, err := c.Categories().All(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Tops", categories[2].Name)
}

func TestShipmentsByOrderID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/shipments", r.URL.Path)
		assert.Equal(t, "order_id", r.URL.Query().Get("searchCriteria[filter_groups][0][filters][0][field]"))
		_, _ = w.Write([]byte(`{"items":[{"entity_id":3,"order_id":9,"tracks":[{"track_number":"1Z999"}]}],"total_count":1}`))
	}))

	shipments, err := c.Shipments().ByOrderID(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "1Z999", shipments[0].Tracks[0].TrackNumber)
}

func TestAttributeOptionsAll(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/attributes/color/options", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"label":" ","value":""},
			{"label":"Red","value":"4"},
			{"label":"Blue","value":"5"}
		]`))
	}))
	c.SetAttributeOptionsAttribute(&magento.ProductAttribute{AttributeCode: "color"})

	options, err := c.AttributeOptions()
	require.NoError(t, err)

	// The blank placeholder option is dropped.
	all, err := options.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	byLabel, err := options.ByLabel(context.Background(), "red")
	require.NoError(t, err)
	assert.Equal(t, "4", byLabel.Value)

	byValue, err := options.ByValue(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "Blue", byValue.Label)

	_, err = options.ByLabel(context.Background(), "green")
	assert.ErrorIs(t, err, magento.ErrNoResult)
}

func TestMediaEntriesAll(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/products/SKU-1/media", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":11,"media_type":"image","label":"Front","file":"/f/front.jpg"}]`))
	}))
	c.SetMediaEntriesProduct(&magento.Product{SKU: "SKU-1"})

	media, err := c.MediaEntries()
	require.NoError(t, err)

	entries, err := media.All(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Front", entries[0].Label)
	assert.Equal(t, "SKU-1", media.Product().SKU)
}

func TestMediaEntriesDisable(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/rest/V1/products/SKU-1/media/11", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"disabled":true`)
		_, _ = w.Write([]byte(`true`))
	}))
	c.SetMediaEntriesProduct(&magento.Product{SKU: "SKU-1"})

	media, err := c.MediaEntries()
	require.NoError(t, err)

	err = media.Disable(context.Background(), magento.MediaEntry{ID: 11, MediaType: "image"})
	require.NoError(t, err)
}

func TestGenericManagerSearch(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/V1/cmsPage/search", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"identifier":"home","title":"Home"}],"total_count":1}`))
	}))

	m, err := c.Manager("cmsPage/search")
	require.NoError(t, err)

	records, err := m.ExecuteSearch(context.Background(), magento.NewQuery())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Home", records[0]["title"])
}

func TestManagerAPIErrorOnBadRequest(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid field"}`))
	}))

	_, err := c.Orders().Search(context.Background(), magento.NewQuery())
	require.Error(t, err)

	apiErr, ok := magento.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Invalid field")
}
