package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magerest/magento-go/internal/client"
	"github.com/magerest/magento-go/pkg/magento"
)

func storeFixtureHandler(configFetches *int64, attributeFetches *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/V1/store/storeConfigs":
			atomic.AddInt64(configFetches, 1)
			_, _ = w.Write([]byte(`[
				{"id":2,"code":"default","website_id":1},
				{"id":1,"code":"default","website_id":1}
			]`))
		case "/rest/V1/store/storeViews":
			_, _ = w.Write([]byte(`[
				{"id":0,"code":"admin","name":"Admin"},
				{"id":1,"code":"default","name":"Default Store View"}
			]`))
		case "/rest/V1/store/websites":
			_, _ = w.Write([]byte(`[
				{"id":0,"code":"admin","name":"Admin"},
				{"id":1,"code":"base","name":"Main Website"}
			]`))
		case "/rest/V1/products/attributes":
			atomic.AddInt64(attributeFetches, 1)
			_, _ = w.Write([]byte(`{"items":[
				{"attribute_id":1,"attribute_code":"price","scope":"global"},
				{"attribute_id":2,"attribute_code":"meta_title","scope":"store"},
				{"attribute_id":3,"attribute_code":"status","scope":"website"},
				{"attribute_id":4,"attribute_code":"visibility","scope":"website"}
			],"total_count":4}`))
		default:
			http.NotFound(w, r)
		}
	})
}

func newStoreClient(t *testing.T) (*client.Client, *int64, *int64) {
	t.Helper()

	var configFetches, attributeFetches int64
	c := newTestClient(t, storeFixtureHandler(&configFetches, &attributeFetches))
	return c, &configFetches, &attributeFetches
}

func TestStoreActiveTieBreak(t *testing.T) {
	t.Parallel()

	c, _, _ := newStoreClient(t)

	// Two configs share the default code; the smallest id wins.
	active, err := c.Store().Active(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 1, active.ID)
}

func TestStoreActiveRenamedDefaultView(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":5,"code":"en_gb","website_id":1},
			{"id":3,"code":"en_us","website_id":1}
		]`))
	}))

	// No config carries the default code; the smallest id wins.
	active, err := c.Store().Active(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, 3, active.ID)
}

func TestStoreActiveUnknownScope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":5,"code":"en_gb","website_id":1}]`))
	}))
	t.Cleanup(server.Close)

	c, err := client.New(context.Background(), &magento.Config{
		Domain: strings.TrimPrefix(server.URL, "http://"),
		Local:  true,
		Scope:  "de_de",
		APIKey: "unused",
	})
	require.NoError(t, err)
	c.SetToken("test-token")
	t.Cleanup(func() { _ = c.Close() })

	active, err := c.Store().Active(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestStoreMemoization(t *testing.T) {
	t.Parallel()

	c, configFetches, _ := newStoreClient(t)

	for i := 0; i < 3; i++ {
		configs, err := c.Store().Configs(context.Background())
		require.NoError(t, err)
		assert.Len(t, configs, 2)
	}
	assert.EqualValues(t, 1, atomic.LoadInt64(configFetches))
}

func TestStoreRefresh(t *testing.T) {
	t.Parallel()

	c, configFetches, _ := newStoreClient(t)

	_, err := c.Store().Configs(context.Background())
	require.NoError(t, err)

	c.Store().Refresh()

	_, err = c.Store().Configs(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt64(configFetches))
}

func TestStoreViewsExcludeAdmin(t *testing.T) {
	t.Parallel()

	c, _, _ := newStoreClient(t)

	views, err := c.Store().Views(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "default", views[0].Code)

	websites, err := c.Store().Websites(context.Background())
	require.NoError(t, err)
	require.Len(t, websites, 1)
	assert.Equal(t, "base", websites[0].Code)
}

func TestStoreAttributePartitions(t *testing.T) {
	t.Parallel()

	c, _, attributeFetches := newStoreClient(t)

	global, err := c.Store().GlobalProductAttributes(context.Background())
	require.NoError(t, err)
	require.Len(t, global, 1)
	assert.Equal(t, "price", global[0].AttributeCode)

	website, err := c.Store().WebsiteProductAttributes(context.Background())
	require.NoError(t, err)
	assert.Len(t, website, 2)

	view, err := c.Store().StoreViewProductAttributes(context.Background())
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "meta_title", view[0].AttributeCode)

	// All partitions derive from a single attribute fetch.
	assert.EqualValues(t, 1, atomic.LoadInt64(attributeFetches))
}

func TestStoreFilterWebsiteAttrs(t *testing.T) {
	t.Parallel()

	c, _, _ := newStoreClient(t)

	filtered, err := c.Store().FilterWebsiteAttrs(context.Background(), map[string]interface{}{
		"status":     1,
		"meta_title": "Hat",
		"price":      12.5,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": 1}, filtered)
}

func TestStoreIsSingleStore(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"code":"default","website_id":1}]`))
	}))

	single, err := c.Store().IsSingleStore(context.Background())
	require.NoError(t, err)
	assert.True(t, single)
}
