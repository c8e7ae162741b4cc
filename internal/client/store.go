package client

import (
	"context"

	"github.com/magerest/magento-go/internal/constants"
	"github.com/magerest/magento-go/pkg/magento"
)

// Cache keys for the store-wide computed values.
const (
	keyConfigs      = "configs"
	keyViews        = "views"
	keyWebsites     = "websites"
	keyAllAttrs     = "all_product_attributes"
	keyGlobalAttrs  = "global_product_attributes"
	keyWebsiteAttrs = "website_product_attributes"
	keyStoreAttrs   = "store_view_product_attributes"
	keyWebsiteCodes = "website_attribute_codes"
	keySingleStore  = "is_single_store"
	keyActiveConfig = "active_config"
)

// Store implements magento.Store: lazily fetched, memoized store-wide
// configuration. Every accessor computes on first use and serves from the
// cache afterwards; Refresh atomically drops all memoized values.
type Store struct {
	client *Client
	cache  *magento.ComputedCache
}

// NewStore creates the store configuration cache for a client.
func NewStore(c *Client) *Store {
	return &Store{client: c, cache: magento.NewComputedCache()}
}

// Refresh atomically discards every memoized value. In-flight computations
// finish but their results are not cached.
func (s *Store) Refresh() {
	s.cache.InvalidateAll()
}

// Configs returns the store configs of every store view.
func (s *Store) Configs(ctx context.Context) ([]magento.StoreConfig, error) {
	return cached(ctx, s, keyConfigs, func(ctx context.Context) ([]magento.StoreConfig, error) {
		var configs []magento.StoreConfig
		if err := s.fetch(ctx, "store/storeConfigs", &configs); err != nil {
			return nil, err
		}
		return configs, nil
	})
}

// Views returns all store views, the admin view excluded.
func (s *Store) Views(ctx context.Context) ([]magento.StoreView, error) {
	return cached(ctx, s, keyViews, func(ctx context.Context) ([]magento.StoreView, error) {
		var views []magento.StoreView
		if err := s.fetch(ctx, "store/storeViews", &views); err != nil {
			return nil, err
		}
		filtered := make([]magento.StoreView, 0, len(views))
		for _, v := range views {
			if v.Code == "admin" {
				continue
			}
			filtered = append(filtered, v)
		}
		return filtered, nil
	})
}

// Websites returns all websites, the admin website excluded.
func (s *Store) Websites(ctx context.Context) ([]magento.Website, error) {
	return cached(ctx, s, keyWebsites, func(ctx context.Context) ([]magento.Website, error) {
		var websites []magento.Website
		if err := s.fetch(ctx, "store/websites", &websites); err != nil {
			return nil, err
		}
		filtered := make([]magento.Website, 0, len(websites))
		for _, w := range websites {
			if w.ID == 0 {
				continue
			}
			filtered = append(filtered, w)
		}
		return filtered, nil
	})
}

// Active returns the store config matching the client scope. The "all" and
// empty scopes resolve to the default store view; when several configs
// share the resolved code the one with the smallest id wins. When no config
// carries the default code the smallest id overall wins; a custom scope
// with no match returns nil without error.
func (s *Store) Active(ctx context.Context) (*magento.StoreConfig, error) {
	config, err := cached(ctx, s, keyActiveConfig, func(ctx context.Context) (*magento.StoreConfig, error) {
		configs, err := s.Configs(ctx)
		if err != nil {
			return nil, err
		}

		code := s.client.Scope()
		if code == "" || code == constants.StoreCodeAll {
			code = constants.StoreCodeDefault
		}

		var active *magento.StoreConfig
		for i := range configs {
			if configs[i].Code != code {
				continue
			}
			if active == nil || configs[i].ID < active.ID {
				active = &configs[i]
			}
		}
		// A renamed default view leaves no config carrying the default
		// code; fall back to the config with the smallest id.
		if active == nil && code == constants.StoreCodeDefault {
			for i := range configs {
				if active == nil || configs[i].ID < active.ID {
					active = &configs[i]
				}
			}
		}
		return active, nil
	})
	if err != nil {
		return nil, err
	}
	return config, nil
}

// IsSingleStore reports whether the installation has a single store view.
func (s *Store) IsSingleStore(ctx context.Context) (bool, error) {
	single, err := cached(ctx, s, keySingleStore, func(ctx context.Context) (bool, error) {
		configs, err := s.Configs(ctx)
		if err != nil {
			return false, err
		}
		return len(configs) == 1, nil
	})
	if err != nil {
		return false, err
	}
	return single, nil
}

// AllProductAttributes returns every product attribute of the store.
func (s *Store) AllProductAttributes(ctx context.Context) ([]magento.ProductAttribute, error) {
	return cached(ctx, s, keyAllAttrs, func(ctx context.Context) ([]magento.ProductAttribute, error) {
		return newProductAttributesManager(s.client).All(ctx)
	})
}

// GlobalProductAttributes returns the attributes with global scope.
func (s *Store) GlobalProductAttributes(ctx context.Context) ([]magento.ProductAttribute, error) {
	return cached(ctx, s, keyGlobalAttrs, func(ctx context.Context) ([]magento.ProductAttribute, error) {
		return s.attributesByScope(ctx, constants.AttributeScopeGlobal)
	})
}

// WebsiteProductAttributes returns the attributes with website scope.
func (s *Store) WebsiteProductAttributes(ctx context.Context) ([]magento.ProductAttribute, error) {
	return cached(ctx, s, keyWebsiteAttrs, func(ctx context.Context) ([]magento.ProductAttribute, error) {
		return s.attributesByScope(ctx, constants.AttributeScopeWebsite)
	})
}

// StoreViewProductAttributes returns the attributes with store view scope.
func (s *Store) StoreViewProductAttributes(ctx context.Context) ([]magento.ProductAttribute, error) {
	return cached(ctx, s, keyStoreAttrs, func(ctx context.Context) ([]magento.ProductAttribute, error) {
		return s.attributesByScope(ctx, constants.AttributeScopeStore)
	})
}

// WebsiteAttributeCodes returns the codes of the website scoped attributes.
func (s *Store) WebsiteAttributeCodes(ctx context.Context) ([]string, error) {
	return cached(ctx, s, keyWebsiteCodes, func(ctx context.Context) ([]string, error) {
		attrs, err := s.WebsiteProductAttributes(ctx)
		if err != nil {
			return nil, err
		}
		codes := make([]string, 0, len(attrs))
		for _, a := range attrs {
			codes = append(codes, a.AttributeCode)
		}
		return codes, nil
	})
}

// FilterWebsiteAttrs returns the subset of data keyed by website scoped
// attribute codes. These are the attributes whose updates must be repeated
// on the "all" scope to take effect store-wide.
func (s *Store) FilterWebsiteAttrs(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error) {
	codes, err := s.WebsiteAttributeCodes(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]interface{})
	for _, code := range codes {
		if v, ok := data[code]; ok {
			filtered[code] = v
		}
	}
	return filtered, nil
}

func (s *Store) attributesByScope(ctx context.Context, scope string) ([]magento.ProductAttribute, error) {
	attrs, err := s.AllProductAttributes(ctx)
	if err != nil {
		return nil, err
	}
	var matched []magento.ProductAttribute
	for _, a := range attrs {
		if a.Scope == scope {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// fetch retrieves a store endpoint. These endpoints answer with bare JSON
// arrays, not searchCriteria envelopes.
func (s *Store) fetch(ctx context.Context, endpoint string, v interface{}) error {
	m := &baseManager{client: s.client, endpoint: endpoint, searchEndpoint: endpoint}
	return m.getJSON(ctx, s.client.URLFor(endpoint), v)
}

// cached runs fn through the store cache with a typed result.
func cached[T any](ctx context.Context, s *Store, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.cache.GetOrCompute(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
