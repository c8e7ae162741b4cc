// Package client implements the Magento API client: endpoint routing, the
// resource managers and the store configuration cache.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/magerest/magento-go/internal/auth"
	"github.com/magerest/magento-go/internal/constants"
	mhttp "github.com/magerest/magento-go/internal/http"
	"github.com/magerest/magento-go/pkg/magento"
)

var _ magento.Client = (*Client)(nil)

// Client implements the magento.Client interface.
type Client struct {
	config       *magento.Config
	scheme       string
	domain       string
	scope        string
	logger       magento.Logger
	tokenManager *auth.AdminTokenManager
	http         *mhttp.Client
	store        *Store

	mu               sync.Mutex
	optionsAttribute *magento.ProductAttribute
	mediaProduct     *magento.Product
	optionsManager   *attributeOptionsManager
	mediaManager     *mediaEntriesManager
	generic          map[string]magento.ResourceManager
}

// New creates a client from the provided configuration. The domain is
// normalized (scheme, credentials, ports and fragments stripped; the path
// is kept for stores hosted under a path prefix). With Login set the
// client authenticates before returning.
func New(ctx context.Context, config *magento.Config) (*Client, error) {
	if config == nil {
		return nil, magento.ErrConfigRequired
	}
	if config.Domain == "" {
		return nil, magento.ErrDomainRequired
	}

	scheme := "https"
	if config.Local {
		scheme = "http"
	}

	logger := config.Logger
	if logger == nil {
		logger = magento.NopLogger{}
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	c := &Client{
		config: config,
		scheme: scheme,
		domain: ParseDomain(config.Domain),
		scope:  config.Scope,
		logger: logger,
	}

	c.tokenManager = auth.NewAdminTokenManager(auth.AdminConfig{
		TokenURL:      c.URLForScope(constants.AdminTokenEndpoint, ""),
		ValidationURL: c.URLFor(constants.TokenValidationEndpoint),
		Username:      config.Username,
		Password:      config.Password,
		APIKey:        config.APIKey,
		UserAgent:     userAgent,
		Logger:        logger,
	})

	c.http = mhttp.NewClient(c.tokenManager,
		mhttp.WithLogger(logger),
		mhttp.WithDebug(config.Debug),
		mhttp.WithUserAgent(userAgent),
		mhttp.WithTimeout(config.HTTPTimeout),
		mhttp.WithRetryConfig(0, config.RetryWaitMin, config.RetryWaitMax),
	)

	c.store = NewStore(c)
	c.generic = make(map[string]magento.ResourceManager)

	if config.Login {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ParseDomain normalizes a raw domain string: schemes, credentials, query
// strings and fragments are dropped; a leading "www." is dropped; ports
// and path components survive so locally hosted stores keep their address
// ("127.0.0.1:8080/magento24").
func ParseDomain(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, "://") {
		s = "//" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return strings.TrimSuffix(strings.TrimSpace(raw), "/")
	}

	host := strings.TrimPrefix(u.Host, "www.")

	domain := host + strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(domain, "/")
}

// BaseURL returns the normalized root URL of the store.
func (c *Client) BaseURL() string {
	return c.scheme + "://" + c.domain
}

// URLFor returns the request URL for an endpoint on the client scope.
func (c *Client) URLFor(endpoint string) string {
	return c.URLForScope(endpoint, c.scope)
}

// URLForScope returns the request URL for an endpoint on an explicit
// scope. Empty scope means the default store view, which has no scope
// component in the path.
func (c *Client) URLForScope(endpoint, scope string) string {
	endpoint = strings.TrimPrefix(endpoint, "/")
	if scope == "" {
		return c.BaseURL() + constants.RestBasePath + endpoint
	}
	return c.BaseURL() + fmt.Sprintf(constants.RestScopedPathFormat, scope) + endpoint
}

// Scope returns the store view code requests are made on.
func (c *Client) Scope() string {
	return c.scope
}

// Authenticate obtains and validates an access token, replacing any held
// token.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.tokenManager.Authenticate(ctx)
}

// Validate proves the held token is usable by reading a stable endpoint.
func (c *Client) Validate(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.URLFor(constants.TokenValidationEndpoint), nil)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return &magento.AuthenticationError{
			Message:    resp.ErrorSummary(),
			StatusCode: resp.StatusCode,
			Response:   string(resp.Body),
		}
	}
	return nil
}

// SetToken seeds the client with an externally obtained token.
func (c *Client) SetToken(token string) {
	c.tokenManager.SetToken(token)
}

// Settings exports the transportable client state, including the current
// access token.
func (c *Client) Settings(ctx context.Context) (*magento.Settings, error) {
	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	settings := &magento.Settings{
		Domain:    c.domain,
		Username:  c.config.Username,
		Password:  c.config.Password,
		Scope:     c.scope,
		Local:     c.config.Local,
		UserAgent: c.config.UserAgent,
		Token:     token,
	}
	if c.config.Debug {
		settings.LogLevel = "debug"
	}
	return settings, nil
}

// Store returns the store configuration cache.
func (c *Client) Store() magento.Store {
	return c.store
}

// Close releases the underlying HTTP connection pool.
func (c *Client) Close() error {
	c.http.Close()
	return nil
}

// Typed manager accessors. Managers are stateless apart from the client
// reference, so fresh values are cheap.

func (c *Client) Orders() magento.OrdersManager         { return newOrdersManager(c) }
func (c *Client) OrderItems() magento.OrderItemsManager { return newOrderItemsManager(c) }
func (c *Client) Invoices() magento.InvoicesManager     { return newInvoicesManager(c) }
func (c *Client) Products() magento.ProductsManager     { return newProductsManager(c) }
func (c *Client) Customers() magento.CustomersManager   { return newCustomersManager(c) }
func (c *Client) Categories() magento.CategoriesManager { return newCategoriesManager(c) }
func (c *Client) Shipments() magento.ShipmentsManager   { return newShipmentsManager(c) }
func (c *Client) TaxClasses() magento.TaxClassesManager { return newTaxClassesManager(c) }

func (c *Client) ProductAttributes() magento.ProductAttributesManager {
	return newProductAttributesManager(c)
}

func (c *Client) AttributeSets() magento.AttributeSetsManager { return newAttributeSetsManager(c) }

// AttributeOptions returns the manager for the options of the attribute
// set via SetAttributeOptionsAttribute.
func (c *Client) AttributeOptions() (magento.AttributeOptionsManager, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.optionsAttribute == nil {
		return nil, magento.ErrOptionsAttributeNotSet
	}
	if c.optionsManager == nil {
		c.optionsManager = newAttributeOptionsManager(c, c.optionsAttribute)
	}
	return c.optionsManager, nil
}

// MediaEntries returns the manager for the media gallery of the product
// set via SetMediaEntriesProduct.
func (c *Client) MediaEntries() (magento.MediaEntriesManager, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mediaProduct == nil {
		return nil, magento.ErrMediaProductNotSet
	}
	if c.mediaManager == nil {
		c.mediaManager = newMediaEntriesManager(c, c.mediaProduct)
	}
	return c.mediaManager, nil
}

// SetAttributeOptionsAttribute supplies the attribute the options manager
// operates on. Changing the attribute discards the previously built
// manager.
func (c *Client) SetAttributeOptionsAttribute(attribute *magento.ProductAttribute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.optionsAttribute = attribute
	c.optionsManager = nil
}

// SetMediaEntriesProduct supplies the product the media entries manager
// operates on. Changing the product discards the previously built manager.
func (c *Client) SetMediaEntriesProduct(product *magento.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mediaProduct = product
	c.mediaManager = nil
}

// Manager resolves a logical endpoint to its manager. Matching is ordered
// and case-insensitive; the most specific patterns are checked first so
// "products/attributes/color/options" never reaches the products manager.
// Unknown endpoints resolve to a generic manager for that endpoint.
func (c *Client) Manager(endpoint string) (magento.ResourceManager, error) {
	key := strings.ToLower(strings.Trim(endpoint, "/"))

	switch {
	case key == "orders/items" || key == "order_items":
		return c.OrderItems(), nil
	case key == "orders":
		return c.Orders(), nil
	case key == "invoices":
		return c.Invoices(), nil
	case isAttributeOptionsEndpoint(key):
		return c.AttributeOptions()
	case key == "products/attributes" || key == "attributes":
		return c.ProductAttributes(), nil
	case key == "products/attribute-sets" || key == "products/attribute-sets/sets/list" || key == "attribute_sets":
		return c.AttributeSets(), nil
	case isMediaEndpoint(key):
		return c.MediaEntries()
	case strings.HasPrefix(key, "products"):
		return c.Products(), nil
	case key == "customers":
		return c.Customers(), nil
	case key == "categories":
		return c.Categories(), nil
	case key == "shipments" || key == "shipment":
		return c.Shipments(), nil
	case key == "taxes" || key == "taxclasses":
		return c.TaxClasses(), nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.generic[key]; ok {
		return m, nil
	}
	m := newGenericManager(c, strings.Trim(endpoint, "/"))
	c.generic[key] = m
	return m, nil
}

func isAttributeOptionsEndpoint(key string) bool {
	if key == "options" || key == "attribute_options" {
		return true
	}
	return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, "/options")
}

func isMediaEndpoint(key string) bool {
	if key == "media" {
		return true
	}
	return strings.HasPrefix(key, "products/") && strings.HasSuffix(key, "/media")
}
