package magento

import (
	"context"
	"time"
)

// Logger is the logging boundary of the library. The core decides what to
// log and at what severity; sinks, formatting and rotation belong to the
// implementation supplied by the caller.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// # Authentication
//
// Exactly one authentication method is active per client: an API key, or a
// username/password pair. If APIKey is set it is used directly as the bearer
// token; otherwise the password grant against integration/admin/token is
// used. Leaving both the password and the API key unset is a precondition
// violation reported by the first authentication attempt.
type Config struct {
	// Domain is the Magento store domain (e.g. "domain.com" or
	// "127.0.0.1/magento24"). Schemes, credentials and fragments are
	// stripped during normalization.
	Domain string

	// Username of the Magento admin account (password grant).
	Username string
	// Password of the Magento admin account (password grant).
	Password string
	// APIKey is an integration access token used directly as the bearer
	// token instead of the password grant.
	APIKey string

	// Scope is the store view code requests are made on. Empty means the
	// default store view.
	Scope string

	// Local selects plain http for locally hosted stores.
	Local bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Login authenticates during construction instead of lazily on the
	// first request.
	Login bool

	// Logger receives debug/info/error events; nil disables logging.
	Logger Logger

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// HTTPTimeout is the transport timeout; zero uses the default.
	HTTPTimeout time.Duration

	// RetryWaitMin and RetryWaitMax tune the transport-level backoff for
	// transient 502/503/504 failures on POST/PUT. Zero uses defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// ResourceManager is the minimal contract every endpoint handler satisfies.
// Search results and single records are returned as raw decoded JSON; typed
// shaping is the concern of the resource-specific managers.
type ResourceManager interface {
	// Endpoint returns the logical endpoint this manager queries.
	Endpoint() string
	// ExecuteSearch runs a searchCriteria query and returns the matching
	// records.
	ExecuteSearch(ctx context.Context, query *Query) ([]Record, error)
	// ByID retrieves a single record by its identifier.
	ByID(ctx context.Context, id string) (Record, error)
	// Create POSTs a payload to the endpoint.
	Create(ctx context.Context, payload Record) (Record, error)
	// Update PUTs a payload to the endpoint item.
	Update(ctx context.Context, id string, payload Record) (Record, error)
	// Delete removes an endpoint item.
	Delete(ctx context.Context, id string) (bool, error)
}

// OrdersManager queries the orders endpoint.
type OrdersManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]Order, error)
	Get(ctx context.Context, entityID int) (*Order, error)
	ByIncrementID(ctx context.Context, incrementID string) (*Order, error)
}

// OrderItemsManager queries the orders/items endpoint.
type OrderItemsManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]OrderItem, error)
	Get(ctx context.Context, itemID int) (*OrderItem, error)
	ByProductID(ctx context.Context, productID int) ([]OrderItem, error)
	BySKU(ctx context.Context, sku string) ([]OrderItem, error)
}

// InvoicesManager queries the invoices endpoint.
type InvoicesManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]Invoice, error)
	Get(ctx context.Context, entityID int) (*Invoice, error)
	ByOrderID(ctx context.Context, orderID int) ([]Invoice, error)
	ByOrderNumber(ctx context.Context, incrementID string) ([]Invoice, error)
}

// ProductsManager queries the products endpoint.
type ProductsManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]Product, error)
	BySKU(ctx context.Context, sku string) (*Product, error)
	ByEntityID(ctx context.Context, entityID int) (*Product, error)
	Stock(ctx context.Context, sku string) (*StockItem, error)
	// UpdateAttributes updates top-level product attributes with scoping
	// taken into account: website and global attributes require a second
	// request on the "all" scope.
	UpdateAttributes(ctx context.Context, sku string, attributes map[string]interface{}, scope string) error
	// UpdateCustomAttributes behaves like UpdateAttributes for
	// custom_attributes payloads.
	UpdateCustomAttributes(ctx context.Context, sku string, attributes map[string]interface{}, scope string) error
}

// ProductAttributesManager queries the products/attributes endpoint.
type ProductAttributesManager interface {
	ResourceManager
	All(ctx context.Context) ([]ProductAttribute, error)
	ByCode(ctx context.Context, attributeCode string) (*ProductAttribute, error)
	Types(ctx context.Context) ([]Record, error)
}

// AttributeSetsManager queries the products/attribute-sets endpoint.
type AttributeSetsManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]AttributeSet, error)
	Get(ctx context.Context, attributeSetID int) (*AttributeSet, error)
	ByName(ctx context.Context, name string) (*AttributeSet, error)
}

// AttributeOptionsManager queries products/attributes/{code}/options. It
// requires a product attribute to be set on the client before routing.
type AttributeOptionsManager interface {
	ResourceManager
	Attribute() *ProductAttribute
	All(ctx context.Context) ([]AttributeOption, error)
	ByLabel(ctx context.Context, label string) (*AttributeOption, error)
	ByValue(ctx context.Context, value string) (*AttributeOption, error)
	Add(ctx context.Context, option AttributeOption) error
	Remove(ctx context.Context, value string) error
}

// MediaEntriesManager queries products/{sku}/media. It requires a product
// to be set on the client before routing.
type MediaEntriesManager interface {
	ResourceManager
	Product() *Product
	All(ctx context.Context) ([]MediaEntry, error)
	Get(ctx context.Context, entryID int) (*MediaEntry, error)
	UpdateEntry(ctx context.Context, entry MediaEntry) error
	Enable(ctx context.Context, entry MediaEntry) error
	Disable(ctx context.Context, entry MediaEntry) error
}

// CustomersManager queries the customers/search endpoint.
type CustomersManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]Customer, error)
	Get(ctx context.Context, customerID int) (*Customer, error)
	ByEmail(ctx context.Context, email string) (*Customer, error)
}

// CategoriesManager queries the categories endpoint.
type CategoriesManager interface {
	ResourceManager
	Root(ctx context.Context) (*Category, error)
	All(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, categoryID int) (*Category, error)
	ByName(ctx context.Context, name string, exact bool) ([]Category, error)
}

// ShipmentsManager queries the shipments endpoint.
type ShipmentsManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]Shipment, error)
	Get(ctx context.Context, entityID int) (*Shipment, error)
	ByOrderID(ctx context.Context, orderID int) ([]Shipment, error)
}

// TaxClassesManager queries the taxClasses endpoint.
type TaxClassesManager interface {
	ResourceManager
	Search(ctx context.Context, query *Query) ([]TaxClass, error)
	Get(ctx context.Context, classID int) (*TaxClass, error)
}

// Store exposes the lazily computed, memoized store-wide configuration:
// store views, websites, store configs and the product attribute scope
// partitions.
type Store interface {
	Configs(ctx context.Context) ([]StoreConfig, error)
	Views(ctx context.Context) ([]StoreView, error)
	Websites(ctx context.Context) ([]Website, error)
	// Active returns the config matching the client scope. A missing
	// default code falls back to the smallest-id config; a custom scope
	// with no match returns nil and callers must check.
	Active(ctx context.Context) (*StoreConfig, error)
	IsSingleStore(ctx context.Context) (bool, error)
	AllProductAttributes(ctx context.Context) ([]ProductAttribute, error)
	GlobalProductAttributes(ctx context.Context) ([]ProductAttribute, error)
	WebsiteProductAttributes(ctx context.Context) ([]ProductAttribute, error)
	StoreViewProductAttributes(ctx context.Context) ([]ProductAttribute, error)
	WebsiteAttributeCodes(ctx context.Context) ([]string, error)
	// FilterWebsiteAttrs returns the subset of data keyed by
	// website-scoped attribute codes.
	FilterWebsiteAttrs(ctx context.Context, data map[string]interface{}) (map[string]interface{}, error)
	// Refresh atomically discards every memoized entry; subsequent
	// accesses recompute from the network.
	Refresh()
}

// Client is the Magento API client.
type Client interface {
	// Manager resolves a logical endpoint to the manager responsible for
	// it. Unknown endpoints resolve to a generic manager that returns raw
	// decoded records.
	Manager(endpoint string) (ResourceManager, error)

	Orders() OrdersManager
	OrderItems() OrderItemsManager
	Invoices() InvoicesManager
	Products() ProductsManager
	ProductAttributes() ProductAttributesManager
	AttributeSets() AttributeSetsManager
	AttributeOptions() (AttributeOptionsManager, error)
	MediaEntries() (MediaEntriesManager, error)
	Customers() CustomersManager
	Categories() CategoriesManager
	Shipments() ShipmentsManager
	TaxClasses() TaxClassesManager

	// SetAttributeOptionsAttribute supplies the prerequisite for the
	// attribute-options manager and invalidates any previously built one.
	SetAttributeOptionsAttribute(attribute *ProductAttribute)
	// SetMediaEntriesProduct supplies the prerequisite for the media
	// entries manager and invalidates any previously built one.
	SetMediaEntriesProduct(product *Product)

	Store() Store

	// Authenticate obtains and validates an access token.
	Authenticate(ctx context.Context) error
	// Validate checks the current token against a stable read endpoint.
	Validate(ctx context.Context) error

	// URLFor returns the request URL for an endpoint on the client scope.
	URLFor(endpoint string) string
	// URLForScope returns the request URL for an endpoint on an explicit
	// scope; an empty scope produces the unscoped URL.
	URLForScope(endpoint, scope string) string

	// Settings exports the transportable client state.
	Settings(ctx context.Context) (*Settings, error)

	// Close releases the underlying HTTP connection pool.
	Close() error
}
