package magento

import "encoding/json"

// Record is a raw decoded API response object, used by the generic
// resource manager and for payloads without a dedicated type.
type Record = map[string]interface{}

// SearchResult is the envelope returned by searchCriteria endpoints.
type SearchResult[T any] struct {
	Items          []T             `json:"items"           yaml:"items"`
	TotalCount     int             `json:"total_count"     yaml:"total_count"`
	SearchCriteria json.RawMessage `json:"search_criteria" yaml:"-"`
}

// StoreConfig represents one entry of the store/storeConfigs endpoint.
type StoreConfig struct {
	ID                         int    `json:"id"                            yaml:"id"`
	Code                       string `json:"code"                          yaml:"code"`
	WebsiteID                  int    `json:"website_id"                    yaml:"website_id"`
	Locale                     string `json:"locale"                        yaml:"locale"`
	BaseCurrencyCode           string `json:"base_currency_code"            yaml:"base_currency_code"`
	DefaultDisplayCurrencyCode string `json:"default_display_currency_code" yaml:"default_display_currency_code"`
	Timezone                   string `json:"timezone"                      yaml:"timezone"`
	BaseURL                    string `json:"base_url"                      yaml:"base_url"`
	BaseLinkURL                string `json:"base_link_url"                 yaml:"base_link_url"`
	BaseStaticURL              string `json:"base_static_url"               yaml:"base_static_url"`
	BaseMediaURL               string `json:"base_media_url"                yaml:"base_media_url"`
	SecureBaseURL              string `json:"secure_base_url"               yaml:"secure_base_url"`
	SecureBaseMediaURL         string `json:"secure_base_media_url"         yaml:"secure_base_media_url"`
}

// StoreView represents one entry of the store/storeViews endpoint.
type StoreView struct {
	ID           int    `json:"id"             yaml:"id"`
	Code         string `json:"code"           yaml:"code"`
	Name         string `json:"name"           yaml:"name"`
	WebsiteID    int    `json:"website_id"     yaml:"website_id"`
	StoreGroupID int    `json:"store_group_id" yaml:"store_group_id"`
	IsActive     int    `json:"is_active"      yaml:"is_active"`
}

// Website represents one entry of the store/websites endpoint.
type Website struct {
	ID             int    `json:"id"               yaml:"id"`
	Code           string `json:"code"             yaml:"code"`
	Name           string `json:"name"             yaml:"name"`
	DefaultGroupID int    `json:"default_group_id" yaml:"default_group_id"`
}

// ProductAttribute represents a products/attributes entry.
type ProductAttribute struct {
	AttributeID          int               `json:"attribute_id"           yaml:"attribute_id"`
	AttributeCode        string            `json:"attribute_code"         yaml:"attribute_code"`
	Scope                string            `json:"scope"                  yaml:"scope"`
	DefaultFrontendLabel string            `json:"default_frontend_label" yaml:"default_frontend_label"`
	FrontendInput        string            `json:"frontend_input"         yaml:"frontend_input"`
	EntityTypeID         string            `json:"entity_type_id"         yaml:"entity_type_id"`
	IsRequired           bool              `json:"is_required"            yaml:"is_required"`
	IsUserDefined        bool              `json:"is_user_defined"        yaml:"is_user_defined"`
	Position             int               `json:"position"               yaml:"position"`
	Options              []AttributeOption `json:"options,omitempty"      yaml:"options,omitempty"`
}

// AttributeOption represents one selectable option of a product attribute.
type AttributeOption struct {
	Label       string       `json:"label"                  yaml:"label"`
	Value       string       `json:"value"                  yaml:"value"`
	SortOrder   int          `json:"sort_order,omitempty"   yaml:"sort_order,omitempty"`
	IsDefault   bool         `json:"is_default,omitempty"   yaml:"is_default,omitempty"`
	StoreLabels []StoreLabel `json:"store_labels,omitempty" yaml:"store_labels,omitempty"`
}

// StoreLabel is a per-store-view label of an attribute option.
type StoreLabel struct {
	StoreID int    `json:"store_id" yaml:"store_id"`
	Label   string `json:"label"    yaml:"label"`
}

// AttributeSet groups product attributes under one template.
type AttributeSet struct {
	AttributeSetID   int    `json:"attribute_set_id"      yaml:"attribute_set_id"`
	AttributeSetName string `json:"attribute_set_name"    yaml:"attribute_set_name"`
	SortOrder        int    `json:"sort_order"            yaml:"sort_order"`
	EntityTypeID     int    `json:"entity_type_id"        yaml:"entity_type_id"`
	SkeletonID       int    `json:"skeleton_id,omitempty" yaml:"skeleton_id,omitempty"`
}

// MediaEntry represents a product media gallery entry.
type MediaEntry struct {
	ID        int           `json:"id"                yaml:"id"`
	MediaType string        `json:"media_type"        yaml:"media_type"`
	Label     string        `json:"label"             yaml:"label"`
	Position  int           `json:"position"          yaml:"position"`
	Disabled  bool          `json:"disabled"          yaml:"disabled"`
	Types     []string      `json:"types"             yaml:"types"`
	File      string        `json:"file"              yaml:"file"`
	Content   *MediaContent `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaContent is the inline payload of a new media entry.
type MediaContent struct {
	Base64EncodedData string `json:"base64_encoded_data" yaml:"base64_encoded_data"`
	Type              string `json:"type"                yaml:"type"`
	Name              string `json:"name"                yaml:"name"`
}

// Order represents an orders entry.
type Order struct {
	EntityID      int         `json:"entity_id"       yaml:"entity_id"`
	IncrementID   string      `json:"increment_id"    yaml:"increment_id"`
	Status        string      `json:"status"          yaml:"status"`
	State         string      `json:"state"           yaml:"state"`
	StoreID       int         `json:"store_id"        yaml:"store_id"`
	CustomerID    int         `json:"customer_id"     yaml:"customer_id"`
	CustomerEmail string      `json:"customer_email"  yaml:"customer_email"`
	Subtotal      float64     `json:"subtotal"        yaml:"subtotal"`
	GrandTotal    float64     `json:"grand_total"     yaml:"grand_total"`
	TotalQty      float64     `json:"total_qty_ordered" yaml:"total_qty_ordered"`
	CreatedAt     string      `json:"created_at"      yaml:"created_at"`
	UpdatedAt     string      `json:"updated_at"      yaml:"updated_at"`
	Items         []OrderItem `json:"items,omitempty" yaml:"items,omitempty"`
}

// OrderItem represents an orders/items entry.
type OrderItem struct {
	ItemID       int        `json:"item_id"                  yaml:"item_id"`
	OrderID      int        `json:"order_id"                 yaml:"order_id"`
	ProductID    int        `json:"product_id"               yaml:"product_id"`
	SKU          string     `json:"sku"                      yaml:"sku"`
	Name         string     `json:"name"                     yaml:"name"`
	QtyOrdered   float64    `json:"qty_ordered"              yaml:"qty_ordered"`
	Price        float64    `json:"price"                    yaml:"price"`
	ParentItemID *int       `json:"parent_item_id,omitempty" yaml:"parent_item_id,omitempty"`
	ParentItem   *OrderItem `json:"parent_item,omitempty"    yaml:"parent_item,omitempty"`
}

// TopLevelItems returns the order items without a parent item. Children of
// configurable products duplicate their parent entry and carry no price of
// their own.
func (o *Order) TopLevelItems() []OrderItem {
	items := make([]OrderItem, 0, len(o.Items))

	for _, item := range o.Items {
		if item.ParentItemID != nil || item.ParentItem != nil {
			continue
		}
		items = append(items, item)
	}

	return items
}

// Invoice represents an invoices entry.
type Invoice struct {
	EntityID    int     `json:"entity_id"    yaml:"entity_id"`
	IncrementID string  `json:"increment_id" yaml:"increment_id"`
	OrderID     int     `json:"order_id"     yaml:"order_id"`
	State       int     `json:"state"        yaml:"state"`
	GrandTotal  float64 `json:"grand_total"  yaml:"grand_total"`
	CreatedAt   string  `json:"created_at"   yaml:"created_at"`
}

// CustomAttribute is a single custom attribute of a product or customer.
type CustomAttribute struct {
	AttributeCode string      `json:"attribute_code" yaml:"attribute_code"`
	Value         interface{} `json:"value"          yaml:"value"`
}

// Product represents a products entry.
type Product struct {
	ID                  int               `json:"id"                              yaml:"id"`
	SKU                 string            `json:"sku"                             yaml:"sku"`
	Name                string            `json:"name"                            yaml:"name"`
	Price               float64           `json:"price"                           yaml:"price"`
	Status              int               `json:"status"                          yaml:"status"`
	Visibility          int               `json:"visibility"                      yaml:"visibility"`
	TypeID              string            `json:"type_id"                         yaml:"type_id"`
	AttributeSetID      int               `json:"attribute_set_id"                yaml:"attribute_set_id"`
	Weight              float64           `json:"weight,omitempty"                yaml:"weight,omitempty"`
	CreatedAt           string            `json:"created_at"                      yaml:"created_at"`
	UpdatedAt           string            `json:"updated_at"                      yaml:"updated_at"`
	CustomAttributes    []CustomAttribute `json:"custom_attributes,omitempty"     yaml:"custom_attributes,omitempty"`
	MediaGalleryEntries []MediaEntry      `json:"media_gallery_entries,omitempty" yaml:"media_gallery_entries,omitempty"`
	ExtensionAttributes Record            `json:"extension_attributes,omitempty"  yaml:"extension_attributes,omitempty"`
}

// Product status values.
const (
	ProductStatusEnabled  = 1
	ProductStatusDisabled = 2
)

// StockItem is the inventory record of a product.
type StockItem struct {
	ItemID    int     `json:"item_id"     yaml:"item_id"`
	ProductID int     `json:"product_id"  yaml:"product_id"`
	Qty       float64 `json:"qty"         yaml:"qty"`
	IsInStock bool    `json:"is_in_stock" yaml:"is_in_stock"`
}

// Customer represents a customers entry.
type Customer struct {
	ID        int    `json:"id"         yaml:"id"`
	Email     string `json:"email"      yaml:"email"`
	Firstname string `json:"firstname"  yaml:"firstname"`
	Lastname  string `json:"lastname"   yaml:"lastname"`
	GroupID   int    `json:"group_id"   yaml:"group_id"`
	StoreID   int    `json:"store_id"   yaml:"store_id"`
	WebsiteID int    `json:"website_id" yaml:"website_id"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// Category represents a categories entry.
type Category struct {
	ID           int        `json:"id"                      yaml:"id"`
	ParentID     int        `json:"parent_id"               yaml:"parent_id"`
	Name         string     `json:"name"                    yaml:"name"`
	IsActive     bool       `json:"is_active"               yaml:"is_active"`
	Position     int        `json:"position"                yaml:"position"`
	Level        int        `json:"level"                   yaml:"level"`
	Path         string     `json:"path,omitempty"          yaml:"path,omitempty"`
	ChildrenData []Category `json:"children_data,omitempty" yaml:"children_data,omitempty"`
}

// Shipment represents a shipments entry.
type Shipment struct {
	EntityID    int             `json:"entity_id"        yaml:"entity_id"`
	IncrementID string          `json:"increment_id"     yaml:"increment_id"`
	OrderID     int             `json:"order_id"         yaml:"order_id"`
	TotalQty    float64         `json:"total_qty"        yaml:"total_qty"`
	CreatedAt   string          `json:"created_at"       yaml:"created_at"`
	Tracks      []ShipmentTrack `json:"tracks,omitempty" yaml:"tracks,omitempty"`
}

// ShipmentTrack is a tracking number attached to a shipment.
type ShipmentTrack struct {
	EntityID    int    `json:"entity_id"    yaml:"entity_id"`
	OrderID     int    `json:"order_id"     yaml:"order_id"`
	TrackNumber string `json:"track_number" yaml:"track_number"`
	Title       string `json:"title"        yaml:"title"`
	CarrierCode string `json:"carrier_code" yaml:"carrier_code"`
}

// TaxClass represents a taxClasses entry.
type TaxClass struct {
	ClassID   int    `json:"class_id"   yaml:"class_id"`
	ClassName string `json:"class_name" yaml:"class_name"`
	ClassType string `json:"class_type" yaml:"class_type"`
}

// PackAttributes converts a plain attribute map into the custom_attributes
// wire format.
func PackAttributes(data map[string]interface{}) []CustomAttribute {
	packed := make([]CustomAttribute, 0, len(data))

	for code, value := range data {
		packed = append(packed, CustomAttribute{AttributeCode: code, Value: value})
	}

	return packed
}

// UnpackAttributes converts custom_attributes wire entries back into a map.
func UnpackAttributes(attributes []CustomAttribute) map[string]interface{} {
	unpacked := make(map[string]interface{}, len(attributes))

	for _, attribute := range attributes {
		unpacked[attribute.AttributeCode] = attribute.Value
	}

	return unpacked
}
