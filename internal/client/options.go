package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/magerest/magento-go/pkg/magento"
)

// attributeOptionsManager operates on the options of a single product
// attribute. The options endpoint answers with a bare array and supports
// no searchCriteria, so searches are evaluated client side.
type attributeOptionsManager struct {
	baseManager
	attribute *magento.ProductAttribute
}

func newAttributeOptionsManager(c *Client, attribute *magento.ProductAttribute) *attributeOptionsManager {
	endpoint := fmt.Sprintf("products/attributes/%s/options", url.PathEscape(attribute.AttributeCode))
	return &attributeOptionsManager{
		baseManager: baseManager{
			client:         c,
			endpoint:       endpoint,
			searchEndpoint: endpoint,
			identifier:     "value",
		},
		attribute: attribute,
	}
}

// Attribute returns the attribute this manager operates on.
func (m *attributeOptionsManager) Attribute() *magento.ProductAttribute {
	return m.attribute
}

// All returns every option of the attribute. Magento prepends a blank
// placeholder option, which is dropped.
func (m *attributeOptionsManager) All(ctx context.Context) ([]magento.AttributeOption, error) {
	var options []magento.AttributeOption
	if err := m.getJSON(ctx, m.client.URLFor(m.endpoint), &options); err != nil {
		return nil, err
	}
	filtered := make([]magento.AttributeOption, 0, len(options))
	for _, o := range options {
		if o.Value == "" && o.Label == " " {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, nil
}

// ByLabel retrieves an option by its label, case-insensitively.
func (m *attributeOptionsManager) ByLabel(ctx context.Context, label string) (*magento.AttributeOption, error) {
	options, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range options {
		if strings.EqualFold(options[i].Label, label) {
			return &options[i], nil
		}
	}
	return nil, fmt.Errorf("%w: option with label %q", magento.ErrNoResult, label)
}

// ByValue retrieves an option by its stored value.
func (m *attributeOptionsManager) ByValue(ctx context.Context, value string) (*magento.AttributeOption, error) {
	options, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range options {
		if options[i].Value == value {
			return &options[i], nil
		}
	}
	return nil, fmt.Errorf("%w: option with value %q", magento.ErrNoResult, value)
}

// Add creates a new option on the attribute.
func (m *attributeOptionsManager) Add(ctx context.Context, option magento.AttributeOption) error {
	payload := map[string]interface{}{"option": option}
	resp, err := m.client.http.Post(ctx, m.client.URLFor(m.endpoint), payload)
	if err != nil {
		return err
	}
	if !resp.OK() {
		return m.apiError(http.MethodPost, resp)
	}
	return nil
}

// Remove deletes an option by its stored value.
func (m *attributeOptionsManager) Remove(ctx context.Context, value string) error {
	resp, err := m.client.http.Delete(ctx, m.itemURL(value))
	if err != nil {
		return err
	}
	if !resp.OK() {
		return m.apiError(http.MethodDelete, resp)
	}
	return nil
}

// ExecuteSearch returns all options as raw records. The endpoint supports
// no server side filtering; the query only narrows pagination.
func (m *attributeOptionsManager) ExecuteSearch(ctx context.Context, query *magento.Query) ([]magento.Record, error) {
	options, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]magento.Record, 0, len(options))
	for _, o := range options {
		records = append(records, magento.Record{
			"label": o.Label,
			"value": o.Value,
		})
	}
	return records, nil
}

// ByID retrieves an option by stored value as a raw record.
func (m *attributeOptionsManager) ByID(ctx context.Context, id string) (magento.Record, error) {
	option, err := m.ByValue(ctx, id)
	if err != nil {
		return nil, err
	}
	return magento.Record{"label": option.Label, "value": option.Value}, nil
}
