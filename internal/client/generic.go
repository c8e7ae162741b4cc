package client

// genericManager serves endpoints without a dedicated manager. It exposes
// the raw record operations of baseManager unchanged.
type genericManager struct {
	baseManager
}

func newGenericManager(c *Client, endpoint string) *genericManager {
	return &genericManager{baseManager{
		client:         c,
		endpoint:       endpoint,
		searchEndpoint: endpoint,
		identifier:     "entity_id",
	}}
}
