package knowshowgo

import (
	"context"
	"net/http"
	"net/url"
)

type registerPrototypePayload struct {
	PrototypeName string                 `json:"prototypeName"`
	Options       map[string]interface{} `json:"options"`
}

type createInstancePayload struct {
	Properties map[string]interface{} `json:"properties"`
}

// RegisterPrototype registers a prototype for use with the ORM facade.
// options may be nil and is sent as an empty object in that case.
func (c *Client) RegisterPrototype(ctx context.Context, prototypeName string, options map[string]interface{}) (map[string]interface{}, error) {
	if options == nil {
		options = map[string]interface{}{}
	}

	body, err := c.Do(ctx, http.MethodPost, "/api/orm/register", RequestOptions{
		JSONBody: registerPrototypePayload{PrototypeName: prototypeName, Options: options},
	})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}

// CreateInstance creates a concept instance of a registered prototype.
func (c *Client) CreateInstance(ctx context.Context, prototypeName string, properties map[string]interface{}) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodPost, "/api/orm/"+url.PathEscape(prototypeName)+"/create", RequestOptions{
		JSONBody: createInstancePayload{Properties: properties},
	})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}

// GetInstance retrieves a concept instance of a registered prototype by UUID.
func (c *Client) GetInstance(ctx context.Context, prototypeName, uuid string) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodGet, "/api/orm/"+url.PathEscape(prototypeName)+"/"+url.PathEscape(uuid), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}
