package knowshowgo

import (
	"context"
	"net/http"
	"net/url"
)

// CreatePrototypeRequest describes a prototype to create. Name is required.
// The remaining fields are optional and transmitted as explicit JSON null
// when unset, except Labels which the service expects as an empty array.
type CreatePrototypeRequest struct {
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	Context              *string   `json:"context"`
	Labels               []string  `json:"labels"`
	Embedding            []float32 `json:"embedding"`
	ParentPrototypeUUIDs []string  `json:"parentPrototypeUuids"`
}

// CreatePrototype creates a new prototype and returns its UUID.
func (c *Client) CreatePrototype(ctx context.Context, req CreatePrototypeRequest) (string, error) {
	if req.Labels == nil {
		req.Labels = []string{}
	}

	body, err := c.Do(ctx, http.MethodPost, "/api/prototypes", RequestOptions{JSONBody: req})
	if err != nil {
		return "", err
	}
	return stringField(body, "uuid")
}

// GetPrototype retrieves a prototype by UUID.
func (c *Client) GetPrototype(ctx context.Context, uuid string) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodGet, "/api/prototypes/"+url.PathEscape(uuid), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}
