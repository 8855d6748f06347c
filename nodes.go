package knowshowgo

import (
	"context"
	"net/http"
	"net/url"
)

// CreateNodeWithDocumentRequest describes a graph node carrying document
// content. Label is required. Summary and PrototypeUUID are sent as explicit
// JSON null when unset; Tags, Metadata, and Associations are sent as empty
// collections.
type CreateNodeWithDocumentRequest struct {
	Label         string                   `json:"label"`
	Summary       *string                  `json:"summary"`
	Tags          []string                 `json:"tags"`
	Metadata      map[string]interface{}   `json:"metadata"`
	Associations  []map[string]interface{} `json:"associations"`
	PrototypeUUID *string                  `json:"prototypeUuid"`
}

// CreateNodeWithDocument creates a node with document metadata and tags and
// returns its UUID.
func (c *Client) CreateNodeWithDocument(ctx context.Context, req CreateNodeWithDocumentRequest) (string, error) {
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Metadata == nil {
		req.Metadata = map[string]interface{}{}
	}
	if req.Associations == nil {
		req.Associations = []map[string]interface{}{}
	}

	body, err := c.Do(ctx, http.MethodPost, "/api/nodes", RequestOptions{JSONBody: req})
	if err != nil {
		return "", err
	}
	return stringField(body, "uuid")
}

// UpdateNodeEmbedding asks the service to recompute a node's embedding. The
// request carries no body.
func (c *Client) UpdateNodeEmbedding(ctx context.Context, uuid string) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodPost, "/api/nodes/"+url.PathEscape(uuid)+"/embedding", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}
