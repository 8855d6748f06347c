package knowshowgo

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultAssociationStrength is applied when AddAssociationRequest.Strength
// is unset.
const DefaultAssociationStrength = 1.0

// AddAssociationRequest describes a typed, weighted edge between two
// concepts. All three identifying fields are required.
type AddAssociationRequest struct {
	FromConceptUUID string
	ToConceptUUID   string
	RelationType    string
	// Strength is the edge weight. Defaults to
	// DefaultAssociationStrength.
	Strength *float64
}

type associationPayload struct {
	FromConceptUUID string  `json:"fromConceptUuid"`
	ToConceptUUID   string  `json:"toConceptUuid"`
	RelationType    string  `json:"relationType"`
	Strength        float64 `json:"strength"`
}

// AddAssociation creates an association between two concepts.
func (c *Client) AddAssociation(ctx context.Context, req AddAssociationRequest) (map[string]interface{}, error) {
	payload := associationPayload{
		FromConceptUUID: req.FromConceptUUID,
		ToConceptUUID:   req.ToConceptUUID,
		RelationType:    req.RelationType,
		Strength:        DefaultAssociationStrength,
	}
	if req.Strength != nil {
		payload.Strength = *req.Strength
	}

	body, err := c.Do(ctx, http.MethodPost, "/api/associations", RequestOptions{JSONBody: payload})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}

// GetAssociations retrieves the associations of a concept. direction selects
// which edges are returned ("in", "out", or "both") and defaults to "both"
// when empty.
func (c *Client) GetAssociations(ctx context.Context, uuid, direction string) ([]map[string]interface{}, error) {
	if direction == "" {
		direction = "both"
	}

	body, err := c.Do(ctx, http.MethodGet, "/api/associations/"+url.PathEscape(uuid), RequestOptions{
		Query: map[string]interface{}{"direction": direction},
	})
	if err != nil {
		return nil, err
	}
	return objectList(body, "associations")
}
