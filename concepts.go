package knowshowgo

import (
	"context"
	"net/http"
	"net/url"
)

// Defaults applied by SearchConcepts when the corresponding option is unset.
const (
	DefaultSearchTopK                = 10
	DefaultSearchSimilarityThreshold = 0.7
)

// CreateConceptRequest describes a concept to create. PrototypeUUID and
// JSONObj are required; Embedding and PreviousVersionUUID are sent as
// explicit JSON null when unset.
type CreateConceptRequest struct {
	PrototypeUUID       string                 `json:"prototypeUuid"`
	JSONObj             map[string]interface{} `json:"jsonObj"`
	Embedding           []float32              `json:"embedding"`
	PreviousVersionUUID *string                `json:"previousVersionUuid"`
}

// SearchConceptsOptions tunes a semantic similarity search. A nil field
// selects the documented default.
type SearchConceptsOptions struct {
	// TopK is the maximum number of results. Defaults to
	// DefaultSearchTopK.
	TopK *int
	// SimilarityThreshold is the minimum similarity score. Defaults to
	// DefaultSearchSimilarityThreshold.
	SimilarityThreshold *float64
	// PrototypeFilter restricts results to concepts of one prototype.
	// Sent as explicit JSON null when unset.
	PrototypeFilter *string
}

type searchConceptsRequest struct {
	Query               string  `json:"query"`
	TopK                int     `json:"topK"`
	SimilarityThreshold float64 `json:"similarityThreshold"`
	PrototypeFilter     *string `json:"prototypeFilter"`
}

// CreateConcept creates a new concept and returns its UUID.
func (c *Client) CreateConcept(ctx context.Context, req CreateConceptRequest) (string, error) {
	body, err := c.Do(ctx, http.MethodPost, "/api/concepts", RequestOptions{JSONBody: req})
	if err != nil {
		return "", err
	}
	return stringField(body, "uuid")
}

// GetConcept retrieves a concept by UUID.
func (c *Client) GetConcept(ctx context.Context, uuid string) (map[string]interface{}, error) {
	body, err := c.Do(ctx, http.MethodGet, "/api/concepts/"+url.PathEscape(uuid), RequestOptions{})
	if err != nil {
		return nil, err
	}
	return objectBody(body)
}

// SearchConcepts searches concepts by semantic similarity and returns the
// matching results. opts may be nil for default behavior.
func (c *Client) SearchConcepts(ctx context.Context, query string, opts *SearchConceptsOptions) ([]map[string]interface{}, error) {
	if opts == nil {
		opts = &SearchConceptsOptions{}
	}

	payload := searchConceptsRequest{
		Query:               query,
		TopK:                DefaultSearchTopK,
		SimilarityThreshold: DefaultSearchSimilarityThreshold,
		PrototypeFilter:     opts.PrototypeFilter,
	}
	if opts.TopK != nil {
		payload.TopK = *opts.TopK
	}
	if opts.SimilarityThreshold != nil {
		payload.SimilarityThreshold = *opts.SimilarityThreshold
	}

	body, err := c.Do(ctx, http.MethodPost, "/api/concepts/search", RequestOptions{JSONBody: payload})
	if err != nil {
		return nil, err
	}
	return objectList(body, "results")
}
