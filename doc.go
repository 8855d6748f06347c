// Package knowshowgo provides a Go client for the KnowShowGo REST API.
//
// KnowShowGo is a knowledge-graph service organizing information as
// prototypes (schemas), concepts (versioned, embeddable knowledge units),
// associations (typed, weighted edges between concepts), and nodes carrying
// document content. The client exposes one thin method per API operation on
// top of a single transport adapter; every method issues exactly one HTTP
// request and performs no caching, retries, or batching.
//
// # Basic Usage
//
// Create a client and talk to a local service:
//
//	client := knowshowgo.NewClient(nil) // http://localhost:3000
//
//	health, err := client.HealthCheck(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	uuid, err := client.CreatePrototype(ctx, knowshowgo.CreatePrototypeRequest{
//		Name:   "Person",
//		Labels: []string{"person", "human"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.SearchConcepts(ctx, "person named John", nil)
//
// # Configuration
//
// All configuration is captured at construction and immutable afterwards:
//
//	client := knowshowgo.NewClient(&knowshowgo.Config{
//		BaseURL:    "https://kg.internal:3000",
//		HTTPClient: &http.Client{Timeout: 10 * time.Second},
//	})
//
// The HTTPClient field accepts anything implementing Doer, which keeps the
// transport substitutable in tests.
//
// # Error Handling
//
// Responses with a status outside the 2xx range surface as *APIError with
// the status code and decoded body attached:
//
//	_, err := client.GetPrototype(ctx, uuid)
//	var apiErr *knowshowgo.APIError
//	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
//		// create it instead
//	}
//
// Network-level failures of the underlying Doer are returned unchanged, so
// callers can still reach the *url.Error produced by net/http.
//
// # Wire Behavior
//
// The service distinguishes absent keys from explicit nulls, and the client
// always sends explicit null for unset optional fields. Response bodies are
// decoded once at the transport boundary: JSON when the Content-Type header
// says application/json, raw text otherwise. Within the 2xx range the body
// is returned without shape validation.
//
// # Embeddings
//
// Creation calls accept pre-computed embedding vectors. The pkg/embedder
// subpackage produces such vectors through OpenAI-compatible services; it is
// never invoked implicitly by this package.
package knowshowgo
