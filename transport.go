package knowshowgo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestOptions carries the optional parts of an API request.
type RequestOptions struct {
	// JSONBody, when non-nil, is serialized as the request body and the
	// request is sent with Content-Type: application/json.
	JSONBody interface{}

	// Query maps parameter names to values. Entries with a nil value are
	// omitted; every other value is stringified. Keys are unique, so there
	// is no multi-value support.
	Query map[string]interface{}
}

// BodyKind tags which representation of a response body is populated.
type BodyKind string

const (
	// BodyJSON marks a body decoded from an application/json response.
	BodyJSON BodyKind = "json"
	// BodyText marks a body kept as raw text for any other content type.
	BodyText BodyKind = "text"
)

// Body is a response payload decoded exactly once at the transport boundary.
// The server's Content-Type header selects the representation: JSON holds the
// parsed value when Kind is BodyJSON, Text holds the raw text otherwise.
type Body struct {
	Kind BodyKind
	JSON interface{}
	Text string
}

// Object returns the decoded JSON object, or false when the body is not a
// JSON object.
func (b Body) Object() (map[string]interface{}, bool) {
	if b.Kind != BodyJSON {
		return nil, false
	}
	obj, ok := b.JSON.(map[string]interface{})
	return obj, ok
}

// Do performs a single API request and returns the decoded response body.
// method is one of GET, POST, PUT, or DELETE; path is appended to the base
// URL as-is, so callers must percent-encode unsafe segments (url.PathEscape).
//
// Responses with a 2xx status return the body unchanged, with no shape
// validation. Any other status returns a *APIError carrying the status and
// the decoded body. Failures of the underlying Doer are returned untouched.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (Body, error) {
	var reqBody io.Reader
	if opts.JSONBody != nil {
		raw, err := json.Marshal(opts.JSONBody)
		if err != nil {
			return Body{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, opts.Query), reqBody)
	if err != nil {
		return Body{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if opts.JSONBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failures pass through untouched.
		return Body{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Body{}, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("knowshowgo request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	body, err := decodeBody(resp.Header.Get("Content-Type"), raw)
	if err != nil {
		return Body{}, fmt.Errorf("failed to decode response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Body{}, newAPIError(method, path, resp.StatusCode, body)
	}

	return body, nil
}

// requestURL joins the base URL with path and appends the surviving query
// parameters. The path is concatenated verbatim; pre-encoded segments are
// preserved.
func (c *Client) requestURL(path string, query map[string]interface{}) string {
	u := c.baseURL + path

	values := url.Values{}
	for key, value := range query {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	if len(values) > 0 {
		u += "?" + values.Encode()
	}

	return u
}

// decodeBody decodes raw according to the response's declared content type.
// Status classification is independent of this step, so error payloads are
// decoded the same way as success payloads.
func decodeBody(contentType string, raw []byte) (Body, error) {
	if strings.Contains(contentType, "application/json") {
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return Body{}, err
		}
		return Body{Kind: BodyJSON, JSON: value}, nil
	}
	return Body{Kind: BodyText, Text: string(raw)}, nil
}

// objectBody returns the body as a JSON object. Operations whose responses
// are documented as objects use this for whole-body passthrough.
func objectBody(body Body) (map[string]interface{}, error) {
	obj, ok := body.Object()
	if !ok {
		return nil, fmt.Errorf("expected a JSON object response, got %s", body.Kind)
	}
	return obj, nil
}

// stringField extracts a string-valued field from a JSON object body.
func stringField(body Body, key string) (string, error) {
	obj, err := objectBody(body)
	if err != nil {
		return "", err
	}
	value, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("response is missing the %q field", key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("response field %q is not a string", key)
	}
	return s, nil
}

// objectList extracts a field holding a list of JSON objects from a JSON
// object body.
func objectList(body Body, key string) ([]map[string]interface{}, error) {
	obj, err := objectBody(body)
	if err != nil {
		return nil, err
	}
	value, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("response is missing the %q field", key)
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, fmt.Errorf("response field %q is not a list", key)
	}

	list := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("response field %q contains a non-object entry", key)
		}
		list = append(list, entry)
	}
	return list, nil
}
