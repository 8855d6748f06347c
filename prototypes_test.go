package knowshowgo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	knowshowgo "github.com/knowshowgo/knowshowgo-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrototype(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusCreated, `{"uuid":"abc-123"}`))

	uuid, err := client.CreatePrototype(context.Background(), knowshowgo.CreatePrototypeRequest{
		Name: "Person",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", uuid)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/prototypes", captured.RequestURI)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &sent))
	assert.Equal(t, map[string]interface{}{
		"name":                 "Person",
		"description":          nil,
		"context":              nil,
		"labels":               []interface{}{},
		"embedding":            nil,
		"parentPrototypeUuids": nil,
	}, sent)
}

func TestCreatePrototypeAllFields(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusCreated, `{"uuid":"proto-1"}`))

	description := "A human being"
	ctx := "people"
	uuid, err := client.CreatePrototype(context.Background(), knowshowgo.CreatePrototypeRequest{
		Name:                 "Person",
		Description:          &description,
		Context:              &ctx,
		Labels:               []string{"person", "entity"},
		Embedding:            []float32{0.5, 0.25},
		ParentPrototypeUUIDs: []string{"parent-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "proto-1", uuid)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &sent))
	assert.Equal(t, map[string]interface{}{
		"name":                 "Person",
		"description":          "A human being",
		"context":              "people",
		"labels":               []interface{}{"person", "entity"},
		"embedding":            []interface{}{0.5, 0.25},
		"parentPrototypeUuids": []interface{}{"parent-1"},
	}, sent)
}

func TestCreatePrototypeMissingUUID(t *testing.T) {
	client, _ := newTestClient(t, respondJSON(http.StatusCreated, `{"status":"created"}`))

	_, err := client.CreatePrototype(context.Background(), knowshowgo.CreatePrototypeRequest{Name: "Person"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid")
}

func TestGetPrototype(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusOK,
		`{"uuid":"proto-1","name":"Person","labels":["person"],"custom":{"nested":true}}`))

	prototype, err := client.GetPrototype(context.Background(), "proto-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/api/prototypes/proto-1", captured.RequestURI)
	assert.Equal(t, map[string]interface{}{
		"uuid":   "proto-1",
		"name":   "Person",
		"labels": []interface{}{"person"},
		"custom": map[string]interface{}{"nested": true},
	}, prototype)
}

func TestGetPrototypeNotFound(t *testing.T) {
	client, _ := newTestClient(t, respondJSON(http.StatusNotFound, `{"error":"not found"}`))

	_, err := client.GetPrototype(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *knowshowgo.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "not found", apiErr.Message)
}

func TestGetPrototypeEscapesUUID(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusOK, `{}`))

	_, err := client.GetPrototype(context.Background(), "a/b?c")
	require.NoError(t, err)
	assert.Equal(t, "/api/prototypes/a%2Fb%3Fc", captured.RequestURI)
}
