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

func TestAddAssociation(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusCreated, `{"status":"created"}`))

	response, err := client.AddAssociation(context.Background(), knowshowgo.AddAssociationRequest{
		FromConceptUUID: "a",
		ToConceptUUID:   "b",
		RelationType:    "relates_to",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "created"}, response)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/associations", captured.RequestURI)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &sent))
	assert.Equal(t, map[string]interface{}{
		"fromConceptUuid": "a",
		"toConceptUuid":   "b",
		"relationType":    "relates_to",
		"strength":        float64(1),
	}, sent)
}

func TestAddAssociationCustomStrength(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusCreated, `{}`))

	strength := 0.5
	_, err := client.AddAssociation(context.Background(), knowshowgo.AddAssociationRequest{
		FromConceptUUID: "a",
		ToConceptUUID:   "b",
		RelationType:    "knows",
		Strength:        &strength,
	})
	require.NoError(t, err)

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(captured.Body, &sent))
	assert.Equal(t, 0.5, sent["strength"])
}

func TestGetAssociationsDefaultDirection(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusOK,
		`{"associations":[{"fromConceptUuid":"a","toConceptUuid":"b","relationType":"knows","strength":0.5}]}`))

	associations, err := client.GetAssociations(context.Background(), "a", "")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/api/associations/a?direction=both", captured.RequestURI)

	require.Len(t, associations, 1)
	assert.Equal(t, map[string]interface{}{
		"fromConceptUuid": "a",
		"toConceptUuid":   "b",
		"relationType":    "knows",
		"strength":        0.5,
	}, associations[0])
}

func TestGetAssociationsDirection(t *testing.T) {
	for _, direction := range []string{"in", "out", "both"} {
		t.Run(direction, func(t *testing.T) {
			client, captured := newTestClient(t, respondJSON(http.StatusOK, `{"associations":[]}`))

			associations, err := client.GetAssociations(context.Background(), "concept-1", direction)
			require.NoError(t, err)
			assert.Empty(t, associations)
			assert.Equal(t, direction, captured.Query.Get("direction"))
		})
	}
}

func TestGetAssociationsEscapesUUID(t *testing.T) {
	client, captured := newTestClient(t, respondJSON(http.StatusOK, `{"associations":[]}`))

	_, err := client.GetAssociations(context.Background(), "a/b", "out")
	require.NoError(t, err)
	assert.Equal(t, "/api/associations/a%2Fb?direction=out", captured.RequestURI)
}

func TestGetAssociationsMissingField(t *testing.T) {
	client, _ := newTestClient(t, respondJSON(http.StatusOK, `{"edges":[]}`))

	_, err := client.GetAssociations(context.Background(), "a", "both")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "associations")
}
