package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tmplfn/funcs"
)

func TestBuild_ListsEveryFunction(t *testing.T) {
	doc := Build(funcs.New())

	require.Len(t, doc.Functions, 25)
	for i := 1; i < len(doc.Functions); i++ {
		assert.Less(t, doc.Functions[i-1].Name, doc.Functions[i].Name, "catalog must be sorted")
	}
}

func TestBuild_RespectsDisabled(t *testing.T) {
	doc := Build(funcs.New(funcs.WithDisabled("randAscii")))

	for _, f := range doc.Functions {
		assert.NotEqual(t, "randAscii", f.Name)
	}
	assert.Len(t, doc.Functions, 24)
}

func TestYAML_RoundTrip(t *testing.T) {
	doc := Build(funcs.New())

	data, err := doc.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "base64encode")
	assert.Contains(t, string(data), "trimAll")

	var decoded Document
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Functions, len(doc.Functions))
	assert.Equal(t, doc.Functions[0], decoded.Functions[0])
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok, "schema must declare properties")
	assert.Contains(t, props, "functions")

	required, ok := schema["required"].([]any)
	require.True(t, ok, "schema must declare required fields")
	assert.Contains(t, required, "functions")
}
