package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type custom struct{}

func (custom) JSONSchema() *JSONSchema {
	return &JSONSchema{OneOf: []*JSONSchema{{Type: "number"}, {Type: "string"}}}
}

type item struct {
	ID    string  `yaml:"id" schema:"required,minLength=1"`
	Kind  string  `yaml:"kind,omitempty" schema:"enum=a|b"`
	Value *custom `yaml:"value"`
}

type root struct {
	Name    string `yaml:"name" description:"Display name"`
	Count   int    `json:"count" schema:"minimum=0"`
	Enabled bool
	Items   []item `yaml:"items" schema:"required,minItems=1"`
	Skipped string `yaml:"-"`
	hidden  string
}

func TestGenerator_Generate(t *testing.T) {
	s, err := NewGenerator("https://example.test/schemas/").Generate(root{})
	require.NoError(t, err)

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "root", s.Title)
	assert.Equal(t, "https://example.test/schemas/root", s.ID)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"items"}, s.Required)

	require.Contains(t, s.Properties, "name")
	assert.Equal(t, "Display name", s.Properties["name"].Description)
	assert.Equal(t, "integer", s.Properties["count"].Type)
	require.NotNil(t, s.Properties["count"].Minimum)
	assert.Equal(t, "boolean", s.Properties["enabled"].Type)
	assert.NotContains(t, s.Properties, "Skipped")
	assert.NotContains(t, s.Properties, "skipped")
	assert.NotContains(t, s.Properties, "hidden")

	items := s.Properties["items"]
	assert.Equal(t, "array", items.Type)
	require.NotNil(t, items.MinItems)
	assert.Equal(t, 1, *items.MinItems)

	it := items.Items
	assert.Equal(t, []string{"id"}, it.Required)
	assert.Equal(t, []any{"a", "b"}, it.Properties["kind"].Enum)
	assert.Len(t, it.Properties["value"].OneOf, 2)
}

func TestGenerator_GenerateJSON(t *testing.T) {
	data, err := NewGenerator("").GenerateJSON(&root{})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, schemaRef, decoded["$schema"])
	assert.NotContains(t, decoded, "$id")
}

func TestGenerator_Unsupported(t *testing.T) {
	_, err := NewGenerator("").Generate(struct {
		C chan int
	}{})
	assert.Error(t, err)

	_, err = NewGenerator("").Generate(nil)
	assert.Error(t, err)
}
