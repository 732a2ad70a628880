package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/unity-markup/internal/unity"
)

func TestNewUnityValidator(t *testing.T) {
	t.Parallel()

	t.Run("compiles", func(t *testing.T) {
		t.Parallel()
		v, err := NewUnityValidator(NewSanthoshCompiler())
		require.NoError(t, err)
		assert.NotNil(t, v)
	})

	t.Run("registering twice fails", func(t *testing.T) {
		t.Parallel()
		c := NewSanthoshCompiler()
		_, err := NewUnityValidator(c)
		require.NoError(t, err)
		_, err = NewUnityValidator(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not be registered")
	})
}

// The exported schema must reach the same verdict as the structural validator.
func TestUnitySchemaAgreesWithValidate(t *testing.T) {
	t.Parallel()

	v, err := NewUnityValidator(NewSanthoshCompiler())
	require.NoError(t, err)

	docs := []string{
		`["x"]`,
		`["x", "hello world"]`,
		`["x", {"a": "attrib1", "b": 42}]`,
		`["x", {"a": "attrib1"}, "content"]`,
		`["x", [ "y"], [ "z"]]`,
		`["x", null, true, 1.5, ["y", {"k": null}]]`,
		`["ns:élément", {"xml:lang": "en", "στοιχείο": false}, ["元素"]]`,
		`["a\u00b7b", {"_\u0300": 1}]`,
		`["\ud800\udc00"]`,
		`[]`,
		`{"x": 1}`,
		`[123]`,
		`[null]`,
		`["x", "text", {"not": "allowed"}]`,
		`["x", {"a": 1}, {"b": 2}]`,
		`["x", {"a": [1,2,3]}]`,
		`["x", {"a": {"nested": true}}]`,
		`["x", {"123invalid": "v"}]`,
		`["123element"]`,
		`["element name"]`,
		`[""]`,
		`["-x"]`,
		`[".x"]`,
		`["\u00b7x"]`,
		`["x", []]`,
		`["x", ["y", [1]]]`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			t.Parallel()
			want := unity.Validate(doc).IsValid()
			got := ValidateJSON(v, []byte(doc)) == nil
			assert.Equal(t, want, got)
		})
	}
}

func TestValidateJSON(t *testing.T) {
	t.Parallel()

	v, err := NewUnityValidator(NewSanthoshCompiler())
	require.NoError(t, err)

	err = ValidateJSON(v, []byte(`["x",`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
