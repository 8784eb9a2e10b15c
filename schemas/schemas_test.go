package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/mention-monitor/internal/schemas"
)

var schemaFiles = []string{
	"mentions.schema.json",
	"candidates.schema.json",
}

func TestSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	// An empty document exercises schema compilation without tripping any
	// content rules besides required properties.
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			err = schemas.ValidateJSONString(string(data), `{}`)
			if err != nil {
				_, isLoadErr := err.(*schemas.SchemaLoadError)
				assert.False(t, isLoadErr, "schema should compile: %s", schemaFile)
			}
		})
	}
}

func TestMentionsSchema_RequiresID(t *testing.T) {
	data, err := os.ReadFile("mentions.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(data), `{"mentions": [{"title": "no id"}]}`)
	require.Error(t, err)
	_, isValidationErr := err.(*schemas.ValidationError)
	assert.True(t, isValidationErr)
}

func TestCandidatesSchema_BoundsLeadScore(t *testing.T) {
	data, err := os.ReadFile("candidates.schema.json")
	require.NoError(t, err)

	valid := `{"candidates": [{"id": "a", "title": "t", "lead_score": 85}]}`
	assert.NoError(t, schemas.ValidateJSONString(string(data), valid))

	invalid := `{"candidates": [{"id": "a", "title": "t", "lead_score": 500}]}`
	assert.Error(t, schemas.ValidateJSONString(string(data), invalid))
}
