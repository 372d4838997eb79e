package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		Source:    "answers/q1.vtt",
		Format:    FormatCaptions,
		Timestamp: "2024-01-01T00:00:00Z",
		Hash:      "abcd1234",
		Bytes:     42,
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)

	var unmarshaled Metadata
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, *metadata, unmarshaled)
	assert.Contains(t, string(jsonBytes), `"format": "captions"`)
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash("test content")
	hash2 := computeHash("different content")

	assert.Len(t, hash1, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash("test content"))
}

func TestNewMetadata(t *testing.T) {
	metadata := NewMetadata("test content", "answer.txt", FormatText)

	assert.Equal(t, "answer.txt", metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, computeHash("test content"), metadata.Hash)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}

func TestNewMetadata_EmptySource(t *testing.T) {
	metadata := NewMetadata("test content", "", FormatText)

	assert.Empty(t, metadata.Source)
	assert.NotContains(t, string(must(metadata.ToJSON())), "source")
}

func must(b []byte, err error) []byte {
	if err != nil {
		panic(err)
	}
	return b
}
