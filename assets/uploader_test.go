package assets

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadDataURI(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))

	contentType, data, err := decodePayload("data:image/png;base64," + encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("fake-png-bytes"), data)
}

func TestDecodePayloadBareBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("bytes"))

	contentType, data, err := decodePayload(encoded)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", contentType)
	assert.Equal(t, []byte("bytes"), data)
}

func TestDecodePayloadErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"malformed data URI", "data:image/png;base64"},
		{"invalid base64", "data:image/png;base64,!!not-base64!!"},
		{"empty payload", "data:image/png;base64,"},
		{"empty string", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodePayload(tt.payload)
			assert.Error(t, err)
		})
	}
}
