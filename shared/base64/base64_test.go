package base64_test

import (
	"testing"

	"airwave/shared/base64"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png artwork", input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{name: "mp3 audio", input: "data:audio/mpeg;base64,SUQz", expected: "audio/mpeg"},
		{name: "missing marker", input: "data:image/png,abc", expected: ""},
		{name: "missing prefix", input: "image/png;base64,abc", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	data, contentType, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, "Hello World", string(data))

	_, _, err = base64.Decode("plain text")
	assert.ErrorIs(t, err, base64.ErrNotDataURI)

	_, _, err = base64.Decode("data:text/plain;base64,@@@")
	assert.Error(t, err)
}
