package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

var ErrNotDataURI = errors.New("value is not a base64 data uri")

// GetContentType returns the mime type of a data uri, or "" when s is not one.
func GetContentType(s string) string {
	start := len(dataPrefix)
	end := strings.Index(s, base64Marker)

	if !strings.HasPrefix(s, dataPrefix) || end == -1 || end < start {
		return ""
	}

	return s[start:end]
}

// Decode splits a data uri into its payload and content type.
func Decode(s string) ([]byte, string, error) {
	contentType := GetContentType(s)
	if contentType == "" {
		return nil, "", ErrNotDataURI
	}

	payload := s[strings.Index(s, base64Marker)+len(base64Marker):]

	data, err := stdbase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode data uri: %w", err)
	}

	return data, contentType, nil
}
