// Package assets stores uploaded image payloads in an S3-compatible
// bucket and hands back retrievable URLs. Clients submit images as base64
// data URIs; nothing raw is ever persisted in the database, only the
// resulting reference.
package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// Uploader is the asset-upload collaborator consumed by the user and
// message services. Implementations take a base64 data-URI payload and
// return the URL the stored object can be fetched from.
type Uploader interface {
	Upload(ctx context.Context, payload string) (string, error)
}

// decodePayload splits a data URI into its content type and raw bytes.
// A bare base64 string without the data: prefix is accepted and stored as
// an opaque octet stream.
func decodePayload(payload string) (contentType string, data []byte, err error) {
	contentType = "application/octet-stream"
	encoded := payload

	if strings.HasPrefix(payload, "data:") {
		meta, rest, found := strings.Cut(payload[len("data:"):], ",")
		if !found {
			return "", nil, fmt.Errorf("malformed data URI")
		}
		if ct, _, _ := strings.Cut(meta, ";"); ct != "" {
			contentType = ct
		}
		encoded = rest
	}

	data, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("empty payload")
	}
	return contentType, data, nil
}
