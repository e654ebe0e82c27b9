package backend

import (
	"context"
	"fmt"
)

// UploadObject stores a document blob under key in the service's object
// storage. The caller's session cookies authorize the write.
func (c *Client) UploadObject(ctx context.Context, jar *CookieJar, key, contentType string, data []byte) error {
	if !c.configured {
		return ErrNotConfigured
	}

	resp, err := c.request(ctx, jar).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post("/storage/v1/object/" + key)
	if err != nil {
		return fmt.Errorf("upload object %q: %w", key, err)
	}
	if resp.IsError() {
		return apiError(resp)
	}

	return nil
}

// DownloadObject fetches the blob stored under key, returning its bytes
// and content type.
func (c *Client) DownloadObject(ctx context.Context, jar *CookieJar, key string) ([]byte, string, error) {
	if !c.configured {
		return nil, "", ErrNotConfigured
	}

	resp, err := c.request(ctx, jar).Get("/storage/v1/object/" + key)
	if err != nil {
		return nil, "", fmt.Errorf("download object %q: %w", key, err)
	}
	if resp.IsError() {
		return nil, "", apiError(resp)
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}
