package endpoints

import (
	"context"
	"fmt"
	"net/url"
)

// DeleteItem deletes a single item from the endpoint at path. The endpoint
// path travels as a query parameter, e.g.
// DELETE /api/items/abc12345?path=%2Fjob-tracker%2Fjanuary-2026.
func (c *Client) DeleteItem(ctx context.Context, itemID, path string) (*DeleteItemResponse, error) {
	reqPath := fmt.Sprintf("/api/items/%s?path=%s", url.PathEscape(itemID), url.QueryEscape(path))

	var resp DeleteItemResponse
	if err := c.Delete(ctx, reqPath, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
