package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListEndpoints returns all endpoints grouped by category.
func (c *Client) ListEndpoints(ctx context.Context) ([]TreeCategory, error) {
	var resp treeResponse
	if err := c.Get(ctx, "/api/endpoints/tree", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// GetEndpoint returns details and metadata for the endpoint at path, e.g.
// "/job-tracker/january-2026".
func (c *Client) GetEndpoint(ctx context.Context, path string) (*EndpointDetails, error) {
	var details EndpointDetails
	if err := c.Get(ctx, fmt.Sprintf("/api/endpoints/%s", endpointPath(path)), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GetEndpointRaw returns the endpoint details exactly as the server sent them,
// including fields EndpointDetails does not model.
func (c *Client) GetEndpointRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, fmt.Sprintf("/api/endpoints/%s", endpointPath(path)), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// CreateEndpoint creates a new endpoint, optionally seeded with items.
func (c *Client) CreateEndpoint(ctx context.Context, path string, opts CreateEndpointOptions) (*CreateEndpointResponse, error) {
	reqBody := createEndpointRequest{Path: path}
	if opts.Items != nil {
		reqBody.Items = &opts.Items
	}

	var resp CreateEndpointResponse
	if err := c.Post(ctx, "/api/endpoints", reqBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AppendItems adds items to an existing endpoint.
func (c *Client) AppendItems(ctx context.Context, path string, items []Item) (*AppendItemsResponse, error) {
	reqBody := appendItemsRequest{Items: items}

	var resp AppendItemsResponse
	if err := c.Patch(ctx, fmt.Sprintf("/api/endpoints/%s", endpointPath(path)), reqBody, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteEndpoint deletes an endpoint and all of its stored files. Individual
// file failures are reported in the returned manifest.
func (c *Client) DeleteEndpoint(ctx context.Context, path string) (*DeleteEndpointResponse, error) {
	var resp DeleteEndpointResponse
	if err := c.Delete(ctx, fmt.Sprintf("/api/endpoints/%s", endpointPath(path)), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
