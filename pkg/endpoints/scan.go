package endpoints

import (
	"context"
	"io"
)

// FileUpload is one file sent to ScanFiles.
type FileUpload struct {
	// Name is the filename reported to the server.
	Name string

	// ContentType is optional; it is guessed from Name when empty.
	ContentType string

	Content io.Reader
}

// ScanText runs AI extraction over text using prompt.
func (c *Client) ScanText(ctx context.Context, prompt, text string, opts ScanOptions) (*ScanResponse, error) {
	form := NewForm()
	form.AddField("prompt", prompt)
	form.AddField("text", text)
	if opts.TargetEndpoint != "" {
		form.AddField("targetEndpoint", opts.TargetEndpoint)
	}

	var resp ScanResponse
	if err := c.PostForm(ctx, "/api/scan", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScanFiles runs AI extraction over files using prompt. All files go in one
// multipart request under the repeated "file" field.
func (c *Client) ScanFiles(ctx context.Context, prompt string, files []FileUpload, opts ScanOptions) (*ScanResponse, error) {
	form := NewForm()
	form.AddField("prompt", prompt)
	for _, f := range files {
		form.AddFile("file", f.Name, f.ContentType, f.Content)
	}
	if opts.TargetEndpoint != "" {
		form.AddField("targetEndpoint", opts.TargetEndpoint)
	}

	var resp ScanResponse
	if err := c.PostForm(ctx, "/api/scan", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
