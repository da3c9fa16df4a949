package endpoints

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strconv"
)

// DefaultResultsDir is where DownloadFile writes when no output path is given.
const DefaultResultsDir = "results"

// GetFileURL resolves a storage key such as "123/job-tracker/file.pdf" to a
// presigned URL. A nil expiresIn leaves the expiry to the server (one hour).
func (c *Client) GetFileURL(ctx context.Context, key string, expiresIn *int) (*FileURLResponse, error) {
	reqPath := fmt.Sprintf("/api/files/%s?format=json", escapeSegments(key))
	if expiresIn != nil {
		reqPath += "&expiresIn=" + strconv.Itoa(*expiresIn)
	}

	var resp FileURLResponse
	if err := c.Get(ctx, reqPath, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadFile fetches the file stored under key and writes it to outPath,
// creating parent directories as needed. An empty outPath means
// results/<basename of key>. It returns the path written.
//
// The presigned URL is fetched without the API key.
func (c *Client) DownloadFile(ctx context.Context, key, outPath string) (string, error) {
	fileURL, err := c.GetFileURL(ctx, key, nil)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = filepath.Join(DefaultResultsDir, path.Base(key))
	}

	if err := c.fs.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to download file: HTTP %d", resp.StatusCode)
	}

	f, err := c.fs.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := c.fs.Remove(outPath); rmErr != nil {
			c.logger.Warn("failed to remove partial download", "path", outPath, "error", rmErr)
		}
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	c.logger.Debug("file downloaded", "key", key, "path", outPath, "bytes", n)
	return outPath, nil
}
