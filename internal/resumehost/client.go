// Package resumehost uploads resume files to the external hosting service
// and returns the hosted file reference.
package resumehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Upload is the hosted file reference: an opaque id plus a retrieval URL.
type Upload struct {
	PublicID string `json:"public_id"`
	URL      string `json:"secure_url"`
}

type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, file io.Reader) (*Upload, error)
}

type Client struct {
	uploadURL string
	preset    string
	http      *http.Client
}

func New(uploadURL, preset string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		uploadURL: uploadURL,
		preset:    preset,
		http:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) Upload(ctx context.Context, filename, contentType string, file io.Reader) (*Upload, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("upload_preset", c.preset); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read resume file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resume host request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resume host error: status %d", resp.StatusCode)
	}

	var upload Upload
	if err := json.Unmarshal(respBody, &upload); err != nil {
		return nil, fmt.Errorf("decode resume host response: %w", err)
	}
	if upload.PublicID == "" || upload.URL == "" {
		return nil, fmt.Errorf("resume host returned incomplete reference")
	}
	return &upload, nil
}
