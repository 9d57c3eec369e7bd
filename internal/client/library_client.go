package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/go-resty/resty/v2"
)

// LibraryClient talks to the library/file service. Uploads go through a
// second client with a longer timeout since multipart uploads run much
// longer than JSON calls.
type LibraryClient struct {
	http    *resty.Client
	uploads *resty.Client
}

// NewLibraryClient creates a LibraryClient for the given base URL.
func NewLibraryClient(baseURL string, timeout, uploadTimeout time.Duration) *LibraryClient {
	return &LibraryClient{
		http:    newHTTPClient(baseURL, timeout),
		uploads: newHTTPClient(baseURL, uploadTimeout),
	}
}

// ListBooks fetches the full book collection.
func (c *LibraryClient) ListBooks(ctx context.Context, token string) ([]models.BookRecord, error) {
	const op = "list books"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/files")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(op, resp.StatusCode())
	}
	var books []models.BookRecord
	if err := json.Unmarshal(resp.Body(), &books); err != nil {
		return nil, decodeErr(op, err)
	}
	return books, nil
}

// Upload streams a multipart book upload (metadata, epub binary, cover
// image) through to the library service.
func (c *LibraryClient) Upload(ctx context.Context, token string, in models.BookUpload) (*models.BookRecord, error) {
	const op = "upload book"
	resp, err := c.uploads.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetMultipartFormData(map[string]string{
			"title":       in.Title,
			"author":      in.Author,
			"description": in.Description,
		}).
		SetMultipartField("epub", in.Epub.Name, in.Epub.ContentType, in.Epub.Reader).
		SetMultipartField("coverImage", in.Cover.Name, in.Cover.ContentType, in.Cover.Reader).
		Post("/api/files/upload")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return nil, statusErr(op, resp.StatusCode())
	}
	var book models.BookRecord
	if err := json.Unmarshal(resp.Body(), &book); err != nil {
		return nil, decodeErr(op, err)
	}
	return &book, nil
}

// DeleteBook removes one book.
func (c *LibraryClient) DeleteBook(ctx context.Context, token, id string) error {
	const op = "delete book"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/api/files/" + id)
	if err != nil {
		return transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return statusErr(op, resp.StatusCode())
	}
	return nil
}
