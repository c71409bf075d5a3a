package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"
)

// Client is a typed consumer of the candidate REST API, the Go counterpart
// of the dashboard's candidateService.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	Status  int                     `json:"-"`
	Message string                  `json:"message"`
	Errors  []validation.FieldIssue `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// ResumeUpload is a resume file attached to a create or update call.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

// New builds a client for the API rooted at baseURL (e.g.
// "http://localhost:5000/api").
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// List fetches one page of the candidate listing.
func (c *Client) List(ctx context.Context, q domain.ListQuery) (*domain.ListResult, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Position != "" && q.Position != domain.FilterAll {
		params.Set("position", q.Position)
	}
	if q.Status != "" && q.Status != domain.FilterAll {
		params.Set("status", q.Status)
	}
	if q.Experience != "" && q.Experience != domain.FilterAll {
		params.Set("experience", q.Experience)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	endpoint := c.baseURL + "/candidates"
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var result domain.ListResult
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single candidate by id.
func (c *Client) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	var candidate domain.Candidate
	err := c.do(ctx, http.MethodGet, c.baseURL+"/candidates/"+url.PathEscape(id), "", nil, &candidate)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// mutationResponse is the {message, candidate} envelope of the write calls.
type mutationResponse struct {
	Message   string            `json:"message"`
	Candidate *domain.Candidate `json:"candidate"`
}

// Create posts a new candidate as a multipart form, attaching the resume
// under the "resume" field when present.
func (c *Client) Create(ctx context.Context, fields map[string]string, resume *ResumeUpload) (*domain.Candidate, error) {
	body, contentType, err := multipartBody(fields, resume)
	if err != nil {
		return nil, err
	}

	var resp mutationResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/candidates", contentType, body, &resp); err != nil {
		return nil, err
	}
	return resp.Candidate, nil
}

// Update patches a subset of fields. With a resume the request goes out as
// multipart, otherwise as plain JSON.
func (c *Client) Update(ctx context.Context, id string, fields map[string]string, resume *ResumeUpload) (*domain.Candidate, error) {
	var (
		body        io.Reader
		contentType string
		err         error
	)
	if resume != nil {
		body, contentType, err = multipartBody(fields, resume)
		if err != nil {
			return nil, err
		}
	} else {
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		body, contentType = bytes.NewReader(encoded), "application/json"
	}

	var resp mutationResponse
	if err := c.do(ctx, http.MethodPatch, c.baseURL+"/candidates/"+url.PathEscape(id), contentType, body, &resp); err != nil {
		return nil, err
	}
	return resp.Candidate, nil
}

// Delete removes a candidate by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/candidates/"+url.PathEscape(id), "", nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartBody(fields map[string]string, resume *ResumeUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	if resume != nil {
		// CreateFormFile would stamp the part application/octet-stream,
		// which the server's resume whitelist rejects.
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, quoteEscaper.Replace(resume.FileName)))
		header.Set("Content-Type", resume.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, resume.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
