package petapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/urls"
	"github.com/mascotas/mascotas-admin/internal/version"
)

const (
	// DefaultTimeout is zero: requests are bounded only by their context
	DefaultTimeout = 0

	// maxErrorBody caps how much of an error response is kept for diagnostics
	maxErrorBody = 512

	requestIDHeader = "X-Request-ID"
)

// Client talks to the pets registry. Every method performs exactly one
// request; nothing is retried or cached.
type Client struct {
	// BaseURL is the registry root, e.g. "https://misterio07.alwaysdata.net"
	BaseURL string

	// Endpoints are the collection and record paths below BaseURL
	Endpoints urls.Endpoints

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client for the registry at baseURL.
func NewClient(baseURL string, endpoints urls.Endpoints) *Client {
	return &Client{
		BaseURL:    baseURL,
		Endpoints:  endpoints,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  "mascotas-admin/" + version.Version,
	}
}

// NewClientWithURL creates a client using the default endpoint paths.
func NewClientWithURL(baseURL string) *Client {
	return NewClient(baseURL, urls.DefaultEndpoints())
}

// SetTimeout sets the per-request timeout. Zero disables it.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

func (c *Client) urls() urls.Builder {
	return urls.NewBuilder(c.BaseURL, c.Endpoints)
}

// ListPets returns every record of the registry.
func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	body, err := c.do(ctx, OpList, http.MethodGet, c.urls().List(), nil, "")
	if err != nil {
		return nil, err
	}

	pets, err := decodePetList(body)
	if err != nil {
		return nil, NewParseError(OpList, "failed to parse pet list", err)
	}
	return pets, nil
}

// GetPet returns a single record. A missing record is an HTTP 404 error.
func (c *Client) GetPet(ctx context.Context, id int) (*Pet, error) {
	body, err := c.do(ctx, OpGet, http.MethodGet, c.urls().Record(id), nil, "")
	if err != nil {
		return nil, err
	}

	pet, err := decodePet(body)
	if err != nil {
		return nil, NewParseError(OpGet, "failed to parse pet", err)
	}
	return pet, nil
}

// CreatePet creates a record. With a photo the body is multipart/form-data
// carrying every field plus the "foto" part; without one it is JSON.
// The returned record holds the server-assigned id and photo URL.
func (c *Client) CreatePet(ctx context.Context, input PetInput, photo *Photo) (*Pet, error) {
	var (
		payload     []byte
		contentType string
		err         error
	)

	if photo != nil {
		payload, contentType, err = encodeMultipart(input, photo)
		if err != nil {
			return nil, NewParseError(OpCreate, "failed to encode multipart body", err)
		}
	} else {
		payload, err = json.Marshal(input)
		if err != nil {
			return nil, NewParseError(OpCreate, "failed to encode JSON body", err)
		}
		contentType = "application/json"
	}

	body, err := c.do(ctx, OpCreate, http.MethodPost, c.urls().Create(), payload, contentType)
	if err != nil {
		return nil, err
	}

	pet, err := decodePet(body)
	if err != nil {
		return nil, NewParseError(OpCreate, "failed to parse created pet", err)
	}
	return pet, nil
}

// UpdatePet rewrites every editable field of a record. The id never changes.
func (c *Client) UpdatePet(ctx context.Context, id int, input PetInput) (*Pet, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, NewParseError(OpUpdate, "failed to encode JSON body", err)
	}

	body, err := c.do(ctx, OpUpdate, http.MethodPut, c.urls().Record(id), payload, "application/json")
	if err != nil {
		return nil, err
	}

	pet, err := decodePet(body)
	if err != nil {
		return nil, NewParseError(OpUpdate, "failed to parse updated pet", err)
	}
	// Some deployments answer with the fields only
	if pet.ID == 0 {
		pet.ID = id
	}
	return pet, nil
}

// DeletePet removes a record and returns the server's acknowledgment.
func (c *Client) DeletePet(ctx context.Context, id int) (*DeleteResult, error) {
	body, err := c.do(ctx, OpDelete, http.MethodDelete, c.urls().Record(id), nil, "")
	if err != nil {
		return nil, err
	}
	return decodeDeleteResult(body), nil
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, url string, payload []byte, contentType string) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, NewNetworkError(op, fmt.Sprintf("failed to create %s request", method), err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logging.LogAPIRequest(requestID, method, url)
	start := time.Now()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logging.Warn("API request failed",
			zap.String("request_id", requestID),
			zap.String("op", op),
			zap.Error(err),
		)
		return nil, NewNetworkError(op, fmt.Sprintf("%s request failed", method), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	logging.LogAPIResponse(requestID, method, url, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, NewNetworkError(op, "failed to read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(op, resp.StatusCode, resp.Status, extractErrorText(body))
	}

	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}

// encodeMultipart writes the record fields followed by the photo part.
func encodeMultipart(input PetInput, photo *Photo) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range input.FormFields() {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", err
		}
	}

	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := photo.Filename
	if filename == "" {
		filename = urls.PhotoFormField
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(urls.PhotoFormField), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(photo.Data); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// decodePetList accepts a bare array or an envelope with a payload/data array.
func decodePetList(body []byte) ([]Pet, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var pets []Pet
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &pets); err != nil {
			return nil, err
		}
	} else {
		var envelope struct {
			Payload []Pet `json:"payload"`
			Data    []Pet `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, err
		}
		pets = envelope.Payload
		if pets == nil {
			pets = envelope.Data
		}
	}

	if pets == nil {
		pets = []Pet{}
	}
	return pets, nil
}

func decodePet(body []byte) (*Pet, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	var pet Pet
	if err := json.Unmarshal(trimmed, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// decodeDeleteResult never fails: the acknowledgment is informational.
func decodeDeleteResult(body []byte) *DeleteResult {
	trimmed := bytes.TrimSpace(body)
	result := &DeleteResult{}
	if len(trimmed) == 0 {
		return result
	}

	if json.Valid(trimmed) {
		result.Raw = json.RawMessage(trimmed)
		result.Message = messageField(trimmed)
	} else {
		result.Message = string(trimmed)
	}
	return result
}

// extractErrorText returns the most useful part of an error body: a
// message-like JSON field when present, otherwise the trimmed text.
func extractErrorText(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	if msg := messageField(trimmed); msg != "" {
		return truncate(msg, maxErrorBody)
	}
	return truncate(string(trimmed), maxErrorBody)
}

func messageField(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "mensaje", "detail", "msg"} {
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Cut on a rune boundary so accented server messages stay valid UTF-8
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
