package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/client/models"
	"github.com/dmitrijs2005/apiclient/internal/common"
	"github.com/dmitrijs2005/apiclient/internal/netx"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	jsonContentType = "application/json"

	fallbackNetworkError = "Network error"
	fallbackUploadError  = "Upload failed"
)

// body is a request body encoding strategy.
type body interface {
	// contentType is the Content-Type to send; "" leaves it to the transport.
	contentType() string
	apply(r *resty.Request) error
}

type jsonBody struct {
	v any
}

func (jsonBody) contentType() string { return jsonContentType }

func (b jsonBody) apply(r *resty.Request) error {
	data, err := json.Marshal(b.v)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	r.SetBody(data)
	return nil
}

type multipartBody struct {
	field string
	files []models.UploadFile
}

// The transport writes multipart/form-data with its own boundary.
func (multipartBody) contentType() string { return "" }

func (b multipartBody) apply(r *resty.Request) error {
	for _, f := range b.files {
		if f.Reader == nil {
			return fmt.Errorf("upload %q: no content", f.Name)
		}
		name := f.Name
		if name == "" {
			name = "blob"
		}
		r.SetFileReader(b.field, name, f.Reader)
	}
	return nil
}

type request struct {
	headers  http.Header
	body     body
	fallback string
}

func (r *request) contentType() string {
	if r.body == nil {
		return jsonContentType
	}
	return r.body.contentType()
}

// RequestOption customizes a single Call.
type RequestOption func(*request)

// WithHeader adds a request header. Caller headers replace the defaults
// (Content-Type, X-Request-ID) but never the Authorization header while a
// session token is held.
func WithHeader(key, value string) RequestOption {
	return func(r *request) {
		r.headers.Add(key, value)
	}
}

// WithJSONBody sends v encoded as JSON.
func WithJSONBody(v any) RequestOption {
	return func(r *request) {
		r.body = jsonBody{v: v}
	}
}

func withMultipart(field string, files []models.UploadFile) RequestOption {
	return func(r *request) {
		r.body = multipartBody{field: field, files: files}
	}
}

func withFallbackError(msg string) RequestOption {
	return func(r *request) {
		r.fallback = msg
	}
}

// Call performs one request against path and decodes a 2xx JSON body into T.
// It is the executor behind every Client method and can be used for endpoints
// the Client has no method for.
func Call[T any](ctx context.Context, c *Client, method, path string, opts ...RequestOption) Result[T] {
	rs := &request{headers: make(http.Header), fallback: fallbackNetworkError}
	for _, opt := range opts {
		opt(rs)
	}

	req := c.http.R().SetContext(ctx)
	if ct := rs.contentType(); ct != "" {
		req.SetHeader("Content-Type", ct)
	}
	req.SetHeader(common.RequestIDHeaderName, uuid.NewString())
	for key, values := range rs.headers {
		req.Header[key] = append([]string(nil), values...)
	}
	if token, ok := c.Token(); ok {
		req.SetAuthToken(token)
	}
	requestID := req.Header.Get(common.RequestIDHeaderName)

	started := time.Now()
	res, outcome := execute[T](req, rs, method, netx.JoinPath(c.baseURL, path))
	observe(path, outcome, time.Since(started))

	if !res.OK() {
		c.log.Warn(ctx, "API request failed",
			"method", method,
			"path", path,
			"status", res.StatusCode,
			"request_id", requestID,
			"error", res.Error,
		)
	}
	return res
}

func execute[T any](req *resty.Request, rs *request, method, url string) (Result[T], string) {
	if rs.body != nil {
		if err := rs.body.apply(req); err != nil {
			return failure[T](0, errorMessage(err, rs.fallback)), outcomeEncode
		}
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return failure[T](0, errorMessage(err, rs.fallback)), outcomeTransport
	}
	return decode[T](resp.StatusCode(), statusText(resp), resp.Body())
}

// decode parses the body as JSON whatever the status, so a server-supplied
// "error" message can be surfaced on failures.
func decode[T any](code int, text string, raw []byte) (Result[T], string) {
	var doc json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return failure[T](code, err.Error()), outcomeDecode
	}

	if code < 200 || code > 299 {
		var e struct {
			Error any `json:"error"`
		}
		_ = json.Unmarshal(doc, &e)
		if msg, ok := e.Error.(string); ok && msg != "" {
			return failure[T](code, msg), outcomeHTTPError
		}
		return failure[T](code, fmt.Sprintf("HTTP %d: %s", code, text)), outcomeHTTPError
	}

	var data T
	if err := json.Unmarshal(doc, &data); err != nil {
		return failure[T](code, err.Error()), outcomeDecode
	}
	return success(code, data), outcomeOK
}

func statusText(resp *resty.Response) string {
	code := resp.StatusCode()
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}

func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	// unwrap to the innermost non-empty message when the outer one is blank
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := e.Error(); msg != "" {
			return msg
		}
	}
	return fallback
}
