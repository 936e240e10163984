package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"
	"github.com/nicolaics/jim-carrier-seed/internal/platform/requestctx"
	"github.com/nicolaics/jim-carrier-seed/internal/platform/timeouts"
)

const tracerName = "github.com/nicolaics/jim-carrier-seed/internal/seed"

// RequestIDHeader carries a per-call identifier so backend logs can be
// matched to seed output.
const RequestIDHeader = "X-Request-Id"

// RunIDHeader carries the identifier shared by every request of one run.
const RunIDHeader = "X-Seed-Run"

// Response is one backend reply with its decoded JSON value.
type Response struct {
	StatusCode int
	Body       []byte
	Value      any
}

// OK reports whether the response carries a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client issues JSON POST calls against one backend base URL.
type Client struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
	newID   func() string
}

// NewClient creates a client rooted at baseURL. A nil httpClient gets a
// client bounded by timeouts.HTTPRequest.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.HTTPRequest}
	}
	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		tracer:  otel.Tracer(tracerName),
		newID:   uuid.NewString,
	}
}

// Post sends body as JSON to path. A non-empty token is sent as a bearer
// credential; a nil body sends no payload.
func (c *Client) Post(ctx context.Context, path, token string, body any) (Response, error) {
	ctx, span := c.tracer.Start(ctx, "seed.http POST "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	resp, err := c.post(ctx, path, token, body)
	if resp.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

func (c *Client) post(ctx context.Context, path, token string, body any) (Response, error) {
	meta := map[string]string{"path": path}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{}, apperrors.WrapWithMetadata(apperrors.CodeTransport, "encode request body", meta, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return Response{}, apperrors.WrapWithMetadata(apperrors.CodeTransport, "build request", meta, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.newID != nil {
		req.Header.Set(RequestIDHeader, c.newID())
	}
	if runID := requestctx.RunIDFromContext(ctx); runID != "" {
		req.Header.Set(RunIDHeader, runID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, apperrors.WrapWithMetadata(apperrors.CodeTransport, "POST "+path, meta, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	result := Response{StatusCode: resp.StatusCode, Body: data}
	meta["status"] = strconv.Itoa(resp.StatusCode)
	if err != nil {
		return result, apperrors.WrapWithMetadata(apperrors.CodeTransport, "read response", meta, err)
	}

	if err := json.Unmarshal(data, &result.Value); err != nil {
		return result, apperrors.WrapWithMetadata(apperrors.CodeResponseDecode,
			fmt.Sprintf("decode %s response (status %d, body %q)", path, resp.StatusCode, truncate(data, 120)), meta, err)
	}
	return result, nil
}

// truncate cuts data to at most limit bytes without splitting a rune.
func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(data[cut]) {
		cut--
	}
	return string(data[:cut]) + "..."
}
