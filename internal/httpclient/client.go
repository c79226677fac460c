// Package httpclient performs the actual HTTP exchange for a workspace
// request. It is a deliberately thin wrapper over net/http: restpad's center
// of gravity is the editor, not the transport.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/unkn0wn-root/restpad/internal/errdef"
	"github.com/unkn0wn-root/restpad/internal/telemetry"
	"github.com/unkn0wn-root/restpad/internal/workspace"
)

type Options struct {
	Timeout            time.Duration
	FollowRedirects    bool
	InsecureSkipVerify bool
	ProxyURL           string
}

type Client struct {
	jar         http.CookieJar
	httpFactory func(Options) (*http.Client, error)
	telemetry   telemetry.Instrumenter
}

func NewClient() *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{jar: jar, telemetry: telemetry.Noop()}
	c.httpFactory = c.buildHTTPClient
	return c
}

// SetHTTPFactory overrides how http.Client instances are created. Passing
// nil restores the default factory.
func (c *Client) SetHTTPFactory(factory func(Options) (*http.Client, error)) {
	if factory == nil {
		factory = c.buildHTTPClient
	}
	c.httpFactory = factory
}

// SetTelemetry configures the span instrumenter. Passing nil restores the
// no-op implementation.
func (c *Client) SetTelemetry(instr telemetry.Instrumenter) {
	if instr == nil {
		instr = telemetry.Noop()
	}
	c.telemetry = instr
}

type Response struct {
	Status       string
	StatusCode   int
	Proto        string
	Headers      http.Header
	Body         []byte
	Duration     time.Duration
	EffectiveURL string
	Request      workspace.Request
}

// BodyText returns the response body as a string for display.
func (r *Response) BodyText() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Execute performs the request and reads the full body. The roundtrip is
// wrapped in a telemetry span; the deferred End reports even on failure.
func (c *Client) Execute(
	ctx context.Context,
	req workspace.Request,
	opts Options,
) (resp *Response, err error) {
	httpReq, err := buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	client, err := c.httpFactory(opts)
	if err != nil {
		return nil, err
	}

	spanCtx, span := c.telemetry.Start(httpReq.Context(), telemetry.RequestStart{
		HTTPRequest: httpReq,
		RequestName: req.Name,
	})
	httpReq = httpReq.WithContext(spanCtx)

	defer func() {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		span.End(telemetry.RequestResult{Err: err, StatusCode: statusCode})
	}()

	start := time.Now()
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "perform request")
	}
	defer func() {
		if closeErr := httpResp.Body.Close(); closeErr != nil && err == nil {
			err = errdef.Wrap(errdef.CodeHTTP, closeErr, "close response body")
		}
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "read response body")
	}

	resp = &Response{
		Status:       httpResp.Status,
		StatusCode:   httpResp.StatusCode,
		Proto:        httpResp.Proto,
		Headers:      httpResp.Header.Clone(),
		Body:         body,
		Duration:     time.Since(start),
		EffectiveURL: effectiveURL(httpReq, httpResp),
		Request:      req,
	}
	return resp, nil
}

func buildHTTPRequest(ctx context.Context, req workspace.Request) (*http.Request, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil, errdef.New(errdef.CodeHTTP, "request url is empty")
	}
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeHTTP, err, "build request")
	}
	for key, value := range req.Headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}

// effectiveURL reports the final URL after redirects.
func effectiveURL(req *http.Request, resp *http.Response) string {
	if resp != nil && resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	if req.URL != nil {
		return req.URL.String()
	}
	return ""
}
