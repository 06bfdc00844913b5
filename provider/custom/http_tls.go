package custom

// The http_tls module gives scripts an HTTP client that presents a Chrome TLS
// fingerprint, for hosts that refuse the Go handshake.
//
//	http_tls.get(url [, headers])                  -> body
//	http_tls.request{method, url, headers, body}   -> {status, body, headers}

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/vidgrab/vidgrab/constant"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/http2"
)

const (
	tlsTimeout = 30 * time.Second
	// maxTLSBody caps the response bodies handed to scripts.
	maxTLSBody = 16 << 20
)

type tlsResponse struct {
	status  int
	body    string
	headers http.Header
}

// fingerprintClient tries HTTP/2 first and retries over HTTP/1.1 when the
// h2 exchange fails.
type fingerprintClient struct {
	h2 *http.Client
	h1 *http.Client
}

func newFingerprintClient() *fingerprintClient {
	return &fingerprintClient{
		h2: &http.Client{
			Timeout: tlsTimeout,
			Transport: &http2.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return dialChrome(ctx, network, addr, nil)
				},
			},
		},
		h1: &http.Client{
			Timeout: tlsTimeout,
			Transport: &http.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialChrome(ctx, network, addr, []string{"http/1.1"})
				},
			},
		},
	}
}

var tlsClient = newFingerprintClient()

func (c *fingerprintClient) do(ctx context.Context, method, url string, headers map[string]string, body string) (*tlsResponse, error) {
	newRequest := func() (*http.Request, error) {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, err
		}

		req.Header.Set("User-Agent", constant.UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	}

	req, err := newRequest()
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, h2Err := c.h2.Do(req)
	if h2Err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err = newRequest()
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		var h1Err error
		if resp, h1Err = c.h1.Do(req); h1Err != nil {
			return nil, errors.Join(h2Err, h1Err)
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxTLSBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &tlsResponse{status: resp.StatusCode, body: string(data), headers: resp.Header}, nil
}

// dialChrome opens a TLS connection with the Chrome 120 ClientHello. Certificates
// are verified. protos, when set, overrides the advertised ALPN protocols.
func dialChrome(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := (&net.Dialer{Timeout: tlsTimeout}).DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	return tlsConn, nil
}

func registerTLSClient(L *lua.LState) {
	L.SetGlobal("http_tls", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"get":     luaTLSGet,
		"request": luaTLSRequest,
	}))
}

// scriptContext is the context of the resolution running the script.
func scriptContext(L *lua.LState) context.Context {
	if ctx := L.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func headersFrom(value lua.LValue) map[string]string {
	headers := make(map[string]string)
	if table, ok := value.(*lua.LTable); ok {
		table.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}
	return headers
}

func luaTLSGet(L *lua.LState) int {
	url := L.CheckString(1)

	resp, err := tlsClient.do(scriptContext(L), http.MethodGet, url, headersFrom(L.Get(2)), "")
	if err != nil {
		L.RaiseError("http_tls.get %s: %s", url, err.Error())
		return 0
	}

	L.Push(lua.LString(resp.body))
	return 1
}

func luaTLSRequest(L *lua.LState) int {
	options := L.CheckTable(1)

	url := getString(options, "url")
	if url == "" {
		L.ArgError(1, "url is required")
		return 0
	}

	method := strings.ToUpper(getString(options, "method"))
	if method == "" {
		method = http.MethodGet
	}

	resp, err := tlsClient.do(scriptContext(L), method, url, headersFrom(options.RawGetString("headers")), getString(options, "body"))
	if err != nil {
		L.RaiseError("http_tls.request %s %s: %s", method, url, err.Error())
		return 0
	}

	headers := L.NewTable()
	for name := range resp.headers {
		headers.RawSetString(strings.ToLower(name), lua.LString(resp.headers.Get(name)))
	}

	result := L.NewTable()
	result.RawSetString("status", lua.LNumber(resp.status))
	result.RawSetString("body", lua.LString(resp.body))
	result.RawSetString("headers", headers)
	L.Push(result)
	return 1
}
