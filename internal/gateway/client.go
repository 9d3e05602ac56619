// Package gateway performs the network round-trips against the MeetLine
// backend. Each call is one shot: no retry loop, no polling; the caller's
// context cancels an abandoned request.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"meetline-client/internal/config"
	"meetline-client/internal/pkg/response"
	"meetline-client/internal/store"
	"meetline-client/internal/transport"

	xerrors "meetline-client/internal/pkg/errors"

	"go.uber.org/zap"
)

// Client is the shared HTTP plumbing: base URL joining, the interceptor
// chain, envelope decoding.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(cfg config.AppConfig, creds *store.CredentialStore, logger *zap.Logger) *Client {
	rt := &transport.TokenTransport{
		Base: &transport.HeaderTransport{
			Platform:   cfg.Platform,
			AppVersion: cfg.AppVersion,
		},
		Creds:  creds,
		Policy: transport.NewAuthFailurePolicy(creds, logger),
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Transport: rt,
			Timeout:   cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// do runs one request and decodes the envelope. A transport failure comes
// back as *xerrors.NetworkError; a non-2xx status is NOT an error here — the
// gateway that owns the endpoint maps it to its own failure type. The data
// payload is decoded into out only on 2xx.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, *response.Envelope, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}

	url := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return 0, nil, &xerrors.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Error bodies are sometimes empty or non-JSON; keep whatever
		// message we can recover.
		env, _ := response.Decode(resp.Body, nil)
		return resp.StatusCode, env, nil
	}

	env, err := response.Decode(resp.Body, out)
	if err != nil {
		return resp.StatusCode, env, xerrors.Wrap(err, method+" "+path)
	}
	return resp.StatusCode, env, nil
}

func ok(status int) bool { return status >= 200 && status < 300 }
