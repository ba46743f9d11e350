package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gogo/protobuf/proto"
	"golang.org/x/net/http2"
	"google.golang.org/grpc/codes"

	"github.com/mqy/gchat/auth"
)

const (
	protoContentType = "application/x-protobuf"
	maxResponseBytes = 16 << 20
)

// HTTPInvoker posts protobuf requests to `<base>/<method>?alt=proto`.
type HTTPInvoker struct {
	baseURL string
	auth    auth.Client
	client  *http.Client
	timeout time.Duration
}

func NewHTTPInvoker(baseURL string, a auth.Client, timeout time.Duration) (*HTTPInvoker, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("configure http2 transport: %w", err)
	}
	return &HTTPInvoker{
		baseURL: baseURL,
		auth:    a,
		client:  &http.Client{Transport: tr},
		timeout: timeout,
	}, nil
}

func (h *HTTPInvoker) Invoke(ctx context.Context, method string, req, resp proto.Message) error {
	body, err := proto.Marshal(req)
	if err != nil {
		return newError(method, codes.Internal, fmt.Errorf("marshal request: %w", err))
	}

	token, err := h.auth.Token()
	if err != nil {
		return newError(method, codes.Unauthenticated, err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/"+method+"?alt=proto", bytes.NewReader(body))
	if err != nil {
		return newError(method, codes.Internal, err)
	}
	r.Header.Set("Content-Type", protoContentType)
	r.Header.Set("Authorization", "Bearer "+token)

	res, err := h.client.Do(r)
	if err != nil {
		return newError(method, ctxCode(ctx, codes.Unavailable), err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return newError(method, ctxCode(ctx, codes.Unavailable), fmt.Errorf("read response: %w", err))
	}
	if res.StatusCode != http.StatusOK {
		return newError(method, codeFromHTTPStatus(res.StatusCode), fmt.Errorf("http status %d", res.StatusCode))
	}
	if err := proto.Unmarshal(data, resp); err != nil {
		return newError(method, codes.DataLoss, fmt.Errorf("unmarshal response: %w", err))
	}
	return nil
}

func ctxCode(ctx context.Context, fallback codes.Code) codes.Code {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(ctx.Err(), context.Canceled):
		return codes.Canceled
	default:
		return fallback
	}
}
