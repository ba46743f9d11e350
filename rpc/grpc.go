package rpc

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/golang/glog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mqy/gchat/auth"
)

const grpcService = "/gchat.ChatService/"

// codec marshals gogo messages for grpc.
type codec struct{}

func (codec) Name() string { return "proto" }

func (codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("codec: %T is not a proto.Message", v)
	}
	return proto.Marshal(m)
}

func (codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("codec: %T is not a proto.Message", v)
	}
	return proto.Unmarshal(data, m)
}

// GRPCInvoker issues RPCs as unary grpc calls on one connection.
type GRPCInvoker struct {
	conn    *grpc.ClientConn
	auth    auth.Client
	timeout time.Duration
}

// DialGRPC connects to addr. TLS is used unless insecure is set.
func DialGRPC(ctx context.Context, addr string, a auth.Client, timeout time.Duration, insecure bool) (*GRPCInvoker, error) {
	dialOpts := []grpc.DialOption{grpc.WithBlock(), grpc.WithDefaultCallOptions(grpc.ForceCodec(codec{}))}
	if insecure {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	} else {
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})))
	}

	ctx2, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx2, addr, dialOpts...)
	if err != nil {
		glog.Errorf("rpc: dial `%s` error: %v", addr, err)
		return nil, fmt.Errorf("dial `%s`: %w", addr, err)
	}
	return &GRPCInvoker{conn: conn, auth: a, timeout: timeout}, nil
}

func (g *GRPCInvoker) Invoke(ctx context.Context, method string, req, resp proto.Message) error {
	token, err := g.auth.Token()
	if err != nil {
		return newError(method, codes.Unauthenticated, err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = metadata.NewOutgoingContext(ctx, metadata.Pairs("authorization", "Bearer "+token))

	if err := g.conn.Invoke(ctx, grpcService+method, req, resp); err != nil {
		return newError(method, status.Code(err), err)
	}
	return nil
}

func (g *GRPCInvoker) Close() error {
	return g.conn.Close()
}
