package rpc

import (
	"context"

	"github.com/gogo/protobuf/proto"
)

//go:generate mockgen -destination=mock/mock_rpc.go -package=mock_rpc github.com/mqy/gchat/rpc IInvoker,IUploader

// IInvoker issues one RPC. It either fills resp or returns an error, and never
// blocks past ctx or its own timeout.
type IInvoker interface {
	Invoke(ctx context.Context, method string, req, resp proto.Message) error
}

// IUploader runs the two-step attachment upload.
type IUploader interface {
	// CreateSession opens an upload session and returns the url to post the bytes to.
	CreateSession(ctx context.Context, filename string, size int) (string, error)
	// Upload posts data and returns the attachment id.
	Upload(ctx context.Context, uploadURL string, data []byte) (string, error)
}
