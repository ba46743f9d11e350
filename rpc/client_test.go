package rpc_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/envelope"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/rpc"
	rpc_mock "github.com/mqy/gchat/rpc/mock"
)

func TestClientSetsRequestHeader(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inv := rpc_mock.NewMockIInvoker(mockCtrl)
	c := rpc.NewClient(inv, envelope.NewBuilder(auth.NewStaticClient("tok")))
	ctx := context.Background()

	inv.EXPECT().Invoke(ctx, rpc.MethodGetSelfUserStatus, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req, resp proto.Message) error {
			h := req.(*pb.GetSelfUserStatusRequest).GetRequestHeader()
			assert.Equal(t, "tok", h.GetAuthToken())
			assert.Equal(t, envelope.ClientVersion, h.GetClientVersion())
			resp.(*pb.GetSelfUserStatusResponse).UserStatus = &pb.UserStatus{UserId: &pb.UserId{Id: "42"}}
			return nil
		})

	resp, err := c.GetSelfUserStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", resp.GetUserStatus().GetUserId().GetId())
}

func TestClientPropagatesTransportError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inv := rpc_mock.NewMockIInvoker(mockCtrl)
	c := rpc.NewClient(inv, envelope.NewBuilder(auth.NewStaticClient("tok")))

	want := &rpc.Error{Method: rpc.MethodCreateGroup, Code: codes.Unavailable, Err: errors.New("down")}
	inv.EXPECT().Invoke(gomock.Any(), rpc.MethodCreateGroup, gomock.Any(), gomock.Any()).Return(want)

	_, err := c.CreateGroup(context.Background(), &pb.CreateGroupRequest{})
	require.Error(t, err)
	assert.True(t, rpc.IsTransport(err))
	assert.Equal(t, codes.Unavailable, rpc.Code(err))
}

func TestClientWithoutTokenIssuesNoRPC(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inv := rpc_mock.NewMockIInvoker(mockCtrl)
	c := rpc.NewClient(inv, envelope.NewBuilder(auth.NewStaticClient("")))

	err := c.SetFocus(context.Background(), &pb.SetFocusRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, rpc.Code(err))
}

func TestCode(t *testing.T) {
	assert.Equal(t, codes.OK, rpc.Code(nil))
	assert.Equal(t, codes.Unknown, rpc.Code(errors.New("x")))
	assert.False(t, rpc.IsTransport(errors.New("x")))

	wrapped := fmt.Errorf("send: %w", &rpc.Error{Code: codes.NotFound})
	assert.Equal(t, codes.NotFound, rpc.Code(wrapped))
}
