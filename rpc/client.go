package rpc

import (
	"context"
	"time"

	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	"github.com/golang/glog"
	"google.golang.org/grpc/codes"

	"github.com/mqy/gchat/envelope"
	"github.com/mqy/gchat/metrics"
	pb "github.com/mqy/gchat/proto"
)

// method names.
const (
	MethodCatchUpUser            = "catch_up_user"
	MethodCatchUpGroup           = "catch_up_group"
	MethodGetSelfUserStatus      = "get_self_user_status"
	MethodGetUserPresence        = "get_user_presence"
	MethodGetMembers             = "get_members"
	MethodPaginatedWorld         = "paginated_world"
	MethodCreateTopic            = "create_topic"
	MethodSetTypingState         = "set_typing_state"
	MethodUpdateWatermark        = "update_watermark"
	MethodSetFocus               = "set_focus"
	MethodSetPresence            = "set_presence"
	MethodCreateGroup            = "create_group"
	MethodModifyConversationView = "modify_conversation_view"
	MethodRemoveMemberships      = "remove_memberships"
	MethodAddMembers             = "add_members"
	MethodUpdateGroup            = "update_group"
)

var jsonMarshaler = &jsonpb.Marshaler{OrigName: true}

// Client issues typed RPCs. Every request gets a fresh request header.
type Client struct {
	inv IInvoker
	env *envelope.Builder
}

func NewClient(inv IInvoker, env *envelope.Builder) *Client {
	return &Client{inv: inv, env: env}
}

func (c *Client) header(method string) (*pb.RequestHeader, error) {
	h, err := c.env.BuildRequestHeader()
	if err != nil {
		return nil, newError(method, codes.Unauthenticated, err)
	}
	return h, nil
}

func (c *Client) invoke(ctx context.Context, method string, req, resp proto.Message) error {
	if glog.V(5) {
		glog.Infof("rpc: %s request: %s", method, render(req))
	}

	start := time.Now()
	err := c.inv.Invoke(ctx, method, req, resp)
	metrics.RPCDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	metrics.RPCRequestsTotal.WithLabelValues(method, Code(err).String()).Inc()

	if err != nil {
		glog.Errorf("rpc: %s error: %v", method, err)
		return err
	}
	if glog.V(5) {
		glog.Infof("rpc: %s response: %s", method, render(resp))
	}
	return nil
}

func render(m proto.Message) string {
	s, err := jsonMarshaler.MarshalToString(m)
	if err != nil {
		return m.String()
	}
	return s
}

func (c *Client) CatchUpUser(ctx context.Context, req *pb.CatchUpUserRequest) (*pb.CatchUpResponse, error) {
	h, err := c.header(MethodCatchUpUser)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.CatchUpResponse{}
	if err := c.invoke(ctx, MethodCatchUpUser, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CatchUpGroup(ctx context.Context, req *pb.CatchUpGroupRequest) (*pb.CatchUpResponse, error) {
	h, err := c.header(MethodCatchUpGroup)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.CatchUpResponse{}
	if err := c.invoke(ctx, MethodCatchUpGroup, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetSelfUserStatus(ctx context.Context) (*pb.GetSelfUserStatusResponse, error) {
	h, err := c.header(MethodGetSelfUserStatus)
	if err != nil {
		return nil, err
	}
	req := &pb.GetSelfUserStatusRequest{RequestHeader: h}
	resp := &pb.GetSelfUserStatusResponse{}
	if err := c.invoke(ctx, MethodGetSelfUserStatus, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetUserPresence(ctx context.Context, req *pb.GetUserPresenceRequest) (*pb.GetUserPresenceResponse, error) {
	h, err := c.header(MethodGetUserPresence)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.GetUserPresenceResponse{}
	if err := c.invoke(ctx, MethodGetUserPresence, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetMembers(ctx context.Context, req *pb.GetMembersRequest) (*pb.GetMembersResponse, error) {
	h, err := c.header(MethodGetMembers)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.GetMembersResponse{}
	if err := c.invoke(ctx, MethodGetMembers, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) PaginatedWorld(ctx context.Context, req *pb.PaginatedWorldRequest) (*pb.PaginatedWorldResponse, error) {
	h, err := c.header(MethodPaginatedWorld)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.PaginatedWorldResponse{}
	if err := c.invoke(ctx, MethodPaginatedWorld, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) CreateTopic(ctx context.Context, req *pb.CreateTopicRequest) (*pb.CreateTopicResponse, error) {
	h, err := c.header(MethodCreateTopic)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.CreateTopicResponse{}
	if err := c.invoke(ctx, MethodCreateTopic, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) SetTypingState(ctx context.Context, req *pb.SetTypingStateRequest) error {
	h, err := c.header(MethodSetTypingState)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodSetTypingState, req, &pb.SetTypingStateResponse{})
}

func (c *Client) UpdateWatermark(ctx context.Context, req *pb.UpdateWatermarkRequest) error {
	h, err := c.header(MethodUpdateWatermark)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodUpdateWatermark, req, &pb.UpdateWatermarkResponse{})
}

func (c *Client) SetFocus(ctx context.Context, req *pb.SetFocusRequest) error {
	h, err := c.header(MethodSetFocus)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodSetFocus, req, &pb.SetFocusResponse{})
}

func (c *Client) SetPresence(ctx context.Context, req *pb.SetPresenceRequest) error {
	h, err := c.header(MethodSetPresence)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodSetPresence, req, &pb.SetPresenceResponse{})
}

func (c *Client) CreateGroup(ctx context.Context, req *pb.CreateGroupRequest) (*pb.CreateGroupResponse, error) {
	h, err := c.header(MethodCreateGroup)
	if err != nil {
		return nil, err
	}
	req.RequestHeader = h
	resp := &pb.CreateGroupResponse{}
	if err := c.invoke(ctx, MethodCreateGroup, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) ModifyConversationView(ctx context.Context, req *pb.ModifyConversationViewRequest) error {
	h, err := c.header(MethodModifyConversationView)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodModifyConversationView, req, &pb.ModifyConversationViewResponse{})
}

func (c *Client) RemoveMemberships(ctx context.Context, req *pb.RemoveMembershipsRequest) error {
	h, err := c.header(MethodRemoveMemberships)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodRemoveMemberships, req, &pb.RemoveMembershipsResponse{})
}

func (c *Client) AddMembers(ctx context.Context, req *pb.AddMembersRequest) error {
	h, err := c.header(MethodAddMembers)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodAddMembers, req, &pb.AddMembersResponse{})
}

func (c *Client) UpdateGroup(ctx context.Context, req *pb.UpdateGroupRequest) error {
	h, err := c.header(MethodUpdateGroup)
	if err != nil {
		return err
	}
	req.RequestHeader = h
	return c.invoke(ctx, MethodUpdateGroup, req, &pb.UpdateGroupResponse{})
}
