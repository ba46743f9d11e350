// Package dispatch runs outbound user actions: it validates identifiers,
// issues the RPC and applies the result to the directory on the session loop.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang/glog"

	"github.com/mqy/gchat/attachstore"
	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/directory"
	"github.com/mqy/gchat/envelope"
	"github.com/mqy/gchat/events"
	"github.com/mqy/gchat/loop"
	"github.com/mqy/gchat/metrics"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/render"
	"github.com/mqy/gchat/rpc"
)

var (
	ErrAttachmentSend   = errors.New("dispatch: attachment send failed")
	ErrConversationGone = errors.New("dispatch: conversation is no longer known")
	ErrEmptyMessage     = errors.New("dispatch: empty message")
)

// Dispatcher is safe for concurrent use. Actions block on their RPC in the
// caller's goroutine.
type Dispatcher struct {
	dir      *directory.Directory
	client   *rpc.Client
	env      *envelope.Builder
	events   *events.Engine
	renderer render.Renderer
	store    attachstore.IStore
	uploader rpc.IUploader
	exec     loop.Executor
	uploads  *uploadStore
	wg       sync.WaitGroup

	sync.Mutex
	focused chat.ConversationID
	status  chat.Status
	// highest read marker sent or being sent, per conversation.
	seen map[chat.ConversationID]int64
}

func New(dir *directory.Directory, client *rpc.Client, env *envelope.Builder, ev *events.Engine,
	renderer render.Renderer, store attachstore.IStore, uploader rpc.IUploader, exec loop.Executor) *Dispatcher {

	return &Dispatcher{
		dir:      dir,
		client:   client,
		env:      env,
		events:   ev,
		renderer: renderer,
		store:    store,
		uploader: uploader,
		exec:     exec,
		uploads:  newUploadStore(),
		status:   chat.StatusAvailable,
		seen:     make(map[chat.ConversationID]int64),
	}
}

// Close cancels in-flight uploads and waits for background sends.
func (d *Dispatcher) Close() {
	d.uploads.close()
	d.wg.Wait()
}

// Reset forgets per-connection state.
func (d *Dispatcher) Reset() {
	d.Lock()
	d.focused = chat.ConversationID{}
	d.seen = make(map[chat.ConversationID]int64)
	d.Unlock()
}

func result(action string, err error) {
	r := "ok"
	if err != nil {
		r = "error"
	}
	metrics.ActionsTotal.WithLabelValues(action, r).Inc()
}

// SendMessage sends markup to conv, with the attachment stored under
// attachmentRef when it is not empty.
func (d *Dispatcher) SendMessage(ctx context.Context, conv chat.ConversationID, markup, attachmentRef string) (err error) {
	defer func() { result("send", err) }()

	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	if !d.dir.IsKnown(conv) {
		return fmt.Errorf("%w: %s", ErrConversationGone, conv)
	}

	m, err := NewMessage(d.renderer, conv, markup, attachmentRef)
	if err != nil {
		return err
	}
	return d.send(ctx, m)
}

func (d *Dispatcher) send(ctx context.Context, m *Message) error {
	var drive *pb.Annotation
	if m.AttachmentRef != "" {
		a, err := d.upload(ctx, m.Conv, m.AttachmentRef)
		if err != nil {
			return err
		}
		drive = a
	}

	// an archive or leave may have landed during the upload.
	if !d.dir.IsKnown(m.Conv) {
		return fmt.Errorf("%w: %s", ErrConversationGone, m.Conv)
	}

	pending := d.events.Pending()
	req := m.request(d.env.BuildEventHeader(m.Conv), drive)
	pending.Add(m.ClientID)
	if _, err := d.client.CreateTopic(ctx, req); err != nil {
		pending.Remove(m.ClientID)
		return fmt.Errorf("send to %s: %w", m.Conv, err)
	}
	return nil
}

// upload pushes the stored attachment and returns the annotation referring
// to it.
func (d *Dispatcher) upload(ctx context.Context, conv chat.ConversationID, ref string) (*pb.Annotation, error) {
	if d.store == nil || d.uploader == nil {
		return nil, fmt.Errorf("%w: no attachment store", ErrAttachmentSend)
	}
	data, hint, err := d.store.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttachmentSend, err)
	}
	filename := attachstore.Filename(hint, data)

	uctx, cancel := context.WithCancel(ctx)
	id := d.uploads.add(conv, cancel)
	defer d.uploads.del(id)

	url, err := d.uploader.CreateSession(uctx, filename, len(data))
	if err == nil {
		var attachmentID string
		if attachmentID, err = d.uploader.Upload(uctx, url, data); err == nil {
			if !d.dir.IsKnown(conv) {
				glog.Warningf("dispatch: drop upload %s for %s", attachmentID, conv)
				return nil, fmt.Errorf("%w: %s", ErrConversationGone, conv)
			}
			glog.V(5).Infof("dispatch: uploaded %s as %s", filename, attachmentID)
			return &pb.Annotation{
				Type:          pb.AnnotationType_DRIVE,
				DriveMetadata: &pb.DriveMetadata{Id: attachmentID, Title: filename},
			}, nil
		}
	}

	if uctx.Err() != nil && ctx.Err() == nil && !d.dir.IsKnown(conv) {
		return nil, fmt.Errorf("%w: %s", ErrConversationGone, conv)
	}
	glog.Errorf("dispatch: upload %s to %s: %v", filename, conv, err)
	return nil, fmt.Errorf("%w: %v", ErrAttachmentSend, err)
}

// SendIM sends markup to the DM with user, creating the DM first when none
// is known.
func (d *Dispatcher) SendIM(ctx context.Context, user chat.UserID, markup string) error {
	if err := chat.CheckUser(user); err != nil {
		return err
	}
	if conv, ok := d.dir.ResolveDM(user); ok {
		return d.SendMessage(ctx, conv, markup, "")
	}
	_, err := d.CreateConversation(ctx, true, user, markup)
	return err
}

// CreateConversation creates a DM with target, or a space inviting target,
// and then sends firstMessage when it is not empty. On failure the directory
// is untouched and the message is discarded.
func (d *Dispatcher) CreateConversation(ctx context.Context, isDM bool, target chat.UserID, firstMessage string) (conv chat.ConversationID, err error) {
	defer func() { result("create", err) }()

	if err := chat.CheckUser(target); err != nil {
		return conv, err
	}
	typ := pb.GroupType_SPACE
	if isDM {
		typ = pb.GroupType_DM
	}
	resp, err := d.client.CreateGroup(ctx, &pb.CreateGroupRequest{
		Type:              typ,
		InviteeIds:        []*pb.InviteeId{{UserId: target.Proto()}},
		ClientGeneratedId: envelope.NewClientID(),
	})
	if err != nil {
		return conv, fmt.Errorf("create with %s: %w", target, err)
	}
	conv, err = chat.FromGroupId(resp.GetGroup().GetGroupId())
	if err != nil {
		return chat.ConversationID{}, fmt.Errorf("create with %s: %w", target, err)
	}
	if conv.IsDM() != isDM {
		return chat.ConversationID{}, fmt.Errorf("create with %s: got %s", target, conv)
	}

	name := resp.GetGroup().GetName()
	if err := d.exec.Do(ctx, func() {
		self := d.dir.Self()
		if isDM {
			d.dir.RecordDM(conv, target)
		} else {
			d.dir.RecordGroup(conv)
			d.dir.SetName(conv, name)
		}
		d.dir.SetMembers(conv, []chat.UserID{self, target})
	}); err != nil {
		return chat.ConversationID{}, err
	}
	glog.Infof("dispatch: created %s with %s", conv, target)

	if firstMessage != "" {
		if err := d.SendMessage(ctx, conv, firstMessage, ""); err != nil {
			return conv, err
		}
	}
	return conv, nil
}
