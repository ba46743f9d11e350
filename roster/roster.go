// Package roster reconciles world listings and member profiles into the
// directory and keeps contact presence and profiles fresh.
package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/golang/glog"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/directory"
	"github.com/mqy/gchat/loop"
	"github.com/mqy/gchat/notify"
	"github.com/mqy/gchat/presence"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/rpc"
)

const (
	DefaultWorldPageSize = 100
	maxWorldPages        = 100
)

type Options struct {
	// HideSelf keeps the account's own id out of the contact list.
	HideSelf      bool
	Presence      presence.Options
	WorldPageSize int32
}

// Profile is what is known about a contact.
type Profile struct {
	User      chat.UserID
	Alias     string
	Email     string
	FirstName string
	LastName  string
	// AvatarURL is the last applied avatar reference.
	AvatarURL      string
	AvatarChecksum string
	Avatar         []byte
	Deleted        bool
}

// Engine owns the contact set and profiles. Fields below exec are only
// touched on the executor.
type Engine struct {
	dir     *directory.Directory
	client  *rpc.Client
	sink    notify.ISink
	avatars IAvatarFetcher
	opts    Options
	exec    loop.Executor
	wg      sync.WaitGroup

	contacts map[chat.UserID]struct{}
	profiles map[chat.UserID]*Profile
}

func New(dir *directory.Directory, client *rpc.Client, sink notify.ISink, avatars IAvatarFetcher,
	exec loop.Executor, opts Options) *Engine {

	if opts.WorldPageSize <= 0 {
		opts.WorldPageSize = DefaultWorldPageSize
	}
	return &Engine{
		dir:      dir,
		client:   client,
		sink:     sink,
		avatars:  avatars,
		opts:     opts,
		exec:     exec,
		contacts: make(map[chat.UserID]struct{}),
		profiles: make(map[chat.UserID]*Profile),
	}
}

// Wait blocks until in-flight avatar downloads are done.
func (e *Engine) Wait() {
	e.wg.Wait()
}

// Reset drops contacts and profiles. Must run on the executor.
func (e *Engine) Reset() {
	e.contacts = make(map[chat.UserID]struct{})
	e.profiles = make(map[chat.UserID]*Profile)
}

func (e *Engine) hidden(u chat.UserID) bool {
	return e.opts.HideSelf && u != "" && u == e.dir.Self()
}

// AddContacts adds locally known contacts, e.g. from the UI buddy list. Invalid
// ids are ignored. Must run on the executor.
func (e *Engine) AddContacts(users ...chat.UserID) {
	for _, u := range users {
		if !u.Valid() || e.hidden(u) {
			continue
		}
		e.contacts[u] = struct{}{}
	}
}

// Contacts returns the contact set sorted. Must run on the executor.
func (e *Engine) Contacts() []chat.UserID {
	out := make([]chat.UserID, 0, len(e.contacts))
	for u := range e.contacts {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Profile returns a copy of user's profile. Must run on the executor.
func (e *Engine) Profile(user chat.UserID) (Profile, bool) {
	p, ok := e.profiles[user]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

func (e *Engine) profile(user chat.UserID) *Profile {
	p, ok := e.profiles[user]
	if !ok {
		p = &Profile{User: user}
		e.profiles[user] = p
	}
	return p
}

// FetchWorld pages through the world listing.
func (e *Engine) FetchWorld(ctx context.Context) ([]*pb.WorldItemLite, error) {
	var items []*pb.WorldItemLite
	var token string
	for page := 0; page < maxWorldPages; page++ {
		resp, err := e.client.PaginatedWorld(ctx, &pb.PaginatedWorldRequest{
			FetchFromUserSpaces:          true,
			FetchSnippetsForUnnamedRooms: true,
			PageSize:                     e.opts.WorldPageSize,
			ContinuationToken:            token,
		})
		if err != nil {
			return nil, fmt.Errorf("world listing page %d: %w", page, err)
		}
		items = append(items, resp.WorldItems...)

		next := resp.GetNextContinuationToken()
		if next == "" || next == token {
			return items, nil
		}
		token = next
	}
	glog.Warningf("roster: world listing truncated after %d pages", maxWorldPages)
	return items, nil
}

// ReconcileWorld records the listed conversations, then refreshes presence and
// profiles of all DM peers and known contacts with one batched request each.
func (e *Engine) ReconcileWorld(ctx context.Context, items []*pb.WorldItemLite) error {
	var ids []chat.UserID
	if err := e.exec.Do(ctx, func() {
		e.applyWorld(items)
		ids = e.Contacts()
	}); err != nil {
		return err
	}
	return e.Refresh(ctx, ids)
}

func (e *Engine) applyWorld(items []*pb.WorldItemLite) {
	self := e.dir.Self()
	for _, item := range items {
		conv, err := chat.FromGroupId(item.GetGroupId())
		if err == nil {
			err = chat.CheckConversation(conv)
		}
		if err != nil {
			glog.Warningf("roster: skip world item: %v", err)
			continue
		}

		if conv.IsDM() {
			peer, ok := dmPeer(item.GetDmMembers().GetMembers(), self)
			if !ok {
				glog.Warningf("roster: skip dm %s: no valid peer", conv)
				continue
			}
			e.dir.RecordDM(conv, peer)
			e.dir.SetMembers(conv, dmMembers(self, peer))
			e.AddContacts(peer)
		} else {
			e.dir.RecordGroup(conv)
			e.dir.SetName(conv, item.GetRoomName())
			if joined := item.GetReadState().GetJoinedUsers(); len(joined) > 0 {
				e.dir.SetMembers(conv, userIDs(joined))
			}
		}
		if ts := item.GetReadState().GetLastReadTime(); ts > 0 {
			e.dir.MarkRead(conv, ts)
		}
	}
	e.sink.ConversationListChanged()
}

// dmPeer picks the member that is not self. A DM with oneself has self as peer.
func dmPeer(members []*pb.UserId, self chat.UserID) (chat.UserID, bool) {
	var fallback chat.UserID
	for _, m := range members {
		u := chat.UserID(m.GetId())
		if !u.Valid() {
			continue
		}
		if u != self {
			return u, true
		}
		fallback = u
	}
	return fallback, fallback != ""
}

func dmMembers(self, peer chat.UserID) []chat.UserID {
	if self == "" || self == peer {
		return []chat.UserID{peer}
	}
	return []chat.UserID{self, peer}
}

func userIDs(ids []*pb.UserId) []chat.UserID {
	out := make([]chat.UserID, 0, len(ids))
	for _, id := range ids {
		if u := chat.UserID(id.GetId()); u.Valid() {
			out = append(out, u)
		}
	}
	return out
}

// Refresh fetches presence and profiles for ids. Invalid ids are left out. Both
// requests are issued even when the first fails.
func (e *Engine) Refresh(ctx context.Context, ids []chat.UserID) error {
	var userIds []*pb.UserId
	var memberIds []*pb.MemberId
	for _, u := range ids {
		if !u.Valid() {
			glog.Warningf("roster: skip invalid user id %q", string(u))
			continue
		}
		userIds = append(userIds, u.Proto())
		memberIds = append(memberIds, &pb.MemberId{UserId: u.Proto()})
	}
	if len(userIds) == 0 {
		return nil
	}

	var errs []string
	presences, err := e.client.GetUserPresence(ctx, &pb.GetUserPresenceRequest{
		UserIds:            userIds,
		IncludeUserStatus:  true,
		IncludeActiveUntil: true,
	})
	if err != nil {
		errs = append(errs, err.Error())
	} else if err := e.exec.Do(ctx, func() { e.ApplyPresences(presences) }); err != nil {
		return err
	}

	members, err := e.client.GetMembers(ctx, &pb.GetMembersRequest{MemberIds: memberIds})
	if err != nil {
		errs = append(errs, err.Error())
	} else if err := e.exec.Do(ctx, func() { e.ReconcileMembers(ctx, members.MemberProfiles) }); err != nil {
		return err
	}

	if len(errs) > 0 {
		return fmt.Errorf("roster refresh: %s", strings.Join(errs, "; "))
	}
	return nil
}

// PollPresence refreshes presence of all contacts.
func (e *Engine) PollPresence(ctx context.Context) error {
	var ids []*pb.UserId
	if err := e.exec.Do(ctx, func() {
		for _, u := range e.Contacts() {
			ids = append(ids, u.Proto())
		}
	}); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	resp, err := e.client.GetUserPresence(ctx, &pb.GetUserPresenceRequest{
		UserIds:            ids,
		IncludeUserStatus:  true,
		IncludeActiveUntil: true,
	})
	if err != nil {
		return err
	}
	return e.exec.Do(ctx, func() { e.ApplyPresences(resp) })
}

// ApplyPresences notifies the presence of every well-formed entry. Must run on
// the executor.
func (e *Engine) ApplyPresences(resp *pb.GetUserPresenceResponse) {
	for _, up := range resp.GetUserPresences() {
		p, err := presence.FromWire(up, e.opts.Presence)
		if err != nil {
			glog.Warningf("roster: skip presence: %v", err)
			continue
		}
		if e.hidden(p.User) {
			continue
		}
		e.sink.BuddyPresenceChanged(p)
	}
}

// ReconcileMembers applies aliases and avatar references. An avatar is only
// downloaded when its reference differs from the last applied one. Must run
// on the executor.
func (e *Engine) ReconcileMembers(ctx context.Context, profiles []*pb.MemberProfile) {
	for _, mp := range profiles {
		user := mp.GetMember().GetUser()
		id := chat.UserID(user.GetUserId().GetId())
		if user == nil || !id.Valid() {
			glog.Warningf("roster: skip malformed member profile %q", string(id))
			continue
		}
		if e.hidden(id) {
			continue
		}

		p := e.profile(id)
		p.Email = user.GetEmail()
		p.FirstName = user.GetFirstName()
		p.LastName = user.GetLastName()
		p.Deleted = user.GetDeleted()

		alias := user.GetName()
		if alias == "" {
			alias = user.GetEmail()
		}
		if alias != "" && alias != p.Alias {
			p.Alias = alias
			e.sink.BuddyProfileUpdated(id, alias, "")
		}

		if url := user.GetAvatarUrl(); url != "" && url != p.AvatarURL {
			p.AvatarURL = url
			e.fetchAvatar(ctx, id, url)
		}
	}
}

func (e *Engine) fetchAvatar(ctx context.Context, user chat.UserID, url string) {
	if e.avatars == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()

		a, err := e.avatars.Fetch(ctx, url)
		e.exec.Post(func() {
			p, ok := e.profiles[user]
			if !ok || p.AvatarURL != url {
				return // superseded
			}
			if err != nil {
				glog.Errorf("roster: failed to get avatar of %s from %s: %v", user, url, err)
				// retried on the next listing.
				p.AvatarURL = ""
				return
			}
			if a.Checksum == p.AvatarChecksum {
				return
			}
			p.AvatarChecksum = a.Checksum
			p.Avatar = a.Data
			e.sink.BuddyProfileUpdated(user, p.Alias, a.Checksum)
		})
	}()
}

// UserInfo fetches one profile without applying it.
func (e *Engine) UserInfo(ctx context.Context, user chat.UserID) (*Profile, error) {
	if err := chat.CheckUser(user); err != nil {
		return nil, err
	}
	resp, err := e.client.GetMembers(ctx, &pb.GetMembersRequest{
		MemberIds: []*pb.MemberId{{UserId: user.Proto()}},
	})
	if err != nil {
		return nil, err
	}
	for _, mp := range resp.GetMemberProfiles() {
		u := mp.GetMember().GetUser()
		if u == nil {
			continue
		}
		return &Profile{
			User:      user,
			Alias:     u.GetName(),
			Email:     u.GetEmail(),
			FirstName: u.GetFirstName(),
			LastName:  u.GetLastName(),
			AvatarURL: NormalizeAvatarURL(u.GetAvatarUrl()),
			Deleted:   u.GetDeleted(),
		}, nil
	}
	return nil, fmt.Errorf("no profile for user %s", user)
}

// Room is one entry of the room list.
type Room struct {
	ID    chat.ConversationID
	Name  string
	Users string
}

// Rooms lists the spaces of a world listing. Unnamed spaces are named after
// their members. Must run on the executor.
func (e *Engine) Rooms(items []*pb.WorldItemLite) []Room {
	var rooms []Room
	for _, item := range items {
		conv, err := chat.FromGroupId(item.GetGroupId())
		if err != nil || conv.IsDM() || !conv.Valid() {
			continue
		}
		var names []string
		for _, u := range userIDs(item.GetReadState().GetJoinedUsers()) {
			if p, ok := e.profiles[u]; ok && p.Alias != "" {
				names = append(names, p.Alias)
			} else {
				names = append(names, string(u))
			}
		}
		users := strings.Join(names, ", ")
		name := item.GetRoomName()
		if name == "" {
			name = users
		}
		rooms = append(rooms, Room{ID: conv, Name: name, Users: users})
	}
	return rooms
}
