// Package proto holds the wire messages of the chat service RPC API.
//
// The types are maintained by hand and mirror googlechat.proto field for
// field; change both together. They carry gogo struct tags, so proto.Marshal,
// proto.Unmarshal and jsonpb work on them through reflection.
package proto

import (
	proto "github.com/gogo/protobuf/proto"
)

type ClientType int32

const (
	ClientType_UNKNOWN ClientType = 0
	ClientType_IOS     ClientType = 3
)

var ClientType_name = map[int32]string{
	0: "CLIENT_TYPE_UNKNOWN",
	3: "CLIENT_TYPE_IOS",
}

var ClientType_value = map[string]int32{
	"CLIENT_TYPE_UNKNOWN": 0,
	"CLIENT_TYPE_IOS": 3,
}

func (x ClientType) String() string {
	return proto.EnumName(ClientType_name, int32(x))
}

type SegmentType int32

const (
	SegmentType_TEXT       SegmentType = 0
	SegmentType_LINE_BREAK SegmentType = 1
	SegmentType_LINK       SegmentType = 2
)

var SegmentType_name = map[int32]string{
	0: "SEGMENT_TYPE_TEXT",
	1: "SEGMENT_TYPE_LINE_BREAK",
	2: "SEGMENT_TYPE_LINK",
}

var SegmentType_value = map[string]int32{
	"SEGMENT_TYPE_TEXT": 0,
	"SEGMENT_TYPE_LINE_BREAK": 1,
	"SEGMENT_TYPE_LINK": 2,
}

func (x SegmentType) String() string {
	return proto.EnumName(SegmentType_name, int32(x))
}

type AnnotationType int32

const (
	AnnotationType_UNKNOWN   AnnotationType = 0
	AnnotationType_DRIVE     AnnotationType = 1
	AnnotationType_ME_ACTION AnnotationType = 4
)

var AnnotationType_name = map[int32]string{
	0: "ANNOTATION_TYPE_UNKNOWN",
	1: "ANNOTATION_TYPE_DRIVE",
	4: "ANNOTATION_TYPE_ME_ACTION",
}

var AnnotationType_value = map[string]int32{
	"ANNOTATION_TYPE_UNKNOWN": 0,
	"ANNOTATION_TYPE_DRIVE": 1,
	"ANNOTATION_TYPE_ME_ACTION": 4,
}

func (x AnnotationType) String() string {
	return proto.EnumName(AnnotationType_name, int32(x))
}

type EventType int32

const (
	EventType_UNKNOWN              EventType = 0
	EventType_MESSAGE_POSTED       EventType = 1
	EventType_MEMBERSHIP_CHANGED   EventType = 2
	EventType_TYPING_STATE_CHANGED EventType = 3
	EventType_READ_RECEIPT_CHANGED EventType = 4
	EventType_GROUP_UPDATED        EventType = 5
	EventType_USER_STATUS_UPDATED  EventType = 6
	EventType_GROUP_DELETED        EventType = 7
)

var EventType_name = map[int32]string{
	0: "EVENT_TYPE_UNKNOWN",
	1: "EVENT_TYPE_MESSAGE_POSTED",
	2: "EVENT_TYPE_MEMBERSHIP_CHANGED",
	3: "EVENT_TYPE_TYPING_STATE_CHANGED",
	4: "EVENT_TYPE_READ_RECEIPT_CHANGED",
	5: "EVENT_TYPE_GROUP_UPDATED",
	6: "EVENT_TYPE_USER_STATUS_UPDATED",
	7: "EVENT_TYPE_GROUP_DELETED",
}

var EventType_value = map[string]int32{
	"EVENT_TYPE_UNKNOWN": 0,
	"EVENT_TYPE_MESSAGE_POSTED": 1,
	"EVENT_TYPE_MEMBERSHIP_CHANGED": 2,
	"EVENT_TYPE_TYPING_STATE_CHANGED": 3,
	"EVENT_TYPE_READ_RECEIPT_CHANGED": 4,
	"EVENT_TYPE_GROUP_UPDATED": 5,
	"EVENT_TYPE_USER_STATUS_UPDATED": 6,
	"EVENT_TYPE_GROUP_DELETED": 7,
}

func (x EventType) String() string {
	return proto.EnumName(EventType_name, int32(x))
}

type MembershipChangeType int32

const (
	MembershipChangeType_UNKNOWN MembershipChangeType = 0
	MembershipChangeType_JOINED  MembershipChangeType = 1
	MembershipChangeType_LEFT    MembershipChangeType = 2
)

var MembershipChangeType_name = map[int32]string{
	0: "MEMBERSHIP_CHANGE_TYPE_UNKNOWN",
	1: "MEMBERSHIP_CHANGE_TYPE_JOINED",
	2: "MEMBERSHIP_CHANGE_TYPE_LEFT",
}

var MembershipChangeType_value = map[string]int32{
	"MEMBERSHIP_CHANGE_TYPE_UNKNOWN": 0,
	"MEMBERSHIP_CHANGE_TYPE_JOINED": 1,
	"MEMBERSHIP_CHANGE_TYPE_LEFT": 2,
}

func (x MembershipChangeType) String() string {
	return proto.EnumName(MembershipChangeType_name, int32(x))
}

type TypingState int32

const (
	TypingState_UNKNOWN TypingState = 0
	TypingState_TYPING  TypingState = 1
	TypingState_PAUSED  TypingState = 2
	TypingState_STOPPED TypingState = 3
)

var TypingState_name = map[int32]string{
	0: "TYPING_STATE_UNKNOWN",
	1: "TYPING_STATE_TYPING",
	2: "TYPING_STATE_PAUSED",
	3: "TYPING_STATE_STOPPED",
}

var TypingState_value = map[string]int32{
	"TYPING_STATE_UNKNOWN": 0,
	"TYPING_STATE_TYPING": 1,
	"TYPING_STATE_PAUSED": 2,
	"TYPING_STATE_STOPPED": 3,
}

func (x TypingState) String() string {
	return proto.EnumName(TypingState_name, int32(x))
}

type CatchUpStatus int32

const (
	CatchUpStatus_UNKNOWN   CatchUpStatus = 0
	CatchUpStatus_COMPLETED CatchUpStatus = 1
	CatchUpStatus_PAGINATED CatchUpStatus = 2
	CatchUpStatus_CUTOFF    CatchUpStatus = 3
)

var CatchUpStatus_name = map[int32]string{
	0: "CATCH_UP_STATUS_UNKNOWN",
	1: "CATCH_UP_STATUS_COMPLETED",
	2: "CATCH_UP_STATUS_PAGINATED",
	3: "CATCH_UP_STATUS_CUTOFF",
}

var CatchUpStatus_value = map[string]int32{
	"CATCH_UP_STATUS_UNKNOWN": 0,
	"CATCH_UP_STATUS_COMPLETED": 1,
	"CATCH_UP_STATUS_PAGINATED": 2,
	"CATCH_UP_STATUS_CUTOFF": 3,
}

func (x CatchUpStatus) String() string {
	return proto.EnumName(CatchUpStatus_name, int32(x))
}

type PresenceState int32

const (
	PresenceState_UNKNOWN  PresenceState = 0
	PresenceState_ACTIVE   PresenceState = 1
	PresenceState_INACTIVE PresenceState = 2
)

var PresenceState_name = map[int32]string{
	0: "PRESENCE_UNKNOWN",
	1: "PRESENCE_ACTIVE",
	2: "PRESENCE_INACTIVE",
}

var PresenceState_value = map[string]int32{
	"PRESENCE_UNKNOWN": 0,
	"PRESENCE_ACTIVE": 1,
	"PRESENCE_INACTIVE": 2,
}

func (x PresenceState) String() string {
	return proto.EnumName(PresenceState_name, int32(x))
}

type DndState int32

const (
	DndState_UNKNOWN   DndState = 0
	DndState_AVAILABLE DndState = 1
	DndState_DND       DndState = 2
)

var DndState_name = map[int32]string{
	0: "DND_STATE_UNKNOWN",
	1: "DND_STATE_AVAILABLE",
	2: "DND_STATE_DND",
}

var DndState_value = map[string]int32{
	"DND_STATE_UNKNOWN": 0,
	"DND_STATE_AVAILABLE": 1,
	"DND_STATE_DND": 2,
}

func (x DndState) String() string {
	return proto.EnumName(DndState_name, int32(x))
}

type FocusType int32

const (
	FocusType_UNKNOWN   FocusType = 0
	FocusType_FOCUSED   FocusType = 1
	FocusType_UNFOCUSED FocusType = 2
)

var FocusType_name = map[int32]string{
	0: "FOCUS_TYPE_UNKNOWN",
	1: "FOCUS_TYPE_FOCUSED",
	2: "FOCUS_TYPE_UNFOCUSED",
}

var FocusType_value = map[string]int32{
	"FOCUS_TYPE_UNKNOWN": 0,
	"FOCUS_TYPE_FOCUSED": 1,
	"FOCUS_TYPE_UNFOCUSED": 2,
}

func (x FocusType) String() string {
	return proto.EnumName(FocusType_name, int32(x))
}

type ClientPresenceStateType int32

const (
	ClientPresenceStateType_UNKNOWN        ClientPresenceStateType = 0
	ClientPresenceStateType_DESKTOP_IDLE   ClientPresenceStateType = 30
	ClientPresenceStateType_DESKTOP_ACTIVE ClientPresenceStateType = 40
)

var ClientPresenceStateType_name = map[int32]string{
	0: "CLIENT_PRESENCE_STATE_UNKNOWN",
	30: "CLIENT_PRESENCE_STATE_DESKTOP_IDLE",
	40: "CLIENT_PRESENCE_STATE_DESKTOP_ACTIVE",
}

var ClientPresenceStateType_value = map[string]int32{
	"CLIENT_PRESENCE_STATE_UNKNOWN": 0,
	"CLIENT_PRESENCE_STATE_DESKTOP_IDLE": 30,
	"CLIENT_PRESENCE_STATE_DESKTOP_ACTIVE": 40,
}

func (x ClientPresenceStateType) String() string {
	return proto.EnumName(ClientPresenceStateType_name, int32(x))
}

type GroupType int32

const (
	GroupType_UNKNOWN GroupType = 0
	GroupType_DM      GroupType = 1
	GroupType_SPACE   GroupType = 2
)

var GroupType_name = map[int32]string{
	0: "GROUP_TYPE_UNKNOWN",
	1: "GROUP_TYPE_DM",
	2: "GROUP_TYPE_SPACE",
}

var GroupType_value = map[string]int32{
	"GROUP_TYPE_UNKNOWN": 0,
	"GROUP_TYPE_DM": 1,
	"GROUP_TYPE_SPACE": 2,
}

func (x GroupType) String() string {
	return proto.EnumName(GroupType_name, int32(x))
}

type ConversationView int32

const (
	ConversationView_UNKNOWN  ConversationView = 0
	ConversationView_INBOX    ConversationView = 1
	ConversationView_ARCHIVED ConversationView = 2
)

var ConversationView_name = map[int32]string{
	0: "CONVERSATION_VIEW_UNKNOWN",
	1: "CONVERSATION_VIEW_INBOX",
	2: "CONVERSATION_VIEW_ARCHIVED",
}

var ConversationView_value = map[string]int32{
	"CONVERSATION_VIEW_UNKNOWN": 0,
	"CONVERSATION_VIEW_INBOX": 1,
	"CONVERSATION_VIEW_ARCHIVED": 2,
}

func (x ConversationView) String() string {
	return proto.EnumName(ConversationView_name, int32(x))
}

type RequestHeader struct {
	ClientType    ClientType `protobuf:"varint,2,opt,name=client_type,json=clientType,proto3,enum=gchat.ClientType" json:"client_type,omitempty"`
	ClientVersion int64      `protobuf:"varint,4,opt,name=client_version,json=clientVersion,proto3" json:"client_version,omitempty"`
	AuthToken     string     `protobuf:"bytes,5,opt,name=auth_token,json=authToken,proto3" json:"auth_token,omitempty"`
}

func (m *RequestHeader) Reset()         { *m = RequestHeader{} }
func (m *RequestHeader) String() string { return proto.CompactTextString(m) }
func (*RequestHeader) ProtoMessage()    {}

func (m *RequestHeader) GetClientType() ClientType {
	if m != nil {
		return m.ClientType
	}
	return ClientType(0)
}

func (m *RequestHeader) GetClientVersion() int64 {
	if m != nil {
		return m.ClientVersion
	}
	return 0
}

func (m *RequestHeader) GetAuthToken() string {
	if m != nil {
		return m.AuthToken
	}
	return ""
}

type ResponseHeader struct {
	ErrorDescription string `protobuf:"bytes,1,opt,name=error_description,json=errorDescription,proto3" json:"error_description,omitempty"`
}

func (m *ResponseHeader) Reset()         { *m = ResponseHeader{} }
func (m *ResponseHeader) String() string { return proto.CompactTextString(m) }
func (*ResponseHeader) ProtoMessage()    {}

func (m *ResponseHeader) GetErrorDescription() string {
	if m != nil {
		return m.ErrorDescription
	}
	return ""
}

type UserId struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *UserId) Reset()         { *m = UserId{} }
func (m *UserId) String() string { return proto.CompactTextString(m) }
func (*UserId) ProtoMessage()    {}

func (m *UserId) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

type DmId struct {
	DmId string `protobuf:"bytes,1,opt,name=dm_id,json=dmId,proto3" json:"dm_id,omitempty"`
}

func (m *DmId) Reset()         { *m = DmId{} }
func (m *DmId) String() string { return proto.CompactTextString(m) }
func (*DmId) ProtoMessage()    {}

func (m *DmId) GetDmId() string {
	if m != nil {
		return m.DmId
	}
	return ""
}

type SpaceId struct {
	SpaceId string `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
}

func (m *SpaceId) Reset()         { *m = SpaceId{} }
func (m *SpaceId) String() string { return proto.CompactTextString(m) }
func (*SpaceId) ProtoMessage()    {}

func (m *SpaceId) GetSpaceId() string {
	if m != nil {
		return m.SpaceId
	}
	return ""
}

type GroupId struct {
	SpaceId *SpaceId `protobuf:"bytes,1,opt,name=space_id,json=spaceId,proto3" json:"space_id,omitempty"`
	DmId    *DmId    `protobuf:"bytes,3,opt,name=dm_id,json=dmId,proto3" json:"dm_id,omitempty"`
}

func (m *GroupId) Reset()         { *m = GroupId{} }
func (m *GroupId) String() string { return proto.CompactTextString(m) }
func (*GroupId) ProtoMessage()    {}

func (m *GroupId) GetSpaceId() *SpaceId {
	if m != nil {
		return m.SpaceId
	}
	return nil
}

func (m *GroupId) GetDmId() *DmId {
	if m != nil {
		return m.DmId
	}
	return nil
}

type EventRequestHeader struct {
	GroupId           *GroupId `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	ClientGeneratedId uint64   `protobuf:"varint,2,opt,name=client_generated_id,json=clientGeneratedId,proto3" json:"client_generated_id,omitempty"`
}

func (m *EventRequestHeader) Reset()         { *m = EventRequestHeader{} }
func (m *EventRequestHeader) String() string { return proto.CompactTextString(m) }
func (*EventRequestHeader) ProtoMessage()    {}

func (m *EventRequestHeader) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *EventRequestHeader) GetClientGeneratedId() uint64 {
	if m != nil {
		return m.ClientGeneratedId
	}
	return 0
}

type Formatting struct {
	Bold          bool `protobuf:"varint,1,opt,name=bold,proto3" json:"bold,omitempty"`
	Italic        bool `protobuf:"varint,2,opt,name=italic,proto3" json:"italic,omitempty"`
	Strikethrough bool `protobuf:"varint,3,opt,name=strikethrough,proto3" json:"strikethrough,omitempty"`
	Underline     bool `protobuf:"varint,4,opt,name=underline,proto3" json:"underline,omitempty"`
	Monospace     bool `protobuf:"varint,5,opt,name=monospace,proto3" json:"monospace,omitempty"`
}

func (m *Formatting) Reset()         { *m = Formatting{} }
func (m *Formatting) String() string { return proto.CompactTextString(m) }
func (*Formatting) ProtoMessage()    {}

func (m *Formatting) GetBold() bool {
	if m != nil {
		return m.Bold
	}
	return false
}

func (m *Formatting) GetItalic() bool {
	if m != nil {
		return m.Italic
	}
	return false
}

func (m *Formatting) GetStrikethrough() bool {
	if m != nil {
		return m.Strikethrough
	}
	return false
}

func (m *Formatting) GetUnderline() bool {
	if m != nil {
		return m.Underline
	}
	return false
}

func (m *Formatting) GetMonospace() bool {
	if m != nil {
		return m.Monospace
	}
	return false
}

type LinkData struct {
	LinkTarget string `protobuf:"bytes,1,opt,name=link_target,json=linkTarget,proto3" json:"link_target,omitempty"`
}

func (m *LinkData) Reset()         { *m = LinkData{} }
func (m *LinkData) String() string { return proto.CompactTextString(m) }
func (*LinkData) ProtoMessage()    {}

func (m *LinkData) GetLinkTarget() string {
	if m != nil {
		return m.LinkTarget
	}
	return ""
}

type Segment struct {
	Type       SegmentType `protobuf:"varint,1,opt,name=type,proto3,enum=gchat.SegmentType" json:"type,omitempty"`
	Text       string      `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	Formatting *Formatting `protobuf:"bytes,3,opt,name=formatting,proto3" json:"formatting,omitempty"`
	LinkData   *LinkData   `protobuf:"bytes,4,opt,name=link_data,json=linkData,proto3" json:"link_data,omitempty"`
}

func (m *Segment) Reset()         { *m = Segment{} }
func (m *Segment) String() string { return proto.CompactTextString(m) }
func (*Segment) ProtoMessage()    {}

func (m *Segment) GetType() SegmentType {
	if m != nil {
		return m.Type
	}
	return SegmentType(0)
}

func (m *Segment) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

func (m *Segment) GetFormatting() *Formatting {
	if m != nil {
		return m.Formatting
	}
	return nil
}

func (m *Segment) GetLinkData() *LinkData {
	if m != nil {
		return m.LinkData
	}
	return nil
}

type MessageContent struct {
	Segment []*Segment `protobuf:"bytes,1,rep,name=segment,proto3" json:"segment,omitempty"`
}

func (m *MessageContent) Reset()         { *m = MessageContent{} }
func (m *MessageContent) String() string { return proto.CompactTextString(m) }
func (*MessageContent) ProtoMessage()    {}

func (m *MessageContent) GetSegment() []*Segment {
	if m != nil {
		return m.Segment
	}
	return nil
}

type DriveMetadata struct {
	Id    string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title string `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
}

func (m *DriveMetadata) Reset()         { *m = DriveMetadata{} }
func (m *DriveMetadata) String() string { return proto.CompactTextString(m) }
func (*DriveMetadata) ProtoMessage()    {}

func (m *DriveMetadata) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *DriveMetadata) GetTitle() string {
	if m != nil {
		return m.Title
	}
	return ""
}

type Annotation struct {
	Type          AnnotationType `protobuf:"varint,1,opt,name=type,proto3,enum=gchat.AnnotationType" json:"type,omitempty"`
	DriveMetadata *DriveMetadata `protobuf:"bytes,2,opt,name=drive_metadata,json=driveMetadata,proto3" json:"drive_metadata,omitempty"`
}

func (m *Annotation) Reset()         { *m = Annotation{} }
func (m *Annotation) String() string { return proto.CompactTextString(m) }
func (*Annotation) ProtoMessage()    {}

func (m *Annotation) GetType() AnnotationType {
	if m != nil {
		return m.Type
	}
	return AnnotationType(0)
}

func (m *Annotation) GetDriveMetadata() *DriveMetadata {
	if m != nil {
		return m.DriveMetadata
	}
	return nil
}

type Message struct {
	Id                string          `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Creator           *UserId         `protobuf:"bytes,2,opt,name=creator,proto3" json:"creator,omitempty"`
	CreateTime        int64           `protobuf:"varint,3,opt,name=create_time,json=createTime,proto3" json:"create_time,omitempty"`
	MessageContent    *MessageContent `protobuf:"bytes,4,opt,name=message_content,json=messageContent,proto3" json:"message_content,omitempty"`
	Annotations       []*Annotation   `protobuf:"bytes,5,rep,name=annotations,proto3" json:"annotations,omitempty"`
	ClientGeneratedId uint64          `protobuf:"varint,6,opt,name=client_generated_id,json=clientGeneratedId,proto3" json:"client_generated_id,omitempty"`
}

func (m *Message) Reset()         { *m = Message{} }
func (m *Message) String() string { return proto.CompactTextString(m) }
func (*Message) ProtoMessage()    {}

func (m *Message) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Message) GetCreator() *UserId {
	if m != nil {
		return m.Creator
	}
	return nil
}

func (m *Message) GetCreateTime() int64 {
	if m != nil {
		return m.CreateTime
	}
	return 0
}

func (m *Message) GetMessageContent() *MessageContent {
	if m != nil {
		return m.MessageContent
	}
	return nil
}

func (m *Message) GetAnnotations() []*Annotation {
	if m != nil {
		return m.Annotations
	}
	return nil
}

func (m *Message) GetClientGeneratedId() uint64 {
	if m != nil {
		return m.ClientGeneratedId
	}
	return 0
}

type RevisionTimestamp struct {
	Timestamp int64 `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *RevisionTimestamp) Reset()         { *m = RevisionTimestamp{} }
func (m *RevisionTimestamp) String() string { return proto.CompactTextString(m) }
func (*RevisionTimestamp) ProtoMessage()    {}

func (m *RevisionTimestamp) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

type MessageEvent struct {
	Message *Message `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *MessageEvent) Reset()         { *m = MessageEvent{} }
func (m *MessageEvent) String() string { return proto.CompactTextString(m) }
func (*MessageEvent) ProtoMessage()    {}

func (m *MessageEvent) GetMessage() *Message {
	if m != nil {
		return m.Message
	}
	return nil
}

type MembershipChangedEvent struct {
	Type            MembershipChangeType `protobuf:"varint,1,opt,name=type,proto3,enum=gchat.MembershipChangeType" json:"type,omitempty"`
	AffectedMembers []*UserId            `protobuf:"bytes,2,rep,name=affected_members,json=affectedMembers,proto3" json:"affected_members,omitempty"`
}

func (m *MembershipChangedEvent) Reset()         { *m = MembershipChangedEvent{} }
func (m *MembershipChangedEvent) String() string { return proto.CompactTextString(m) }
func (*MembershipChangedEvent) ProtoMessage()    {}

func (m *MembershipChangedEvent) GetType() MembershipChangeType {
	if m != nil {
		return m.Type
	}
	return MembershipChangeType(0)
}

func (m *MembershipChangedEvent) GetAffectedMembers() []*UserId {
	if m != nil {
		return m.AffectedMembers
	}
	return nil
}

type TypingStateChangedEvent struct {
	State  TypingState `protobuf:"varint,1,opt,name=state,proto3,enum=gchat.TypingState" json:"state,omitempty"`
	UserId *UserId     `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *TypingStateChangedEvent) Reset()         { *m = TypingStateChangedEvent{} }
func (m *TypingStateChangedEvent) String() string { return proto.CompactTextString(m) }
func (*TypingStateChangedEvent) ProtoMessage()    {}

func (m *TypingStateChangedEvent) GetState() TypingState {
	if m != nil {
		return m.State
	}
	return TypingState(0)
}

func (m *TypingStateChangedEvent) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

type ReadReceiptChangedEvent struct {
	UserId   *UserId `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ReadTime int64   `protobuf:"varint,2,opt,name=read_time,json=readTime,proto3" json:"read_time,omitempty"`
}

func (m *ReadReceiptChangedEvent) Reset()         { *m = ReadReceiptChangedEvent{} }
func (m *ReadReceiptChangedEvent) String() string { return proto.CompactTextString(m) }
func (*ReadReceiptChangedEvent) ProtoMessage()    {}

func (m *ReadReceiptChangedEvent) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

func (m *ReadReceiptChangedEvent) GetReadTime() int64 {
	if m != nil {
		return m.ReadTime
	}
	return 0
}

type GroupUpdatedEvent struct {
	NewName string `protobuf:"bytes,1,opt,name=new_name,json=newName,proto3" json:"new_name,omitempty"`
}

func (m *GroupUpdatedEvent) Reset()         { *m = GroupUpdatedEvent{} }
func (m *GroupUpdatedEvent) String() string { return proto.CompactTextString(m) }
func (*GroupUpdatedEvent) ProtoMessage()    {}

func (m *GroupUpdatedEvent) GetNewName() string {
	if m != nil {
		return m.NewName
	}
	return ""
}

type UserStatusUpdatedEvent struct {
	UserPresence *UserPresence `protobuf:"bytes,1,opt,name=user_presence,json=userPresence,proto3" json:"user_presence,omitempty"`
}

func (m *UserStatusUpdatedEvent) Reset()         { *m = UserStatusUpdatedEvent{} }
func (m *UserStatusUpdatedEvent) String() string { return proto.CompactTextString(m) }
func (*UserStatusUpdatedEvent) ProtoMessage()    {}

func (m *UserStatusUpdatedEvent) GetUserPresence() *UserPresence {
	if m != nil {
		return m.UserPresence
	}
	return nil
}

type GroupDeletedEvent struct {
}

func (m *GroupDeletedEvent) Reset()         { *m = GroupDeletedEvent{} }
func (m *GroupDeletedEvent) String() string { return proto.CompactTextString(m) }
func (*GroupDeletedEvent) ProtoMessage()    {}

type EventBody struct {
	MessagePosted      *MessageEvent            `protobuf:"bytes,1,opt,name=message_posted,json=messagePosted,proto3" json:"message_posted,omitempty"`
	MembershipChanged  *MembershipChangedEvent  `protobuf:"bytes,2,opt,name=membership_changed,json=membershipChanged,proto3" json:"membership_changed,omitempty"`
	TypingStateChanged *TypingStateChangedEvent `protobuf:"bytes,3,opt,name=typing_state_changed,json=typingStateChanged,proto3" json:"typing_state_changed,omitempty"`
	ReadReceiptChanged *ReadReceiptChangedEvent `protobuf:"bytes,4,opt,name=read_receipt_changed,json=readReceiptChanged,proto3" json:"read_receipt_changed,omitempty"`
	GroupUpdated       *GroupUpdatedEvent       `protobuf:"bytes,5,opt,name=group_updated,json=groupUpdated,proto3" json:"group_updated,omitempty"`
	UserStatusUpdated  *UserStatusUpdatedEvent  `protobuf:"bytes,6,opt,name=user_status_updated,json=userStatusUpdated,proto3" json:"user_status_updated,omitempty"`
	GroupDeleted       *GroupDeletedEvent       `protobuf:"bytes,7,opt,name=group_deleted,json=groupDeleted,proto3" json:"group_deleted,omitempty"`
}

func (m *EventBody) Reset()         { *m = EventBody{} }
func (m *EventBody) String() string { return proto.CompactTextString(m) }
func (*EventBody) ProtoMessage()    {}

func (m *EventBody) GetMessagePosted() *MessageEvent {
	if m != nil {
		return m.MessagePosted
	}
	return nil
}

func (m *EventBody) GetMembershipChanged() *MembershipChangedEvent {
	if m != nil {
		return m.MembershipChanged
	}
	return nil
}

func (m *EventBody) GetTypingStateChanged() *TypingStateChangedEvent {
	if m != nil {
		return m.TypingStateChanged
	}
	return nil
}

func (m *EventBody) GetReadReceiptChanged() *ReadReceiptChangedEvent {
	if m != nil {
		return m.ReadReceiptChanged
	}
	return nil
}

func (m *EventBody) GetGroupUpdated() *GroupUpdatedEvent {
	if m != nil {
		return m.GroupUpdated
	}
	return nil
}

func (m *EventBody) GetUserStatusUpdated() *UserStatusUpdatedEvent {
	if m != nil {
		return m.UserStatusUpdated
	}
	return nil
}

func (m *EventBody) GetGroupDeleted() *GroupDeletedEvent {
	if m != nil {
		return m.GroupDeleted
	}
	return nil
}

type Event struct {
	GroupId       *GroupId           `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Type          EventType          `protobuf:"varint,2,opt,name=type,proto3,enum=gchat.EventType" json:"type,omitempty"`
	Body          *EventBody         `protobuf:"bytes,3,opt,name=body,proto3" json:"body,omitempty"`
	GroupRevision *RevisionTimestamp `protobuf:"bytes,4,opt,name=group_revision,json=groupRevision,proto3" json:"group_revision,omitempty"`
	UserId        *UserId            `protobuf:"bytes,5,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return proto.CompactTextString(m) }
func (*Event) ProtoMessage()    {}

func (m *Event) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *Event) GetType() EventType {
	if m != nil {
		return m.Type
	}
	return EventType(0)
}

func (m *Event) GetBody() *EventBody {
	if m != nil {
		return m.Body
	}
	return nil
}

func (m *Event) GetGroupRevision() *RevisionTimestamp {
	if m != nil {
		return m.GroupRevision
	}
	return nil
}

func (m *Event) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

type StreamEventsResponse struct {
	Events []*Event `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
}

func (m *StreamEventsResponse) Reset()         { *m = StreamEventsResponse{} }
func (m *StreamEventsResponse) String() string { return proto.CompactTextString(m) }
func (*StreamEventsResponse) ProtoMessage()    {}

func (m *StreamEventsResponse) GetEvents() []*Event {
	if m != nil {
		return m.Events
	}
	return nil
}

type CatchUpRange struct {
	FromRevisionTimestamp int64 `protobuf:"varint,1,opt,name=from_revision_timestamp,json=fromRevisionTimestamp,proto3" json:"from_revision_timestamp,omitempty"`
	ToRevisionTimestamp   int64 `protobuf:"varint,2,opt,name=to_revision_timestamp,json=toRevisionTimestamp,proto3" json:"to_revision_timestamp,omitempty"`
}

func (m *CatchUpRange) Reset()         { *m = CatchUpRange{} }
func (m *CatchUpRange) String() string { return proto.CompactTextString(m) }
func (*CatchUpRange) ProtoMessage()    {}

func (m *CatchUpRange) GetFromRevisionTimestamp() int64 {
	if m != nil {
		return m.FromRevisionTimestamp
	}
	return 0
}

func (m *CatchUpRange) GetToRevisionTimestamp() int64 {
	if m != nil {
		return m.ToRevisionTimestamp
	}
	return 0
}

type CatchUpUserRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	Range         *CatchUpRange  `protobuf:"bytes,2,opt,name=range,proto3" json:"range,omitempty"`
	PageSize      int32          `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	CutoffSize    int32          `protobuf:"varint,4,opt,name=cutoff_size,json=cutoffSize,proto3" json:"cutoff_size,omitempty"`
}

func (m *CatchUpUserRequest) Reset()         { *m = CatchUpUserRequest{} }
func (m *CatchUpUserRequest) String() string { return proto.CompactTextString(m) }
func (*CatchUpUserRequest) ProtoMessage()    {}

func (m *CatchUpUserRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *CatchUpUserRequest) GetRange() *CatchUpRange {
	if m != nil {
		return m.Range
	}
	return nil
}

func (m *CatchUpUserRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *CatchUpUserRequest) GetCutoffSize() int32 {
	if m != nil {
		return m.CutoffSize
	}
	return 0
}

type CatchUpGroupRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	GroupId       *GroupId       `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Range         *CatchUpRange  `protobuf:"bytes,3,opt,name=range,proto3" json:"range,omitempty"`
	PageSize      int32          `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	CutoffSize    int32          `protobuf:"varint,5,opt,name=cutoff_size,json=cutoffSize,proto3" json:"cutoff_size,omitempty"`
}

func (m *CatchUpGroupRequest) Reset()         { *m = CatchUpGroupRequest{} }
func (m *CatchUpGroupRequest) String() string { return proto.CompactTextString(m) }
func (*CatchUpGroupRequest) ProtoMessage()    {}

func (m *CatchUpGroupRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *CatchUpGroupRequest) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *CatchUpGroupRequest) GetRange() *CatchUpRange {
	if m != nil {
		return m.Range
	}
	return nil
}

func (m *CatchUpGroupRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *CatchUpGroupRequest) GetCutoffSize() int32 {
	if m != nil {
		return m.CutoffSize
	}
	return 0
}

type CatchUpResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	Events         []*Event        `protobuf:"bytes,2,rep,name=events,proto3" json:"events,omitempty"`
	Status         CatchUpStatus   `protobuf:"varint,3,opt,name=status,proto3,enum=gchat.CatchUpStatus" json:"status,omitempty"`
}

func (m *CatchUpResponse) Reset()         { *m = CatchUpResponse{} }
func (m *CatchUpResponse) String() string { return proto.CompactTextString(m) }
func (*CatchUpResponse) ProtoMessage()    {}

func (m *CatchUpResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *CatchUpResponse) GetEvents() []*Event {
	if m != nil {
		return m.Events
	}
	return nil
}

func (m *CatchUpResponse) GetStatus() CatchUpStatus {
	if m != nil {
		return m.Status
	}
	return CatchUpStatus(0)
}

type CustomStatus struct {
	StatusText string `protobuf:"bytes,1,opt,name=status_text,json=statusText,proto3" json:"status_text,omitempty"`
}

func (m *CustomStatus) Reset()         { *m = CustomStatus{} }
func (m *CustomStatus) String() string { return proto.CompactTextString(m) }
func (*CustomStatus) ProtoMessage()    {}

func (m *CustomStatus) GetStatusText() string {
	if m != nil {
		return m.StatusText
	}
	return ""
}

type UserStatus struct {
	UserId       *UserId       `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CustomStatus *CustomStatus `protobuf:"bytes,2,opt,name=custom_status,json=customStatus,proto3" json:"custom_status,omitempty"`
}

func (m *UserStatus) Reset()         { *m = UserStatus{} }
func (m *UserStatus) String() string { return proto.CompactTextString(m) }
func (*UserStatus) ProtoMessage()    {}

func (m *UserStatus) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

func (m *UserStatus) GetCustomStatus() *CustomStatus {
	if m != nil {
		return m.CustomStatus
	}
	return nil
}

type GetSelfUserStatusRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
}

func (m *GetSelfUserStatusRequest) Reset()         { *m = GetSelfUserStatusRequest{} }
func (m *GetSelfUserStatusRequest) String() string { return proto.CompactTextString(m) }
func (*GetSelfUserStatusRequest) ProtoMessage()    {}

func (m *GetSelfUserStatusRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

type GetSelfUserStatusResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	UserStatus     *UserStatus     `protobuf:"bytes,2,opt,name=user_status,json=userStatus,proto3" json:"user_status,omitempty"`
}

func (m *GetSelfUserStatusResponse) Reset()         { *m = GetSelfUserStatusResponse{} }
func (m *GetSelfUserStatusResponse) String() string { return proto.CompactTextString(m) }
func (*GetSelfUserStatusResponse) ProtoMessage()    {}

func (m *GetSelfUserStatusResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *GetSelfUserStatusResponse) GetUserStatus() *UserStatus {
	if m != nil {
		return m.UserStatus
	}
	return nil
}

type UserPresence struct {
	UserId          *UserId       `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Presence        PresenceState `protobuf:"varint,2,opt,name=presence,proto3,enum=gchat.PresenceState" json:"presence,omitempty"`
	DndState        DndState      `protobuf:"varint,3,opt,name=dnd_state,json=dndState,proto3,enum=gchat.DndState" json:"dnd_state,omitempty"`
	UserStatus      *UserStatus   `protobuf:"bytes,4,opt,name=user_status,json=userStatus,proto3" json:"user_status,omitempty"`
	ActiveUntilUsec int64         `protobuf:"varint,5,opt,name=active_until_usec,json=activeUntilUsec,proto3" json:"active_until_usec,omitempty"`
}

func (m *UserPresence) Reset()         { *m = UserPresence{} }
func (m *UserPresence) String() string { return proto.CompactTextString(m) }
func (*UserPresence) ProtoMessage()    {}

func (m *UserPresence) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

func (m *UserPresence) GetPresence() PresenceState {
	if m != nil {
		return m.Presence
	}
	return PresenceState(0)
}

func (m *UserPresence) GetDndState() DndState {
	if m != nil {
		return m.DndState
	}
	return DndState(0)
}

func (m *UserPresence) GetUserStatus() *UserStatus {
	if m != nil {
		return m.UserStatus
	}
	return nil
}

func (m *UserPresence) GetActiveUntilUsec() int64 {
	if m != nil {
		return m.ActiveUntilUsec
	}
	return 0
}

type GetUserPresenceRequest struct {
	RequestHeader      *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	UserIds            []*UserId      `protobuf:"bytes,2,rep,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
	IncludeUserStatus  bool           `protobuf:"varint,3,opt,name=include_user_status,json=includeUserStatus,proto3" json:"include_user_status,omitempty"`
	IncludeActiveUntil bool           `protobuf:"varint,4,opt,name=include_active_until,json=includeActiveUntil,proto3" json:"include_active_until,omitempty"`
}

func (m *GetUserPresenceRequest) Reset()         { *m = GetUserPresenceRequest{} }
func (m *GetUserPresenceRequest) String() string { return proto.CompactTextString(m) }
func (*GetUserPresenceRequest) ProtoMessage()    {}

func (m *GetUserPresenceRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *GetUserPresenceRequest) GetUserIds() []*UserId {
	if m != nil {
		return m.UserIds
	}
	return nil
}

func (m *GetUserPresenceRequest) GetIncludeUserStatus() bool {
	if m != nil {
		return m.IncludeUserStatus
	}
	return false
}

func (m *GetUserPresenceRequest) GetIncludeActiveUntil() bool {
	if m != nil {
		return m.IncludeActiveUntil
	}
	return false
}

type GetUserPresenceResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	UserPresences  []*UserPresence `protobuf:"bytes,2,rep,name=user_presences,json=userPresences,proto3" json:"user_presences,omitempty"`
}

func (m *GetUserPresenceResponse) Reset()         { *m = GetUserPresenceResponse{} }
func (m *GetUserPresenceResponse) String() string { return proto.CompactTextString(m) }
func (*GetUserPresenceResponse) ProtoMessage()    {}

func (m *GetUserPresenceResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *GetUserPresenceResponse) GetUserPresences() []*UserPresence {
	if m != nil {
		return m.UserPresences
	}
	return nil
}

type User struct {
	UserId    *UserId `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Name      string  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email     string  `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	AvatarUrl string  `protobuf:"bytes,4,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	FirstName string  `protobuf:"bytes,5,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName  string  `protobuf:"bytes,6,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Deleted   bool    `protobuf:"varint,7,opt,name=deleted,proto3" json:"deleted,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return proto.CompactTextString(m) }
func (*User) ProtoMessage()    {}

func (m *User) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

func (m *User) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *User) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *User) GetAvatarUrl() string {
	if m != nil {
		return m.AvatarUrl
	}
	return ""
}

func (m *User) GetFirstName() string {
	if m != nil {
		return m.FirstName
	}
	return ""
}

func (m *User) GetLastName() string {
	if m != nil {
		return m.LastName
	}
	return ""
}

func (m *User) GetDeleted() bool {
	if m != nil {
		return m.Deleted
	}
	return false
}

type Member struct {
	User *User `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
}

func (m *Member) Reset()         { *m = Member{} }
func (m *Member) String() string { return proto.CompactTextString(m) }
func (*Member) ProtoMessage()    {}

func (m *Member) GetUser() *User {
	if m != nil {
		return m.User
	}
	return nil
}

type MemberProfile struct {
	Member *Member `protobuf:"bytes,1,opt,name=member,proto3" json:"member,omitempty"`
}

func (m *MemberProfile) Reset()         { *m = MemberProfile{} }
func (m *MemberProfile) String() string { return proto.CompactTextString(m) }
func (*MemberProfile) ProtoMessage()    {}

func (m *MemberProfile) GetMember() *Member {
	if m != nil {
		return m.Member
	}
	return nil
}

type MemberId struct {
	UserId *UserId `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *MemberId) Reset()         { *m = MemberId{} }
func (m *MemberId) String() string { return proto.CompactTextString(m) }
func (*MemberId) ProtoMessage()    {}

func (m *MemberId) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

type GetMembersRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	MemberIds     []*MemberId    `protobuf:"bytes,2,rep,name=member_ids,json=memberIds,proto3" json:"member_ids,omitempty"`
}

func (m *GetMembersRequest) Reset()         { *m = GetMembersRequest{} }
func (m *GetMembersRequest) String() string { return proto.CompactTextString(m) }
func (*GetMembersRequest) ProtoMessage()    {}

func (m *GetMembersRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *GetMembersRequest) GetMemberIds() []*MemberId {
	if m != nil {
		return m.MemberIds
	}
	return nil
}

type GetMembersResponse struct {
	ResponseHeader *ResponseHeader  `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	MemberProfiles []*MemberProfile `protobuf:"bytes,2,rep,name=member_profiles,json=memberProfiles,proto3" json:"member_profiles,omitempty"`
}

func (m *GetMembersResponse) Reset()         { *m = GetMembersResponse{} }
func (m *GetMembersResponse) String() string { return proto.CompactTextString(m) }
func (*GetMembersResponse) ProtoMessage()    {}

func (m *GetMembersResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *GetMembersResponse) GetMemberProfiles() []*MemberProfile {
	if m != nil {
		return m.MemberProfiles
	}
	return nil
}

type GroupReadState struct {
	JoinedUsers  []*UserId `protobuf:"bytes,1,rep,name=joined_users,json=joinedUsers,proto3" json:"joined_users,omitempty"`
	LastReadTime int64     `protobuf:"varint,2,opt,name=last_read_time,json=lastReadTime,proto3" json:"last_read_time,omitempty"`
}

func (m *GroupReadState) Reset()         { *m = GroupReadState{} }
func (m *GroupReadState) String() string { return proto.CompactTextString(m) }
func (*GroupReadState) ProtoMessage()    {}

func (m *GroupReadState) GetJoinedUsers() []*UserId {
	if m != nil {
		return m.JoinedUsers
	}
	return nil
}

func (m *GroupReadState) GetLastReadTime() int64 {
	if m != nil {
		return m.LastReadTime
	}
	return 0
}

type DmMembers struct {
	Members []*UserId `protobuf:"bytes,1,rep,name=members,proto3" json:"members,omitempty"`
}

func (m *DmMembers) Reset()         { *m = DmMembers{} }
func (m *DmMembers) String() string { return proto.CompactTextString(m) }
func (*DmMembers) ProtoMessage()    {}

func (m *DmMembers) GetMembers() []*UserId {
	if m != nil {
		return m.Members
	}
	return nil
}

type WorldItemLite struct {
	GroupId       *GroupId        `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	RoomName      string          `protobuf:"bytes,2,opt,name=room_name,json=roomName,proto3" json:"room_name,omitempty"`
	DmMembers     *DmMembers      `protobuf:"bytes,3,opt,name=dm_members,json=dmMembers,proto3" json:"dm_members,omitempty"`
	ReadState     *GroupReadState `protobuf:"bytes,4,opt,name=read_state,json=readState,proto3" json:"read_state,omitempty"`
	SortTimestamp int64           `protobuf:"varint,5,opt,name=sort_timestamp,json=sortTimestamp,proto3" json:"sort_timestamp,omitempty"`
}

func (m *WorldItemLite) Reset()         { *m = WorldItemLite{} }
func (m *WorldItemLite) String() string { return proto.CompactTextString(m) }
func (*WorldItemLite) ProtoMessage()    {}

func (m *WorldItemLite) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *WorldItemLite) GetRoomName() string {
	if m != nil {
		return m.RoomName
	}
	return ""
}

func (m *WorldItemLite) GetDmMembers() *DmMembers {
	if m != nil {
		return m.DmMembers
	}
	return nil
}

func (m *WorldItemLite) GetReadState() *GroupReadState {
	if m != nil {
		return m.ReadState
	}
	return nil
}

func (m *WorldItemLite) GetSortTimestamp() int64 {
	if m != nil {
		return m.SortTimestamp
	}
	return 0
}

type PaginatedWorldRequest struct {
	RequestHeader                *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	FetchFromUserSpaces          bool           `protobuf:"varint,2,opt,name=fetch_from_user_spaces,json=fetchFromUserSpaces,proto3" json:"fetch_from_user_spaces,omitempty"`
	FetchSnippetsForUnnamedRooms bool           `protobuf:"varint,3,opt,name=fetch_snippets_for_unnamed_rooms,json=fetchSnippetsForUnnamedRooms,proto3" json:"fetch_snippets_for_unnamed_rooms,omitempty"`
	PageSize                     int32          `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	ContinuationToken            string         `protobuf:"bytes,5,opt,name=continuation_token,json=continuationToken,proto3" json:"continuation_token,omitempty"`
}

func (m *PaginatedWorldRequest) Reset()         { *m = PaginatedWorldRequest{} }
func (m *PaginatedWorldRequest) String() string { return proto.CompactTextString(m) }
func (*PaginatedWorldRequest) ProtoMessage()    {}

func (m *PaginatedWorldRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *PaginatedWorldRequest) GetFetchFromUserSpaces() bool {
	if m != nil {
		return m.FetchFromUserSpaces
	}
	return false
}

func (m *PaginatedWorldRequest) GetFetchSnippetsForUnnamedRooms() bool {
	if m != nil {
		return m.FetchSnippetsForUnnamedRooms
	}
	return false
}

func (m *PaginatedWorldRequest) GetPageSize() int32 {
	if m != nil {
		return m.PageSize
	}
	return 0
}

func (m *PaginatedWorldRequest) GetContinuationToken() string {
	if m != nil {
		return m.ContinuationToken
	}
	return ""
}

type PaginatedWorldResponse struct {
	ResponseHeader        *ResponseHeader  `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	WorldItems            []*WorldItemLite `protobuf:"bytes,2,rep,name=world_items,json=worldItems,proto3" json:"world_items,omitempty"`
	NextContinuationToken string           `protobuf:"bytes,3,opt,name=next_continuation_token,json=nextContinuationToken,proto3" json:"next_continuation_token,omitempty"`
}

func (m *PaginatedWorldResponse) Reset()         { *m = PaginatedWorldResponse{} }
func (m *PaginatedWorldResponse) String() string { return proto.CompactTextString(m) }
func (*PaginatedWorldResponse) ProtoMessage()    {}

func (m *PaginatedWorldResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *PaginatedWorldResponse) GetWorldItems() []*WorldItemLite {
	if m != nil {
		return m.WorldItems
	}
	return nil
}

func (m *PaginatedWorldResponse) GetNextContinuationToken() string {
	if m != nil {
		return m.NextContinuationToken
	}
	return ""
}

type CreateTopicRequest struct {
	RequestHeader      *RequestHeader      `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	EventRequestHeader *EventRequestHeader `protobuf:"bytes,2,opt,name=event_request_header,json=eventRequestHeader,proto3" json:"event_request_header,omitempty"`
	MessageContent     *MessageContent     `protobuf:"bytes,3,opt,name=message_content,json=messageContent,proto3" json:"message_content,omitempty"`
	Annotations        []*Annotation       `protobuf:"bytes,4,rep,name=annotations,proto3" json:"annotations,omitempty"`
}

func (m *CreateTopicRequest) Reset()         { *m = CreateTopicRequest{} }
func (m *CreateTopicRequest) String() string { return proto.CompactTextString(m) }
func (*CreateTopicRequest) ProtoMessage()    {}

func (m *CreateTopicRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *CreateTopicRequest) GetEventRequestHeader() *EventRequestHeader {
	if m != nil {
		return m.EventRequestHeader
	}
	return nil
}

func (m *CreateTopicRequest) GetMessageContent() *MessageContent {
	if m != nil {
		return m.MessageContent
	}
	return nil
}

func (m *CreateTopicRequest) GetAnnotations() []*Annotation {
	if m != nil {
		return m.Annotations
	}
	return nil
}

type CreateTopicResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	Message        *Message        `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CreateTopicResponse) Reset()         { *m = CreateTopicResponse{} }
func (m *CreateTopicResponse) String() string { return proto.CompactTextString(m) }
func (*CreateTopicResponse) ProtoMessage()    {}

func (m *CreateTopicResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *CreateTopicResponse) GetMessage() *Message {
	if m != nil {
		return m.Message
	}
	return nil
}

type SetTypingStateRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	GroupId       *GroupId       `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	State         TypingState    `protobuf:"varint,3,opt,name=state,proto3,enum=gchat.TypingState" json:"state,omitempty"`
}

func (m *SetTypingStateRequest) Reset()         { *m = SetTypingStateRequest{} }
func (m *SetTypingStateRequest) String() string { return proto.CompactTextString(m) }
func (*SetTypingStateRequest) ProtoMessage()    {}

func (m *SetTypingStateRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *SetTypingStateRequest) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *SetTypingStateRequest) GetState() TypingState {
	if m != nil {
		return m.State
	}
	return TypingState(0)
}

type SetTypingStateResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *SetTypingStateResponse) Reset()         { *m = SetTypingStateResponse{} }
func (m *SetTypingStateResponse) String() string { return proto.CompactTextString(m) }
func (*SetTypingStateResponse) ProtoMessage()    {}

func (m *SetTypingStateResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type UpdateWatermarkRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	GroupId       *GroupId       `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	LastReadTime  int64          `protobuf:"varint,3,opt,name=last_read_time,json=lastReadTime,proto3" json:"last_read_time,omitempty"`
}

func (m *UpdateWatermarkRequest) Reset()         { *m = UpdateWatermarkRequest{} }
func (m *UpdateWatermarkRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateWatermarkRequest) ProtoMessage()    {}

func (m *UpdateWatermarkRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *UpdateWatermarkRequest) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *UpdateWatermarkRequest) GetLastReadTime() int64 {
	if m != nil {
		return m.LastReadTime
	}
	return 0
}

type UpdateWatermarkResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *UpdateWatermarkResponse) Reset()         { *m = UpdateWatermarkResponse{} }
func (m *UpdateWatermarkResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateWatermarkResponse) ProtoMessage()    {}

func (m *UpdateWatermarkResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type SetFocusRequest struct {
	RequestHeader *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	GroupId       *GroupId       `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Type          FocusType      `protobuf:"varint,3,opt,name=type,proto3,enum=gchat.FocusType" json:"type,omitempty"`
}

func (m *SetFocusRequest) Reset()         { *m = SetFocusRequest{} }
func (m *SetFocusRequest) String() string { return proto.CompactTextString(m) }
func (*SetFocusRequest) ProtoMessage()    {}

func (m *SetFocusRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *SetFocusRequest) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *SetFocusRequest) GetType() FocusType {
	if m != nil {
		return m.Type
	}
	return FocusType(0)
}

type SetFocusResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *SetFocusResponse) Reset()         { *m = SetFocusResponse{} }
func (m *SetFocusResponse) String() string { return proto.CompactTextString(m) }
func (*SetFocusResponse) ProtoMessage()    {}

func (m *SetFocusResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type PresenceStateSetting struct {
	TimeoutSecs int64                   `protobuf:"varint,1,opt,name=timeout_secs,json=timeoutSecs,proto3" json:"timeout_secs,omitempty"`
	Type        ClientPresenceStateType `protobuf:"varint,2,opt,name=type,proto3,enum=gchat.ClientPresenceStateType" json:"type,omitempty"`
}

func (m *PresenceStateSetting) Reset()         { *m = PresenceStateSetting{} }
func (m *PresenceStateSetting) String() string { return proto.CompactTextString(m) }
func (*PresenceStateSetting) ProtoMessage()    {}

func (m *PresenceStateSetting) GetTimeoutSecs() int64 {
	if m != nil {
		return m.TimeoutSecs
	}
	return 0
}

func (m *PresenceStateSetting) GetType() ClientPresenceStateType {
	if m != nil {
		return m.Type
	}
	return ClientPresenceStateType(0)
}

type DndSetting struct {
	DoNotDisturb bool  `protobuf:"varint,1,opt,name=do_not_disturb,json=doNotDisturb,proto3" json:"do_not_disturb,omitempty"`
	TimeoutSecs  int64 `protobuf:"varint,2,opt,name=timeout_secs,json=timeoutSecs,proto3" json:"timeout_secs,omitempty"`
}

func (m *DndSetting) Reset()         { *m = DndSetting{} }
func (m *DndSetting) String() string { return proto.CompactTextString(m) }
func (*DndSetting) ProtoMessage()    {}

func (m *DndSetting) GetDoNotDisturb() bool {
	if m != nil {
		return m.DoNotDisturb
	}
	return false
}

func (m *DndSetting) GetTimeoutSecs() int64 {
	if m != nil {
		return m.TimeoutSecs
	}
	return 0
}

type MoodContent struct {
	Segment []*Segment `protobuf:"bytes,1,rep,name=segment,proto3" json:"segment,omitempty"`
}

func (m *MoodContent) Reset()         { *m = MoodContent{} }
func (m *MoodContent) String() string { return proto.CompactTextString(m) }
func (*MoodContent) ProtoMessage()    {}

func (m *MoodContent) GetSegment() []*Segment {
	if m != nil {
		return m.Segment
	}
	return nil
}

type MoodMessage struct {
	MoodContent *MoodContent `protobuf:"bytes,1,opt,name=mood_content,json=moodContent,proto3" json:"mood_content,omitempty"`
}

func (m *MoodMessage) Reset()         { *m = MoodMessage{} }
func (m *MoodMessage) String() string { return proto.CompactTextString(m) }
func (*MoodMessage) ProtoMessage()    {}

func (m *MoodMessage) GetMoodContent() *MoodContent {
	if m != nil {
		return m.MoodContent
	}
	return nil
}

type MoodSetting struct {
	MoodMessage *MoodMessage `protobuf:"bytes,1,opt,name=mood_message,json=moodMessage,proto3" json:"mood_message,omitempty"`
}

func (m *MoodSetting) Reset()         { *m = MoodSetting{} }
func (m *MoodSetting) String() string { return proto.CompactTextString(m) }
func (*MoodSetting) ProtoMessage()    {}

func (m *MoodSetting) GetMoodMessage() *MoodMessage {
	if m != nil {
		return m.MoodMessage
	}
	return nil
}

type SetPresenceRequest struct {
	RequestHeader        *RequestHeader        `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	PresenceStateSetting *PresenceStateSetting `protobuf:"bytes,2,opt,name=presence_state_setting,json=presenceStateSetting,proto3" json:"presence_state_setting,omitempty"`
	DndSetting           *DndSetting           `protobuf:"bytes,3,opt,name=dnd_setting,json=dndSetting,proto3" json:"dnd_setting,omitempty"`
	MoodSetting          *MoodSetting          `protobuf:"bytes,4,opt,name=mood_setting,json=moodSetting,proto3" json:"mood_setting,omitempty"`
}

func (m *SetPresenceRequest) Reset()         { *m = SetPresenceRequest{} }
func (m *SetPresenceRequest) String() string { return proto.CompactTextString(m) }
func (*SetPresenceRequest) ProtoMessage()    {}

func (m *SetPresenceRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *SetPresenceRequest) GetPresenceStateSetting() *PresenceStateSetting {
	if m != nil {
		return m.PresenceStateSetting
	}
	return nil
}

func (m *SetPresenceRequest) GetDndSetting() *DndSetting {
	if m != nil {
		return m.DndSetting
	}
	return nil
}

func (m *SetPresenceRequest) GetMoodSetting() *MoodSetting {
	if m != nil {
		return m.MoodSetting
	}
	return nil
}

type SetPresenceResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *SetPresenceResponse) Reset()         { *m = SetPresenceResponse{} }
func (m *SetPresenceResponse) String() string { return proto.CompactTextString(m) }
func (*SetPresenceResponse) ProtoMessage()    {}

func (m *SetPresenceResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type InviteeId struct {
	UserId *UserId `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *InviteeId) Reset()         { *m = InviteeId{} }
func (m *InviteeId) String() string { return proto.CompactTextString(m) }
func (*InviteeId) ProtoMessage()    {}

func (m *InviteeId) GetUserId() *UserId {
	if m != nil {
		return m.UserId
	}
	return nil
}

type Group struct {
	GroupId        *GroupId        `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Name           string          `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	GroupReadState *GroupReadState `protobuf:"bytes,3,opt,name=group_read_state,json=groupReadState,proto3" json:"group_read_state,omitempty"`
	SortTime       int64           `protobuf:"varint,4,opt,name=sort_time,json=sortTime,proto3" json:"sort_time,omitempty"`
}

func (m *Group) Reset()         { *m = Group{} }
func (m *Group) String() string { return proto.CompactTextString(m) }
func (*Group) ProtoMessage()    {}

func (m *Group) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *Group) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Group) GetGroupReadState() *GroupReadState {
	if m != nil {
		return m.GroupReadState
	}
	return nil
}

func (m *Group) GetSortTime() int64 {
	if m != nil {
		return m.SortTime
	}
	return 0
}

type CreateGroupRequest struct {
	RequestHeader     *RequestHeader `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	Type              GroupType      `protobuf:"varint,2,opt,name=type,proto3,enum=gchat.GroupType" json:"type,omitempty"`
	InviteeIds        []*InviteeId   `protobuf:"bytes,3,rep,name=invitee_ids,json=inviteeIds,proto3" json:"invitee_ids,omitempty"`
	ClientGeneratedId uint64         `protobuf:"varint,4,opt,name=client_generated_id,json=clientGeneratedId,proto3" json:"client_generated_id,omitempty"`
	Name              string         `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *CreateGroupRequest) Reset()         { *m = CreateGroupRequest{} }
func (m *CreateGroupRequest) String() string { return proto.CompactTextString(m) }
func (*CreateGroupRequest) ProtoMessage()    {}

func (m *CreateGroupRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *CreateGroupRequest) GetType() GroupType {
	if m != nil {
		return m.Type
	}
	return GroupType(0)
}

func (m *CreateGroupRequest) GetInviteeIds() []*InviteeId {
	if m != nil {
		return m.InviteeIds
	}
	return nil
}

func (m *CreateGroupRequest) GetClientGeneratedId() uint64 {
	if m != nil {
		return m.ClientGeneratedId
	}
	return 0
}

func (m *CreateGroupRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type CreateGroupResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
	Group          *Group          `protobuf:"bytes,2,opt,name=group,proto3" json:"group,omitempty"`
}

func (m *CreateGroupResponse) Reset()         { *m = CreateGroupResponse{} }
func (m *CreateGroupResponse) String() string { return proto.CompactTextString(m) }
func (*CreateGroupResponse) ProtoMessage()    {}

func (m *CreateGroupResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func (m *CreateGroupResponse) GetGroup() *Group {
	if m != nil {
		return m.Group
	}
	return nil
}

type ModifyConversationViewRequest struct {
	RequestHeader      *RequestHeader   `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	GroupId            *GroupId         `protobuf:"bytes,2,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	NewView            ConversationView `protobuf:"varint,3,opt,name=new_view,json=newView,proto3,enum=gchat.ConversationView" json:"new_view,omitempty"`
	LastEventTimestamp int64            `protobuf:"varint,4,opt,name=last_event_timestamp,json=lastEventTimestamp,proto3" json:"last_event_timestamp,omitempty"`
}

func (m *ModifyConversationViewRequest) Reset()         { *m = ModifyConversationViewRequest{} }
func (m *ModifyConversationViewRequest) String() string { return proto.CompactTextString(m) }
func (*ModifyConversationViewRequest) ProtoMessage()    {}

func (m *ModifyConversationViewRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *ModifyConversationViewRequest) GetGroupId() *GroupId {
	if m != nil {
		return m.GroupId
	}
	return nil
}

func (m *ModifyConversationViewRequest) GetNewView() ConversationView {
	if m != nil {
		return m.NewView
	}
	return ConversationView(0)
}

func (m *ModifyConversationViewRequest) GetLastEventTimestamp() int64 {
	if m != nil {
		return m.LastEventTimestamp
	}
	return 0
}

type ModifyConversationViewResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *ModifyConversationViewResponse) Reset()         { *m = ModifyConversationViewResponse{} }
func (m *ModifyConversationViewResponse) String() string { return proto.CompactTextString(m) }
func (*ModifyConversationViewResponse) ProtoMessage()    {}

func (m *ModifyConversationViewResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type RemoveMembershipsRequest struct {
	RequestHeader      *RequestHeader      `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	EventRequestHeader *EventRequestHeader `protobuf:"bytes,2,opt,name=event_request_header,json=eventRequestHeader,proto3" json:"event_request_header,omitempty"`
	UserIds            []*UserId           `protobuf:"bytes,3,rep,name=user_ids,json=userIds,proto3" json:"user_ids,omitempty"`
}

func (m *RemoveMembershipsRequest) Reset()         { *m = RemoveMembershipsRequest{} }
func (m *RemoveMembershipsRequest) String() string { return proto.CompactTextString(m) }
func (*RemoveMembershipsRequest) ProtoMessage()    {}

func (m *RemoveMembershipsRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *RemoveMembershipsRequest) GetEventRequestHeader() *EventRequestHeader {
	if m != nil {
		return m.EventRequestHeader
	}
	return nil
}

func (m *RemoveMembershipsRequest) GetUserIds() []*UserId {
	if m != nil {
		return m.UserIds
	}
	return nil
}

type RemoveMembershipsResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *RemoveMembershipsResponse) Reset()         { *m = RemoveMembershipsResponse{} }
func (m *RemoveMembershipsResponse) String() string { return proto.CompactTextString(m) }
func (*RemoveMembershipsResponse) ProtoMessage()    {}

func (m *RemoveMembershipsResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type AddMembersRequest struct {
	RequestHeader      *RequestHeader      `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	EventRequestHeader *EventRequestHeader `protobuf:"bytes,2,opt,name=event_request_header,json=eventRequestHeader,proto3" json:"event_request_header,omitempty"`
	InviteeIds         []*InviteeId        `protobuf:"bytes,3,rep,name=invitee_ids,json=inviteeIds,proto3" json:"invitee_ids,omitempty"`
}

func (m *AddMembersRequest) Reset()         { *m = AddMembersRequest{} }
func (m *AddMembersRequest) String() string { return proto.CompactTextString(m) }
func (*AddMembersRequest) ProtoMessage()    {}

func (m *AddMembersRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *AddMembersRequest) GetEventRequestHeader() *EventRequestHeader {
	if m != nil {
		return m.EventRequestHeader
	}
	return nil
}

func (m *AddMembersRequest) GetInviteeIds() []*InviteeId {
	if m != nil {
		return m.InviteeIds
	}
	return nil
}

type AddMembersResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *AddMembersResponse) Reset()         { *m = AddMembersResponse{} }
func (m *AddMembersResponse) String() string { return proto.CompactTextString(m) }
func (*AddMembersResponse) ProtoMessage()    {}

func (m *AddMembersResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

type UpdateGroupRequest struct {
	RequestHeader      *RequestHeader      `protobuf:"bytes,1,opt,name=request_header,json=requestHeader,proto3" json:"request_header,omitempty"`
	EventRequestHeader *EventRequestHeader `protobuf:"bytes,2,opt,name=event_request_header,json=eventRequestHeader,proto3" json:"event_request_header,omitempty"`
	Name               string              `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *UpdateGroupRequest) Reset()         { *m = UpdateGroupRequest{} }
func (m *UpdateGroupRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateGroupRequest) ProtoMessage()    {}

func (m *UpdateGroupRequest) GetRequestHeader() *RequestHeader {
	if m != nil {
		return m.RequestHeader
	}
	return nil
}

func (m *UpdateGroupRequest) GetEventRequestHeader() *EventRequestHeader {
	if m != nil {
		return m.EventRequestHeader
	}
	return nil
}

func (m *UpdateGroupRequest) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

type UpdateGroupResponse struct {
	ResponseHeader *ResponseHeader `protobuf:"bytes,1,opt,name=response_header,json=responseHeader,proto3" json:"response_header,omitempty"`
}

func (m *UpdateGroupResponse) Reset()         { *m = UpdateGroupResponse{} }
func (m *UpdateGroupResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateGroupResponse) ProtoMessage()    {}

func (m *UpdateGroupResponse) GetResponseHeader() *ResponseHeader {
	if m != nil {
		return m.ResponseHeader
	}
	return nil
}

func init() {
	proto.RegisterEnum("gchat.ClientType", ClientType_name, ClientType_value)
	proto.RegisterEnum("gchat.SegmentType", SegmentType_name, SegmentType_value)
	proto.RegisterEnum("gchat.AnnotationType", AnnotationType_name, AnnotationType_value)
	proto.RegisterEnum("gchat.EventType", EventType_name, EventType_value)
	proto.RegisterEnum("gchat.MembershipChangeType", MembershipChangeType_name, MembershipChangeType_value)
	proto.RegisterEnum("gchat.TypingState", TypingState_name, TypingState_value)
	proto.RegisterEnum("gchat.CatchUpStatus", CatchUpStatus_name, CatchUpStatus_value)
	proto.RegisterEnum("gchat.PresenceState", PresenceState_name, PresenceState_value)
	proto.RegisterEnum("gchat.DndState", DndState_name, DndState_value)
	proto.RegisterEnum("gchat.FocusType", FocusType_name, FocusType_value)
	proto.RegisterEnum("gchat.ClientPresenceStateType", ClientPresenceStateType_name, ClientPresenceStateType_value)
	proto.RegisterEnum("gchat.GroupType", GroupType_name, GroupType_value)
	proto.RegisterEnum("gchat.ConversationView", ConversationView_name, ConversationView_value)
	proto.RegisterType((*RequestHeader)(nil), "gchat.RequestHeader")
	proto.RegisterType((*ResponseHeader)(nil), "gchat.ResponseHeader")
	proto.RegisterType((*UserId)(nil), "gchat.UserId")
	proto.RegisterType((*DmId)(nil), "gchat.DmId")
	proto.RegisterType((*SpaceId)(nil), "gchat.SpaceId")
	proto.RegisterType((*GroupId)(nil), "gchat.GroupId")
	proto.RegisterType((*EventRequestHeader)(nil), "gchat.EventRequestHeader")
	proto.RegisterType((*Formatting)(nil), "gchat.Formatting")
	proto.RegisterType((*LinkData)(nil), "gchat.LinkData")
	proto.RegisterType((*Segment)(nil), "gchat.Segment")
	proto.RegisterType((*MessageContent)(nil), "gchat.MessageContent")
	proto.RegisterType((*DriveMetadata)(nil), "gchat.DriveMetadata")
	proto.RegisterType((*Annotation)(nil), "gchat.Annotation")
	proto.RegisterType((*Message)(nil), "gchat.Message")
	proto.RegisterType((*RevisionTimestamp)(nil), "gchat.RevisionTimestamp")
	proto.RegisterType((*MessageEvent)(nil), "gchat.MessageEvent")
	proto.RegisterType((*MembershipChangedEvent)(nil), "gchat.MembershipChangedEvent")
	proto.RegisterType((*TypingStateChangedEvent)(nil), "gchat.TypingStateChangedEvent")
	proto.RegisterType((*ReadReceiptChangedEvent)(nil), "gchat.ReadReceiptChangedEvent")
	proto.RegisterType((*GroupUpdatedEvent)(nil), "gchat.GroupUpdatedEvent")
	proto.RegisterType((*UserStatusUpdatedEvent)(nil), "gchat.UserStatusUpdatedEvent")
	proto.RegisterType((*GroupDeletedEvent)(nil), "gchat.GroupDeletedEvent")
	proto.RegisterType((*EventBody)(nil), "gchat.EventBody")
	proto.RegisterType((*Event)(nil), "gchat.Event")
	proto.RegisterType((*StreamEventsResponse)(nil), "gchat.StreamEventsResponse")
	proto.RegisterType((*CatchUpRange)(nil), "gchat.CatchUpRange")
	proto.RegisterType((*CatchUpUserRequest)(nil), "gchat.CatchUpUserRequest")
	proto.RegisterType((*CatchUpGroupRequest)(nil), "gchat.CatchUpGroupRequest")
	proto.RegisterType((*CatchUpResponse)(nil), "gchat.CatchUpResponse")
	proto.RegisterType((*CustomStatus)(nil), "gchat.CustomStatus")
	proto.RegisterType((*UserStatus)(nil), "gchat.UserStatus")
	proto.RegisterType((*GetSelfUserStatusRequest)(nil), "gchat.GetSelfUserStatusRequest")
	proto.RegisterType((*GetSelfUserStatusResponse)(nil), "gchat.GetSelfUserStatusResponse")
	proto.RegisterType((*UserPresence)(nil), "gchat.UserPresence")
	proto.RegisterType((*GetUserPresenceRequest)(nil), "gchat.GetUserPresenceRequest")
	proto.RegisterType((*GetUserPresenceResponse)(nil), "gchat.GetUserPresenceResponse")
	proto.RegisterType((*User)(nil), "gchat.User")
	proto.RegisterType((*Member)(nil), "gchat.Member")
	proto.RegisterType((*MemberProfile)(nil), "gchat.MemberProfile")
	proto.RegisterType((*MemberId)(nil), "gchat.MemberId")
	proto.RegisterType((*GetMembersRequest)(nil), "gchat.GetMembersRequest")
	proto.RegisterType((*GetMembersResponse)(nil), "gchat.GetMembersResponse")
	proto.RegisterType((*GroupReadState)(nil), "gchat.GroupReadState")
	proto.RegisterType((*DmMembers)(nil), "gchat.DmMembers")
	proto.RegisterType((*WorldItemLite)(nil), "gchat.WorldItemLite")
	proto.RegisterType((*PaginatedWorldRequest)(nil), "gchat.PaginatedWorldRequest")
	proto.RegisterType((*PaginatedWorldResponse)(nil), "gchat.PaginatedWorldResponse")
	proto.RegisterType((*CreateTopicRequest)(nil), "gchat.CreateTopicRequest")
	proto.RegisterType((*CreateTopicResponse)(nil), "gchat.CreateTopicResponse")
	proto.RegisterType((*SetTypingStateRequest)(nil), "gchat.SetTypingStateRequest")
	proto.RegisterType((*SetTypingStateResponse)(nil), "gchat.SetTypingStateResponse")
	proto.RegisterType((*UpdateWatermarkRequest)(nil), "gchat.UpdateWatermarkRequest")
	proto.RegisterType((*UpdateWatermarkResponse)(nil), "gchat.UpdateWatermarkResponse")
	proto.RegisterType((*SetFocusRequest)(nil), "gchat.SetFocusRequest")
	proto.RegisterType((*SetFocusResponse)(nil), "gchat.SetFocusResponse")
	proto.RegisterType((*PresenceStateSetting)(nil), "gchat.PresenceStateSetting")
	proto.RegisterType((*DndSetting)(nil), "gchat.DndSetting")
	proto.RegisterType((*MoodContent)(nil), "gchat.MoodContent")
	proto.RegisterType((*MoodMessage)(nil), "gchat.MoodMessage")
	proto.RegisterType((*MoodSetting)(nil), "gchat.MoodSetting")
	proto.RegisterType((*SetPresenceRequest)(nil), "gchat.SetPresenceRequest")
	proto.RegisterType((*SetPresenceResponse)(nil), "gchat.SetPresenceResponse")
	proto.RegisterType((*InviteeId)(nil), "gchat.InviteeId")
	proto.RegisterType((*Group)(nil), "gchat.Group")
	proto.RegisterType((*CreateGroupRequest)(nil), "gchat.CreateGroupRequest")
	proto.RegisterType((*CreateGroupResponse)(nil), "gchat.CreateGroupResponse")
	proto.RegisterType((*ModifyConversationViewRequest)(nil), "gchat.ModifyConversationViewRequest")
	proto.RegisterType((*ModifyConversationViewResponse)(nil), "gchat.ModifyConversationViewResponse")
	proto.RegisterType((*RemoveMembershipsRequest)(nil), "gchat.RemoveMembershipsRequest")
	proto.RegisterType((*RemoveMembershipsResponse)(nil), "gchat.RemoveMembershipsResponse")
	proto.RegisterType((*AddMembersRequest)(nil), "gchat.AddMembersRequest")
	proto.RegisterType((*AddMembersResponse)(nil), "gchat.AddMembersResponse")
	proto.RegisterType((*UpdateGroupRequest)(nil), "gchat.UpdateGroupRequest")
	proto.RegisterType((*UpdateGroupResponse)(nil), "gchat.UpdateGroupResponse")
}
