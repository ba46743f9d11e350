// Package render converts between user markup and message segments.
package render

import (
	"strings"

	pb "github.com/mqy/gchat/proto"
)

const actionPrefix = "/me "

// Renderer is a pure conversion between markup and segments.
type Renderer interface {
	Render(markup string) []*pb.Segment
	Plain(segs []*pb.Segment) string
}

// SplitAction strips a leading "/me " and reports whether it was there.
func SplitAction(markup string) (string, bool) {
	if strings.HasPrefix(markup, actionPrefix) {
		return markup[len(actionPrefix):], true
	}
	return markup, false
}

// Plain flattens segments to text. Links without text render as their target.
func Plain(segs []*pb.Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		switch s.GetType() {
		case pb.SegmentType_LINE_BREAK:
			sb.WriteByte('\n')
		case pb.SegmentType_LINK:
			if s.GetText() != "" {
				sb.WriteString(s.GetText())
			} else {
				sb.WriteString(s.GetLinkData().GetLinkTarget())
			}
		default:
			sb.WriteString(s.GetText())
		}
	}
	return sb.String()
}
