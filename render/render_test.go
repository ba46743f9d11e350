package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mqy/gchat/proto"
)

func TestSplitAction(t *testing.T) {
	s, ok := SplitAction("/me waves")
	assert.True(t, ok)
	assert.Equal(t, "waves", s)

	s, ok = SplitAction("/meh")
	assert.False(t, ok)
	assert.Equal(t, "/meh", s)
}

func TestRenderPlainText(t *testing.T) {
	segs := NewMarkdown().Render("hello world")
	require.Len(t, segs, 1)
	assert.Equal(t, pb.SegmentType_TEXT, segs[0].Type)
	assert.Equal(t, "hello world", segs[0].Text)
	assert.Nil(t, segs[0].Formatting)
}

func TestRenderEmpty(t *testing.T) {
	assert.Empty(t, NewMarkdown().Render(""))
}

func TestRenderFormatting(t *testing.T) {
	segs := NewMarkdown().Render("a **b** _c_ ~~d~~ `e`")

	var got []string
	for _, s := range segs {
		got = append(got, s.Text)
	}
	assert.Equal(t, []string{"a ", "b", " ", "c", " ", "d", " ", "e"}, got)
	assert.True(t, segs[1].GetFormatting().GetBold())
	assert.True(t, segs[3].GetFormatting().GetItalic())
	assert.True(t, segs[5].GetFormatting().GetStrikethrough())
	assert.True(t, segs[7].GetFormatting().GetMonospace())
}

func TestRenderLinks(t *testing.T) {
	segs := NewMarkdown().Render("see [docs](https://example.com/d) or https://example.org")

	var links []*pb.Segment
	for _, s := range segs {
		if s.Type == pb.SegmentType_LINK {
			links = append(links, s)
		}
	}
	require.Len(t, links, 2)
	assert.Equal(t, "docs", links[0].Text)
	assert.Equal(t, "https://example.com/d", links[0].GetLinkData().GetLinkTarget())
	assert.Equal(t, "https://example.org", links[1].GetLinkData().GetLinkTarget())
}

func TestRenderLineBreaks(t *testing.T) {
	m := NewMarkdown()
	segs := m.Render("one\ntwo\n\nthree")
	assert.Equal(t, "one\ntwo\nthree", m.Plain(segs))

	for _, s := range segs {
		if s.Type == pb.SegmentType_LINE_BREAK {
			return
		}
	}
	t.Fatal("no line break segment")
}

func TestPlain(t *testing.T) {
	segs := []*pb.Segment{
		{Type: pb.SegmentType_TEXT, Text: "hi "},
		{Type: pb.SegmentType_LINK, LinkData: &pb.LinkData{LinkTarget: "https://x"}},
		{Type: pb.SegmentType_LINE_BREAK},
		{Type: pb.SegmentType_LINK, Text: "y", LinkData: &pb.LinkData{LinkTarget: "https://y"}},
	}
	assert.Equal(t, "hi https://x\ny", Plain(segs))
}
