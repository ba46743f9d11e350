package render

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	pb "github.com/mqy/gchat/proto"
)

// Markdown renders markdown into segments: emphasis becomes bold or italic,
// code becomes monospace, links and bare urls become link segments, and line
// and block boundaries become line breaks.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		)),
	}
}

func (m *Markdown) Render(markup string) []*pb.Segment {
	if markup == "" {
		return nil
	}
	source := []byte(markup)
	doc := m.md.Parser().Parse(text.NewReader(source))

	w := &walker{source: source}
	_ = ast.Walk(doc, w.walk)

	segs := w.segs
	for len(segs) > 0 && segs[len(segs)-1].Type == pb.SegmentType_LINE_BREAK {
		segs = segs[:len(segs)-1]
	}
	return segs
}

func (m *Markdown) Plain(segs []*pb.Segment) string {
	return Plain(segs)
}

type walker struct {
	source []byte
	segs   []*pb.Segment

	bold   int
	italic int
	strike int
}

func (w *walker) formatting(mono bool) *pb.Formatting {
	if w.bold == 0 && w.italic == 0 && w.strike == 0 && !mono {
		return nil
	}
	return &pb.Formatting{
		Bold:          w.bold > 0,
		Italic:        w.italic > 0,
		Strikethrough: w.strike > 0,
		Monospace:     mono,
	}
}

func (w *walker) text(s string, mono bool) {
	if s == "" {
		return
	}
	f := w.formatting(mono)
	if n := len(w.segs); n > 0 {
		last := w.segs[n-1]
		if last.Type == pb.SegmentType_TEXT && sameFormatting(last.Formatting, f) {
			last.Text += s
			return
		}
	}
	w.segs = append(w.segs, &pb.Segment{Type: pb.SegmentType_TEXT, Text: s, Formatting: f})
}

func sameFormatting(a, b *pb.Formatting) bool {
	return a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic() &&
		a.GetStrikethrough() == b.GetStrikethrough() &&
		a.GetUnderline() == b.GetUnderline() &&
		a.GetMonospace() == b.GetMonospace()
}

func (w *walker) lineBreak() {
	w.segs = append(w.segs, &pb.Segment{Type: pb.SegmentType_LINE_BREAK, Text: "\n"})
}

func (w *walker) link(label, target string) {
	if label == "" {
		label = target
	}
	w.segs = append(w.segs, &pb.Segment{
		Type:       pb.SegmentType_LINK,
		Text:       label,
		Formatting: w.formatting(false),
		LinkData:   &pb.LinkData{LinkTarget: target},
	})
}

// blockStart separates a block from whatever was rendered before it.
func (w *walker) blockStart() {
	if n := len(w.segs); n > 0 && w.segs[n-1].Type != pb.SegmentType_LINE_BREAK {
		w.lineBreak()
	}
}

func (w *walker) lines(node ast.Node, mono bool) {
	l := node.Lines()
	for i := 0; i < l.Len(); i++ {
		line := l.At(i)
		w.text(strings.TrimRight(string(line.Value(w.source)), "\n"), mono)
		w.lineBreak()
	}
}

func (w *walker) inlineText(node ast.Node) string {
	var sb strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(w.source))
		case *ast.String:
			sb.Write(n.Value)
		default:
			sb.WriteString(w.inlineText(c))
		}
	}
	return sb.String()
}

func (w *walker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading, ast.KindListItem, ast.KindThematicBreak:
		if entering {
			w.blockStart()
		}

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			w.blockStart()
			w.lines(node, true)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindHTMLBlock:
		if entering {
			w.blockStart()
			w.lines(node, false)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindText:
		if entering {
			n := node.(*ast.Text)
			w.text(string(n.Segment.Value(w.source)), false)
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.lineBreak()
			}
		}

	case ast.KindString:
		if entering {
			w.text(string(node.(*ast.String).Value), false)
		}

	case ast.KindEmphasis:
		d := 1
		if !entering {
			d = -1
		}
		if node.(*ast.Emphasis).Level >= 2 {
			w.bold += d
		} else {
			w.italic += d
		}

	case extast.KindStrikethrough:
		if entering {
			w.strike++
		} else {
			w.strike--
		}

	case ast.KindCodeSpan:
		if entering {
			w.text(w.inlineText(node), true)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindLink:
		if entering {
			n := node.(*ast.Link)
			w.link(w.inlineText(n), string(n.Destination))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindAutoLink:
		if entering {
			n := node.(*ast.AutoLink)
			target := string(n.URL(w.source))
			label := string(n.Label(w.source))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(target, "mailto:") {
				target = "mailto:" + target
			}
			w.link(label, target)
		}
		return ast.WalkSkipChildren, nil

	case ast.KindImage:
		if entering {
			n := node.(*ast.Image)
			w.link(w.inlineText(n), string(n.Destination))
		}
		return ast.WalkSkipChildren, nil

	case ast.KindRawHTML:
		if entering {
			n := node.(*ast.RawHTML)
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				w.text(string(seg.Value(w.source)), false)
			}
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}
