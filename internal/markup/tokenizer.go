package markup

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// mdParser is shared by all conversions; goldmark parsers hold no per-parse state.
var mdParser parser.Parser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,         // | a | b |
		extension.Strikethrough, // ~~text~~
		extension.TaskList,      // - [x] done
		extension.Footnote,      // [^1] footnotes
	),
).Parser()

// Tokenize parses markdown and returns its structural events in document order.
func Tokenize(source []byte) []Event {
	doc := mdParser.Parse(text.NewReader(source))

	t := &tokenizer{source: source}
	// The walker never returns an error.
	_ = ast.Walk(doc, t.visit)
	return t.events
}

type tokenizer struct {
	source []byte
	events []Event
}

func (t *tokenizer) emit(ev Event) {
	t.events = append(t.events, ev)
}

// pair emits ev as a start or end event depending on the walk direction.
func (t *tokenizer) pair(entering bool, start, end Kind, ev Event) {
	if entering {
		ev.Kind = start
	} else {
		ev.Kind = end
	}
	t.emit(ev)
}

func (t *tokenizer) visit(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Heading:
		t.pair(entering, KindHeadingStart, KindHeadingEnd, Event{Level: n.Level})

	case *ast.Paragraph:
		t.pair(entering, KindParagraphStart, KindParagraphEnd, Event{})

	case *ast.List:
		t.pair(entering, KindListStart, KindListEnd, Event{Ordered: n.IsOrdered(), Start: n.Start})

	case *ast.ListItem:
		t.pair(entering, KindItemStart, KindItemEnd, Event{})

	case *ast.Blockquote:
		t.pair(entering, KindBlockquoteStart, KindBlockquoteEnd, Event{})

	case *ast.ThematicBreak:
		if entering {
			t.emit(Event{Kind: KindRule})
		}

	case *ast.FencedCodeBlock:
		t.codeBlock(n, string(n.Language(t.source)), entering)

	case *ast.CodeBlock:
		t.codeBlock(n, "", entering)

	case *ast.HTMLBlock:
		if entering {
			t.emit(Event{Kind: KindHTML, Text: t.lines(n)})
		}

	case *ast.Text:
		if !entering {
			break
		}
		if v := n.Segment.Value(t.source); len(v) > 0 {
			t.emit(Event{Kind: KindText, Text: resolveText(v)})
		}
		switch {
		case n.HardLineBreak():
			t.emit(Event{Kind: KindHardBreak})
		case n.SoftLineBreak():
			t.emit(Event{Kind: KindSoftBreak})
		}

	case *ast.String:
		if entering && len(n.Value) > 0 {
			t.emit(Event{Kind: KindText, Text: string(n.Value)})
		}

	case *ast.CodeSpan:
		if entering {
			t.emit(Event{Kind: KindCode, Text: t.codeSpanText(n)})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		if n.Level >= 2 {
			t.pair(entering, KindStrongStart, KindStrongEnd, Event{})
		} else {
			t.pair(entering, KindEmphasisStart, KindEmphasisEnd, Event{})
		}

	case *ast.Link:
		t.pair(entering, KindLinkStart, KindLinkEnd, Event{
			Target: resolveText(n.Destination),
			Title:  resolveText(n.Title),
		})

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(t.source))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
				url = "mailto:" + url
			}
			t.emit(Event{Kind: KindLinkStart, Target: url})
			t.emit(Event{Kind: KindText, Text: string(n.Label(t.source))})
			t.emit(Event{Kind: KindLinkEnd, Target: url})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Image:
		if entering {
			t.emit(Event{
				Kind:   KindImage,
				Target: resolveText(n.Destination),
				Title:  resolveText(n.Title),
				Text:   t.plainText(n),
			})
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML:
		if entering {
			var b strings.Builder
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				b.Write(seg.Value(t.source))
			}
			t.emit(Event{Kind: KindHTML, Text: b.String()})
		}

	case *east.Table:
		t.pair(entering, KindTableStart, KindTableEnd, Event{})

	case *east.TableHeader:
		t.pair(entering, KindTableHeadStart, KindTableHeadEnd, Event{})

	case *east.TableRow:
		t.pair(entering, KindTableRowStart, KindTableRowEnd, Event{})

	case *east.TableCell:
		t.pair(entering, KindTableCellStart, KindTableCellEnd, Event{})

	case *east.Strikethrough:
		t.pair(entering, KindStrikethroughStart, KindStrikethroughEnd, Event{})

	case *east.TaskCheckBox:
		if entering {
			t.emit(Event{Kind: KindTaskCheckbox, Checked: n.IsChecked})
		}

	case *east.FootnoteLink:
		if entering {
			t.emit(Event{Kind: KindFootnoteRef, Text: strconv.Itoa(n.Index)})
		}

	case *east.FootnoteBacklink:
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// codeBlock emits a code block as start, one text event per source line, end.
func (t *tokenizer) codeBlock(n ast.Node, lang string, entering bool) {
	if !entering {
		t.emit(Event{Kind: KindCodeBlockEnd, Lang: lang})
		return
	}

	t.emit(Event{Kind: KindCodeBlockStart, Lang: lang})
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		t.emit(Event{Kind: KindText, Text: strings.Repeat(" ", line.Padding) + string(line.Value(t.source))})
	}
}

// lines concatenates the raw source lines of a block node.
func (t *tokenizer) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(t.source))
	}
	return b.String()
}

// codeSpanText joins a code span's segments; line endings become spaces.
func (t *tokenizer) codeSpanText(n *ast.CodeSpan) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch cn := c.(type) {
		case *ast.Text:
			v := cn.Segment.Value(t.source)
			if len(v) > 0 && v[len(v)-1] == '\n' {
				b.Write(v[:len(v)-1])
				b.WriteByte(' ')
				continue
			}
			b.Write(v)
		case *ast.String:
			b.Write(cn.Value)
		}
	}
	return b.String()
}

// plainText flattens the inline children of n, dropping all markup.
func (t *tokenizer) plainText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch cn := c.(type) {
		case *ast.Text:
			b.WriteString(resolveText(cn.Segment.Value(t.source)))
		case *ast.String:
			b.Write(cn.Value)
		default:
			b.WriteString(t.plainText(c))
		}
	}
	return b.String()
}

// resolveText applies backslash escapes and character references.
func resolveText(v []byte) string {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	v = util.ResolveEntityNames(v)
	return string(v)
}
