package markup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrHighlight indicates the highlight callback failed on a fenced code block.
var ErrHighlight = errors.New("code highlighting failed")

// HighlightFunc turns raw code into styled markup. The returned fragment must
// already be escaped; Render inserts it as is.
type HighlightFunc func(code, lang string) (string, error)

// Mode is the renderer state.
type Mode uint8

const (
	// Normal renders events directly.
	Normal Mode = iota
	// InCodeBlock accumulates text until the fenced block closes.
	InCodeBlock
)

func (m Mode) String() string {
	if m == InCodeBlock {
		return "in-code-block"
	}
	return "normal"
}

// State is threaded through Step. The zero value is a Normal state with an
// empty accumulator. States are values; Step never mutates the one it is given.
type State struct {
	Mode Mode
	code string
	lang string
}

// Code returns the text accumulated for the open code block.
func (s State) Code() string { return s.code }

// Lang returns the language captured at the start of the open code block.
func (s State) Lang() string { return s.lang }

// Code block container markup.
const (
	codeBlockOpen  = `<div class="code-block"><pre><code>`
	codeBlockClose = `</code></pre></div>`
)

// Step maps one event to its markup fragment and the next state.
// It has no side effects beyond calling hl when a code block closes.
func Step(ev Event, st State, hl HighlightFunc) (string, State, error) {
	if st.Mode == InCodeBlock {
		return stepCode(ev, st, hl)
	}

	switch ev.Kind {
	case KindCodeBlockStart:
		return "", State{Mode: InCodeBlock, lang: ev.Lang}, nil
	case KindText:
		return Escape(ev.Text), st, nil
	}
	return tagFor(ev), st, nil
}

// stepCode handles events while a fenced code block is open. Only text and
// the closing event are meaningful; anything else is dropped.
func stepCode(ev Event, st State, hl HighlightFunc) (string, State, error) {
	switch ev.Kind {
	case KindText:
		st.code += ev.Text
		return "", st, nil
	case KindCodeBlockEnd:
		highlighted, err := hl(st.code, st.lang)
		if err != nil {
			return "", st, fmt.Errorf("%w (language %q): %w", ErrHighlight, st.lang, err)
		}
		return codeBlockOpen + highlighted + codeBlockClose, State{}, nil
	}
	return "", st, nil
}

// tagFor returns the fixed markup for a Normal-mode event. Unmapped kinds
// render nothing.
func tagFor(ev Event) string {
	switch ev.Kind {
	case KindHeadingStart:
		return "<h" + strconv.Itoa(ev.Level) + ">"
	case KindHeadingEnd:
		return "</h" + strconv.Itoa(ev.Level) + ">"
	case KindParagraphStart:
		return "<p>"
	case KindParagraphEnd:
		return "</p>"
	case KindListStart:
		if ev.Ordered {
			return "<ol>"
		}
		return "<ul>"
	case KindListEnd:
		if ev.Ordered {
			return "</ol>"
		}
		return "</ul>"
	case KindItemStart:
		return "<li>"
	case KindItemEnd:
		return "</li>"
	case KindBlockquoteStart:
		return "<blockquote>"
	case KindBlockquoteEnd:
		return "</blockquote>"
	case KindEmphasisStart:
		return "<em>"
	case KindEmphasisEnd:
		return "</em>"
	case KindStrongStart:
		return "<strong>"
	case KindStrongEnd:
		return "</strong>"
	case KindLinkStart:
		return `<a href="` + ev.Target + `" title="` + Escape(ev.Title) + `">`
	case KindLinkEnd:
		return "</a>"
	case KindImage:
		return `<img src="` + ev.Target + `" alt="` + Escape(imageAlt(ev)) + `" />`
	case KindTableStart:
		return "<table>"
	case KindTableEnd:
		return "</table>"
	case KindTableHeadStart:
		return "<thead>"
	case KindTableHeadEnd:
		return "</thead>"
	case KindTableRowStart:
		return "<tr>"
	case KindTableRowEnd:
		return "</tr>"
	case KindTableCellStart:
		return "<td>"
	case KindTableCellEnd:
		return "</td>"
	case KindCode:
		return `<code class="inline-code">` + Escape(ev.Text) + "</code>"
	case KindHardBreak:
		return "<br />"
	case KindSoftBreak:
		return " "
	case KindRule:
		return "<hr />"
	}
	return ""
}

// imageAlt uses the image title. Untitled images fall back to the bracketed
// text so the alt attribute is not left empty.
func imageAlt(ev Event) string {
	if ev.Title != "" {
		return ev.Title
	}
	return ev.Text
}

// Render runs the state machine over events and wraps the output in tpl.
// On a highlight failure no partial document is returned.
func Render(events []Event, tpl Template, hl HighlightFunc) (string, error) {
	var b strings.Builder
	b.WriteString(tpl.Prefix)

	var st State
	for _, ev := range events {
		frag, next, err := Step(ev, st, hl)
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
		st = next
	}

	b.WriteString(tpl.Suffix)
	return b.String(), nil
}
