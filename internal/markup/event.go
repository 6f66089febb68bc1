package markup

// Kind identifies the structural unit an Event represents.
type Kind uint8

// Event kinds. Start/End pairs are always balanced in a tokenized stream.
const (
	KindText Kind = iota
	KindCode      // inline code span
	KindSoftBreak
	KindHardBreak
	KindRule
	KindImage
	KindHeadingStart
	KindHeadingEnd
	KindParagraphStart
	KindParagraphEnd
	KindListStart
	KindListEnd
	KindItemStart
	KindItemEnd
	KindBlockquoteStart
	KindBlockquoteEnd
	KindEmphasisStart
	KindEmphasisEnd
	KindStrongStart
	KindStrongEnd
	KindLinkStart
	KindLinkEnd
	KindTableStart
	KindTableEnd
	KindTableHeadStart
	KindTableHeadEnd
	KindTableRowStart
	KindTableRowEnd
	KindTableCellStart
	KindTableCellEnd
	KindCodeBlockStart
	KindCodeBlockEnd

	// Emitted for fidelity, not rendered.
	KindStrikethroughStart
	KindStrikethroughEnd
	KindTaskCheckbox
	KindHTML
	KindFootnoteRef
)

var kindNames = [...]string{
	KindText:               "text",
	KindCode:               "code",
	KindSoftBreak:          "soft-break",
	KindHardBreak:          "hard-break",
	KindRule:               "rule",
	KindImage:              "image",
	KindHeadingStart:       "heading-start",
	KindHeadingEnd:         "heading-end",
	KindParagraphStart:     "paragraph-start",
	KindParagraphEnd:       "paragraph-end",
	KindListStart:          "list-start",
	KindListEnd:            "list-end",
	KindItemStart:          "item-start",
	KindItemEnd:            "item-end",
	KindBlockquoteStart:    "blockquote-start",
	KindBlockquoteEnd:      "blockquote-end",
	KindEmphasisStart:      "emphasis-start",
	KindEmphasisEnd:        "emphasis-end",
	KindStrongStart:        "strong-start",
	KindStrongEnd:          "strong-end",
	KindLinkStart:          "link-start",
	KindLinkEnd:            "link-end",
	KindTableStart:         "table-start",
	KindTableEnd:           "table-end",
	KindTableHeadStart:     "table-head-start",
	KindTableHeadEnd:       "table-head-end",
	KindTableRowStart:      "table-row-start",
	KindTableRowEnd:        "table-row-end",
	KindTableCellStart:     "table-cell-start",
	KindTableCellEnd:       "table-cell-end",
	KindCodeBlockStart:     "code-block-start",
	KindCodeBlockEnd:       "code-block-end",
	KindStrikethroughStart: "strikethrough-start",
	KindStrikethroughEnd:   "strikethrough-end",
	KindTaskCheckbox:       "task-checkbox",
	KindHTML:               "html",
	KindFootnoteRef:        "footnote-ref",
}

// String returns the kind name used in test failures and debug output.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one structural unit of a tokenized document.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    Kind
	Text    string // text, code span, image alt, raw HTML
	Level   int    // heading level 1-6
	Ordered bool   // list carries a start number
	Start   int    // first number of an ordered list
	Target  string // link or image destination
	Title   string // link or image title
	Lang    string // fenced code language, "" when absent
	Checked bool   // task checkbox state
}
