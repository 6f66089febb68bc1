// Package markup turns markdown into the styled HTML document that the page
// renderer prints.
//
// The work is split in two passes:
//   - Tokenize parses the source with goldmark and flattens the AST into an
//     ordered slice of Events (block and inline start/end markers, text,
//     breaks, rules, fenced code start/end).
//   - Render folds Step over those events. Step is a pure transition function
//     over an explicit two-state machine (Normal, InCodeBlock): fenced code
//     text is accumulated verbatim and handed to the highlight callback when
//     the block closes; every other literal is escaped with Escape.
//
// The page template wraps the result. It is opaque to this package apart from
// the {{content}} marker that separates its prefix from its suffix.
package markup
