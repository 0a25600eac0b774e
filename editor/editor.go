// Package editor manages the interactive marking and disambiguation of
// transformable tokens in a document being prepared for a notarial
// instrument.
//
// A Buffer models the editable text surface as a flat segment list:
// literal text interleaved with marked spans, each span holding the
// token found by the scanner. The caller (a rendering adapter for
// whatever UI hosts the surface) displays the segments, routes clicks
// to Activate, and applies the user's choice with Select, SelectAll, or
// Cancel. Undo restores a transformed span to its original text, and
// Finalize collapses all markup into plain text, one-way.
//
// The candidate menu follows a two-state machine: Idle and
// CandidatesOpen. Activate opens the menu for one span; Select,
// SelectAll, Cancel, and Undo all return to Idle, so the menu can never
// outlive the interaction that opened it.
//
// The flattening invariant holds at all times: concatenating the
// segment texts yields exactly PlainText, line breaks included. Every
// content mutation invokes the change callback with the new flattened
// text; marking alone does not, because it changes markup, not content.
//
// A Buffer models a single editing surface driven by one UI event loop
// and is not safe for concurrent use.
package editor

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/EmesEmes/matriz-sub000/scan"
)

// SegKind classifies a segment of the editing surface.
type SegKind int

const (
	Literal     SegKind = iota // plain text outside any span
	Marked                     // untransformed span, shown with warning styling
	Transformed                // span rewritten to a chosen candidate
)

// segKindNames maps SegKind values to their string names.
var segKindNames = [...]string{
	Literal:     "Literal",
	Marked:      "Marked",
	Transformed: "Transformed",
}

// String returns the name of the segment kind.
func (k SegKind) String() string {
	if int(k) >= 0 && int(k) < len(segKindNames) {
		return segKindNames[k]
	}
	return fmt.Sprintf("SegKind(%d)", int(k))
}

// State reports whether a candidate menu is open.
type State int

const (
	Idle           State = iota // no menu open
	CandidatesOpen              // a span's candidate menu is showing
)

// Segment is one piece of the editing surface. Literal segments carry
// only Text. Span segments additionally carry a positive ID and the
// token the scanner found; Token.Text is the original raw text and the
// undo target. Token offsets refer to the text at marking time.
type Segment struct {
	ID    int
	Kind  SegKind
	Text  string
	Token scan.Match
}

// Errors reported by Buffer operations.
var (
	ErrUnknownSpan    = errors.New("editor: unknown span")
	ErrNotTransformed = errors.New("editor: span not transformed")
	ErrNoMenu         = errors.New("editor: no candidate menu open")
)

// Buffer is the editable surface: a segment list plus the candidate
// menu state. The zero value is not usable; construct with New.
type Buffer struct {
	segments []Segment
	nextID   int
	onChange func(string)
	openID   int // span whose menu is open; 0 when idle
	openOpts []scan.Candidate
}

// New returns a Buffer holding the initial text as one literal segment.
// onChange, when non-nil, receives the flattened plain text after every
// content mutation. It may be nil.
func New(initial string, onChange func(string)) *Buffer {
	b := &Buffer{nextID: 1, onChange: onChange}
	if initial != "" {
		b.segments = []Segment{{Kind: Literal, Text: initial}}
	}
	return b
}

// SetText replaces the whole content with s as unmarked literal text,
// discarding any spans and closing an open menu. Models the caller
// replacing the surface content wholesale.
func (b *Buffer) SetText(s string) {
	b.closeMenu()
	if s == "" {
		b.segments = nil
	} else {
		b.segments = []Segment{{Kind: Literal, Text: s}}
	}
	b.notify()
}

// PlainText returns the flattened document text: the concatenation of
// all segment texts, line breaks preserved.
func (b *Buffer) PlainText() string {
	var sb strings.Builder
	for i := range b.segments {
		sb.WriteString(b.segments[i].Text)
	}
	return sb.String()
}

// Segments returns a copy of the current segment list for rendering.
func (b *Buffer) Segments() []Segment {
	return slices.Clone(b.segments)
}

// State returns Idle or CandidatesOpen.
func (b *Buffer) State() State {
	if b.openID != 0 {
		return CandidatesOpen
	}
	return Idle
}

// MarkNumbers collapses any existing markup back to plain text, then
// re-scans and splits the text into literal and marked segments.
// Idempotent: marking an already-marked buffer is the same as marking
// its plain text. Returns the number of marked spans. The flattened
// text is unchanged, so no change notification fires.
func (b *Buffer) MarkNumbers() int {
	b.closeMenu()
	text := b.PlainText()
	if text == "" {
		b.segments = nil
		return 0
	}

	matches := scan.Scan(text)
	segs := make([]Segment, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			segs = append(segs, Segment{Kind: Literal, Text: text[pos:m.Start]})
		}
		segs = append(segs, Segment{
			ID:    b.nextID,
			Kind:  Marked,
			Text:  m.Text,
			Token: m,
		})
		b.nextID++
		pos = m.End
	}
	if pos < len(text) {
		segs = append(segs, Segment{Kind: Literal, Text: text[pos:]})
	}

	b.segments = segs
	return len(matches)
}

// Activate opens the candidate menu for the span with the given id and
// returns its candidates. An empty list means no transformation is
// available for this token; that is a valid menu state, not an error.
// Returns ErrUnknownSpan when id does not name a marked or transformed
// span.
func (b *Buffer) Activate(id int) ([]scan.Candidate, error) {
	seg := b.span(id)
	if seg == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownSpan, id)
	}
	b.openID = id
	b.openOpts = scan.Options(seg.Token)
	return slices.Clone(b.openOpts), nil
}

// Candidates returns the candidates of the open menu, or nil when idle.
func (b *Buffer) Candidates() []scan.Candidate {
	return slices.Clone(b.openOpts)
}

// Cancel closes the candidate menu without mutating the document.
// The "click outside the menu" path. Safe to call when already idle.
func (b *Buffer) Cancel() {
	b.closeMenu()
}

// Select applies the chosen candidate to the span whose menu is open,
// transitions it to Transformed, closes the menu, and notifies.
// Returns ErrNoMenu when no menu is open.
func (b *Buffer) Select(c scan.Candidate) error {
	if b.openID == 0 {
		return ErrNoMenu
	}
	seg := b.span(b.openID)
	if seg == nil {
		b.closeMenu()
		return fmt.Errorf("%w: id %d", ErrUnknownSpan, b.openID)
	}
	seg.Text = c.Value
	seg.Kind = Transformed
	b.closeMenu()
	b.notify()
	return nil
}

// SelectAll applies the chosen candidate to every span whose original
// raw text equals that of the span whose menu is open — the confirmed
// bulk-apply path for candidates flagged ApplyToAll. Returns the number
// of spans rewritten. Returns ErrNoMenu when no menu is open.
func (b *Buffer) SelectAll(c scan.Candidate) (int, error) {
	if b.openID == 0 {
		return 0, ErrNoMenu
	}
	seg := b.span(b.openID)
	if seg == nil {
		b.closeMenu()
		return 0, fmt.Errorf("%w: id %d", ErrUnknownSpan, b.openID)
	}

	original := seg.Token.Text
	count := 0
	for i := range b.segments {
		s := &b.segments[i]
		if s.Kind == Literal || s.Token.Text != original {
			continue
		}
		s.Text = c.Value
		s.Kind = Transformed
		count++
	}

	b.closeMenu()
	b.notify()
	return count, nil
}

// Undo restores a transformed span to its original raw text and
// transitions it back to Marked. Closes an open menu first. Returns
// ErrUnknownSpan for an unknown id and ErrNotTransformed when the span
// has not been transformed.
func (b *Buffer) Undo(id int) error {
	seg := b.span(id)
	if seg == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownSpan, id)
	}
	if seg.Kind != Transformed {
		return fmt.Errorf("%w: id %d", ErrNotTransformed, id)
	}
	b.closeMenu()
	seg.Text = seg.Token.Text
	seg.Kind = Marked
	b.notify()
	return nil
}

// Finalize collapses all markup — marked and transformed spans alike —
// into ordinary text, notifies with the final flattened value, and
// returns it. One-way: the result can only re-enter the marking
// workflow through a fresh MarkNumbers scan.
func (b *Buffer) Finalize() string {
	b.closeMenu()
	text := b.PlainText()
	if text == "" {
		b.segments = nil
	} else {
		b.segments = []Segment{{Kind: Literal, Text: text}}
	}
	b.notify()
	return text
}

// span returns the addressable span segment with the given id, or nil.
func (b *Buffer) span(id int) *Segment {
	if id == 0 {
		return nil
	}
	for i := range b.segments {
		if b.segments[i].ID == id && b.segments[i].Kind != Literal {
			return &b.segments[i]
		}
	}
	return nil
}

// closeMenu drops the menu state unconditionally.
func (b *Buffer) closeMenu() {
	b.openID = 0
	b.openOpts = nil
}

// notify reports the flattened text to the change callback, if any.
func (b *Buffer) notify() {
	if b.onChange != nil {
		b.onChange(b.PlainText())
	}
}
