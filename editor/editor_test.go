// Tests for the interactive marking and disambiguation surface.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/EmesEmes/matriz-sub000/scan"
)

// spanByOriginal returns the first span whose original token text is orig.
func spanByOriginal(t *testing.T, b *Buffer, orig string) Segment {
	t.Helper()
	for _, s := range b.Segments() {
		if s.Kind != Literal && s.Token.Text == orig {
			return s
		}
	}
	t.Fatalf("no span with original %q in %v", orig, b.Segments())
	return Segment{}
}

// candidateByValue returns the candidate with the given value.
func candidateByValue(t *testing.T, cands []scan.Candidate, value string) scan.Candidate {
	t.Helper()
	for _, c := range cands {
		if c.Value == value {
			return c
		}
	}
	t.Fatalf("no candidate with value %q in %v", value, cands)
	return scan.Candidate{}
}

func TestMarkNumbersNoPatterns(t *testing.T) {
	t.Parallel()

	const text = "texto sin cifras ni abreviaturas"
	b := New(text, nil)

	if n := b.MarkNumbers(); n != 0 {
		t.Errorf("MarkNumbers() = %d, want 0", n)
	}
	if got := b.PlainText(); got != text {
		t.Errorf("PlainText() = %q, want unchanged %q", got, text)
	}
	segs := b.Segments()
	if len(segs) != 1 || segs[0].Kind != Literal {
		t.Errorf("Segments() = %v, want single literal", segs)
	}
}

func TestMarkNumbersScenario(t *testing.T) {
	t.Parallel()

	b := New("av. 12 de octubre n24-660, +2.60, 18,82%, 20m, ing. Juan, ci. 1234567890", nil)
	if n := b.MarkNumbers(); n != 9 {
		t.Errorf("MarkNumbers() = %d, want 9", n)
	}
}

// TestFlattenInvariant verifies that the segment texts always
// concatenate to the plain text, line breaks preserved.
func TestFlattenInvariant(t *testing.T) {
	t.Parallel()

	const text = "protocolo 48500\nvalor 18,82%\nfirma"
	b := New(text, nil)
	b.MarkNumbers()

	var sb strings.Builder
	for _, s := range b.Segments() {
		sb.WriteString(s.Text)
	}
	if sb.String() != text {
		t.Errorf("segment concatenation = %q, want %q", sb.String(), text)
	}
	if got := b.PlainText(); got != text {
		t.Errorf("PlainText() = %q, want %q", got, text)
	}
}

func TestActivateSelect(t *testing.T) {
	t.Parallel()

	var changes []string
	b := New("el valor es 100 exacto", func(s string) { changes = append(changes, s) })
	b.MarkNumbers()

	span := spanByOriginal(t, b, "100")
	cands, err := b.Activate(span.ID)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if b.State() != CandidatesOpen {
		t.Errorf("State() = %v, want CandidatesOpen", b.State())
	}

	if err := b.Select(candidateByValue(t, cands, "cien")); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if b.State() != Idle {
		t.Errorf("State() after Select = %v, want Idle", b.State())
	}
	if got := b.PlainText(); got != "el valor es cien exacto" {
		t.Errorf("PlainText() = %q", got)
	}

	span = spanByOriginal(t, b, "100")
	if span.Kind != Transformed {
		t.Errorf("span kind = %v, want Transformed", span.Kind)
	}
	if len(changes) != 1 || changes[0] != "el valor es cien exacto" {
		t.Errorf("onChange calls = %v, want one with transformed text", changes)
	}
}

func TestActivateUnknownSpan(t *testing.T) {
	t.Parallel()

	b := New("valor 100", nil)
	b.MarkNumbers()

	if _, err := b.Activate(999); !errors.Is(err, ErrUnknownSpan) {
		t.Errorf("Activate(999) error = %v, want ErrUnknownSpan", err)
	}
}

func TestSelectWithoutMenu(t *testing.T) {
	t.Parallel()

	b := New("valor 100", nil)
	b.MarkNumbers()

	if err := b.Select(scan.Candidate{Value: "cien"}); !errors.Is(err, ErrNoMenu) {
		t.Errorf("Select error = %v, want ErrNoMenu", err)
	}
	if _, err := b.SelectAll(scan.Candidate{Value: "cien"}); !errors.Is(err, ErrNoMenu) {
		t.Errorf("SelectAll error = %v, want ErrNoMenu", err)
	}
}

// TestUndoInverse verifies that transform-then-undo restores the span's
// pre-transformation text and state.
func TestUndoInverse(t *testing.T) {
	t.Parallel()

	b := New("saldo +2.60 acreditado", nil)
	b.MarkNumbers()

	span := spanByOriginal(t, b, "+2.60")
	cands, err := b.Activate(span.ID)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.Select(candidateByValue(t, cands, "más dos punto sesenta")); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := b.PlainText(); got != "saldo más dos punto sesenta acreditado" {
		t.Fatalf("PlainText() after select = %q", got)
	}

	if err := b.Undo(span.ID); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := b.PlainText(); got != "saldo +2.60 acreditado" {
		t.Errorf("PlainText() after undo = %q, want original", got)
	}
	if s := spanByOriginal(t, b, "+2.60"); s.Kind != Marked {
		t.Errorf("span kind after undo = %v, want Marked", s.Kind)
	}

	// Undo is only available on a transformed span.
	if err := b.Undo(span.ID); !errors.Is(err, ErrNotTransformed) {
		t.Errorf("second Undo error = %v, want ErrNotTransformed", err)
	}
}

// TestBulkApply verifies that confirming bulk application rewrites every
// span with the same original text, and declining rewrites only the
// activated one.
func TestBulkApply(t *testing.T) {
	t.Parallel()

	t.Run("confirmed", func(t *testing.T) {
		t.Parallel()
		b := New("100 y 100 y 100", nil)
		b.MarkNumbers()

		span := spanByOriginal(t, b, "100")
		cands, err := b.Activate(span.ID)
		if err != nil {
			t.Fatalf("Activate: %v", err)
		}
		n, err := b.SelectAll(candidateByValue(t, cands, "cien"))
		if err != nil {
			t.Fatalf("SelectAll: %v", err)
		}
		if n != 3 {
			t.Errorf("SelectAll rewrote %d spans, want 3", n)
		}
		if got := b.PlainText(); got != "cien y cien y cien" {
			t.Errorf("PlainText() = %q", got)
		}
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()
		b := New("100 y 100 y 100", nil)
		b.MarkNumbers()

		span := spanByOriginal(t, b, "100")
		cands, err := b.Activate(span.ID)
		if err != nil {
			t.Fatalf("Activate: %v", err)
		}
		if err := b.Select(candidateByValue(t, cands, "cien")); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if got := b.PlainText(); got != "cien y 100 y 100" {
			t.Errorf("PlainText() = %q", got)
		}
	})

	t.Run("only identical originals", func(t *testing.T) {
		t.Parallel()
		b := New("100 y 200", nil)
		b.MarkNumbers()

		span := spanByOriginal(t, b, "100")
		if _, err := b.Activate(span.ID); err != nil {
			t.Fatalf("Activate: %v", err)
		}
		n, err := b.SelectAll(scan.Candidate{Value: "cien"})
		if err != nil {
			t.Fatalf("SelectAll: %v", err)
		}
		if n != 1 {
			t.Errorf("SelectAll rewrote %d spans, want 1", n)
		}
		if got := b.PlainText(); got != "cien y 200" {
			t.Errorf("PlainText() = %q", got)
		}
	})
}

// TestRemarkIdempotent verifies that marking again after edits collapses
// the old markup and re-scans cleanly.
func TestRemarkIdempotent(t *testing.T) {
	t.Parallel()

	b := New("100 y 100 y 100", nil)
	b.MarkNumbers()

	span := spanByOriginal(t, b, "100")
	cands, err := b.Activate(span.ID)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.Select(candidateByValue(t, cands, "cien")); err != nil {
		t.Fatalf("Select: %v", err)
	}

	// Re-marking sees the transformed word as plain text and only marks
	// the untouched numbers.
	if n := b.MarkNumbers(); n != 2 {
		t.Errorf("re-MarkNumbers() = %d, want 2", n)
	}
	if got := b.PlainText(); got != "cien y 100 y 100" {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestFinalize(t *testing.T) {
	t.Parallel()

	var changes []string
	b := New("valor 100 y saldo 200", func(s string) { changes = append(changes, s) })
	b.MarkNumbers()

	span := spanByOriginal(t, b, "100")
	cands, err := b.Activate(span.ID)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := b.Select(candidateByValue(t, cands, "cien")); err != nil {
		t.Fatalf("Select: %v", err)
	}

	got := b.Finalize()
	want := "valor cien y saldo 200"
	if got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}

	segs := b.Segments()
	if len(segs) != 1 || segs[0].Kind != Literal {
		t.Errorf("Segments() after finalize = %v, want single literal", segs)
	}

	// Spans are gone; the old id no longer addresses anything.
	if err := b.Undo(span.ID); !errors.Is(err, ErrUnknownSpan) {
		t.Errorf("Undo after finalize error = %v, want ErrUnknownSpan", err)
	}

	if len(changes) != 2 || changes[len(changes)-1] != want {
		t.Errorf("onChange calls = %v, want select + finalize notifications", changes)
	}
}

func TestCancelNoMutation(t *testing.T) {
	t.Parallel()

	calls := 0
	b := New("valor 100", func(string) { calls++ })
	b.MarkNumbers()

	span := spanByOriginal(t, b, "100")
	if _, err := b.Activate(span.ID); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	b.Cancel()

	if b.State() != Idle {
		t.Errorf("State() after Cancel = %v, want Idle", b.State())
	}
	if got := b.PlainText(); got != "valor 100" {
		t.Errorf("PlainText() = %q, want unchanged", got)
	}
	if calls != 0 {
		t.Errorf("onChange fired %d times on Cancel, want 0", calls)
	}
}

func TestSetText(t *testing.T) {
	t.Parallel()

	var last string
	b := New("viejo 100", func(s string) { last = s })
	b.MarkNumbers()

	b.SetText("nuevo 200")
	if got := b.PlainText(); got != "nuevo 200" {
		t.Errorf("PlainText() = %q", got)
	}
	if last != "nuevo 200" {
		t.Errorf("onChange got %q, want replacement text", last)
	}
	if n := b.MarkNumbers(); n != 1 {
		t.Errorf("MarkNumbers() after SetText = %d, want 1", n)
	}
}

// TestActivateEmptyCandidates verifies that a span with no generable
// transformation yields an empty menu, not an error.
func TestActivateEmptyCandidates(t *testing.T) {
	t.Parallel()

	b := New("x", nil)
	b.MarkNumbers()
	// Force a span the generator cannot serve.
	b.segments = []Segment{{ID: 1, Kind: Marked, Text: "zz.", Token: scan.Match{Text: "zz.", Kind: scan.Abbreviation}}}

	cands, err := b.Activate(1)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if len(cands) != 0 {
		t.Errorf("candidates = %v, want empty list", cands)
	}
	if b.State() != CandidatesOpen {
		t.Errorf("State() = %v, want CandidatesOpen (empty menu is still a menu)", b.State())
	}
}

func ExampleBuffer() {
	b := New("el lote mide 20m", nil)
	b.MarkNumbers()

	for _, s := range b.Segments() {
		if s.Kind == Marked {
			cands, _ := b.Activate(s.ID)
			b.Select(cands[0])
		}
	}
	fmt.Println(b.Finalize())
	// Output: el lote mide veinte metros (20m)
}
