package render

import (
	"testing"

	"github.com/roboco-io/layout2md/internal/layout"
)

func textSpan(s string) layout.Span {
	return layout.Span{Type: layout.SpanTypeText, Content: s}
}

func leafBlock(texts ...string) layout.Block {
	var spans []layout.Span
	for _, t := range texts {
		spans = append(spans, textSpan(t))
	}
	return layout.Block{
		Type:  layout.BlockTypeText,
		Lines: []layout.Line{{Spans: spans}},
	}
}

func TestExtractText_SpansAcrossLines(t *testing.T) {
	b := layout.Block{
		Type: layout.BlockTypeText,
		Lines: []layout.Line{
			{Spans: []layout.Span{textSpan("foo"), textSpan("bar")}},
			{Spans: []layout.Span{textSpan("baz")}},
		},
	}

	if got := extractText(&b); got != "foobarbaz" {
		t.Errorf("expected 'foobarbaz', got %q", got)
	}
}

func TestExtractText_ChildOrderPreserved(t *testing.T) {
	a := leafBlock("A")
	bb := leafBlock("B")
	parent := layout.Block{
		Type:   layout.BlockTypeList,
		Lines:  []layout.Line{{Spans: []layout.Span{textSpan("head")}}},
		Blocks: []layout.Block{a, bb},
	}

	got := extractText(&parent)
	want := extractText(&layout.Block{Lines: parent.Lines}) + extractText(&a) + extractText(&bb)
	if got != want {
		t.Errorf("extraction not order-preserving: got %q, want %q", got, want)
	}
	if got != "headAB" {
		t.Errorf("expected 'headAB', got %q", got)
	}
}

func TestExtractText_EmptyBlock(t *testing.T) {
	b := layout.Block{Type: layout.BlockTypeText}
	if got := extractText(&b); got != "" {
		t.Errorf("expected empty extraction, got %q", got)
	}
}

func TestExtractText_NonTextSpansIgnoredContentKept(t *testing.T) {
	// Extraction reads content regardless of span type; image spans have
	// no content and contribute nothing.
	b := layout.Block{
		Type: layout.BlockTypeText,
		Lines: []layout.Line{{Spans: []layout.Span{
			textSpan("x"),
			{Type: layout.SpanTypeImage, ImagePath: "a.png"},
			{Type: layout.SpanTypeInlineEq, Content: "y"},
		}}},
	}
	if got := extractText(&b); got != "xy" {
		t.Errorf("expected 'xy', got %q", got)
	}
}

func TestExtractText_DepthGuard(t *testing.T) {
	deep := leafBlock("deep")
	for i := 0; i < 10; i++ {
		deep = layout.Block{Type: layout.BlockTypeText, Blocks: []layout.Block{deep}}
	}
	if got := extractText(&deep); got != "deep" {
		t.Errorf("shallow nesting should extract, got %q", got)
	}

	tooDeep := leafBlock("deep")
	for i := 0; i < maxDepth+10; i++ {
		tooDeep = layout.Block{Type: layout.BlockTypeText, Blocks: []layout.Block{tooDeep}}
	}
	if got := extractText(&tooDeep); got != "" {
		t.Errorf("over-deep subtree should extract to nothing, got %q", got)
	}
}
