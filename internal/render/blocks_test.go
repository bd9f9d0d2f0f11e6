package render

import (
	"strings"
	"testing"

	"github.com/roboco-io/layout2md/internal/layout"
)

// fakeEmbedder serves canned assets without touching the filesystem.
type fakeEmbedder struct {
	assets map[string]Resource
}

func (f fakeEmbedder) Embed(path string) (Resource, bool) {
	r, ok := f.assets[path]
	return r, ok
}

func newTestConverter(assets map[string]Resource) *Converter {
	return New(fakeEmbedder{assets: assets}, Options{})
}

func pngResource() Resource {
	return Resource{DataURI: "data:image/png;base64,AAAA", MIME: "image/png"}
}

func TestRenderTitle(t *testing.T) {
	c := newTestConverter(nil)

	b := leafBlock("Intro")
	b.Type = layout.BlockTypeTitle

	frag, entry := c.renderBlock(&b, 0)
	want := "<a id=\"toc-0-intro\"></a>\n## Intro\n\n"
	if frag != want {
		t.Errorf("expected %q, got %q", want, frag)
	}
	if entry == nil {
		t.Fatal("expected a navigation entry")
	}
	if entry.Title != "Intro" || entry.Page != 1 || entry.AnchorID != "toc-0-intro" || entry.Level != 1 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestRenderTitle_LevelByLength(t *testing.T) {
	c := newTestConverter(nil)

	tests := []struct {
		name    string
		title   string
		heading string
		level   int
	}{
		{"20 runes stays level 1", strings.Repeat("a", 20), "## ", 1},
		{"21 runes drops to level 2", strings.Repeat("a", 21), "### ", 2},
		{"cjk counted as runes", strings.Repeat("标", 21), "### ", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := leafBlock(tc.title)
			b.Type = layout.BlockTypeTitle
			frag, entry := c.renderTitle(&b, 0)
			if !strings.Contains(frag, "\n"+strings.TrimSpace(tc.heading)+" ") {
				t.Errorf("expected heading marker %q in %q", tc.heading, frag)
			}
			if entry.Level != tc.level {
				t.Errorf("expected level %d, got %d", tc.level, entry.Level)
			}
		})
	}
}

func TestRenderTitle_Empty(t *testing.T) {
	c := newTestConverter(nil)
	b := layout.Block{Type: layout.BlockTypeTitle}
	frag, entry := c.renderTitle(&b, 0)
	if frag != "" || entry != nil {
		t.Errorf("empty title should render nothing, got %q, %+v", frag, entry)
	}
}

func TestRenderText(t *testing.T) {
	c := newTestConverter(nil)

	b := leafBlock("Hello world")
	if got := c.renderText(&b); got != "Hello world\n\n" {
		t.Errorf("expected paragraph with blank line, got %q", got)
	}
}

func TestRenderText_EscapesMarkup(t *testing.T) {
	c := newTestConverter(nil)

	b := leafBlock("a<b & c>d")
	if got := c.renderText(&b); got != "a&lt;b &amp; c&gt;d\n\n" {
		t.Errorf("unexpected escape result: %q", got)
	}
}

func TestRenderText_InlineEquation(t *testing.T) {
	c := newTestConverter(nil)

	b := layout.Block{
		Type: layout.BlockTypeText,
		Lines: []layout.Line{{Spans: []layout.Span{
			textSpan("mass-energy:"),
			{Type: layout.SpanTypeInlineEq, Content: "E=mc^2"},
		}}},
	}
	got := c.renderText(&b)
	if got != "mass-energy: $E=mc^2$\n\n" {
		t.Errorf("unexpected inline equation rendering: %q", got)
	}
}

func TestRenderText_MissingImageSpanOmitted(t *testing.T) {
	c := newTestConverter(nil)

	b := layout.Block{
		Type: layout.BlockTypeText,
		Lines: []layout.Line{{Spans: []layout.Span{
			textSpan("Hello "),
			{Type: layout.SpanTypeImage, ImagePath: "missing.png"},
			textSpan("world"),
		}}},
	}
	if got := c.renderText(&b); got != "Hello world\n\n" {
		t.Errorf("missing asset should be silently omitted, got %q", got)
	}
}

func TestRenderText_EmbeddedImageSpan(t *testing.T) {
	c := newTestConverter(map[string]Resource{"fig.png": pngResource()})

	b := layout.Block{
		Type: layout.BlockTypeText,
		Lines: []layout.Line{{Spans: []layout.Span{
			{Type: layout.SpanTypeImage, ImagePath: "fig.png"},
		}}},
	}
	got := c.renderText(&b)
	if !strings.Contains(got, `src="data:image/png;base64,AAAA"`) {
		t.Errorf("expected data URI in output, got %q", got)
	}
}

func TestRenderSpans_FormulaFlag(t *testing.T) {
	c := newTestConverter(nil)

	_, has := c.renderSpans([]layout.Span{textSpan("x")})
	if has {
		t.Error("plain text should not set the formula flag")
	}
	_, has = c.renderSpans([]layout.Span{{Type: layout.SpanTypeInlineEq, Content: "x"}})
	if !has {
		t.Error("inline equation should set the formula flag")
	}
	_, has = c.renderSpans([]layout.Span{{Type: layout.SpanTypeInterlineEq, Content: "x"}})
	if !has {
		t.Error("display equation should set the formula flag")
	}
}

func TestRenderList(t *testing.T) {
	c := newTestConverter(nil)

	b := layout.Block{
		Type: layout.BlockTypeList,
		Blocks: []layout.Block{
			leafBlock("first"),
			leafBlock("   "), // whitespace only, skipped
			leafBlock("second"),
		},
	}
	if got := c.renderList(&b); got != "- first\n- second\n\n" {
		t.Errorf("unexpected list rendering: %q", got)
	}
}

func TestRenderList_AllEmpty(t *testing.T) {
	c := newTestConverter(nil)
	b := layout.Block{
		Type:   layout.BlockTypeList,
		Blocks: []layout.Block{{Type: layout.BlockTypeText}},
	}
	if got := c.renderList(&b); got != "" {
		t.Errorf("list with no usable items should render nothing, got %q", got)
	}
}

func imageBlock(bodyType layout.BlockType, spanType layout.SpanType, path string) layout.Block {
	blockType := layout.BlockTypeImage
	if bodyType == layout.BlockTypeTableBody {
		blockType = layout.BlockTypeTable
	}
	return layout.Block{
		Type: blockType,
		Blocks: []layout.Block{{
			Type: bodyType,
			Lines: []layout.Line{{Spans: []layout.Span{
				{Type: spanType, ImagePath: path},
			}}},
		}},
	}
}

func TestRenderImage(t *testing.T) {
	c := newTestConverter(map[string]Resource{"fig.png": pngResource()})

	b := imageBlock(layout.BlockTypeImageBody, layout.SpanTypeImage, "fig.png")
	caption := leafBlock("Figure <1>")
	caption.Type = layout.BlockTypeImageCaption
	b.Blocks = append(b.Blocks, caption)

	got := c.renderImage(&b)
	if !strings.Contains(got, "<figure") {
		t.Errorf("expected figure wrapper, got %q", got)
	}
	if !strings.Contains(got, `alt="figure"`) {
		t.Errorf("expected figure image, got %q", got)
	}
	if !strings.Contains(got, "Figure &lt;1&gt;") {
		t.Errorf("expected escaped caption, got %q", got)
	}
}

func TestRenderImage_MissingAsset(t *testing.T) {
	c := newTestConverter(nil)
	b := imageBlock(layout.BlockTypeImageBody, layout.SpanTypeImage, "missing.png")
	if got := c.renderImage(&b); got != "" {
		t.Errorf("unembeddable image should render nothing, got %q", got)
	}
}

func TestRenderImage_CaptionAloneNeverRenders(t *testing.T) {
	c := newTestConverter(nil)
	caption := leafBlock("orphan caption")
	caption.Type = layout.BlockTypeImageCaption
	b := layout.Block{Type: layout.BlockTypeImage, Blocks: []layout.Block{caption}}
	if got := c.renderImage(&b); got != "" {
		t.Errorf("caption without image should render nothing, got %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	c := newTestConverter(map[string]Resource{"tab.jpg": {DataURI: "data:image/jpeg;base64,BBBB", MIME: "image/jpeg"}})

	b := imageBlock(layout.BlockTypeTableBody, layout.SpanTypeTable, "tab.jpg")
	caption := leafBlock("Table 1")
	caption.Type = layout.BlockTypeTableCaption
	footnote := leafBlock("source: survey")
	footnote.Type = layout.BlockTypeTableFootnote
	b.Blocks = append(b.Blocks, caption, footnote)

	got := c.renderTable(&b)
	if !strings.Contains(got, `alt="table"`) {
		t.Errorf("expected table image, got %q", got)
	}
	if !strings.Contains(got, "<caption") || !strings.Contains(got, "Table 1") {
		t.Errorf("expected caption, got %q", got)
	}
	if !strings.Contains(got, "source: survey") {
		t.Errorf("expected footnote, got %q", got)
	}
}

func TestRenderTable_NoBody(t *testing.T) {
	c := newTestConverter(nil)
	caption := leafBlock("Table 1")
	caption.Type = layout.BlockTypeTableCaption
	b := layout.Block{Type: layout.BlockTypeTable, Blocks: []layout.Block{caption}}
	if got := c.renderTable(&b); got != "" {
		t.Errorf("table without body image should render nothing, got %q", got)
	}
}

func TestRenderEquation(t *testing.T) {
	t.Run("image preferred", func(t *testing.T) {
		c := newTestConverter(map[string]Resource{"eq.png": pngResource()})
		b := layout.Block{
			Type: layout.BlockTypeInterlineEq,
			Lines: []layout.Line{{Spans: []layout.Span{
				{Type: layout.SpanTypeInterlineEq, Content: "x^2", ImagePath: "eq.png"},
			}}},
		}
		got := c.renderEquation(&b)
		if !strings.Contains(got, `alt="equation"`) {
			t.Errorf("expected embedded equation image, got %q", got)
		}
	})

	t.Run("source fallback", func(t *testing.T) {
		c := newTestConverter(nil)
		b := layout.Block{
			Type: layout.BlockTypeInterlineEq,
			Lines: []layout.Line{{Spans: []layout.Span{
				{Type: layout.SpanTypeInterlineEq, Content: "x^2", ImagePath: "missing.png"},
			}}},
		}
		if got := c.renderEquation(&b); got != "\n$$\nx^2\n$$\n\n" {
			t.Errorf("expected display math block, got %q", got)
		}
	})

	t.Run("first matching span only", func(t *testing.T) {
		c := newTestConverter(nil)
		b := layout.Block{
			Type: layout.BlockTypeInterlineEq,
			Lines: []layout.Line{{Spans: []layout.Span{
				{Type: layout.SpanTypeInterlineEq},
				{Type: layout.SpanTypeInterlineEq, Content: "ignored"},
			}}},
		}
		if got := c.renderEquation(&b); got != "" {
			t.Errorf("only the first matching span counts, got %q", got)
		}
	})

	t.Run("no matching span", func(t *testing.T) {
		c := newTestConverter(nil)
		b := layout.Block{Type: layout.BlockTypeInterlineEq}
		if got := c.renderEquation(&b); got != "" {
			t.Errorf("expected nothing, got %q", got)
		}
	})
}

func TestRenderIndex(t *testing.T) {
	c := newTestConverter(nil)
	b := leafBlock("1. Introduction ... 3")
	b.Type = layout.BlockTypeIndex
	if got := c.renderIndex(&b); got != "1. Introduction ... 3\n\n" {
		t.Errorf("unexpected index rendering: %q", got)
	}
}

func TestRenderBlock_UnknownTypeFallsBackToText(t *testing.T) {
	c := newTestConverter(nil)
	b := leafBlock("mystery content")
	b.Type = layout.BlockType("not_a_known_type")
	frag, entry := c.renderBlock(&b, 0)
	if frag != "mystery content\n\n" {
		t.Errorf("unknown type should render as text, got %q", frag)
	}
	if entry != nil {
		t.Errorf("unknown type should yield no navigation entry, got %+v", entry)
	}
}

func TestRenderBlock_EmptyBlocksRenderNothing(t *testing.T) {
	c := newTestConverter(nil)
	types := []layout.BlockType{
		layout.BlockTypeTitle,
		layout.BlockTypeText,
		layout.BlockTypeList,
		layout.BlockTypeImage,
		layout.BlockTypeTable,
		layout.BlockTypeInterlineEq,
		layout.BlockTypeIndex,
		layout.BlockType("unknown"),
	}
	for _, bt := range types {
		b := layout.Block{Type: bt}
		frag, entry := c.renderBlock(&b, 0)
		if frag != "" {
			t.Errorf("%s: empty block should render nothing, got %q", bt, frag)
		}
		if entry != nil {
			t.Errorf("%s: empty block should yield no entry", bt)
		}
	}
}
