// Package layout defines the structured layout description consumed by the
// renderer: an ordered list of pages, each holding typed content blocks and
// discarded furniture blocks.
package layout

// BlockType is the type tag of a content or furniture block.
type BlockType string

const (
	BlockTypeTitle            BlockType = "title"
	BlockTypeText             BlockType = "text"
	BlockTypeList             BlockType = "list"
	BlockTypeImage            BlockType = "image"
	BlockTypeTable            BlockType = "table"
	BlockTypeInterlineEq      BlockType = "interline_equation"
	BlockTypeIndex            BlockType = "index"
	BlockTypeImageBody        BlockType = "image_body"
	BlockTypeImageCaption     BlockType = "image_caption"
	BlockTypeImageFootnote    BlockType = "image_footnote"
	BlockTypeTableBody        BlockType = "table_body"
	BlockTypeTableCaption     BlockType = "table_caption"
	BlockTypeTableFootnote    BlockType = "table_footnote"
	BlockTypeHeader           BlockType = "header"
	BlockTypeFooter           BlockType = "footer"
	BlockTypePageNumber       BlockType = "page_number"
	BlockTypePageFootnote     BlockType = "page_footnote"
	BlockTypeAsideText        BlockType = "aside_text"
)

// SpanType is the type tag of an inline span.
type SpanType string

const (
	SpanTypeText         SpanType = "text"
	SpanTypeInlineEq     SpanType = "inline_equation"
	SpanTypeInterlineEq  SpanType = "interline_equation"
	SpanTypeImage        SpanType = "image"
	SpanTypeTable        SpanType = "table"
)

// Span is the smallest inline content unit. Content is set for text and
// formula spans, ImagePath for image and table spans; the other fields of a
// span are ignored by the renderer.
type Span struct {
	BBox      []float64 `json:"bbox,omitempty"`
	Type      SpanType  `json:"type"`
	Content   string    `json:"content,omitempty"`
	ImagePath string    `json:"image_path,omitempty"`
}

// Line groups an ordered sequence of spans.
type Line struct {
	BBox  []float64 `json:"bbox,omitempty"`
	Spans []Span    `json:"spans"`
}

// Block is a node in the content tree. Leaf blocks carry Lines, composite
// blocks (lists, image/table body-caption-footnote groups) carry Blocks.
// Either or both may be empty; an empty block renders to nothing.
type Block struct {
	BBox    []float64 `json:"bbox,omitempty"`
	Type    BlockType `json:"type"`
	Angle   *float64  `json:"angle,omitempty"`
	Lines   []Line    `json:"lines,omitempty"`
	Blocks  []Block   `json:"blocks,omitempty"`
	Index   *int      `json:"index,omitempty"`
	SubType string    `json:"sub_type,omitempty"`
}

// Page holds one page of the description. PageIdx is zero-based and assumed
// pre-sorted by the producer; pages are processed in slice order.
type Page struct {
	ParaBlocks      []Block   `json:"para_blocks"`
	DiscardedBlocks []Block   `json:"discarded_blocks"`
	PageSize        []float64 `json:"page_size,omitempty"`
	PageIdx         int       `json:"page_idx"`
}

// Document is the top-level layout description.
type Document struct {
	Pages       []Page `json:"pdf_info"`
	Backend     string `json:"_backend,omitempty"`
	VersionName string `json:"_version_name,omitempty"`
}

// IsFurniture reports whether the block type belongs to page furniture
// (content excluded from the main reading flow).
func (t BlockType) IsFurniture() bool {
	switch t {
	case BlockTypeHeader, BlockTypeFooter, BlockTypePageNumber,
		BlockTypePageFootnote, BlockTypeAsideText:
		return true
	}
	return false
}

// IsEmpty returns true if the block carries neither lines nor child blocks.
func (b *Block) IsEmpty() bool {
	return len(b.Lines) == 0 && len(b.Blocks) == 0
}
