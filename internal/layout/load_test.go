package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLayout = `{
  "_backend": "pipeline",
  "_version_name": "2.1.0",
  "pdf_info": [
    {
      "page_idx": 0,
      "page_size": [612.0, 792.0],
      "para_blocks": [
        {
          "type": "title",
          "bbox": [72, 70, 540, 96],
          "lines": [
            {
              "bbox": [72, 70, 540, 96],
              "spans": [
                {"type": "text", "bbox": [72, 70, 540, 96], "content": "Overview"}
              ]
            }
          ]
        },
        {
          "type": "image",
          "bbox": [72, 120, 540, 320],
          "blocks": [
            {
              "type": "image_body",
              "bbox": [72, 120, 540, 300],
              "lines": [
                {
                  "bbox": [72, 120, 540, 300],
                  "spans": [
                    {"type": "image", "bbox": [72, 120, 540, 300], "image_path": "images/fig1.png"}
                  ]
                }
              ]
            }
          ]
        }
      ],
      "discarded_blocks": [
        {
          "type": "page_number",
          "bbox": [300, 760, 312, 772],
          "lines": [
            {
              "bbox": [300, 760, 312, 772],
              "spans": [{"type": "text", "bbox": [300, 760, 312, 772], "content": "1"}]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Backend != "pipeline" {
		t.Errorf("expected backend pipeline, got %q", doc.Backend)
	}
	if doc.VersionName != "2.1.0" {
		t.Errorf("expected version 2.1.0, got %q", doc.VersionName)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}

	page := doc.Pages[0]
	if page.PageIdx != 0 {
		t.Errorf("expected page_idx 0, got %d", page.PageIdx)
	}
	if len(page.ParaBlocks) != 2 {
		t.Fatalf("expected 2 content blocks, got %d", len(page.ParaBlocks))
	}
	if page.ParaBlocks[0].Type != BlockTypeTitle {
		t.Errorf("expected title block, got %s", page.ParaBlocks[0].Type)
	}
	if got := page.ParaBlocks[0].Lines[0].Spans[0].Content; got != "Overview" {
		t.Errorf("expected title span content, got %q", got)
	}

	img := page.ParaBlocks[1]
	if len(img.Blocks) != 1 || img.Blocks[0].Type != BlockTypeImageBody {
		t.Fatalf("expected nested image_body, got %+v", img.Blocks)
	}
	if got := img.Blocks[0].Lines[0].Spans[0].ImagePath; got != "images/fig1.png" {
		t.Errorf("expected image path, got %q", got)
	}

	if len(page.DiscardedBlocks) != 1 || page.DiscardedBlocks[0].Type != BlockTypePageNumber {
		t.Errorf("expected one discarded page_number block, got %+v", page.DiscardedBlocks)
	}
}

func TestDecode_UnknownFieldsIgnored(t *testing.T) {
	data := `{"pdf_info": [{"page_idx": 3, "layout_bboxes": [], "future_field": 42}]}`
	doc, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Pages[0].PageIdx != 3 {
		t.Errorf("expected page_idx 3, got %d", doc.Pages[0].PageIdx)
	}
}

func TestDecode_MissingPageList(t *testing.T) {
	_, err := Decode([]byte(`{"_backend": "pipeline"}`))
	if err == nil {
		t.Fatal("expected error for missing pdf_info")
	}
	if !strings.Contains(err.Error(), "pdf_info") {
		t.Errorf("error should name the missing field, got %v", err)
	}
}

func TestDecode_EmptyPageListAllowed(t *testing.T) {
	doc, err := Decode([]byte(`{"pdf_info": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 0 {
		t.Errorf("expected zero pages, got %d", len(doc.Pages))
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"pdf_info": [`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse layout JSON") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := os.WriteFile(path, []byte(sampleLayout), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("expected 1 page, got %d", len(doc.Pages))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read layout file") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestIsFurniture(t *testing.T) {
	tests := []struct {
		bt   BlockType
		want bool
	}{
		{BlockTypeHeader, true},
		{BlockTypeFooter, true},
		{BlockTypePageNumber, true},
		{BlockTypePageFootnote, true},
		{BlockTypeAsideText, true},
		{BlockTypeTitle, false},
		{BlockTypeText, false},
		{BlockType("watermark"), false},
	}
	for _, tc := range tests {
		if got := tc.bt.IsFurniture(); got != tc.want {
			t.Errorf("IsFurniture(%s) = %v, want %v", tc.bt, got, tc.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	var empty Block
	if !empty.IsEmpty() {
		t.Error("zero block should be empty")
	}

	withLine := Block{Lines: []Line{{}}}
	if withLine.IsEmpty() {
		t.Error("block with lines is not empty")
	}

	withChild := Block{Blocks: []Block{{}}}
	if withChild.IsEmpty() {
		t.Error("block with children is not empty")
	}
}
