package render

import (
	"strings"

	"github.com/roboco-io/layout2md/internal/layout"
)

// maxDepth bounds recursion over block trees. The producer is expected to
// emit shallow acyclic trees, but the input is external; a subtree deeper
// than this extracts to nothing instead of blowing the stack.
const maxDepth = 64

// extractText collects the plain content of every span across the block's
// lines, followed by the recursive extraction of every child block, in
// document order with no separators.
func extractText(b *layout.Block) string {
	var sb strings.Builder
	writeBlockText(&sb, b, 0)
	return sb.String()
}

func writeBlockText(sb *strings.Builder, b *layout.Block, depth int) {
	if depth > maxDepth {
		return
	}
	for _, line := range b.Lines {
		for _, span := range line.Spans {
			sb.WriteString(span.Content)
		}
	}
	for i := range b.Blocks {
		writeBlockText(sb, &b.Blocks[i], depth+1)
	}
}
