package llm

import "fmt"

// systemPrompt builds the system instruction for the formatting pass. A
// custom prompt from options replaces it entirely.
func systemPrompt(opts FormatOptions) string {
	if opts.Prompt != "" {
		return opts.Prompt
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf(`You are a Markdown editor. You receive a Markdown document that was
generated mechanically from a page-layout description. Improve its flow:
merge paragraphs broken mid-sentence by page boundaries, fix hyphenation
artifacts and normalize heading capitalization. Keep every HTML element
(anchors, figures, styled divs, data URIs) exactly as-is, keep all math
delimiters, and do not drop or reorder content. Answer only with the
revised Markdown, in language %q where prose needs rewording.`, lang)
}

// userPrompt wraps the document for the model.
func userPrompt(markdown string) string {
	return "Reformat the following document:\n\n" + markdown
}
