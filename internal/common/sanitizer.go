package common

import "github.com/microcosm-cc/bluemonday"

// richTextPolicy allows the tags the CMS rich-text editor emits and
// nothing else.
var richTextPolicy = buildRichTextPolicy()

func buildRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u", "s", "span",
		"ul", "ol", "li", "blockquote",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"a", "img", "code", "pre", "hr",
	)
	p.AllowAttrs("href", "name", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("class").OnElements("span")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.RequireParseableURLs(true)

	return p
}

// SanitizeRichText strips everything outside the rich-text allowlist.
func SanitizeRichText(html string) string {
	return richTextPolicy.Sanitize(html)
}
