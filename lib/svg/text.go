package svg

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText replaces the five XML special characters with their named
// entities. Everything else, including multi-byte text, passes through.
func EscapeText(text string) string {
	return textEscaper.Replace(text)
}
