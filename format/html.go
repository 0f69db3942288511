package format

import "html"

// EscapeHTML returns text with markup-significant characters (& < > " ')
// replaced by entities, so that the result displays as literal text when
// inserted as markup. Use it on untrusted text before handing it to
// notify, which renders messages verbatim.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}
