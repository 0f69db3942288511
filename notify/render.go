package notify

import (
	"strings"

	"github.com/wind-zhou5210/rag-lite/utility"
)

// Render returns the container and its notifications as an HTML fragment
// using the styling contract of the companion stylesheet: a flash-messages
// wrapper holding alert elements tagged alert-<severity>, each closable
// notification carrying a close control. Fading notifications are rendered
// with zero opacity so the stylesheet's transition can play.
func (c *Center) Render() string {
	notifs := c.Notifications()

	fragments := utility.Map(notifs, renderNotification)

	var sb strings.Builder
	sb.WriteString(`<div class="flash-messages">`)
	for _, f := range fragments {
		sb.WriteString(f)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// renderNotification builds the alert element for a single notification.
// The message is inserted verbatim; escaping untrusted text is the
// caller's responsibility.
func renderNotification(n Notification) string {
	var sb strings.Builder
	sb.WriteString(`<div class="alert alert-`)
	sb.WriteString(string(n.Severity))
	sb.WriteString(`"`)
	if n.State == StateFading {
		sb.WriteString(` style="opacity: 0"`)
	}
	sb.WriteString(`>`)
	sb.WriteString(n.Message)
	if n.Closable {
		sb.WriteString(`<span class="close">&times;</span>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// InjectContainer splices a rendered container fragment into an HTML
// document: immediately before the first <main> element if one exists,
// otherwise as the first child of <body>, otherwise prepended to the
// document.
func InjectContainer(doc, fragment string) string {
	if i := indexTag(doc, "<main"); i >= 0 {
		return doc[:i] + fragment + doc[i:]
	}

	if i := indexTag(doc, "<body"); i >= 0 {
		if j := strings.IndexByte(doc[i:], '>'); j >= 0 {
			k := i + j + 1
			return doc[:k] + fragment + doc[k:]
		}
	}

	return fragment + doc
}

// indexTag finds the start of an opening tag, case-insensitively, making
// sure the match is not a prefix of a longer tag name. The scan compares
// in place so byte offsets stay valid for documents containing multibyte
// characters whose case pair has a different UTF-8 length.
func indexTag(doc, tag string) int {
	for i := 0; i+len(tag) <= len(doc); i++ {
		if doc[i] != '<' || !strings.EqualFold(doc[i:i+len(tag)], tag) {
			continue
		}

		end := i + len(tag)
		if end == len(doc) {
			return i
		}
		switch doc[end] {
		case ' ', '\t', '\n', '\r', '>', '/':
			return i
		}
	}
	return -1
}
