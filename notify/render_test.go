package notify

import (
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestRenderClosableNotification(t *testing.T) {
	t.Parallel()

	center := NewCenter(WithDisplayDuration(time.Minute))
	center.Show("saved", SeveritySuccess)

	html := center.Render()

	assert.Assert(t, strings.HasPrefix(html, `<div class="flash-messages">`))
	assert.Assert(t, strings.Contains(html, `<div class="alert alert-success">saved<span class="close">&times;</span></div>`))
}

func TestRenderAdoptedNotificationHasNoCloseControl(t *testing.T) {
	t.Parallel()

	center := NewCenter(WithDisplayDuration(time.Minute))
	center.Adopt("server says hi", SeverityInfo)

	html := center.Render()

	assert.Assert(t, strings.Contains(html, `<div class="alert alert-info">server says hi</div>`))
	assert.Assert(t, !strings.Contains(html, "close"))
}

func TestRenderFadingNotification(t *testing.T) {
	t.Parallel()

	center := NewCenter(
		WithDisplayDuration(20*time.Millisecond),
		WithFadeDuration(time.Minute),
	)
	center.Show("fading", SeverityInfo)

	time.Sleep(100 * time.Millisecond)

	html := center.Render()
	assert.Assert(t, strings.Contains(html, `style="opacity: 0"`))
}

func TestRenderMessageIsNotEscaped(t *testing.T) {
	t.Parallel()

	center := NewCenter(WithDisplayDuration(time.Minute))
	center.Show("<b>bold</b>", SeverityInfo)

	assert.Assert(t, strings.Contains(center.Render(), "<b>bold</b>"))
}

func TestInjectContainer(t *testing.T) {
	t.Parallel()

	const fragment = `<div class="flash-messages"></div>`

	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "before main element",
			doc:      `<body><nav></nav><main><p>content</p></main></body>`,
			expected: `<body><nav></nav>` + fragment + `<main><p>content</p></main></body>`,
		},
		{
			name:     "first child of body when no main exists",
			doc:      `<body class="page"><p>content</p></body>`,
			expected: `<body class="page">` + fragment + `<p>content</p></body>`,
		},
		{
			name:     "prepended when neither main nor body exist",
			doc:      `<p>bare fragment</p>`,
			expected: fragment + `<p>bare fragment</p>`,
		},
		{
			name:     "tag match is case-insensitive",
			doc:      `<BODY><MAIN></MAIN></BODY>`,
			expected: `<BODY>` + fragment + `<MAIN></MAIN></BODY>`,
		},
		{
			name:     "longer tag names are not mistaken for main",
			doc:      `<body><mainstay></mainstay></body>`,
			expected: `<body>` + fragment + `<mainstay></mainstay></body>`,
		},
		{
			name:     "multibyte characters before main do not shift the splice point",
			doc:      strings.Repeat("Ⱥ", 10) + `<main></main>`,
			expected: strings.Repeat("Ⱥ", 10) + fragment + `<main></main>`,
		},
		{
			name:     "multibyte characters before body do not shift the splice point",
			doc:      `Ⱥ<body>Ⱥ</body>`,
			expected: `Ⱥ<body>` + fragment + `Ⱥ</body>`,
		},
		{
			name:     "tag ending exactly at end of input",
			doc:      `ȺȺ<main`,
			expected: `ȺȺ` + fragment + `<main`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, InjectContainer(tt.doc, fragment), tt.expected)
		})
	}
}
