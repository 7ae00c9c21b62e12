package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "  Hello   world \n", "Hello world"},
		{"tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities decoded", "Fish &amp; Chips &#8230; &ldquo;quoted&rdquo;", "Fish & Chips … “quoted”"},
		{"script and style dropped", "<style>p{color:red}</style><p>Text</p><script>alert(1)</script>", "Text"},
		{"unclosed markup", "<div><p>Broken <i>markup", "Broken markup"},
		{"cdata like content", "<![CDATA[not html]]> after", "after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestFirstImage(t *testing.T) {
	assert.Equal(t, "https://example.com/a.png", FirstImage(`<p>intro</p><img src=" https://example.com/a.png "><img src="/b.png">`))
	assert.Equal(t, "", FirstImage(`<p>no images</p>`))
	assert.Equal(t, "", FirstImage(`<img alt="missing src">`))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("\ta \n b   c  "))
	assert.Equal(t, "", CollapseWhitespace("   "))
}
