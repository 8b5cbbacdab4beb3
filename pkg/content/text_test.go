package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs separated",
			html: "<p>hello world</p><p>second paragraph</p>",
			want: "hello world second paragraph",
		},
		{
			name: "br becomes space",
			html: "<p>line one<br>line two</p>",
			want: "line one line two",
		},
		{
			name: "links unwrapped",
			html: `<p>see <a href="https://example.com">this page</a> now</p>`,
			want: "see this page now",
		},
		{
			name: "entities unescaped",
			html: "<p>fish &amp; chips &lt;3</p>",
			want: "fish & chips <3",
		},
		{
			name: "plain text unchanged",
			html: "no markup here",
			want: "no markup here",
		},
		{
			name: "empty",
			html: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.html))
		})
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "local mention removed",
			in:   "@wilbot hello there",
			want: "hello there",
		},
		{
			name: "remote mention removed",
			in:   "@someone@example.social what do you think",
			want: "what do you think",
		},
		{
			name: "hashtag dehashed",
			in:   "nice day for #gardening",
			want: "nice day for gardening",
		},
		{
			name: "whitespace collapsed",
			in:   "too   many    spaces",
			want: "too many spaces",
		},
		{
			name: "only a mention leaves nothing",
			in:   "@wilbot",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "héll", Truncate("héllo", 4), "rune-safe cut")
}

func TestFormatReply(t *testing.T) {
	got := FormatReply("@user  check   #this out", 11)
	assert.Equal(t, "check this ", got)
}
