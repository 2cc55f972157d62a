package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactDoc = `email: hello@example.com
phone: 010-1234-5678
availability: Open to freelance work

## Social

- **GitHub** | github.com/example
- **Twitter** | twitter.com/x
not a link

## 협업 문의

Have an idea?
  Let's talk about it.

# Footer
`

func TestParseContact_Full(t *testing.T) {
	c := ParseContact(contactDoc)

	assert.Equal(t, "hello@example.com", c.Email)
	assert.Equal(t, "010-1234-5678", c.Phone)
	assert.Equal(t, "Open to freelance work", c.Availability)
	require.Len(t, c.Social, 2)
	assert.Equal(t, SocialLink{Platform: "GitHub", URL: "github.com/example"}, c.Social[0])
	assert.Equal(t, SocialLink{Platform: "Twitter", URL: "twitter.com/x"}, c.Social[1])
	assert.Equal(t, "Have an idea? Let's talk about it.", c.Message)
}

func TestParseContact_Empty(t *testing.T) {
	c := ParseContact("")

	assert.Empty(t, c.Email)
	assert.Empty(t, c.Phone)
	assert.Empty(t, c.Availability)
	assert.Empty(t, c.Message)
	assert.NotNil(t, c.Social)
	assert.Empty(t, c.Social)
}

func TestParseContact_SocialOutsideSectionIgnored(t *testing.T) {
	doc := `- **GitHub** | github.com/early
## Social
- **GitHub** | github.com/a
- **GitHub** | github.com/a
- **Broken**
`
	c := ParseContact(doc)

	assert.Equal(t, []SocialLink{
		{Platform: "GitHub", URL: "github.com/a"},
		{Platform: "GitHub", URL: "github.com/a"},
	}, c.Social)
}

func TestParseContact_MessageSection(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"localized header", "## 협업 문의\nfirst\nsecond", "first second"},
		{"english header", "## Message\n  padded  \n\nnext", "padded next"},
		{"headers skipped", "## Message\n### Sub\nbody", "body"},
		{"no section", "first\nsecond", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseContact(tt.doc).Message)
		})
	}
}

func TestParseContact_ScalarsInsideMessage(t *testing.T) {
	c := ParseContact("## Message\nemail: late@example.com\nbody")

	assert.Equal(t, "late@example.com", c.Email)
	assert.Equal(t, "body", c.Message)
}
