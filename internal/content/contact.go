package content

import "strings"

type contactSection int

const (
	contactNone contactSection = iota
	contactSocial
	contactMessage
)

// ParseContact parses a contact.md document.
func ParseContact(doc string) Contact {
	c := Contact{Social: []SocialLink{}}
	section := contactNone

	for _, line := range splitLines(doc) {
		if v, ok := field(line, "email:"); ok {
			c.Email = v
		} else if v, ok := field(line, "phone:"); ok {
			c.Phone = v
		} else if v, ok := field(line, "availability:"); ok {
			c.Availability = v
		} else if strings.HasPrefix(line, "## Social") {
			section = contactSocial
		} else if hasAnyPrefix(line, "## 협업 문의", "## Message") {
			section = contactMessage
		} else if strings.HasPrefix(line, "- **") && section == contactSocial {
			if m := itemRegex.FindStringSubmatch(line); m != nil {
				c.Social = append(c.Social, SocialLink{Platform: m[1], URL: m[2]})
			}
		} else if section == contactMessage && !strings.HasPrefix(line, "#") {
			if text := strings.TrimSpace(line); text != "" {
				c.Message = joinSpace(c.Message, text)
			}
		}
	}
	return c
}
