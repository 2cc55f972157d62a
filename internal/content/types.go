// Package content parses the hand-written markdown documents that hold the
// portfolio's profile, experience, project catalog and contact details.
//
// Each parser is a pure function over the full text of one document. Parsers
// never fail: lines that match no known convention are skipped and fields that
// are absent stay empty.
package content

// Profile is the biography record parsed from about.md.
type Profile struct {
	Name        string           `json:"name" yaml:"name"`
	Title       string           `json:"title" yaml:"title"`
	Affiliation string           `json:"affiliation" yaml:"affiliation"`
	Period      string           `json:"period" yaml:"period"`
	Biography   string           `json:"biography" yaml:"biography"`
	Philosophy  []PhilosophyItem `json:"philosophy" yaml:"philosophy"`
}

// PhilosophyItem is one "### Title" entry of the philosophy section.
type PhilosophyItem struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Experience is parsed from experience.md.
type Experience struct {
	Internships    []ExperienceEntry `json:"internships" yaml:"internships"`
	Awards         []ExperienceEntry `json:"awards" yaml:"awards"`
	Certifications []string          `json:"certifications" yaml:"certifications"`
}

// ExperienceEntry is a "- **Title** | Period" item and its indented details.
type ExperienceEntry struct {
	Title   string   `json:"title" yaml:"title"`
	Period  string   `json:"period" yaml:"period"`
	Details []string `json:"details" yaml:"details"`
}

// Project is one block of portfolio.md.
type Project struct {
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Year        string   `json:"year" yaml:"year"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Color       string   `json:"color" yaml:"color"` // semantic color key, e.g. "accent"
	Link        string   `json:"link" yaml:"link"`
}

// Contact is parsed from contact.md.
type Contact struct {
	Email        string       `json:"email" yaml:"email"`
	Phone        string       `json:"phone" yaml:"phone"`
	Availability string       `json:"availability" yaml:"availability"`
	Social       []SocialLink `json:"social" yaml:"social"`
	Message      string       `json:"message" yaml:"message"`
}

// SocialLink is a "- **Platform** | url" line of the social section.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Site bundles every document the portfolio renders.
type Site struct {
	Profile    Profile    `json:"profile" yaml:"profile"`
	Experience Experience `json:"experience" yaml:"experience"`
	Projects   []Project  `json:"projects" yaml:"projects"`
	Contact    Contact    `json:"contact" yaml:"contact"`
}
