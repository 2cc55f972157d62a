package content

import "strings"

type experienceSection int

const (
	experienceNone experienceSection = iota
	experienceInternships
	experienceAwards
	experienceCertifications
)

// Section headers of experience.md. The localized heading is the one the site
// is authored with; the English one is accepted as well.
var experienceHeaders = []struct {
	prefixes []string
	section  experienceSection
}{
	{[]string{"## 인턴 및 활동", "## Internships"}, experienceInternships},
	{[]string{"## 수상 경력", "## Awards"}, experienceAwards},
	{[]string{"## 자격 및 교육", "## Certifications"}, experienceCertifications},
}

// experienceScan is the state carried across the lines of one document.
type experienceScan struct {
	out     Experience
	section experienceSection
	open    *ExperienceEntry
}

// flush commits the open entry into the list of the current section. Entries
// opened outside the internships or awards sections are discarded.
func (s *experienceScan) flush() {
	if s.open == nil {
		return
	}
	switch s.section {
	case experienceInternships:
		s.out.Internships = append(s.out.Internships, *s.open)
	case experienceAwards:
		s.out.Awards = append(s.out.Awards, *s.open)
	}
	s.open = nil
}

// enter switches sections. The open entry belongs to the section it was
// opened in, so it is flushed before the switch.
func (s *experienceScan) enter(next experienceSection) {
	s.flush()
	s.section = next
}

// ParseExperience parses an experience.md document into its internship and
// award entries and its flat certification list.
func ParseExperience(doc string) Experience {
	s := experienceScan{out: Experience{
		Internships:    []ExperienceEntry{},
		Awards:         []ExperienceEntry{},
		Certifications: []string{},
	}}

	for _, line := range splitLines(doc) {
		if next, ok := matchExperienceHeader(line); ok {
			s.enter(next)
			continue
		}

		switch {
		case strings.HasPrefix(line, "- **") &&
			(s.section == experienceInternships || s.section == experienceAwards):
			s.flush()
			if m := itemRegex.FindStringSubmatch(line); m != nil {
				s.open = &ExperienceEntry{Title: m[1], Period: m[2], Details: []string{}}
			}
		case strings.HasPrefix(line, "  - ") && s.open != nil:
			s.open.Details = append(s.open.Details, strings.TrimSpace(strings.TrimPrefix(line, "  - ")))
		case strings.HasPrefix(line, "- ") && s.section == experienceCertifications:
			s.out.Certifications = append(s.out.Certifications, strings.TrimSpace(strings.TrimPrefix(line, "- ")))
		}
	}

	s.flush()
	return s.out
}

func matchExperienceHeader(line string) (experienceSection, bool) {
	for _, h := range experienceHeaders {
		if hasAnyPrefix(line, h.prefixes...) {
			return h.section, true
		}
	}
	return experienceNone, false
}
