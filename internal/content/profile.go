package content

import "strings"

type profileSection int

const (
	profileNone profileSection = iota
	profileBiography
	profilePhilosophy
)

// ParseProfile parses an about.md document.
//
// Leading "key: value" lines fill the scalar fields, "## Bio" collects the
// biography and "## Philosophy" holds "### Title" items, each followed by a
// description line.
func ParseProfile(doc string) Profile {
	p := Profile{Philosophy: []PhilosophyItem{}}

	section := profileNone
	var open *PhilosophyItem

	for _, line := range nonBlankLines(doc) {
		if v, ok := field(line, "name:"); ok {
			p.Name = v
		} else if v, ok := field(line, "title:"); ok {
			p.Title = v
		} else if v, ok := field(line, "affiliation:", "university:"); ok {
			p.Affiliation = v
		} else if v, ok := field(line, "period:", "year:"); ok {
			p.Period = v
		} else if strings.HasPrefix(line, "## Bio") {
			section = profileBiography
		} else if strings.HasPrefix(line, "## Philosophy") {
			section = profilePhilosophy
		} else if title, ok := strings.CutPrefix(line, "### "); ok && section == profilePhilosophy {
			if open != nil {
				p.Philosophy = append(p.Philosophy, *open)
			}
			open = &PhilosophyItem{Title: strings.TrimSpace(title)}
		} else if strings.HasPrefix(line, "#") {
			continue
		} else if section == profileBiography {
			p.Biography = joinSpace(p.Biography, strings.TrimSpace(line))
		} else if open != nil {
			// Later lines replace the description rather than extend it.
			open.Description = strings.TrimSpace(line)
		}
	}

	if open != nil {
		p.Philosophy = append(p.Philosophy, *open)
	}
	return p
}
