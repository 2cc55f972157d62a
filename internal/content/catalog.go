package content

import "strings"

// blockDelimiter separates project blocks in portfolio.md.
const blockDelimiter = "---"

// ParseCatalog parses a portfolio.md document into projects, in document
// order. Blocks without a "###" marker are preambles or separators and are
// skipped, as are blocks whose scan yields no title.
func ParseCatalog(doc string) []Project {
	projects := []Project{}

	for _, block := range strings.Split(doc, blockDelimiter) {
		if strings.TrimSpace(block) == "" || !strings.Contains(block, "###") {
			continue
		}
		if p := parseProjectBlock(block); p.Title != "" {
			projects = append(projects, p)
		}
	}
	return projects
}

func parseProjectBlock(block string) Project {
	p := Project{Tags: []string{}}

	for _, line := range nonBlankLines(block) {
		if title, ok := strings.CutPrefix(line, "### "); ok {
			p.Title = strings.TrimSpace(title)
		} else if v, ok := field(line, "category:"); ok {
			p.Category = v
		} else if v, ok := field(line, "year:"); ok {
			p.Year = v
		} else if v, ok := field(line, "description:"); ok {
			p.Description = v
		} else if v, ok := field(line, "tags:"); ok {
			p.Tags = splitTags(v)
		} else if v, ok := field(line, "color:"); ok {
			p.Color = v
		} else if v, ok := field(line, "link:"); ok {
			p.Link = v
		}
	}
	return p
}

// splitTags splits a comma-separated tag list, trimming each tag. Order and
// duplicates are kept.
func splitTags(value string) []string {
	if value == "" {
		return []string{}
	}
	tags := strings.Split(value, ",")
	for i := range tags {
		tags[i] = strings.TrimSpace(tags[i])
	}
	return tags
}
