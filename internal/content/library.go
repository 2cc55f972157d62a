package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"
)

// Document file names inside the content directory.
const (
	ProfileFile    = "about.md"
	ExperienceFile = "experience.md"
	CatalogFile    = "portfolio.md"
	ContactFile    = "contact.md"
)

// ErrMissingDocument is returned when a content document cannot be read.
// The underlying fs error is kept in the chain.
var ErrMissingDocument = errors.New("content: document unavailable")

// Library reads and parses the documents of a content directory. It keeps no
// parsed state; every call reads the document again.
type Library struct {
	fsys fs.FS
}

// NewLibrary returns a Library reading from fsys.
func NewLibrary(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

func (l *Library) read(name string) (string, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingDocument, name, err)
	}
	return string(data), nil
}

// Profile reads and parses about.md.
func (l *Library) Profile() (Profile, error) {
	doc, err := l.read(ProfileFile)
	if err != nil {
		return Profile{}, err
	}
	return ParseProfile(doc), nil
}

// Experience reads and parses experience.md.
func (l *Library) Experience() (Experience, error) {
	doc, err := l.read(ExperienceFile)
	if err != nil {
		return Experience{}, err
	}
	return ParseExperience(doc), nil
}

// Projects reads and parses portfolio.md.
func (l *Library) Projects() ([]Project, error) {
	doc, err := l.read(CatalogFile)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(doc), nil
}

// Contact reads and parses contact.md.
func (l *Library) Contact() (Contact, error) {
	doc, err := l.read(ContactFile)
	if err != nil {
		return Contact{}, err
	}
	return ParseContact(doc), nil
}

// Site loads all four documents concurrently. The first read failure is
// returned.
func (l *Library) Site(ctx context.Context) (Site, error) {
	if err := ctx.Err(); err != nil {
		return Site{}, err
	}

	var site Site
	var g errgroup.Group

	g.Go(func() (err error) {
		site.Profile, err = l.Profile()
		return err
	})
	g.Go(func() (err error) {
		site.Experience, err = l.Experience()
		return err
	})
	g.Go(func() (err error) {
		site.Projects, err = l.Projects()
		return err
	})
	g.Go(func() (err error) {
		site.Contact, err = l.Contact()
		return err
	})

	if err := g.Wait(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// ParseDocument parses doc with the parser registered for kind ("profile",
// "experience", "catalog" or "contact").
func ParseDocument(kind, doc string) (any, error) {
	switch kind {
	case "profile":
		return ParseProfile(doc), nil
	case "experience":
		return ParseExperience(doc), nil
	case "catalog", "projects":
		return ParseCatalog(doc), nil
	case "contact":
		return ParseContact(doc), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ErrUnknownKind is returned by ParseDocument for an unrecognised kind.
var ErrUnknownKind = errors.New("content: unknown document kind")

// KindForFile maps a content file name to its document kind.
func KindForFile(name string) (string, bool) {
	switch name {
	case ProfileFile:
		return "profile", true
	case ExperienceFile:
		return "experience", true
	case CatalogFile:
		return "catalog", true
	case ContactFile:
		return "contact", true
	}
	return "", false
}
