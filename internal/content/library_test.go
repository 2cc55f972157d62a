package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		ProfileFile:    {Data: []byte(aboutDoc)},
		ExperienceFile: {Data: []byte(experienceDoc)},
		CatalogFile:    {Data: []byte(portfolioDoc)},
		ContactFile:    {Data: []byte(contactDoc)},
	}
}

func TestLibrary_Site(t *testing.T) {
	lib := NewLibrary(testFS())

	site, err := lib.Site(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ParseProfile(aboutDoc), site.Profile)
	assert.Equal(t, ParseExperience(experienceDoc), site.Experience)
	assert.Equal(t, ParseCatalog(portfolioDoc), site.Projects)
	assert.Equal(t, ParseContact(contactDoc), site.Contact)
}

func TestLibrary_MissingDocument(t *testing.T) {
	fsys := testFS()
	delete(fsys, CatalogFile)
	lib := NewLibrary(fsys)

	_, err := lib.Projects()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDocument)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = lib.Site(context.Background())
	assert.ErrorIs(t, err, fs.ErrNotExist)

	p, err := lib.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Kim Minji", p.Name)
}

func TestLibrary_SiteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLibrary(testFS()).Site(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLibrary_ConcurrentReads(t *testing.T) {
	lib := NewLibrary(testFS())
	want, err := lib.Experience()
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Experience, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = lib.Experience()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParseDocument(t *testing.T) {
	got, err := ParseDocument("catalog", portfolioDoc)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = ParseDocument("resume", "")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindForFile(t *testing.T) {
	kind, ok := KindForFile("contact.md")
	assert.True(t, ok)
	assert.Equal(t, "contact", kind)

	_, ok = KindForFile("notes.md")
	assert.False(t, ok)
}

func TestLibrary_ShippedContent(t *testing.T) {
	site, err := NewLibrary(os.DirFS("../../content")).Site(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, site.Profile.Name)
	assert.Len(t, site.Profile.Philosophy, 3)
	assert.Len(t, site.Experience.Internships, 2)
	assert.Len(t, site.Experience.Awards, 1)
	assert.Len(t, site.Experience.Certifications, 2)
	assert.Len(t, site.Projects, 4)
	assert.Empty(t, site.Contact.Phone)
	assert.Len(t, site.Contact.Social, 2)
	for _, p := range site.Projects {
		assert.NotEmpty(t, p.Tags, p.Title)
	}
}
