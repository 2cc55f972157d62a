package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(m mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

var siteFS = fstest.MapFS{
	content.ProfileFile:    {Data: []byte("name: Kim\ntitle: Developer\n## Philosophy\n### Craft\nCare.\n")},
	content.ExperienceFile: {Data: []byte("## Awards\n- **Prize** | 2024\n  - first place\n")},
	content.CatalogFile:    {Data: []byte("---\n### CLI\ncategory: Tooling\ntags: go, tui\n---\n### Site\ncategory: Web\n")},
	content.ContactFile:    {Data: []byte("email: kim@example.com\n## Social\n- **GitHub** | github.com/kim\n")},
}

type harness struct {
	srv    *Server
	engine *gin.Engine
	store  *store.Store
	mailer *fakeMailer
}

func newHarness(t *testing.T, fsys fstest.MapFS) *harness {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	mailer := &fakeMailer{}
	srv, err := New(Deps{
		Library: content.NewLibrary(fsys),
		Store:   st,
		Mailer:  mailer,
		Admin:   config.AdminConfig{Username: "owner", Password: "pw"},
	})
	require.NoError(t, err)

	return &harness{srv: srv, engine: srv.Handler(), store: st, mailer: mailer}
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	h.srv.Wait()
	return rec
}

func (h *harness) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return h.do(req)
}

func (h *harness) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return h.do(req)
}

func (h *harness) login(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := h.postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"pw"}})
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestContentRoutes(t *testing.T) {
	h := newHarness(t, siteFS)

	rec := h.get("/api/profile")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile content.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Kim", profile.Name)
	require.Len(t, profile.Philosophy, 1)
	assert.Equal(t, "Care.", profile.Philosophy[0].Description)

	rec = h.get("/api/experience")
	require.Equal(t, http.StatusOK, rec.Code)
	var exp content.Experience
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &exp))
	require.Len(t, exp.Awards, 1)
	assert.Equal(t, []string{"first place"}, exp.Awards[0].Details)

	rec = h.get("/api/contact")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"platform":"GitHub"`)

	rec = h.get("/api/site")
	require.Equal(t, http.StatusOK, rec.Code)
	var site content.Site
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &site))
	assert.Len(t, site.Projects, 2)
	assert.Equal(t, "kim@example.com", site.Contact.Email)
}

func TestProjectsCategoryFilter(t *testing.T) {
	h := newHarness(t, siteFS)

	rec := h.get("/api/projects?category=Tooling")
	require.Equal(t, http.StatusOK, rec.Code)

	var projects []content.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "CLI", projects[0].Title)
	assert.Equal(t, []string{"go", "tui"}, projects[0].Tags)

	rec = h.get("/api/projects?category=None")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMissingDocument(t *testing.T) {
	fsys := fstest.MapFS{}
	for k, v := range siteFS {
		fsys[k] = v
	}
	delete(fsys, content.ContactFile)
	h := newHarness(t, fsys)

	rec := h.get("/api/contact")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"content unavailable"}`, rec.Body.String())

	rec = h.get("/api/site")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	assert.Equal(t, http.StatusOK, h.get("/api/profile").Code)
}

func TestContactForm(t *testing.T) {
	h := newHarness(t, siteFS)

	rec := h.postForm("/contact", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi there"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ID        string `json:"id"`
		Delivered bool   `json:"delivered"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Delivered)
	require.Len(t, h.mailer.sent, 1)
	assert.Equal(t, "Ada", h.mailer.sent[0].Name)

	messages, err := h.store.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Delivered)
}

func TestContactForm_MailFailureStillStores(t *testing.T) {
	h := newHarness(t, siteFS)
	h.mailer.err = errors.New("smtp down")

	rec := h.postForm("/contact", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delivered":false`)

	messages, err := h.store.Messages()
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.False(t, messages[0].Delivered)
}

func TestContactForm_Validation(t *testing.T) {
	h := newHarness(t, siteFS)

	rec := h.postForm("/contact", url.Values{"fullName": {"Ada"}, "email": {" "}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, h.mailer.sent)
}

func TestVisitorTracking(t *testing.T) {
	h := newHarness(t, siteFS)

	h.get("/api/profile")
	h.get("/api/profile")
	h.get("/privacy")

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("DNT", "1")
	h.do(req)

	visits, err := h.store.RecentVisitors(10)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	for _, v := range visits {
		assert.Equal(t, "/api/profile", v.Path)
		assert.Len(t, v.HashedIP, 16)
		assert.NotContains(t, v.HashedIP, "192.0.2.1")
	}
}

func TestAdmin_RequiresLogin(t *testing.T) {
	h := newHarness(t, siteFS)

	assert.Equal(t, http.StatusUnauthorized, h.get("/admin/api/stats").Code)

	bad := &http.Cookie{Name: adminCookie, Value: "forged"}
	assert.Equal(t, http.StatusUnauthorized, h.get("/admin/messages", bad).Code)

	rec := h.postForm("/admin/login", url.Values{"username": {"owner"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdmin_StatsAndMessages(t *testing.T) {
	h := newHarness(t, siteFS)
	h.get("/api/profile")
	h.postForm("/contact", url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}})
	cookies := h.login(t)

	rec := h.get("/admin/api/stats", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats store.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalVisitors)
	assert.Equal(t, int64(1), stats.TotalMessages)

	rec = h.get("/admin/export/stats", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=admin-stats.json", rec.Header().Get("Content-Disposition"))

	rec = h.get("/admin/messages", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []store.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)

	del := func(id string) int {
		req := httptest.NewRequest(http.MethodDelete, "/admin/messages/"+id, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		return h.do(req).Code
	}
	assert.Equal(t, http.StatusOK, del(messages[0].ID))
	assert.Equal(t, http.StatusNotFound, del(messages[0].ID))
}

func TestHashIP(t *testing.T) {
	h := newHarness(t, siteFS)

	a := h.srv.hashIP("203.0.113.7")
	assert.Len(t, a, 16)
	assert.Equal(t, a, h.srv.hashIP("203.0.113.7"))
	assert.NotEqual(t, a, h.srv.hashIP("203.0.113.8"))
}
