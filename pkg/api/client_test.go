package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/faftech/portfolio-admin/internal/fakebackend"
	"github.com/faftech/portfolio-admin/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	client = NewClient("http://localhost:8080/api/v1/")
	assert.Equal(t, "http://localhost:8080/api/v1", client.BaseURL())
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.logger)
}

func TestGetArticlesUnwrapsEnvelope(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()

	backend.SetCollection("articles", []models.Article{
		{ID: "a1", Slug: "first", Title: "First", IsNew: true},
		{ID: "a2", Slug: "second", Title: "Second"},
	})

	client := NewClient(backend.URL)
	articles, err := client.GetArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "First", articles[0].Title)
	assert.True(t, articles[0].IsNew)

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/articles", reqs[0].Path)
	assert.Empty(t, reqs[0].Authorization, "reads are unauthenticated")
}

func TestGetArticlesEmptyData(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("articles", []models.Article{})

	articles, err := NewClient(backend.URL).GetArticles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestReadFailureCarriesStatus(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.Fail(http.MethodGet, "/experiences", http.StatusInternalServerError)

	_, err := NewClient(backend.URL).GetExperiences(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindStatus, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Contains(t, err.Error(), "500")
}

func TestReadDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": "not a list"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetSkills(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestGetProjectBySlug(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("projects", []models.Project{
		{ID: "p1", Slug: "neural-path", Title: "NeuralPath AI", Tags: []string{"AI-CORE"}},
		{ID: "p2", Slug: "other", Title: "Other"},
	})

	project, err := NewClient(backend.URL).GetProjectBySlug(context.Background(), "neural-path")
	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
	assert.Equal(t, []string{"AI-CORE"}, project.Tags)

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "slug=neural-path", reqs[0].Query)
}

func TestGetProfileAndContact(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetSingle("profile", models.Profile{ID: "me", Name: "Alex", Email: "alex@example.com"})
	backend.SetSingle("contact", models.Contact{
		Contact:     models.ContactDetails{Email: "hi@example.com", WhatsappURL: "https://wa.me/1"},
		SocialLinks: []models.SocialLink{{Platform: "GitHub", URL: "https://github.com/alex"}},
	})

	client := NewClient(backend.URL)

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alex", profile.Name)

	contact, err := client.GetContact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/1", contact.Contact.WhatsappURL)
	require.Len(t, contact.SocialLinks, 1)
	assert.Equal(t, "GitHub", contact.SocialLinks[0].Platform)
}

func TestCreateArticleReturnsRawBody(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()

	client := NewClient(backend.URL)
	raw, err := client.CreateArticle(context.Background(), models.ArticleInput{Title: "New", Slug: "new"}, "secret")
	require.NoError(t, err)

	// Writes are not unwrapped: the created entity is the top-level object.
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, "New", created["title"])
	assert.NotEmpty(t, created["id"])

	reqs := backend.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/admin/articles", reqs[0].Path)
	assert.Equal(t, "Bearer secret", reqs[0].Authorization)
}

func TestMutationsSendBearerToken(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("experiences", []models.Experience{{ID: "e1", Title: "Old"}})
	backend.SetCollection("skills", []models.Skill{{ID: "s1", Name: "Backend"}})

	client := NewClient(backend.URL)
	ctx := context.Background()

	_, err := client.UpdateExperience(ctx, "e1", models.ExperienceInput{Title: "New"}, "tok")
	require.NoError(t, err)
	require.NoError(t, client.DeleteSkill(ctx, "s1", "tok"))
	_, err = client.CreateSkill(ctx, models.SkillInput{Name: "Cloud"}, "tok")
	require.NoError(t, err)

	for _, req := range backend.Requests() {
		assert.Equal(t, "Bearer tok", req.Authorization, "%s %s", req.Method, req.Path)
	}
	assert.Equal(t, 1, backend.Count(http.MethodPut, "/admin/experiences/e1"))
	assert.Equal(t, 1, backend.Count(http.MethodDelete, "/admin/skills/s1"))
}

func TestEmptyTokenIsSentAndRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The transport trims the trailing space of "Bearer " on the wire.
		if r.Header.Get("Authorization") != "Bearer" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := NewClient(server.URL).DeleteArticle(context.Background(), "a1", "")
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(err))
}

type roundTripFunc func(req *http.Request) (resp *http.Response, err error)

func (f roundTripFunc) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	resp, err = f(req)
	return resp, err
}

func TestEmptyTokenHeaderBeforeTransport(t *testing.T) {
	var header string
	transport := roundTripFunc(func(req *http.Request) (resp *http.Response, err error) {
		header = req.Header.Get("Authorization")
		resp = &http.Response{
			StatusCode: http.StatusUnauthorized,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    req,
		}
		return resp, err
	})

	client := NewClient("http://backend.test/api/v1", WithHTTPClient(&http.Client{Transport: transport}))
	_, err := client.CreateArticle(context.Background(), models.ArticleInput{Title: "New"}, "")
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, "Bearer ", header)
}

func TestValidationKind(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.Fail(http.MethodPost, "/admin/skills", http.StatusUnprocessableEntity)

	_, err := NewClient(backend.URL).CreateSkill(context.Background(), models.SkillInput{}, "tok")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestMutationEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	raw, err := NewClient(server.URL).UpdateArticle(context.Background(), "a1", models.ArticleInput{}, "tok")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestGetStatsConcurrent(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()

	backend.SetCollection("projects", []models.Project{{ID: "p1"}, {ID: "p2"}})
	backend.SetCollection("articles", []models.Article{{ID: "a1"}})
	backend.SetCollection("experiences", []models.Experience{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}})
	backend.SetCollection("skills", []models.Skill{})

	// Hold every request until all four have arrived, which only happens
	// when the reads are in flight at the same time.
	var arrived int32
	allArrived := make(chan struct{})
	var once sync.Once
	backend.BeforeHandle = func(r *http.Request) {
		if atomic.AddInt32(&arrived, 1) == 4 {
			once.Do(func() { close(allArrived) })
		}
		select {
		case <-allArrived:
		case <-time.After(5 * time.Second):
		}
	}

	stats, err := NewClient(backend.URL).GetStats(context.Background())
	require.NoError(t, err)

	select {
	case <-allArrived:
	default:
		t.Fatal("stats reads were not issued concurrently")
	}

	assert.Equal(t, models.Stats{Projects: 2, Articles: 1, Experiences: 3, Skills: 0}, stats)
	assert.Equal(t, 6, stats.Total())
	assert.Len(t, backend.Requests(), 4)
}

func TestGetStatsFailure(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.SetCollection("projects", []models.Project{})
	backend.SetCollection("articles", []models.Article{})
	backend.SetCollection("experiences", []models.Experience{})
	backend.Fail(http.MethodGet, "/skills", http.StatusBadGateway)

	_, err := NewClient(backend.URL).GetStats(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestLogin(t *testing.T) {
	backend := fakebackend.New()
	defer backend.Close()
	backend.Email = "admin@example.com"
	backend.Password = "hunter2"
	backend.Token = "jwt-token"

	client := NewClient(backend.URL)

	raw, err := client.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	token, err := TokenFromLogin(raw)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	_, err = client.Login(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuth(err))
}

func TestTokenFromLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		wantErr  bool
	}{
		{name: "top level token", body: `{"token":"a"}`, expected: "a"},
		{name: "access token", body: `{"access_token":"b"}`, expected: "b"},
		{name: "nested data", body: `{"data":{"token":"c"}}`, expected: "c"},
		{name: "no token", body: `{"message":"ok"}`, wantErr: true},
		{name: "not json", body: `nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := TokenFromLogin(json.RawMessage(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(context.Canceled))
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "auth", KindAuth.String())
}
