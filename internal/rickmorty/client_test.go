package rickmorty

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, u.String())

	u, err = parseBaseURL("example.com:1234/api/?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "/api", u.Path)
	assert.Empty(t, u.RawQuery)
	assert.Empty(t, u.Fragment)

	_, err = parseBaseURL("http://")
	assert.Error(t, err, "url without host")
}

func TestNew_AppliesDefaultsAndOverrides(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	cfg := c.Config()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultRetryAttempts, cfg.RetryAttempts)

	c, err = New(WithConfig(Config{Timeout: 2 * time.Second}))
	require.NoError(t, err)
	cfg = c.Config()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultRetryAttempts, cfg.RetryAttempts)

	c, err = New(WithConfig(Config{RetryAttempts: 5}))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Config().RetryAttempts)

	c, err = New(WithConfig(Config{Timeout: time.Second}), WithRetryAttempts(0))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Config().RetryAttempts)

	_, err = New(WithRetryAttempts(-1))
	assert.Error(t, err, "negative retry attempts")
}

func TestWithConfig_PartialKeepsDefaults(t *testing.T) {
	c, err := New(WithConfig(Config{BaseURL: "http://example.invalid"}))
	require.NoError(t, err)

	want := DefaultConfig()
	want.BaseURL = "http://example.invalid"
	assert.Equal(t, want, c.Config())
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, DefaultBaseURL, Default().Config().BaseURL)
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotCharacterQuery url.Values
	var gotLocationQuery url.Values
	var gotEpisodeQuery url.Values
	var gotUserAgent, gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/character":
			gotCharacterQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Page[Character]{
				Info:    Info{Count: 2, Pages: 1},
				Results: []Character{{ID: 2, Name: "Morty Smith"}, {ID: 3, Name: "Summer Smith"}},
			})
		case "/api/character/1":
			_ = json.NewEncoder(w).Encode(Character{ID: 1, Name: "Rick Sanchez", Status: StatusAlive})
		case "/api/character/1,2":
			_ = json.NewEncoder(w).Encode([]Character{{ID: 1}, {ID: 2}})
		case "/api/location":
			gotLocationQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Page[Location]{Info: Info{Count: 1, Pages: 1}, Results: []Location{{ID: 1, Name: "Earth"}}})
		case "/api/location/3":
			_ = json.NewEncoder(w).Encode(Location{ID: 3, Name: "Citadel of Ricks"})
		case "/api/episode":
			gotEpisodeQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Page[Episode]{Info: Info{Count: 1, Pages: 1}, Results: []Episode{{ID: 1, Code: "S01E01"}}})
		case "/api/episode/28":
			_ = json.NewEncoder(w).Encode(Episode{ID: 28, Name: "The Ricklantis Mixup", Code: "S03E07"})
		case "/api/episode/10":
			// A single id answers with a bare object.
			_ = json.NewEncoder(w).Encode(Episode{ID: 10, Code: "S01E10"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := New(WithBaseURL(server.URL+"/api"), WithRetryAttempts(0))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.ListCharacters(ctx, CharacterFilter{
		Name:    "smith",
		Status:  StatusAlive,
		Species: "Human",
		Type:    " ",
		Gender:  GenderFemale,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Info.Count)
	assert.Len(t, page.Results, 2)
	assert.Equal(t, url.Values{
		"page":    {"2"},
		"name":    {"smith"},
		"status":  {"Alive"},
		"species": {"Human"},
		"gender":  {"Female"},
	}, gotCharacterQuery, "blank type omitted")

	_, err = c.ListCharacters(ctx, CharacterFilter{}, 0)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"page": {"1"}}, gotCharacterQuery)

	_, err = c.ListCharacters(ctx, CharacterFilter{Name: " rick "}, 1)
	require.NoError(t, err)
	assert.Equal(t, " rick ", gotCharacterQuery.Get("name"), "values are sent as given")

	rick, err := c.GetCharacter(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rick Sanchez", rick.Name)
	assert.Equal(t, StatusAlive, rick.Status)

	many, err := c.GetCharactersByIDs(ctx, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, many, 2)
	assert.Equal(t, 2, many[1].ID)

	_, err = c.ListLocations(ctx, LocationFilter{Dimension: "C-137"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "C-137", gotLocationQuery.Get("dimension"))
	assert.Equal(t, "1", gotLocationQuery.Get("page"))

	loc, err := c.GetLocation(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Citadel of Ricks", loc.Name)

	_, err = c.ListEpisodes(ctx, EpisodeFilter{Code: "S01"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "S01", gotEpisodeQuery.Get("episode"))
	assert.Equal(t, "3", gotEpisodeQuery.Get("page"))

	ep, err := c.GetEpisode(ctx, 28)
	require.NoError(t, err)
	assert.Equal(t, "S03E07", ep.Code)

	single, err := c.GetEpisodesByIDs(ctx, []int{10})
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, 10, single[0].ID)

	assert.Regexp(t, `^portal/`, gotUserAgent)
	assert.NotEmpty(t, gotRequestID, "X-Request-ID header")
}

func TestClient_EmptyIDListsSkipRequests(t *testing.T) {
	c, err := New(WithBaseURL("127.0.0.1:1"))
	require.NoError(t, err)
	ctx := context.Background()

	chars, err := c.GetCharactersByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, chars)

	eps, err := c.GetEpisodesByIDs(ctx, []int{})
	require.NoError(t, err)
	assert.Empty(t, eps)

	locs, err := c.GetLocationsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/character/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/character/2":
			http.Error(w, `{"error":"nope"}`, http.StatusInternalServerError)
		case "/character":
			_, _ = w.Write([]byte(`{"results":[]}`))
		case "/character/3":
			_, _ = w.Write([]byte(`{"name":"no id"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Character not found"}`))
		}
	}))
	t.Cleanup(server.Close)

	c, err := New(WithBaseURL(server.URL), WithRetryAttempts(0))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.GetCharacter(ctx, 1)
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "decode response")

	_, err = c.GetCharacter(ctx, 2)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "want *APIError, got %v", err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "nope", apiErr.Message)

	_, err = c.ListCharacters(ctx, CharacterFilter{}, 1)
	assert.ErrorIs(t, err, ErrMalformedResponse, "envelope without info")

	_, err = c.GetCharacter(ctx, 3)
	assert.ErrorIs(t, err, ErrMalformedResponse, "record without id")

	_, err = c.GetCharacter(ctx, 999)
	assert.True(t, IsNotFound(err), "want not found, got %v", err)
	assert.NotErrorIs(t, err, ErrRetriesExhausted, "404 is not retried")
	assert.Contains(t, err.Error(), "Character not found")
}

func TestInfo_NextPrev(t *testing.T) {
	next := "https://rickandmortyapi.com/api/character?page=2"
	empty := ""
	info := Info{Next: &next}
	assert.True(t, info.HasNext())
	assert.False(t, info.HasPrev())

	info.Next = &empty
	assert.False(t, info.HasNext(), "empty url")
}

func TestPage_DecodesNullLinks(t *testing.T) {
	body := `{"info":{"count":1,"pages":1,"next":null,"prev":null,"extra":true},"results":[{"id":1,"name":"Rick","unused":1}]}`
	var page Page[Character]
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Nil(t, page.Info.Next)
	assert.Nil(t, page.Info.Prev)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Rick", page.Results[0].Name)
}

func TestCreatedAt(t *testing.T) {
	got := Character{Created: "2017-11-04T18:48:46.250Z"}.CreatedAt()
	assert.Equal(t, time.Date(2017, time.November, 4, 18, 48, 46, 250_000_000, time.UTC), got.UTC())
	assert.True(t, Episode{Created: "garbage"}.CreatedAt().IsZero())
}
