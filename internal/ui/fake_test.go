package ui

import (
	"context"
	"net/http"

	"github.com/five82/portal/internal/rickmorty"
)

type fakeFetcher struct {
	page      rickmorty.Page[rickmorty.Character]
	listErr   error
	filters   []rickmorty.CharacterFilter
	pages     []int
	character map[int]rickmorty.Character
	location  map[int]rickmorty.Location
	episodes  map[int]rickmorty.Episode
}

var _ rickmorty.Fetcher = (*fakeFetcher)(nil)

func notFound(endpoint string) error {
	return &rickmorty.APIError{Endpoint: endpoint, StatusCode: http.StatusNotFound, Message: "There is nothing here"}
}

func (f *fakeFetcher) ListCharacters(_ context.Context, filter rickmorty.CharacterFilter, page int) (rickmorty.Page[rickmorty.Character], error) {
	f.filters = append(f.filters, filter)
	f.pages = append(f.pages, page)
	if f.listErr != nil {
		return rickmorty.Page[rickmorty.Character]{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeFetcher) GetCharacter(_ context.Context, id int) (rickmorty.Character, error) {
	if c, ok := f.character[id]; ok {
		return c, nil
	}
	return rickmorty.Character{}, notFound("character")
}

func (f *fakeFetcher) GetCharactersByIDs(context.Context, []int) ([]rickmorty.Character, error) {
	return nil, nil
}

func (f *fakeFetcher) ListLocations(context.Context, rickmorty.LocationFilter, int) (rickmorty.Page[rickmorty.Location], error) {
	return rickmorty.Page[rickmorty.Location]{}, nil
}

func (f *fakeFetcher) GetLocation(_ context.Context, id int) (rickmorty.Location, error) {
	if l, ok := f.location[id]; ok {
		return l, nil
	}
	return rickmorty.Location{}, notFound("location")
}

func (f *fakeFetcher) GetLocationsByIDs(context.Context, []int) ([]rickmorty.Location, error) {
	return nil, nil
}

func (f *fakeFetcher) ListEpisodes(context.Context, rickmorty.EpisodeFilter, int) (rickmorty.Page[rickmorty.Episode], error) {
	return rickmorty.Page[rickmorty.Episode]{}, nil
}

func (f *fakeFetcher) GetEpisode(context.Context, int) (rickmorty.Episode, error) {
	return rickmorty.Episode{}, nil
}

func (f *fakeFetcher) GetEpisodesByIDs(_ context.Context, ids []int) ([]rickmorty.Episode, error) {
	out := make([]rickmorty.Episode, 0, len(ids))
	for _, id := range ids {
		if e, ok := f.episodes[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func ptr(s string) *string { return &s }

func rickFixture() *fakeFetcher {
	earth := rickmorty.Ref{Name: "Earth (C-137)", URL: "https://rickandmortyapi.com/api/location/1"}
	rick := rickmorty.Character{
		ID: 1, Name: "Rick Sanchez", Status: rickmorty.StatusAlive, Species: "Human",
		Gender: rickmorty.GenderMale, Origin: earth, Location: earth,
		Episode: []string{"https://rickandmortyapi.com/api/episode/1"},
		Created: "2017-11-04T18:48:46.250Z",
	}
	morty := rickmorty.Character{
		ID: 2, Name: "Morty Smith", Status: rickmorty.StatusDead, Species: "Human",
		Gender: rickmorty.GenderMale, Origin: rickmorty.Ref{Name: "unknown"}, Location: earth,
	}
	return &fakeFetcher{
		page: rickmorty.Page[rickmorty.Character]{
			Info:    rickmorty.Info{Count: 2, Pages: 1},
			Results: []rickmorty.Character{rick, morty},
		},
		character: map[int]rickmorty.Character{1: rick, 2: morty},
		location:  map[int]rickmorty.Location{1: {ID: 1, Name: "Earth (C-137)", Type: "Planet", Dimension: "Dimension C-137"}},
		episodes:  map[int]rickmorty.Episode{1: {ID: 1, Name: "Pilot", Code: "S01E01", AirDate: "December 2, 2013"}},
	}
}
