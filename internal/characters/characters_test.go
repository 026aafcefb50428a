package characters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/portal/internal/rickmorty"
)

func fixtures() []rickmorty.Character {
	earth := rickmorty.Ref{Name: "Earth (C-137)", URL: "https://rickandmortyapi.com/api/location/1"}
	return []rickmorty.Character{
		{ID: 1, Name: "Rick Sanchez", Status: rickmorty.StatusAlive, Species: "Human", Type: "Scientist", Gender: rickmorty.GenderMale, Origin: earth, Location: earth, Episode: []string{"1", "2", "3"}},
		{ID: 2, Name: "Morty Smith", Status: rickmorty.StatusAlive, Species: "Human", Type: "Teenager", Gender: rickmorty.GenderMale, Origin: earth, Location: earth, Episode: []string{"1", "2"}},
		{ID: 3, Name: "Summer Smith", Status: rickmorty.StatusAlive, Species: "Human", Type: "Teenager", Gender: rickmorty.GenderFemale, Origin: earth, Location: earth, Episode: []string{"1", "3"}},
	}
}

func names(records []rickmorty.Character) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func ids(records []rickmorty.Character) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestSortByName_OrdersAndDoesNotMutate(t *testing.T) {
	input := fixtures()
	original := fixtures()

	sorted := SortByName(input)
	assert.Equal(t, []string{"Morty Smith", "Rick Sanchez", "Summer Smith"}, names(sorted))
	if diff := cmp.Diff(original, input); diff != "" {
		t.Fatalf("SortByName mutated input (-want +got):\n%s", diff)
	}
}

func TestSortByName_StableForDuplicates(t *testing.T) {
	input := []rickmorty.Character{
		{ID: 10, Name: "Rick Sanchez"},
		{ID: 11, Name: "Beth Smith"},
		{ID: 12, Name: "Rick Sanchez"},
		{ID: 13, Name: "Rick Sanchez"},
	}
	assert.Equal(t, []int{11, 10, 12, 13}, ids(SortByName(input)))
}

func TestSortByName_LocaleAware(t *testing.T) {
	input := []rickmorty.Character{
		{ID: 1, Name: "Zeep Xanflorp"},
		{ID: 2, Name: "Ábradolf Lincler"},
		{ID: 3, Name: "abradolf"},
		{ID: 4, Name: "Beta-Seven"},
	}
	// Byte order would put "Ábradolf" last and "abradolf" after "Zeep".
	assert.Equal(t, []int{3, 2, 4, 1}, ids(SortByName(input)))
}

func TestFilterByStatus(t *testing.T) {
	records := fixtures()
	alive := Alive(records)
	require.Len(t, alive, 3)
	for _, r := range alive {
		assert.Equal(t, rickmorty.StatusAlive, r.Status)
	}

	dead := make([]rickmorty.Character, len(records))
	for i, r := range records {
		r.Status = rickmorty.StatusDead
		dead[i] = r
	}
	assert.Empty(t, Alive(dead))
	assert.Len(t, Dead(dead), 3)
	assert.Empty(t, FilterByStatus(records, rickmorty.StatusUnknown))
}

func TestSearchByName(t *testing.T) {
	records := fixtures()

	got := SearchByName(records, "Rick")
	require.Len(t, got, 1)
	assert.Equal(t, "Rick Sanchez", got[0].Name)

	got = SearchByName(records, "rick")
	require.Len(t, got, 1)
	assert.Equal(t, "Rick Sanchez", got[0].Name)

	assert.Equal(t, []string{"Morty Smith", "Summer Smith"}, names(SearchByName(records, "smith")))
	assert.Empty(t, SearchByName(records, "xyz"))
	assert.Len(t, SearchByName(records, ""), 3)
}

func TestFindByID(t *testing.T) {
	records := fixtures()

	got, ok := FindByID(records, 1)
	require.True(t, ok)
	assert.Equal(t, "Rick Sanchez", got.Name)

	_, ok = FindByID(records, 999)
	assert.False(t, ok)
}

func TestComputeStats(t *testing.T) {
	records := fixtures()

	stats := ComputeStats(records)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Alive)
	assert.Equal(t, 0, stats.Dead)
	assert.Equal(t, 0, stats.Unknown)
	assert.Equal(t, []string{"Human"}, stats.Species)

	extra := records[0]
	extra.ID = 999
	extra.Status = rickmorty.StatusDead
	mixed := append(fixtures(), extra)
	stats = ComputeStats(mixed)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Alive)
	assert.Equal(t, 1, stats.Dead)

	stats = ComputeStats([]rickmorty.Character{
		{ID: 1, Species: "Alien", Status: rickmorty.StatusUnknown},
		{ID: 2, Species: "Human", Status: rickmorty.StatusAlive},
		{ID: 3, Species: "Alien", Status: rickmorty.StatusDead},
	})
	want := Stats{Total: 3, Alive: 1, Dead: 1, Unknown: 1, Species: []string{"Alien", "Human"}}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("ComputeStats mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, Stats{Species: []string{}}, ComputeStats(nil))
}

func TestGroupBySpecies(t *testing.T) {
	records := []rickmorty.Character{
		{ID: 1, Species: "Human"},
		{ID: 2, Species: "Alien"},
		{ID: 3, Species: "Human"},
	}
	groups := GroupBySpecies(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "Human", groups[0].Species)
	assert.Equal(t, []int{1, 3}, ids(groups[0].Characters))
	assert.Equal(t, "Alien", groups[1].Species)
	assert.Equal(t, []int{2}, ids(groups[1].Characters))
	assert.Empty(t, GroupBySpecies(nil))
}
