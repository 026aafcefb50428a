package format

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateLong(t *testing.T) {
	got := DateLong("2023-01-15T10:30:00Z")
	assert.Equal(t, "15 de janeiro de 2023", got)
	assert.Equal(t, "4 de novembro de 2017", DateLong("2017-11-04T18:48:46.250Z"))
	assert.Equal(t, "data-invalida", DateLong("data-invalida"))
	assert.Equal(t, "", DateLong(""))
}

func TestDateShort(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), DateShort("2023-01-15T10:30:00Z"))

	got := DateShort("2023-12-25T00:00:00Z")
	assert.Equal(t, "25/12/2023", got)
	assert.Equal(t, "not a date", DateShort("not a date"))
}

func TestDates_ContainSourceComponents(t *testing.T) {
	for _, iso := range []string{
		"2017-11-04T18:48:46.250Z",
		"2020-02-29T23:59:59Z",
		"1999-07-01T00:00:00+02:00",
		"2021-10-10",
	} {
		long := DateLong(iso)
		short := DateShort(iso)
		assert.NotEmpty(t, long, iso)
		assert.NotEqual(t, iso, long, "DateLong(%q) should format", iso)
		assert.Contains(t, short, iso[:4], "year in DateShort(%q)", iso)
	}
	// Offsets are normalised to UTC before formatting.
	assert.Equal(t, "30/06/1999", DateShort("1999-07-01T00:00:00+02:00"))
}

func TestIDFromURL(t *testing.T) {
	cases := map[string]int{
		"https://x/character/42":                        42,
		"https://x/character/42/":                       42,
		"https://rickandmortyapi.com/api/character/1":   1,
		"https://rickandmortyapi.com/api/location/3":    3,
		"not-a-url":                                     0,
		"url-invalida":                                  0,
		"https://rickandmortyapi.com/api/character/":    0,
		"https://rickandmortyapi.com/api/character/4x2": 0,
		"":                                              0,
	}
	for in, want := range cases {
		assert.Equal(t, want, IDFromURL(in), "IDFromURL(%q)", in)
	}
}

func TestIDsFromURLs(t *testing.T) {
	got := IDsFromURLs([]string{
		"https://rickandmortyapi.com/api/episode/1",
		"",
		"https://rickandmortyapi.com/api/episode/28/",
	})
	assert.Equal(t, []int{1, 28}, got)
	assert.Empty(t, IDsFromURLs(nil))
}

func TestParseEpisodeCode(t *testing.T) {
	assert.Equal(t, EpisodeCode{Season: 1, Episode: 1}, ParseEpisodeCode("S01E01"))
	assert.Equal(t, EpisodeCode{Season: 3, Episode: 15}, ParseEpisodeCode("S03E15"))

	for _, in := range []string{"invalid", "", "s01e01", "S01-E01", "SE", "S1E", "E01S01"} {
		got := ParseEpisodeCode(in)
		assert.True(t, got.IsZero(), "ParseEpisodeCode(%q) = %+v, want zero", in, got)
	}
}

func TestEpisodeLabel(t *testing.T) {
	assert.Equal(t, "Temporada 3, Episódio 15", EpisodeLabel("S03E15"))
	assert.Equal(t, "Pilot", EpisodeLabel("Pilot"))
}

func TestNormalizers(t *testing.T) {
	assert.Equal(t, "Vivo", Status("Alive"))
	assert.Equal(t, "Morto", Status("Dead"))
	assert.Equal(t, "Desconhecido", Status("unknown"))
	assert.Equal(t, "outro", Status("outro"))
	assert.Equal(t, "Unknown", Status("Unknown"), "lookup is case-sensitive")

	assert.Equal(t, "Masculino", Gender("Male"))
	assert.Equal(t, "Feminino", Gender("Female"))
	assert.Equal(t, "Sem gênero", Gender("Genderless"))
	assert.Equal(t, "Desconhecido", Gender("unknown"))
	assert.Equal(t, "Fluid", Gender("Fluid"))

	assert.Equal(t, "Humano", Species("Human"))
	assert.Equal(t, "Criatura mitológica", Species("Mythological Creature"))
	assert.Equal(t, "Poopybutthole", Species("Poopybutthole"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, strings.Repeat("a", 50)+"...", Truncate(strings.Repeat("a", 60), -1))
	assert.Equal(t, "...", Truncate("Rick", 0))
	assert.Equal(t, "", Truncate("", 0))
	assert.Equal(t, "Olá...", Truncate("Olá mundo", 3))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://rickandmortyapi.com/api"))
	assert.False(t, IsValidURL("rickandmortyapi.com"))
	assert.False(t, IsValidURL("::"))
	assert.False(t, IsValidURL(""))
}
