// Package format turns raw API values into display strings and parsed
// structures. Every function is pure and safe for concurrent use.
package format

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DateLong renders an ISO-8601 timestamp as "15 de janeiro de 2023".
// Input that does not parse is returned unchanged.
func DateLong(iso string) string {
	t, ok := parseInstant(iso)
	if !ok {
		return iso
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPT[t.Month()-1], t.Year())
}

// DateShort renders an ISO-8601 timestamp as "15/01/2023".
// Input that does not parse is returned unchanged.
func DateShort(iso string) string {
	t, ok := parseInstant(iso)
	if !ok {
		return iso
	}
	return t.Format("02/01/2006")
}

// Dates are shown in UTC so output does not depend on the host zone.
func parseInstant(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

var trailingID = regexp.MustCompile(`/(\d+)/?$`)

// IDFromURL returns the trailing numeric path segment of a resource URL,
// accepting one trailing slash. It returns 0 when there is none.
func IDFromURL(raw string) int {
	m := trailingID.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

// IDsFromURLs extracts ids from resource URLs, skipping any without one.
func IDsFromURLs(urls []string) []int {
	ids := make([]int, 0, len(urls))
	for _, u := range urls {
		if id := IDFromURL(u); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// EpisodeCode is a parsed S{season}E{episode} code.
type EpisodeCode struct {
	Season  int
	Episode int
}

// IsZero reports whether the code is the {0,0} no-match sentinel.
func (c EpisodeCode) IsZero() bool {
	return c.Season == 0 && c.Episode == 0
}

var episodeCode = regexp.MustCompile(`S(\d+)E(\d+)`)

// ParseEpisodeCode parses codes such as "S03E15". Matching is
// case-sensitive; anything else yields the zero EpisodeCode.
func ParseEpisodeCode(code string) EpisodeCode {
	m := episodeCode.FindStringSubmatch(code)
	if m == nil {
		return EpisodeCode{}
	}
	season, err1 := strconv.Atoi(m[1])
	episode, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return EpisodeCode{}
	}
	return EpisodeCode{Season: season, Episode: episode}
}

// EpisodeLabel renders "Temporada 3, Episódio 15", or code itself when it
// does not parse.
func EpisodeLabel(code string) string {
	parsed := ParseEpisodeCode(code)
	if parsed.IsZero() {
		return code
	}
	return fmt.Sprintf("Temporada %d, Episódio %d", parsed.Season, parsed.Episode)
}

var statusLabels = map[string]string{
	"Alive":   "Vivo",
	"Dead":    "Morto",
	"unknown": "Desconhecido",
}

var genderLabels = map[string]string{
	"Male":       "Masculino",
	"Female":     "Feminino",
	"Genderless": "Sem gênero",
	"unknown":    "Desconhecido",
}

var speciesLabels = map[string]string{
	"Human":                 "Humano",
	"Alien":                 "Alienígena",
	"Humanoid":              "Humanoide",
	"Robot":                 "Robô",
	"Animal":                "Animal",
	"Mythological Creature": "Criatura mitológica",
	"Disease":               "Doença",
	"Cronenberg":            "Cronenberg",
	"unknown":               "Desconhecido",
}

// Status translates a life status. Unknown values pass through.
func Status(value string) string {
	return lookup(statusLabels, value)
}

// Gender translates a gender. Unknown values pass through.
func Gender(value string) string {
	return lookup(genderLabels, value)
}

// Species translates a species. Unknown values pass through.
func Species(value string) string {
	return lookup(speciesLabels, value)
}

func lookup(table map[string]string, value string) string {
	if label, ok := table[value]; ok {
		return label
	}
	return value
}

const defaultTruncate = 50

// Truncate cuts text to max runes and appends "...". A negative max uses
// 50; zero keeps only the ellipsis.
func Truncate(text string, max int) string {
	if max < 0 {
		max = defaultTruncate
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// IsValidURL reports whether s is an absolute URL with a scheme and host.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
