package rickmorty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Status is a character's life status as reported by the API.
type Status string

const (
	StatusAlive   Status = "Alive"
	StatusDead    Status = "Dead"
	StatusUnknown Status = "unknown"
)

// Gender is a character's gender as reported by the API.
type Gender string

const (
	GenderFemale     Gender = "Female"
	GenderMale       Gender = "Male"
	GenderGenderless Gender = "Genderless"
	GenderUnknown    Gender = "unknown"
)

// Ref points at a related resource by name and URL. URL may be empty.
type Ref struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character mirrors /character/{id}.
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Species  string   `json:"species"`
	Type     string   `json:"type"`
	Gender   Gender   `json:"gender"`
	Origin   Ref      `json:"origin"`
	Location Ref      `json:"location"`
	Image    string   `json:"image"`
	Episode  []string `json:"episode"`
	URL      string   `json:"url"`
	Created  string   `json:"created"`
}

// Location mirrors /location/{id}.
type Location struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Dimension string   `json:"dimension"`
	Residents []string `json:"residents"`
	URL       string   `json:"url"`
	Created   string   `json:"created"`
}

// Episode mirrors /episode/{id}. Code has the form S01E01.
type Episode struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	AirDate    string   `json:"air_date"`
	Code       string   `json:"episode"`
	Characters []string `json:"characters"`
	URL        string   `json:"url"`
	Created    string   `json:"created"`
}

// Info carries pagination metadata for list endpoints.
type Info struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// HasNext reports whether the API advertises a following page.
func (i Info) HasNext() bool {
	return i.Next != nil && *i.Next != ""
}

// HasPrev reports whether the API advertises a preceding page.
func (i Info) HasPrev() bool {
	return i.Prev != nil && *i.Prev != ""
}

// Page is the {info, results} envelope returned by every list endpoint.
type Page[T any] struct {
	Info    Info `json:"info"`
	Results []T  `json:"results"`
}

// UnmarshalJSON rejects envelopes that lack info or results.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Info    *Info `json:"info"`
		Results *[]T  `json:"results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Info == nil || raw.Results == nil {
		return fmt.Errorf("%w: envelope missing info or results", ErrMalformedResponse)
	}
	p.Info = *raw.Info
	p.Results = *raw.Results
	return nil
}

// Validate checks every result that knows how to validate itself.
func (p *Page[T]) Validate() error {
	return validateAll(p.Results)
}

// Validate reports records without an identifier as malformed.
func (c *Character) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: character without id", ErrMalformedResponse)
	}
	return nil
}

// Validate reports records without an identifier as malformed.
func (l *Location) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("%w: location without id", ErrMalformedResponse)
	}
	return nil
}

// Validate reports records without an identifier as malformed.
func (e *Episode) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: episode without id", ErrMalformedResponse)
	}
	return nil
}

// CreatedAt returns the parsed creation timestamp, or the zero time.
func (c Character) CreatedAt() time.Time {
	return parseTime(c.Created)
}

// CreatedAt returns the parsed creation timestamp, or the zero time.
func (l Location) CreatedAt() time.Time {
	return parseTime(l.Created)
}

// CreatedAt returns the parsed creation timestamp, or the zero time.
func (e Episode) CreatedAt() time.Time {
	return parseTime(e.Created)
}

// validator is implemented by decoded payloads that can check their shape.
type validator interface {
	Validate() error
}

// oneOrMany decodes the multi-id endpoints, which answer with a bare object
// when a single id is requested and with an array otherwise.
type oneOrMany[T any] []T

func (m *oneOrMany[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return err
		}
		*m = []T{one}
		return nil
	}
	var many []T
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*m = many
	return nil
}

func (m *oneOrMany[T]) Validate() error {
	return validateAll(*m)
}

func validateAll[T any](items []T) error {
	for i := range items {
		if v, ok := any(&items[i]).(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("result %d: %w", i, err)
			}
		}
	}
	return nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
