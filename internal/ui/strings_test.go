package ui

import (
	"testing"

	"github.com/five82/portal/internal/rickmorty"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  Rick Sanchez  ", 0, "Rick Sanchez"},
		{"Rick", 10, "Rick"},
		{"Rick Sanchez", 8, "Rick ..."},
		{"Rick", 2, "Ri"},
		{"Ábradolf Lincler", 6, "Ábr..."},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestPadRightAndColumn(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight should not cut; got %q", got)
	}
	if got := column("Rick Sanchez", 8); got != "Rick ..." {
		t.Fatalf("column = %q", got)
	}
	if got := column("Gêne", 6); got != "Gêne  " {
		t.Fatalf("column with accents = %q", got)
	}
}

func TestPluralAndDash(t *testing.T) {
	if plural(1, "espécie", "espécies") != "espécie" || plural(2, "espécie", "espécies") != "espécies" {
		t.Fatal("plural picked the wrong form")
	}
	if orDash("  ") != "-" || orDash("Scientist") != "Scientist" {
		t.Fatal("orDash mismatch")
	}
}

func TestStatusCycle(t *testing.T) {
	seq := []rickmorty.Status{"", rickmorty.StatusAlive, rickmorty.StatusDead, rickmorty.StatusUnknown}
	labels := []string{"Todos", "Vivos", "Mortos", "Desconhecido"}
	for i, s := range seq {
		if got := statusFilterLabel(s); got != labels[i] {
			t.Fatalf("statusFilterLabel(%q) = %q, want %q", s, got, labels[i])
		}
		if got := nextStatus(s); got != seq[(i+1)%len(seq)] {
			t.Fatalf("nextStatus(%q) = %q", s, got)
		}
	}
	if nextStatus("Zombie") != "" {
		t.Fatal("unknown status should reset to all")
	}
}
