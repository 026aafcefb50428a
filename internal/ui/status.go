package ui

import "github.com/five82/portal/internal/rickmorty"

// statusFilters is the cycle order of the status filter. The empty status
// means no filter.
var statusFilters = []rickmorty.Status{
	"",
	rickmorty.StatusAlive,
	rickmorty.StatusDead,
	rickmorty.StatusUnknown,
}

// nextStatus returns the filter after current, wrapping to "all".
func nextStatus(current rickmorty.Status) rickmorty.Status {
	for i, s := range statusFilters {
		if s == current {
			return statusFilters[(i+1)%len(statusFilters)]
		}
	}
	return statusFilters[0]
}

// statusFilterLabel is the plural label shown for a filter choice.
func statusFilterLabel(s rickmorty.Status) string {
	switch s {
	case rickmorty.StatusAlive:
		return "Vivos"
	case rickmorty.StatusDead:
		return "Mortos"
	case rickmorty.StatusUnknown:
		return "Desconhecido"
	default:
		return "Todos"
	}
}
