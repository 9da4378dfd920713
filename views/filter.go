// Package views derives the displayed subset and ordering of the client
// list. Derivations are pure: they never mutate the input slice.
package views

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"clientregistro/models"
)

// SortKey selects the attribute the list is ordered by. The zero value keeps
// the store's fetch order.
type SortKey string

const (
	SortNone   SortKey = ""
	SortName   SortKey = "nombre"
	SortDate   SortKey = "fecha"
	SortPeople SortKey = "personas"
)

// Query is the user's current filter and ordering choice.
type Query struct {
	Search    string
	Status    models.Status
	Sort      SortKey
	Ascending bool
}

// Apply returns the records matching q, ordered by its sort key. A record is
// included iff the status filter is empty or matches, and the lowercased
// search text appears in at least one attribute's string form.
func Apply(clients []models.Client, q Query) []models.Client {
	needle := strings.ToLower(q.Search)

	out := make([]models.Client, 0, len(clients))
	for _, c := range clients {
		if q.Status != "" && c.Estatus != q.Status {
			continue
		}
		if needle != "" && !matches(c, needle) {
			continue
		}
		out = append(out, c)
	}

	switch q.Sort {
	case SortName:
		// Locale-aware ordering, so accented names land where a Spanish
		// speaker expects them.
		col := collate.New(language.Spanish)
		sort.Slice(out, func(i, j int) bool {
			cmp := col.CompareString(out[i].Nombre, out[j].Nombre)
			if q.Ascending {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortDate:
		sort.Slice(out, func(i, j int) bool {
			ti, _ := models.ParseFecha(out[i].FechaSolicitud)
			tj, _ := models.ParseFecha(out[j].FechaSolicitud)
			if q.Ascending {
				return ti.Before(tj)
			}
			return tj.Before(ti)
		})
	case SortPeople:
		sort.Slice(out, func(i, j int) bool {
			if q.Ascending {
				return out[i].NumeroPersonas < out[j].NumeroPersonas
			}
			return out[i].NumeroPersonas > out[j].NumeroPersonas
		})
	}

	return out
}

func matches(c models.Client, needle string) bool {
	for _, v := range c.SearchableValues() {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
