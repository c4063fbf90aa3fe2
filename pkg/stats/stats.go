// Package stats derives aggregate counts from a shelf collection.
package stats

import (
	"math"
	"slices"

	"github.com/agentstation/shelf/pkg/books"
	"github.com/agentstation/shelf/pkg/constants"
)

// Stats summarizes a collection.
type Stats struct {
	Total   int            `json:"total" yaml:"total"`
	Read    int            `json:"read" yaml:"read"`
	Percent float64        `json:"percent" yaml:"percent"` // read/total in percent, one decimal; 0 when empty
	Genres  map[string]int `json:"genres" yaml:"genres"`
	Authors map[string]int `json:"authors" yaml:"authors"`
	Decades map[int]int    `json:"decades" yaml:"decades"` // books whose year is not an integer are left out

	genreOrder  []string
	authorOrder []string
}

// Count is a name with the number of books it appears on.
type Count struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// DecadeCount is a decade with its number of books.
type DecadeCount struct {
	Decade int `json:"decade" yaml:"decade"`
	Count  int `json:"count" yaml:"count"`
}

// Compute aggregates list.
func Compute(list []books.Book) Stats {
	s := Stats{
		Total:   len(list),
		Genres:  make(map[string]int),
		Authors: make(map[string]int),
		Decades: make(map[int]int),
	}

	for _, b := range list {
		if b.ReadStatus {
			s.Read++
		}

		genre := string(b.Genre)
		if _, seen := s.Genres[genre]; !seen {
			s.genreOrder = append(s.genreOrder, genre)
		}
		s.Genres[genre]++

		if _, seen := s.Authors[b.Author]; !seen {
			s.authorOrder = append(s.authorOrder, b.Author)
		}
		s.Authors[b.Author]++

		if year, ok := b.PublicationYear.Int(); ok {
			s.Decades[Decade(year)]++
		}
	}

	if s.Total > 0 {
		s.Percent = math.RoundToEven(float64(s.Read)/float64(s.Total)*1000) / 10
	}
	return s
}

// Decade returns the decade bucket of year, rounding down for negative years.
func Decade(year int) int {
	d := year / constants.DecadeSpan
	if year%constants.DecadeSpan < 0 {
		d--
	}
	return d * constants.DecadeSpan
}

// Unread returns the number of unread books.
func (s Stats) Unread() int {
	return s.Total - s.Read
}

// TopAuthors returns up to n authors by descending count. Authors with the
// same count keep the order in which they first appear in the collection.
// A negative n returns every author.
func (s Stats) TopAuthors(n int) []Count {
	counts := ordered(s.Authors, s.authorOrder)
	slices.SortStableFunc(counts, func(a, b Count) int {
		return b.Count - a.Count
	})
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// GenreCounts returns the genre counts in first-encounter order.
func (s Stats) GenreCounts() []Count {
	return ordered(s.Genres, s.genreOrder)
}

// DecadeCounts returns the decade counts in ascending decade order.
func (s Stats) DecadeCounts() []DecadeCount {
	decades := make([]int, 0, len(s.Decades))
	for d := range s.Decades {
		decades = append(decades, d)
	}
	slices.Sort(decades)

	out := make([]DecadeCount, len(decades))
	for i, d := range decades {
		out[i] = DecadeCount{Decade: d, Count: s.Decades[d]}
	}
	return out
}

// ordered lists the counts in order, falling back to sorted keys when the
// Stats value was not built by Compute.
func ordered(m map[string]int, order []string) []Count {
	if len(order) != len(m) {
		order = make([]string, 0, len(m))
		for k := range m {
			order = append(order, k)
		}
		slices.Sort(order)
	}

	out := make([]Count, 0, len(order))
	for _, name := range order {
		out = append(out, Count{Name: name, Count: m[name]})
	}
	return out
}
