package recommender

import (
	"math"
	"strings"

	"cineMatch/domain"
)

// quality assigned to every movie when all raw ratings are equal
// (min-max scaling would divide by zero).
const flatQuality = 0.5

// FeatureSpace maps a normalized genre tag to its column index.
// It is rebuilt from scratch on every catalog change; column assignments
// from an old space are meaningless against a new one.
type FeatureSpace map[string]int

// Snapshot is the immutable derived state of one catalog version: the genre
// feature space, one TF-IDF vector per movie (row i belongs to Movies[i]),
// and min-max normalized quality. Readers take a snapshot reference once per
// request and never observe a half-rebuilt state.
type Snapshot struct {
	Movies  []domain.Movie
	Space   FeatureSpace
	Vectors [][]float64
	Quality []float64

	rowByID map[uint64]int
}

// Row resolves a movie id to its matrix row.
func (s *Snapshot) Row(movieID uint64) (int, bool) {
	row, ok := s.rowByID[movieID]
	return row, ok
}

// BuildSnapshot derives the full feature state from an ordered catalog.
// Movies must be sorted by ascending id; the ranker relies on that order for
// its tie-break. Returns ErrInvalidCatalog for an empty catalog.
func BuildSnapshot(movies []domain.Movie) (*Snapshot, error) {
	if len(movies) == 0 {
		return nil, ErrInvalidCatalog
	}

	snap := &Snapshot{
		Movies:  movies,
		Space:   make(FeatureSpace),
		Vectors: make([][]float64, len(movies)),
		Quality: make([]float64, len(movies)),
		rowByID: make(map[uint64]int, len(movies)),
	}

	// Pass 1: feature space (first-seen tag order) and document frequencies.
	tokenized := make([][]string, len(movies))
	docFreq := make(map[string]int)

	for i, m := range movies {
		snap.rowByID[m.ID] = i

		tokens := normalizeTags(m.Genres)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tag := range tokens {
			if _, ok := snap.Space[tag]; !ok {
				snap.Space[tag] = len(snap.Space)
			}
			seen[tag] = true
		}
		for tag := range seen {
			docFreq[tag]++
		}
	}

	// Pass 2: TF-IDF vectors. TF is relative tag frequency within the movie,
	// IDF is ln(catalog/df). A movie with no tags keeps an all-zero vector.
	total := float64(len(movies))
	for i, tokens := range tokenized {
		vec := make([]float64, len(snap.Space))
		if len(tokens) > 0 {
			counts := make(map[string]int, len(tokens))
			for _, tag := range tokens {
				counts[tag]++
			}
			for tag, count := range counts {
				tf := float64(count) / float64(len(tokens))
				idf := math.Log(total / float64(docFreq[tag]))
				vec[snap.Space[tag]] = tf * idf
			}
		}
		snap.Vectors[i] = vec
	}

	// Quality: min-max scaled over the full catalog.
	minR, maxR := movies[0].AverageRating, movies[0].AverageRating
	for _, m := range movies[1:] {
		if m.AverageRating < minR {
			minR = m.AverageRating
		}
		if m.AverageRating > maxR {
			maxR = m.AverageRating
		}
	}
	for i, m := range movies {
		if maxR == minR {
			snap.Quality[i] = flatQuality
			continue
		}
		snap.Quality[i] = (m.AverageRating - minR) / (maxR - minR)
	}

	return snap, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
