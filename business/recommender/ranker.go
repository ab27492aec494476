package recommender

import (
	"sort"

	"cineMatch/domain"
)

// Rank scores every movie in the snapshot by
// cosine(preference, movie) * quality, drops movies the user already rated,
// and returns up to n results by descending score. Ties keep ascending
// catalog-id order (Movies is id-sorted and the sort is stable), so equal
// inputs always produce the same output order.
func (s *Snapshot) Rank(pref []float64, rated map[uint64]float64, n int) []domain.Recommendation {
	if n <= 0 {
		return []domain.Recommendation{}
	}

	type scoredRow struct {
		row   int
		score float64
	}

	scored := make([]scoredRow, 0, len(s.Movies))
	for i, m := range s.Movies {
		if _, ok := rated[m.ID]; ok {
			continue
		}
		sim := cosine(pref, s.Vectors[i])
		scored = append(scored, scoredRow{row: i, score: sim * s.Quality[i]})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if n > len(scored) {
		n = len(scored)
	}

	out := make([]domain.Recommendation, 0, n)
	for _, sc := range scored[:n] {
		m := s.Movies[sc.row]
		out = append(out, domain.Recommendation{
			MovieID:       m.ID,
			Title:         m.Title,
			AverageRating: m.AverageRating,
			Genres:        m.Genres,
			Score:         sc.score,
		})
	}

	return out
}
