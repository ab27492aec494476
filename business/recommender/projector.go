package recommender

import "fmt"

// PreferenceVector folds a user's {movie id: weight} ratings into a single
// vector in this snapshot's feature space: the weighted sum of the rated
// movies' vectors. Empty ratings yield the zero vector, which makes every
// similarity 0 downstream. A rating for a movie outside the snapshot fails
// with ErrUnknownMovie.
func (s *Snapshot) PreferenceVector(ratings map[uint64]float64) ([]float64, error) {
	vec := make([]float64, len(s.Space))

	for movieID, weight := range ratings {
		row, ok := s.rowByID[movieID]
		if !ok {
			return nil, fmt.Errorf("movie %d: %w", movieID, ErrUnknownMovie)
		}
		for j, v := range s.Vectors[row] {
			vec[j] += weight * v
		}
	}

	return vec, nil
}
