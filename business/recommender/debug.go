package recommender

import (
	"context"
	"fmt"
	"sort"

	"cineMatch/domain"
	"cineMatch/pkg/logger"
)

// DebugRecommend returns the per-movie score components (similarity, quality,
// final score) for inspection. Same candidate set and ordering rules as
// Recommend.
func (s *RecommenderService) DebugRecommend(
	ctx context.Context,
	ratings map[uint64]float64,
	n int,
) ([]domain.DebugRecommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if n > s.cfg.MaxN {
		n = s.cfg.MaxN
	}
	if n <= 0 {
		return []domain.DebugRecommendation{}, nil
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pref, err := snap.PreferenceVector(ratings)
	if err != nil {
		return nil, err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("debug_recommend",
		"trace_id", tid,
		"rated", len(ratings),
		"n", n,
	)

	out := make([]domain.DebugRecommendation, 0, len(snap.Movies))
	for i, m := range snap.Movies {
		if _, ok := ratings[m.ID]; ok {
			continue
		}
		sim := cosine(pref, snap.Vectors[i])
		out = append(out, domain.DebugRecommendation{
			MovieID:    m.ID,
			Title:      m.Title,
			Similarity: sim,
			Quality:    snap.Quality[i],
			FinalScore: sim * snap.Quality[i],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})

	if n < len(out) {
		out = out[:n]
	}

	return out, nil
}
