package recommender

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"cineMatch/domain"
	"cineMatch/pkg/config"
	"cineMatch/pkg/logger"
)

// ---- Repository interfaces ----

type MovieRepository interface {
	// FindAll returns the full catalog ordered by ascending id.
	FindAll(ctx context.Context) ([]domain.Movie, error)
}

// ---- Usecase / Service ----

// RecommenderService owns the derived catalog state. Rebuilds are serialized
// by a mutex and published with an atomic pointer swap, so concurrent
// recommendation requests always read either the fully-old or the fully-new
// snapshot.
type RecommenderService struct {
	movieRepo MovieRepository
	cfg       config.RecommenderConfig

	rebuildMu sync.Mutex
	snap      atomic.Pointer[Snapshot]
}

func NewRecommenderService(movieRepo MovieRepository, cfg config.RecommenderConfig) *RecommenderService {
	return &RecommenderService{
		movieRepo: movieRepo,
		cfg:       cfg,
	}
}

// Rebuild reloads the whole catalog and recomputes the feature space,
// vectors, and normalized quality from scratch. Catalog adds are rare, so
// full recomputation is preferred over incremental updates.
func (s *RecommenderService) Rebuild(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	snap, err := BuildSnapshot(movies)
	if err != nil {
		return err
	}

	s.snap.Store(snap)

	RebuildsTotal.Inc()
	SnapshotMovies.Set(float64(len(snap.Movies)))
	SnapshotTags.Set(float64(len(snap.Space)))

	logger.Info("catalog snapshot rebuilt",
		"movies", len(snap.Movies),
		"tags", len(snap.Space),
	)

	return nil
}

// snapshot returns the active snapshot, building it lazily on first use.
func (s *RecommenderService) snapshot(ctx context.Context) (*Snapshot, error) {
	if snap := s.snap.Load(); snap != nil {
		return snap, nil
	}
	if err := s.Rebuild(ctx); err != nil {
		return nil, err
	}
	return s.snap.Load(), nil
}

// Recommend returns up to n movies for the given ratings, best first,
// excluding everything the user already rated. n above the configured cap is
// clamped; n <= 0 yields an empty result (not an error).
func (s *RecommenderService) Recommend(
	ctx context.Context,
	ratings map[uint64]float64,
	n int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if n > s.cfg.MaxN {
		n = s.cfg.MaxN
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
	logger.Debug("recommend",
		"trace_id", tid,
		"rated", len(ratings),
		"n", n,
		"catalog", len(snap.Movies),
	)

	return snap.Rank(pref, ratings, n), nil
}
