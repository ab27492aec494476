package recommender

import (
	"math"
	"testing"

	"cineMatch/domain"
)

// The worked three-movie example: the user loves drama, so the hybrid
// score should put the drama/comedy crossover above the pure comedy.
func TestRank_HybridScoring(t *testing.T) {
	snap, err := BuildSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	ratings := map[uint64]float64{1: 1.0}
	pref, err := snap.PreferenceVector(ratings)
	if err != nil {
		t.Fatalf("PreferenceVector: %v", err)
	}

	recs := snap.Rank(pref, ratings, 2)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}

	if recs[0].MovieID != 3 {
		t.Errorf("first recommendation = movie %d, want 3", recs[0].MovieID)
	}
	// cos = 1/sqrt(2), quality = 0.5.
	wantTop := 0.5 / math.Sqrt2
	if !almostEqual(recs[0].Score, wantTop) {
		t.Errorf("top score = %v, want %v", recs[0].Score, wantTop)
	}

	if recs[1].MovieID != 2 {
		t.Errorf("second recommendation = movie %d, want 2", recs[1].MovieID)
	}
	if recs[1].Score != 0 {
		t.Errorf("orthogonal movie score = %v, want 0", recs[1].Score)
	}
}

func TestRank_ExcludesRatedMovies(t *testing.T) {
	snap, err := BuildSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	ratings := map[uint64]float64{1: 1.0, 3: 2.0}
	pref, err := snap.PreferenceVector(ratings)
	if err != nil {
		t.Fatalf("PreferenceVector: %v", err)
	}

	recs := snap.Rank(pref, ratings, 10)
	for _, r := range recs {
		if _, rated := ratings[r.MovieID]; rated {
			t.Errorf("rated movie %d appeared in recommendations", r.MovieID)
		}
	}
	if len(recs) != 1 {
		t.Errorf("expected 1 unrated movie, got %d", len(recs))
	}
}

func TestRank_NEdgeCases(t *testing.T) {
	snap, err := BuildSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	pref, err := snap.PreferenceVector(nil)
	if err != nil {
		t.Fatalf("PreferenceVector: %v", err)
	}

	if recs := snap.Rank(pref, nil, 0); len(recs) != 0 {
		t.Errorf("n=0 returned %d recommendations, want 0", len(recs))
	}
	if recs := snap.Rank(pref, nil, -1); len(recs) != 0 {
		t.Errorf("n=-1 returned %d recommendations, want 0", len(recs))
	}
	if recs := snap.Rank(pref, nil, 100); len(recs) != 3 {
		t.Errorf("n=100 returned %d recommendations, want all 3", len(recs))
	}
}

func TestRank_TieBreakByID(t *testing.T) {
	movies := []domain.Movie{
		{ID: 2, Title: "Overdrive", Genres: []string{"Action"}, AverageRating: 4.0},
		{ID: 5, Title: "Crash Course", Genres: []string{"Action"}, AverageRating: 4.0},
		{ID: 9, Title: "Redline", Genres: []string{"Action"}, AverageRating: 4.0},
	}

	snap, err := BuildSnapshot(movies)
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	pref, err := snap.PreferenceVector(map[uint64]float64{5: 1.0})
	if err != nil {
		t.Fatalf("PreferenceVector: %v", err)
	}

	rated := map[uint64]float64{5: 1.0}
	recs := snap.Rank(pref, rated, 10)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	// Identical scores fall back to ascending id.
	if recs[0].MovieID != 2 || recs[1].MovieID != 9 {
		t.Errorf("tie order = [%d %d], want [2 9]", recs[0].MovieID, recs[1].MovieID)
	}

	// Same input, same output.
	for i := 0; i < 20; i++ {
		again := snap.Rank(pref, rated, 10)
		for j := range recs {
			if again[j].MovieID != recs[j].MovieID {
				t.Fatalf("run %d: order changed at %d: %d vs %d", i, j, again[j].MovieID, recs[j].MovieID)
			}
		}
	}
}
