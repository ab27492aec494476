package recommender

import (
	"errors"
	"math"
	"testing"

	"cineMatch/domain"
)

func testCatalog() []domain.Movie {
	return []domain.Movie{
		{ID: 1, Title: "The Quiet Hour", Genres: []string{"Drama"}, AverageRating: 4.0},
		{ID: 2, Title: "Banana Split", Genres: []string{"Comedy"}, AverageRating: 2.0},
		{ID: 3, Title: "Family Dinner", Genres: []string{"Drama", "Comedy"}, AverageRating: 3.0},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildSnapshot_EmptyCatalog(t *testing.T) {
	_, err := BuildSnapshot(nil)
	if !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("expected ErrInvalidCatalog, got %v", err)
	}
}

func TestBuildSnapshot_TFIDFVectors(t *testing.T) {
	snap, err := BuildSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	if len(snap.Space) != 2 {
		t.Fatalf("expected 2 feature columns, got %d", len(snap.Space))
	}

	drama := snap.Space["drama"]
	comedy := snap.Space["comedy"]
	if drama == comedy {
		t.Fatalf("drama and comedy share column %d", drama)
	}

	// Both tags appear in 2 of 3 movies: idf = ln(3/2).
	idf := math.Log(1.5)

	if got := snap.Vectors[0][drama]; !almostEqual(got, idf) {
		t.Errorf("movie 1 drama weight = %v, want %v", got, idf)
	}
	if got := snap.Vectors[0][comedy]; got != 0 {
		t.Errorf("movie 1 comedy weight = %v, want 0", got)
	}
	// Movie 3 has two tags, so tf = 1/2 for each.
	if got := snap.Vectors[2][drama]; !almostEqual(got, 0.5*idf) {
		t.Errorf("movie 3 drama weight = %v, want %v", got, 0.5*idf)
	}
	if got := snap.Vectors[2][comedy]; !almostEqual(got, 0.5*idf) {
		t.Errorf("movie 3 comedy weight = %v, want %v", got, 0.5*idf)
	}
}

func TestBuildSnapshot_QualityNormalization(t *testing.T) {
	snap, err := BuildSnapshot(testCatalog())
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	want := []float64{1.0, 0.0, 0.5}
	for i, q := range snap.Quality {
		if !almostEqual(q, want[i]) {
			t.Errorf("quality[%d] = %v, want %v", i, q, want[i])
		}
		if q < 0 || q > 1 {
			t.Errorf("quality[%d] = %v outside [0,1]", i, q)
		}
	}
}

func TestBuildSnapshot_FlatQuality(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Genres: []string{"Action"}, AverageRating: 3.5},
		{ID: 2, Genres: []string{"Horror"}, AverageRating: 3.5},
	}

	snap, err := BuildSnapshot(movies)
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	for i, q := range snap.Quality {
		if q != flatQuality {
			t.Errorf("quality[%d] = %v, want %v when all ratings equal", i, q, flatQuality)
		}
	}
}

func TestBuildSnapshot_ZeroTagMovie(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Genres: []string{"Drama"}, AverageRating: 4.0},
		{ID: 2, Genres: nil, AverageRating: 2.0},
	}

	snap, err := BuildSnapshot(movies)
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	for j, v := range snap.Vectors[1] {
		if v != 0 {
			t.Errorf("tagless movie vector[%d] = %v, want 0", j, v)
		}
	}
}

func TestBuildSnapshot_TagNormalization(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Genres: []string{" Drama "}, AverageRating: 4.0},
		{ID: 2, Genres: []string{"drama"}, AverageRating: 2.0},
	}

	snap, err := BuildSnapshot(movies)
	if err != nil {
		t.Fatalf("BuildSnapshot: %v", err)
	}

	if len(snap.Space) != 1 {
		t.Fatalf("expected case/space-folded tags to share one column, got %d", len(snap.Space))
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	zero := []float64{0, 0}
	v := []float64{1, 2}

	if got := cosine(zero, v); got != 0 {
		t.Errorf("cosine(zero, v) = %v, want 0", got)
	}
	if got := cosine(zero, zero); got != 0 {
		t.Errorf("cosine(zero, zero) = %v, want 0", got)
	}
}
