package catalog

import (
	"context"
	"errors"
	"testing"

	"cineMatch/domain"
)

type fakeMovieRepository struct {
	movies []domain.Movie
	nextID uint64
	err    error
}

func (f *fakeMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	movie.ID = f.nextID
	f.movies = append(f.movies, *movie)
	return nil
}

func (f *fakeMovieRepository) FindByID(ctx context.Context, id uint64) (domain.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Movie{}, errors.New("movie not found")
}

func (f *fakeMovieRepository) FindAll(ctx context.Context) ([]domain.Movie, error) {
	return f.movies, nil
}

type fakeRebuilder struct {
	calls int
	err   error
}

func (f *fakeRebuilder) Rebuild(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestAddMovie_SeedsMissingRating(t *testing.T) {
	repo := &fakeMovieRepository{}
	rb := &fakeRebuilder{}
	svc := NewCatalogService(repo, rb, 3.0)

	movie := &domain.Movie{Title: "First Light", Genres: []string{"Drama"}}
	created, err := svc.AddMovie(context.Background(), movie)
	if err != nil {
		t.Fatalf("AddMovie: %v", err)
	}

	if created.AverageRating != 3.0 {
		t.Errorf("seeded rating = %v, want 3.0", created.AverageRating)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
}

func TestAddMovie_KeepsProvidedRating(t *testing.T) {
	repo := &fakeMovieRepository{}
	svc := NewCatalogService(repo, &fakeRebuilder{}, 3.0)

	movie := &domain.Movie{Title: "First Light", Genres: []string{"Drama"}, AverageRating: 4.2}
	created, err := svc.AddMovie(context.Background(), movie)
	if err != nil {
		t.Fatalf("AddMovie: %v", err)
	}
	if created.AverageRating != 4.2 {
		t.Errorf("rating = %v, want 4.2", created.AverageRating)
	}
}

func TestAddMovie_TriggersRebuild(t *testing.T) {
	repo := &fakeMovieRepository{}
	rb := &fakeRebuilder{}
	svc := NewCatalogService(repo, rb, 3.0)

	_, err := svc.AddMovie(context.Background(), &domain.Movie{Title: "First Light", Genres: []string{"Drama"}})
	if err != nil {
		t.Fatalf("AddMovie: %v", err)
	}
	if rb.calls != 1 {
		t.Errorf("rebuild calls = %d, want 1", rb.calls)
	}
}

func TestAddMovie_Validation(t *testing.T) {
	repo := &fakeMovieRepository{}
	rb := &fakeRebuilder{}
	svc := NewCatalogService(repo, rb, 3.0)

	if _, err := svc.AddMovie(context.Background(), &domain.Movie{Genres: []string{"Drama"}}); err == nil {
		t.Error("expected error for missing title")
	}
	if _, err := svc.AddMovie(context.Background(), &domain.Movie{Title: "No Tags"}); err == nil {
		t.Error("expected error for missing genres")
	}
	if rb.calls != 0 {
		t.Errorf("rebuild ran %d times for invalid movies", rb.calls)
	}
	if len(repo.movies) != 0 {
		t.Errorf("%d invalid movies persisted", len(repo.movies))
	}
}

func TestAddMovie_RebuildFailure(t *testing.T) {
	repo := &fakeMovieRepository{}
	rb := &fakeRebuilder{err: errors.New("boom")}
	svc := NewCatalogService(repo, rb, 3.0)

	_, err := svc.AddMovie(context.Background(), &domain.Movie{Title: "First Light", Genres: []string{"Drama"}})
	if err == nil {
		t.Fatal("expected rebuild error to propagate")
	}
}

func TestGetMovieByID(t *testing.T) {
	repo := &fakeMovieRepository{movies: []domain.Movie{{ID: 1, Title: "First Light"}}}
	svc := NewCatalogService(repo, &fakeRebuilder{}, 3.0)

	movie, err := svc.GetMovieByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetMovieByID: %v", err)
	}
	if movie.Title != "First Light" {
		t.Errorf("title = %q, want %q", movie.Title, "First Light")
	}

	if _, err := svc.GetMovieByID(context.Background(), 0); err == nil {
		t.Error("expected error for id 0")
	}
	if _, err := svc.GetMovieByID(context.Background(), 99); err == nil {
		t.Error("expected error for unknown id")
	}
}
