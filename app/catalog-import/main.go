package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cineMatch/domain"
	"cineMatch/internal/repository/postgres"
	"cineMatch/pkg/config"
	"cineMatch/pkg/database"
	"cineMatch/pkg/logger"
)

// catalog-import loads a movies CSV into the catalog table. Expected header
// columns (order-independent): film_title, director, genres, runtime,
// original_language, description, studios, average_rating. List columns
// (genres, studios) use ';' or '|' separators.
func main() {
	var (
		in = flag.String("movies", "movies.csv", "input CSV path for movies")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	movieRepo := postgres.NewMovieRepository(db)

	count, err := importMovies(ctx, movieRepo, *in, cfg.Recommender.SeedRating)
	if err != nil {
		logger.Fatal("Import failed", "error", err)
	}

	logger.Info("Catalog import finished", "file", *in, "movies", count)
}

func importMovies(ctx context.Context, repo *postgres.MovieRepository, path string, seedRating float64) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := readHeader(r)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if len(row) == 0 {
			continue
		}

		title := valueAt(header, row, "film_title")
		if title == "" {
			continue
		}

		rating := parseFloat(valueAt(header, row, "average_rating"), seedRating)

		movie := domain.Movie{
			Title:            title,
			Director:         valueAt(header, row, "director"),
			Genres:           splitList(valueAt(header, row, "genres")),
			Runtime:          parseFloat(valueAt(header, row, "runtime"), 0),
			OriginalLanguage: valueAt(header, row, "original_language"),
			Description:      valueAt(header, row, "description"),
			Studios:          splitList(valueAt(header, row, "studios")),
			AverageRating:    rating,
		}

		if err := repo.Create(ctx, &movie); err != nil {
			return count, fmt.Errorf("row %d (%s): %w", count+1, title, err)
		}
		count++
	}

	return count, nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header := make(map[string]int, len(row))
	for i, name := range row {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, name string) string {
	idx, ok := header[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	sep := ";"
	if strings.Contains(s, "|") {
		sep = "|"
	}

	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
