package domain

type Recommendation struct {
	MovieID       uint64   `json:"movie_id"`
	Title         string   `json:"title"`
	AverageRating float64  `json:"average_rating"`
	Genres        []string `json:"genres"`
	Score         float64  `json:"score"`
}

type DebugRecommendation struct {
	MovieID    uint64  `json:"movie_id"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"` // cosine(preference, movie)
	Quality    float64 `json:"quality"`    // min-max normalized average rating in [0,1]
	FinalScore float64 `json:"final_score"`
}
