package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Movie mirrors one record returned by /api/movies.
type Movie struct {
	ID       MovieID `json:"id"`
	Title    string  `json:"title"`
	Year     int     `json:"year"`
	Genre    string  `json:"genre"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

// RatingLabel formats the rating the way cards display it, e.g. "8.5/10".
func (m Movie) RatingLabel() string {
	return strconv.FormatFloat(m.Rating, 'f', -1, 64) + "/10"
}

// MovieID is the canonical text form of a JSON scalar identifier. Numbers keep
// their literal spelling, strings are unquoted, null stays empty.
type MovieID string

// UnmarshalJSON accepts any JSON scalar.
func (id *MovieID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*id = MovieID(s)
		return nil
	case '{', '[':
		return fmt.Errorf("movie id must be a scalar, got %s", trimmed)
	default:
		*id = MovieID(trimmed)
		return nil
	}
}

// MarshalJSON writes numeric ids as numbers and everything else as strings.
func (id MovieID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(id), 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String returns the key form of the id.
func (id MovieID) String() string {
	return string(id)
}

// MovieListResponse is the envelope form {"movies": [...]} some backends serve.
type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

// HealthResponse mirrors /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthy reports whether the backend described itself as healthy.
func (h HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}
