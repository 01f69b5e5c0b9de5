package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

const (
	catalogTitle = "Movie Picture Catalog"
	loadingText  = "Loading movies..."

	maxCardWidth = 72
)

// Field is one labeled line on a card.
type Field struct {
	Label string
	Value string
}

// Card is the display form of one movie, keyed by the movie's id.
type Card struct {
	Key    string
	Title  string
	Fields []Field
}

// layout carries presentation settings that are not part of ViewState.
type layout struct {
	Width   int // zero leaves cards unconstrained
	Compact bool
}

// buildCards maps movies to cards in collection order. Fields always appear
// as Year, Genre, Director, Rating.
func buildCards(movies []catalog.Movie) []Card {
	cards := make([]Card, 0, len(movies))
	for _, movie := range movies {
		cards = append(cards, Card{
			Key:   movie.ID.String(),
			Title: movie.Title,
			Fields: []Field{
				{Label: "Year", Value: strconv.Itoa(movie.Year)},
				{Label: "Genre", Value: movie.Genre},
				{Label: "Director", Value: movie.Director},
				{Label: "Rating", Value: movie.RatingLabel()},
			},
		})
	}
	return cards
}

// render draws the whole view for s. It has no side effects: the same
// arguments always produce the same string.
func render(s state.ViewState, styles Styles, l layout) string {
	header := renderHeader(s, styles)
	if s == nil || s.Loading() {
		return header
	}
	cards := renderCards(s.Movies(), styles, l)
	if cards == "" {
		return header
	}
	return header + "\n" + cards
}

// renderHeader draws the heading plus, depending on the state, the loading
// text or the error banner.
func renderHeader(s state.ViewState, styles Styles) string {
	heading := styles.Heading.Render(catalogTitle)
	if s == nil || s.Loading() {
		return heading + "\n" + styles.LoadingText.Render(loadingText)
	}
	if msg := s.Err(); msg != "" {
		return heading + "\n" + styles.Banner.Render(msg)
	}
	return heading
}

func renderCards(movies []catalog.Movie, styles Styles, l layout) string {
	cards := buildCards(movies)
	if len(cards) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, renderCard(card, styles, l))
	}
	sep := "\n"
	if l.Compact {
		sep = "\n\n"
	}
	return strings.Join(rendered, sep)
}

func renderCard(card Card, styles Styles, l layout) string {
	lines := make([]string, 0, len(card.Fields)+1)
	lines = append(lines, styles.CardTitle.Render(card.Title))
	for _, f := range card.Fields {
		lines = append(lines, styles.Label.Render(f.Label+":")+" "+styles.Value.Render(f.Value))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, lines...)

	frame := styles.Card
	if l.Compact {
		frame = styles.CompactCard
	}
	if l.Width > 0 {
		w := min(l.Width, maxCardWidth) - frame.GetHorizontalBorderSize()
		if w > 0 {
			frame = frame.Width(w)
		}
	}
	return frame.Render(body)
}
