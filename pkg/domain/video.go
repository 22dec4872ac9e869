package domain

import (
	"fmt"
	"strings"
)

// VideoItem represents a single playable entry of the feed
type VideoItem struct {
	ID    int64  `json:"id" yaml:"id"`
	URI   string `json:"uri" yaml:"uri"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Direction represents the direction of a completed swipe
type Direction string

const (
	DirectionLeft  Direction = "left"  // dislike
	DirectionRight Direction = "right" // like
)

// feedback names used by the UI and the API as aliases of directions
const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// ParseDirection converts a direction or a feedback name into Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(DirectionRight), FeedbackLike:
		return DirectionRight, nil
	case string(DirectionLeft), FeedbackDislike:
		return DirectionLeft, nil
	}
	return "", fmt.Errorf("invalid direction %q", s)
}

// Valid reports whether d is one of the two swipe directions
func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Feedback returns the feedback name for the direction
func (d Direction) Feedback() string {
	if d == DirectionRight {
		return FeedbackLike
	}
	return FeedbackDislike
}

// String returns the direction name
func (d Direction) String() string {
	return string(d)
}
