// Package swipe implements the feed controller: classification state of the
// session and the two transitions changing it, swipe and reset.
package swipe

import (
	"github.com/umputun/swipefeed/pkg/domain"
)

// State is the classification state of a session. It is a value, every
// transition returns a new State and leaves the old one untouched.
type State struct {
	Liked        []domain.VideoItem `json:"liked"`
	Disliked     []domain.VideoItem `json:"disliked"`
	CurrentIndex int                `json:"current_index"`
}

// NewState returns the initial state, cursor on the first video and nothing classified
func NewState() State {
	return State{Liked: []domain.VideoItem{}, Disliked: []domain.VideoItem{}}
}

// Swipe classifies the video at index and moves the cursor right after it.
// The cursor is set to index+1 even if index is not the current one, so a late
// or repeated event can skip or rewind playback. index must be in range of videos.
// A direction other than left or right is not a swipe, the state is returned as is.
func (s State) Swipe(videos []domain.VideoItem, direction domain.Direction, index int) State {
	if !direction.Valid() {
		return s
	}
	video := videos[index]
	res := State{Liked: s.Liked, Disliked: s.Disliked, CurrentIndex: index + 1}
	switch direction {
	case domain.DirectionRight:
		res.Liked = appendCopy(s.Liked, video)
	case domain.DirectionLeft:
		res.Disliked = appendCopy(s.Disliked, video)
	}
	return res
}

// Reset drops all classifications and returns the cursor to the first video
func (s State) Reset() State {
	return NewState()
}

// Eligible reports whether the video at index is the one allowed to play
func (s State) Eligible(index int) bool {
	return index == s.CurrentIndex
}

// Classified returns the number of classified videos
func (s State) Classified() int {
	return len(s.Liked) + len(s.Disliked)
}

// clone returns a deep copy, safe to hand out to renderers
func (s State) clone() State {
	return State{
		Liked:        append([]domain.VideoItem{}, s.Liked...),
		Disliked:     append([]domain.VideoItem{}, s.Disliked...),
		CurrentIndex: s.CurrentIndex,
	}
}

// appendCopy appends to a fresh backing array, so states never share tails
func appendCopy(items []domain.VideoItem, item domain.VideoItem) []domain.VideoItem {
	res := make([]domain.VideoItem, len(items), len(items)+1)
	copy(res, items)
	return append(res, item)
}
