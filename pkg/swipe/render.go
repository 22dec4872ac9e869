package swipe

import (
	"github.com/umputun/swipefeed/pkg/domain"
)

// Display is what a shell needs to draw the feed
type Display struct {
	ActiveIndex   int        `json:"active_index"` // -1 if the cursor is past the last video
	LikedCount    int        `json:"liked"`
	DislikedCount int        `json:"disliked"`
	Total         int        `json:"total"`
	Finished      bool       `json:"finished"`
	Items         []ItemView `json:"items"`
}

// ItemView is a single video of the feed with its playback flag
type ItemView struct {
	Index  int              `json:"index"`
	Video  domain.VideoItem `json:"video"`
	Active bool             `json:"active"`
}

// Render projects state onto the videos list. It has no side effects.
func Render(state State, videos []domain.VideoItem) Display {
	res := Display{
		ActiveIndex:   -1,
		LikedCount:    len(state.Liked),
		DislikedCount: len(state.Disliked),
		Total:         len(videos),
		Items:         make([]ItemView, 0, len(videos)),
	}

	for i, v := range videos {
		active := state.Eligible(i)
		if active {
			res.ActiveIndex = i
		}
		res.Items = append(res.Items, ItemView{Index: i, Video: v, Active: active})
	}
	res.Finished = res.ActiveIndex < 0

	return res
}

// Active returns the active item, if any
func (d Display) Active() (ItemView, bool) {
	if d.ActiveIndex < 0 || d.ActiveIndex >= len(d.Items) {
		return ItemView{}, false
	}
	return d.Items[d.ActiveIndex], true
}
