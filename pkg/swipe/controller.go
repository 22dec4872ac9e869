package swipe

import (
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/swipefeed/pkg/domain"
)

// Event is an inbound message delivered by a shell
type Event interface {
	fmt.Stringer
	event()
}

// SwipeCompleted is sent when the swipe gesture on the item at Index is done
type SwipeCompleted struct {
	Direction domain.Direction
	Index     int
}

// ResetRequested is sent by the refresh action
type ResetRequested struct{}

func (SwipeCompleted) event() {}
func (ResetRequested) event() {}

func (e SwipeCompleted) String() string { return fmt.Sprintf("swipe %s #%d", e.Direction, e.Index) }
func (ResetRequested) String() string   { return "reset" }

// Scroller is implemented by shells able to scroll back to the first item
type Scroller interface {
	ScrollToTop()
}

// ScrollerFunc adapts a function to Scroller
type ScrollerFunc func()

// ScrollToTop calls f
func (f ScrollerFunc) ScrollToTop() { f() }

// Controller owns the session state and the fixed list of videos.
// Events are applied one at a time, in arrival order.
type Controller struct {
	videos []domain.VideoItem

	mu        sync.Mutex
	state     State
	scrollers []Scroller
}

// NewController makes a controller for the given videos. The list is copied and never changed.
func NewController(videos []domain.VideoItem) *Controller {
	return &Controller{
		videos: append([]domain.VideoItem{}, videos...),
		state:  NewState(),
	}
}

// OnScrollToTop registers a scroller called after every reset
func (c *Controller) OnScrollToTop(s Scroller) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollers = append(c.scrollers, s)
}

// RecordSwipe classifies the video at index and advances the cursor to index+1
func (c *Controller) RecordSwipe(direction domain.Direction, index int) {
	if !direction.Valid() {
		lgr.Printf("[WARN] ignored swipe on #%d, invalid direction %q", index, direction)
		return
	}
	c.mu.Lock()
	c.state = c.state.Swipe(c.videos, direction, index)
	liked, disliked, cursor := len(c.state.Liked), len(c.state.Disliked), c.state.CurrentIndex
	c.mu.Unlock()
	lgr.Printf("[DEBUG] swipe %s on #%d, liked=%d, disliked=%d, cursor=%d", direction, index, liked, disliked, cursor)
}

// Reset clears the session and asks scrollers to go back to the first video
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = c.state.Reset()
	scrollers := append([]Scroller{}, c.scrollers...)
	c.mu.Unlock()

	lgr.Printf("[DEBUG] session reset")
	for _, s := range scrollers {
		s.ScrollToTop()
	}
}

// Apply dispatches a single event
func (c *Controller) Apply(e Event) {
	switch ev := e.(type) {
	case SwipeCompleted:
		c.RecordSwipe(ev.Direction, ev.Index)
	case ResetRequested:
		c.Reset()
	}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Display renders the current state
func (c *Controller) Display() Display {
	return Render(c.State(), c.videos)
}

// Videos returns a copy of the videos list
func (c *Controller) Videos() []domain.VideoItem {
	return append([]domain.VideoItem{}, c.videos...)
}

// Len returns the number of videos
func (c *Controller) Len() int {
	return len(c.videos)
}
