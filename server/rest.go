package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/swipe"
)

// stateResponse is the JSON view of the session
type stateResponse struct {
	swipe.Display
	Session     string             `json:"session"`
	Liked       []domain.VideoItem `json:"liked_videos"`
	Disliked    []domain.VideoItem `json:"disliked_videos"`
	Cursor      int                `json:"current_index"`
	ScrollToTop bool               `json:"scroll_to_top,omitempty"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"videos":  s.feed.Len(),
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// stateHandler returns the current session state with the display model
func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.makeStateResponse(false))
}

// videosHandler returns the videos list
func (s *Server) videosHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.feed.Videos())
}

// swipeHandler records a completed swipe on the item at index
func (s *Server) swipeHandler(w http.ResponseWriter, r *http.Request) {
	ev, err := s.parseSwipe(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	scroll := s.apply(ev)
	renderJSON(w, r, http.StatusOK, s.makeStateResponse(scroll))
}

// resetHandler resets the session
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	scroll := s.apply(swipe.ResetRequested{})
	renderJSON(w, r, http.StatusOK, s.makeStateResponse(scroll))
}

func (s *Server) makeStateResponse(scroll bool) stateResponse {
	st, display := s.snapshot()
	return stateResponse{
		Display:     display,
		Session:     s.Session(),
		Liked:       st.Liked,
		Disliked:    st.Disliked,
		Cursor:      st.CurrentIndex,
		ScrollToTop: scroll,
	}
}

// snapshot returns the state and its projection taken at the same moment
func (s *Server) snapshot() (swipe.State, swipe.Display) {
	st := s.feed.State()
	return st, swipe.Render(st, s.feed.Videos())
}

// parseSwipe builds the swipe event from path values. The index must point to an existing video.
func (s *Server) parseSwipe(r *http.Request) (swipe.SwipeCompleted, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return swipe.SwipeCompleted{}, fmt.Errorf("invalid video index")
	}
	if index < 0 || index >= s.feed.Len() {
		return swipe.SwipeCompleted{}, fmt.Errorf("video index %d out of range [0, %d)", index, s.feed.Len())
	}

	direction, err := domain.ParseDirection(r.PathValue("direction"))
	if err != nil {
		return swipe.SwipeCompleted{}, err
	}
	return swipe.SwipeCompleted{Direction: direction, Index: index}, nil
}
