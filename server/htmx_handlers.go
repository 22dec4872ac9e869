package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/umputun/swipefeed/pkg/swipe"
)

const (
	// template names
	templatePage = "page.html"
	templateFeed = "feed"

	// client event fired to scroll the feed back to the first item
	eventScrollTop = "scroll-top"
)

// feedView holds data for rendering the feed page and its fragments
type feedView struct {
	swipe.Display
	Loop    bool
	Muted   bool
	Version string
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}
}

// feedPageHandler displays the full feed page
func (s *Server) feedPageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, templatePage, s.makeFeedView()); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// htmxSwipeHandler handles a swipe gesture completed in the browser and re-renders the feed
func (s *Server) htmxSwipeHandler(w http.ResponseWriter, r *http.Request) {
	ev, err := s.parseSwipe(r)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid swipe", err)
		return
	}
	s.renderFeed(w, s.apply(ev))
}

// htmxResetHandler handles the refresh button
func (s *Server) htmxResetHandler(w http.ResponseWriter, _ *http.Request) {
	s.renderFeed(w, s.apply(swipe.ResetRequested{}))
}

// renderFeed writes the feed fragment, asking the client to scroll up if requested
func (s *Server) renderFeed(w http.ResponseWriter, scrollToTop bool) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if scrollToTop {
		w.Header().Set("HX-Trigger", eventScrollTop)
	}
	if err := s.templates.ExecuteTemplate(w, templateFeed, s.makeFeedView()); err != nil {
		log.Printf("[ERROR] failed to render feed: %v", err)
		http.Error(w, "Failed to render feed", http.StatusInternalServerError)
	}
}

func (s *Server) makeFeedView() feedView {
	_, display := s.snapshot()
	loop, muted := s.config.GetPlayerConfig()
	return feedView{Display: display, Loop: loop, Muted: muted, Version: s.version}
}

// respondWithError logs the error and sends a plain text error to the client
func (s *Server) respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	log.Printf("[WARN] %s: %v", msg, err)
	http.Error(w, fmt.Sprintf("%s: %v", msg, err), code)
}
