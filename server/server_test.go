package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/swipe"
	"github.com/umputun/swipefeed/server/mocks"
)

var testVideos = []domain.VideoItem{
	{ID: 1, URI: "https://cdn.example.com/a.mp4", Title: "Alpha"},
	{ID: 2, URI: "https://cdn.example.com/b.mp4"},
	{ID: 3, URI: "https://cdn.example.com/c.mp4", Title: "Gamma"},
}

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return listen, 30 * time.Second
		},
		GetPlayerConfigFunc: func() (bool, bool) {
			return true, true
		},
	}
}

// testServer creates a server backed by a real controller over testVideos
func testServer(t *testing.T) (*Server, *swipe.Controller) {
	t.Helper()
	ctrl := swipe.NewController(testVideos)
	return New(testConfig(":8080"), ctrl, "test", false), ctrl
}

func TestServer_New(t *testing.T) {
	feed := &mocks.FeedControllerMock{OnScrollToTopFunc: func(swipe.Scroller) {}}

	srv := New(testConfig(":8080"), feed, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	require.Len(t, feed.OnScrollToTopCalls(), 1)
	assert.Same(t, srv, feed.OnScrollToTopCalls()[0].S)
	assert.NotNil(t, srv.templates.Lookup(templatePage))
	assert.NotNil(t, srv.templates.Lookup(templateFeed))
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), swipe.NewController(testVideos), "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "swipefeed", resp.Header.Get("App-Name"))

	// shutdown server
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}
}

func TestServer_Routes(t *testing.T) {
	srv, _ := testServer(t)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	tests := []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/v1/status", http.StatusOK},
		{http.MethodGet, "/api/v1/state", http.StatusOK},
		{http.MethodGet, "/api/v1/videos", http.StatusOK},
		{http.MethodPost, "/api/v1/swipe/0/right", http.StatusOK},
		{http.MethodPost, "/api/v1/swipe/9/right", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/reset", http.StatusOK},
		{http.MethodPost, "/swipe/1/left", http.StatusOK},
		{http.MethodPost, "/swipe/1/up", http.StatusBadRequest},
		{http.MethodPost, "/reset", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, http.NoBody)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.code, resp.StatusCode)
		})
	}
}

func TestServer_ScrollToTop(t *testing.T) {
	srv, ctrl := testServer(t)

	assert.False(t, srv.apply(swipe.SwipeCompleted{Direction: domain.DirectionRight, Index: 0}))
	assert.True(t, srv.apply(swipe.ResetRequested{}))

	// reset made outside of the server still reaches it
	session := srv.Session()
	ctrl.Reset()
	assert.NotEqual(t, session, srv.Session())
	_, err := uuid.Parse(srv.Session())
	assert.NoError(t, err)
}

func TestServer_ScrollToTopOnlyForOwnReset(t *testing.T) {
	var scroller swipe.Scroller
	feed := &mocks.FeedControllerMock{
		OnScrollToTopFunc: func(s swipe.Scroller) { scroller = s },
		ApplyFunc: func(swipe.Event) {
			scroller.ScrollToTop() // reset from another client lands while this event is applied
		},
	}
	srv := New(testConfig(":8080"), feed, "test", false)
	session := srv.Session()

	assert.False(t, srv.apply(swipe.SwipeCompleted{Direction: domain.DirectionLeft, Index: 1}))
	assert.NotEqual(t, session, srv.Session())
	assert.True(t, srv.apply(swipe.ResetRequested{}))
	assert.Len(t, feed.ApplyCalls(), 2)
}
