package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/swipefeed/pkg/domain"
	"github.com/umputun/swipefeed/pkg/swipe"
	"github.com/umputun/swipefeed/server/mocks"
)

func decodeState(t *testing.T, w *httptest.ResponseRecorder) stateResponse {
	t.Helper()
	var res stateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestServer_statusHandler(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.InDelta(t, 3, status["videos"], 0.001)
	assert.NotEmpty(t, status["time"])
}

func TestServer_stateHandler(t *testing.T) {
	srv, ctrl := testServer(t)
	ctrl.RecordSwipe(domain.DirectionLeft, 0)

	req := httptest.NewRequest("GET", "/api/v1/state", http.NoBody)
	w := httptest.NewRecorder()
	srv.stateHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	res := decodeState(t, w)
	assert.Equal(t, 1, res.Cursor)
	assert.Equal(t, 1, res.ActiveIndex)
	assert.Equal(t, 0, res.LikedCount)
	assert.Equal(t, 1, res.DislikedCount)
	assert.Empty(t, res.Liked)
	assert.Equal(t, []domain.VideoItem{testVideos[0]}, res.Disliked)
	require.Len(t, res.Items, 3)
	assert.True(t, res.Items[1].Active)
	assert.False(t, res.ScrollToTop)
	assert.Equal(t, srv.Session(), res.Session)
}

func TestServer_videosHandler(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("GET", "/api/v1/videos", http.NoBody)
	w := httptest.NewRecorder()
	srv.videosHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var videos []domain.VideoItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &videos))
	assert.Equal(t, testVideos, videos)
}

func TestServer_swipeHandler(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		srv, _ := testServer(t)
		swipeReq := func(index, direction string) *httptest.ResponseRecorder {
			req := httptest.NewRequest("POST", "/api/v1/swipe/"+index+"/"+direction, http.NoBody)
			req.SetPathValue("index", index)
			req.SetPathValue("direction", direction)
			w := httptest.NewRecorder()
			srv.swipeHandler(w, req)
			return w
		}

		w := swipeReq("0", "right")
		require.Equal(t, http.StatusOK, w.Code)
		res := decodeState(t, w)
		assert.Equal(t, []domain.VideoItem{testVideos[0]}, res.Liked)
		assert.Empty(t, res.Disliked)
		assert.Equal(t, 1, res.ActiveIndex)

		w = swipeReq("1", "dislike")
		require.Equal(t, http.StatusOK, w.Code)
		res = decodeState(t, w)
		assert.Equal(t, []domain.VideoItem{testVideos[1]}, res.Disliked)
		assert.Equal(t, 2, res.Cursor)

		// out of order swipe past the end
		w = swipeReq("2", "like")
		require.Equal(t, http.StatusOK, w.Code)
		res = decodeState(t, w)
		assert.Equal(t, 3, res.Cursor)
		assert.Equal(t, -1, res.ActiveIndex)
		assert.True(t, res.Finished)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name, index, direction, errMsg string
		}{
			{"not a number", "abc", "left", "invalid video index"},
			{"negative", "-1", "left", "out of range"},
			{"past the end", "3", "left", "out of range"},
			{"bad direction", "0", "up", "invalid direction"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				feed := &mocks.FeedControllerMock{
					OnScrollToTopFunc: func(swipe.Scroller) {},
					LenFunc:           func() int { return 3 },
					ApplyFunc:         func(swipe.Event) { t.Fatal("event must not be delivered") },
				}
				srv := New(testConfig(":8080"), feed, "test", false)

				req := httptest.NewRequest("POST", "/api/v1/swipe/x/y", http.NoBody)
				req.SetPathValue("index", tt.index)
				req.SetPathValue("direction", tt.direction)
				w := httptest.NewRecorder()
				srv.swipeHandler(w, req)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Contains(t, body["error"], tt.errMsg)
				assert.Empty(t, feed.ApplyCalls())
			})
		}
	})

	t.Run("delivers event", func(t *testing.T) {
		feed := &mocks.FeedControllerMock{
			OnScrollToTopFunc: func(swipe.Scroller) {},
			LenFunc:           func() int { return 3 },
			ApplyFunc:         func(swipe.Event) {},
			StateFunc:         func() swipe.State { return swipe.NewState() },
			VideosFunc:        func() []domain.VideoItem { return testVideos },
		}
		srv := New(testConfig(":8080"), feed, "test", false)

		req := httptest.NewRequest("POST", "/api/v1/swipe/2/right", http.NoBody)
		req.SetPathValue("index", "2")
		req.SetPathValue("direction", "right")
		w := httptest.NewRecorder()
		srv.swipeHandler(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, feed.ApplyCalls(), 1)
		assert.Equal(t, swipe.SwipeCompleted{Direction: domain.DirectionRight, Index: 2}, feed.ApplyCalls()[0].E)
	})
}

func TestServer_resetHandler(t *testing.T) {
	srv, ctrl := testServer(t)
	ctrl.RecordSwipe(domain.DirectionRight, 0)
	ctrl.RecordSwipe(domain.DirectionLeft, 1)
	session := srv.Session()

	req := httptest.NewRequest("POST", "/api/v1/reset", http.NoBody)
	w := httptest.NewRecorder()
	srv.resetHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	res := decodeState(t, w)
	assert.Empty(t, res.Liked)
	assert.Empty(t, res.Disliked)
	assert.Equal(t, 0, res.Cursor)
	assert.Equal(t, 0, res.ActiveIndex)
	assert.True(t, res.ScrollToTop)
	assert.NotEqual(t, session, res.Session)
}
