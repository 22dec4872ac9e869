// Package catalog loads the fixed list of videos served by the feed.
// The list is assembled once at startup from one or more sources and is never
// changed afterwards.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/swipefeed/pkg/domain"
)

// Source provides videos for the catalog
type Source interface {
	Load(ctx context.Context) ([]domain.VideoItem, error)
	String() string
}

// Loader merges videos from all sources, in the order sources were given
type Loader struct {
	sources []Source
	workers int
}

// ErrEmpty returned when sources produced no videos at all
var ErrEmpty = errors.New("catalog is empty")

// NewLoader makes a loader running up to workers sources concurrently
func NewLoader(workers int, sources ...Source) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{sources: sources, workers: workers}
}

// Default returns the built-in sample videos
func Default() []domain.VideoItem {
	return []domain.VideoItem{
		{ID: 1, URI: "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4", Title: "Big Buck Bunny"},
		{ID: 2, URI: "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4", Title: "Elephants Dream"},
		{ID: 3, URI: "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4", Title: "For Bigger Blazes"},
	}
}

// Load gets videos from all sources. Without sources the default samples are returned.
func (l *Loader) Load(ctx context.Context) ([]domain.VideoItem, error) {
	if len(l.sources) == 0 {
		lgr.Printf("[INFO] no catalog sources configured, using %d sample videos", len(Default()))
		return Default(), nil
	}

	results := make([][]domain.VideoItem, len(l.sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, src := range l.sources {
		g.Go(func() error {
			items, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("load %s: %w", src, err)
			}
			lgr.Printf("[DEBUG] loaded %d videos from %s", len(items), src)
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := []domain.VideoItem{}
	for _, items := range results {
		res = append(res, items...)
	}
	if len(res) == 0 {
		return nil, ErrEmpty
	}

	res = assignIDs(res)
	if err := Validate(res); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	lgr.Printf("[INFO] catalog loaded, %d videos from %d sources", len(res), len(l.sources))
	return res, nil
}

// Validate checks ids are positive and unique and every video has a locator
func Validate(videos []domain.VideoItem) error {
	seen := make(map[int64]int, len(videos))
	for i, v := range videos {
		if v.ID <= 0 {
			return fmt.Errorf("video #%d: id must be positive, got %d", i, v.ID)
		}
		if strings.TrimSpace(v.URI) == "" {
			return fmt.Errorf("video #%d (id %d): empty uri", i, v.ID)
		}
		if prev, ok := seen[v.ID]; ok {
			return fmt.Errorf("video #%d: duplicate id %d, already used by #%d", i, v.ID, prev)
		}
		seen[v.ID] = i
	}
	return nil
}

// assignIDs gives sequential ids, above the largest explicit one, to videos without id
func assignIDs(videos []domain.VideoItem) []domain.VideoItem {
	var maxID int64
	for _, v := range videos {
		maxID = max(maxID, v.ID)
	}
	res := make([]domain.VideoItem, len(videos))
	for i, v := range videos {
		if v.ID == 0 {
			maxID++
			v.ID = maxID
		}
		res[i] = v
	}
	return res
}

// Static is a source made of inline videos
type Static []domain.VideoItem

// Load returns a copy of inline videos
func (s Static) Load(context.Context) ([]domain.VideoItem, error) {
	return append([]domain.VideoItem{}, s...), nil
}

func (s Static) String() string {
	return fmt.Sprintf("static(%d)", len(s))
}
