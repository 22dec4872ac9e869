package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/umputun/swipefeed/pkg/domain"
)

// StoreSchema is the layout of the videos table read by StoreSource
//
//go:embed schema.sql
var StoreSchema string

// StoreSource reads videos from a SQLite database
type StoreSource struct {
	dsn string
}

// NewStoreSource makes a source for the database at dsn
func NewStoreSource(dsn string) *StoreSource {
	return &StoreSource{dsn: dsn}
}

func (s *StoreSource) String() string {
	return "store:" + s.dsn
}

type videoRow struct {
	ID    int64  `db:"id"`
	URI   string `db:"uri"`
	Title string `db:"title"`
}

// Load reads all videos ordered by position. Lock errors are retried.
func (s *StoreSource) Load(ctx context.Context) ([]domain.VideoItem, error) {
	conn, err := sqlx.Open("sqlite", s.dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	var rows []videoRow
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		rows = nil
		query := `SELECT id, uri, COALESCE(title, '') AS title FROM videos ORDER BY position, id`
		if err := conn.SelectContext(ctx, &rows, query); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("select videos: %w", err)}
		}
		return nil
	}, errCritical)
	if err != nil {
		return nil, err
	}

	res := make([]domain.VideoItem, 0, len(rows))
	for _, r := range rows {
		res = append(res, domain.VideoItem{ID: r.ID, URI: r.URI, Title: r.Title})
	}
	return res, nil
}

// errCritical is matched by criticalError to stop retries
var errCritical = fmt.Errorf("critical error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error { return e.err }

func (e *criticalError) Is(target error) bool { return target == errCritical }

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
