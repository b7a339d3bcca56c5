package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// Privacy-conscious visitor record. Raw IPs are never stored.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

type VisitorStats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TopPaths         []PathStat      `json:"top_paths"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

const createVisitorTable = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_visited_at ON visitors (visited_at);`

type VisitorStore struct {
	db        *sql.DB
	salt      string
	retention time.Duration
	logger    *zap.Logger
	metrics   *Metrics
	now       func() time.Time
	pending   sync.WaitGroup
}

func OpenVisitorStore(path string, retention time.Duration, logger *zap.Logger, metrics *Metrics) (*VisitorStore, error) {
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open visitor database: %w", err)
	}
	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createVisitorTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create visitors table: %w", err)
	}

	salt, err := generateToken()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to generate hashing salt: %w", err)
	}

	logger.Info("Privacy: visitor tracking enabled with hashed IP addresses",
		zap.String("db", path),
		zap.Duration("retention", retention))

	return &VisitorStore{
		db:        db,
		salt:      salt,
		retention: retention,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}, nil
}

// HashIP is consistent per IP for the lifetime of the process.
func (s *VisitorStore) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

func (s *VisitorStore) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record visitor: %w", err)
	}
	if s.metrics != nil {
		s.metrics.VisitorsRecorded.Inc()
	}
	return nil
}

// Track records a visit in the background so page responses never wait on storage.
func (s *VisitorStore) Track(ip, userAgent, path string) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Record(ctx, ip, userAgent, path); err != nil {
			s.logger.Warn("Error recording visitor", zap.Error(err))
		}
	}()
}

// Wait blocks until every background Track call has finished.
func (s *VisitorStore) Wait() {
	s.pending.Wait()
}

// Cleanup deletes visitor records older than the retention window.
func (s *VisitorStore) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention).Unix()
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up visitor data: %w", err)
	}

	rowsDeleted, _ := result.RowsAffected()
	if rowsDeleted > 0 {
		s.logger.Info("Privacy cleanup removed old visitor records",
			zap.Int64("deleted", rowsDeleted),
			zap.Duration("retention", s.retention))
	}
	return rowsDeleted, nil
}

func (s *VisitorStore) Stats(ctx context.Context) (*VisitorStats, error) {
	stats := &VisitorStats{TopPaths: []PathStat{}}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Unix()
	weekAgo := now.Add(-7 * 24 * time.Hour).Unix()

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo}, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count visitors: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load top paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, err
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

func (s *VisitorStore) Recent(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visitors
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent visitors: %w", err)
	}
	defer rows.Close()

	visitors := []VisitorMetric{}
	for rows.Next() {
		var v VisitorMetric
		var visitedAt int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &visitedAt); err != nil {
			return nil, err
		}
		v.Timestamp = time.Unix(visitedAt, 0).UTC()
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func (s *VisitorStore) Close() error {
	s.pending.Wait()
	return s.db.Close()
}

// visitorTracking records page views, skipping assets, operational endpoints and
// clients that send Do Not Track.
func visitorTracking(store *VisitorStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/admin/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/favicon") ||
			path == "/healthz" ||
			path == "/metrics" {
			c.Next()
			return
		}

		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store.Track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		}
	}
}
