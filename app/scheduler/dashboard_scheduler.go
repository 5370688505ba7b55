// Package scheduler
package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/budun/backoffice/app/dto"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// SnapshotRefresher is the minimal interface the scheduler needs from the dashboard flow.
// This keeps the scheduler independent and easy to test.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) (*dto.DashboardSnapshotResponse, error)
}

// DashboardScheduler periodically recomputes the dashboard snapshot and stores it in the cache.
// A failed refresh is logged and the previous snapshot stays in place.
type DashboardScheduler struct {
	refresher SnapshotRefresher
	logger    *log.Logger
	interval  time.Duration

	logWriter io.Closer
}

func NewDashboardScheduler(refresher SnapshotRefresher, logger *log.Logger, interval time.Duration) *DashboardScheduler {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	s := &DashboardScheduler{
		refresher: refresher,
		logger:    logger,
		interval:  interval,
	}

	// Initialize scheduler-specific logger (to stdout and a rotating file)
	if err := s.initSchedulerLogger(); err != nil {
		// Fallback to default stdout logger if file logger init fails
		s.logger = log.Default()
		s.logger.Printf("scheduler: failed to initialize file logger: %v", err)
	}

	return s
}

// initSchedulerLogger configures a logger that writes to both stdout and a rotating file under data/ (or /data)
func (s *DashboardScheduler) initSchedulerLogger() error {
	// Prefer relative data/ then fallback to /data for containerized environments
	candidates := []string{
		filepath.Join("data"),
		"/data",
	}
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			continue
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "scheduler.log"),
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		s.logWriter = rotator
		mw := io.MultiWriter(os.Stdout, rotator)
		// log.Logger is goroutine-safe; include timestamps with microseconds and UTC
		s.logger = log.New(mw, "scheduler ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
		return nil
	}
	return fmt.Errorf("could not create scheduler log directory in any candidate location")
}

// Start launches the scheduler loop in a background goroutine and returns a stop function
func (s *DashboardScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				s.close()
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *DashboardScheduler) runOnce(ctx context.Context) {
	start := time.Now()
	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Printf("dashboard snapshot refresh failed, keeping previous snapshot: %v", err)
		return
	}
	s.logger.Printf("dashboard snapshot refreshed in %s", time.Since(start))
}

func (s *DashboardScheduler) close() {
	if s.logWriter != nil {
		_ = s.logWriter.Close()
	}
}
