// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/olegiv/onav-go/internal/store"
)

// Scheduler handles periodic maintenance, currently event log retention.
type Scheduler struct {
	queries       *store.Queries
	cron          *cron.Cron
	logger        *slog.Logger
	retentionDays int
}

// New creates a new scheduler instance. A retention of 0 days disables the
// event log sweep.
func New(queries *store.Queries, logger *slog.Logger, retentionDays int) *Scheduler {
	return &Scheduler{
		queries:       queries,
		cron:          cron.New(),
		logger:        logger,
		retentionDays: retentionDays,
	}
}

// Start begins the scheduler with a daily event retention sweep.
func (s *Scheduler) Start() error {
	if s.retentionDays <= 0 {
		s.logger.Info("event retention sweep disabled")
		return nil
	}

	// Daily at 03:10, off the top of the hour
	_, err := s.cron.AddFunc("10 3 * * *", func() {
		if err := s.sweepEvents(); err != nil {
			s.logger.Error("event retention sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()), "retention_days", s.retentionDays)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// sweepEvents deletes event log rows older than the retention window.
func (s *Scheduler) sweepEvents() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	deleted, err := s.queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		s.logger.Info("event retention sweep completed", "deleted", deleted, "cutoff", cutoff.Format(time.RFC3339))
	}
	return nil
}
