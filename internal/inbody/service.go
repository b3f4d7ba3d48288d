package inbody

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

// Service exposes body-composition tracking and analysis.
type Service struct {
	repo   *sqliteRepository
	logger *slog.Logger
}

// NewService creates a body-composition service backed by SQLite.
func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		logger: logger,
	}
}

// GetUser returns a user with their demographic profile.
func (s *Service) GetUser(ctx context.Context, userID int) (User, error) {
	return s.repo.getUser(ctx, userID)
}

// RecordTest validates and stores a new body-composition snapshot.
func (s *Service) RecordTest(ctx context.Context, snapshot Snapshot) (Snapshot, error) {
	if snapshot.WeightKg <= 0 || snapshot.HeightCm <= 0 {
		return Snapshot{}, errors.Wrap(ErrInvalidMeasurement, "record test",
			slog.Float64("weight_kg", snapshot.WeightKg),
			slog.Float64("height_cm", snapshot.HeightCm))
	}
	if _, err := s.repo.getUser(ctx, snapshot.UserID); err != nil {
		return Snapshot{}, fmt.Errorf("lookup user: %w", err)
	}
	stored, err := s.repo.createTest(ctx, snapshot)
	if err != nil {
		return Snapshot{}, fmt.Errorf("store test: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "body composition test recorded",
		slog.Int("user_id", stored.UserID), slog.Int("test_id", stored.ID))
	return stored, nil
}

// History returns all snapshots for a user, newest first.
func (s *Service) History(ctx context.Context, userID int) ([]Snapshot, error) {
	if _, err := s.repo.getUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return s.repo.listTests(ctx, userID)
}

// Latest returns the most recent snapshot for a user.
func (s *Service) Latest(ctx context.Context, userID int) (Snapshot, error) {
	return s.repo.latestTest(ctx, userID)
}

// AnalyzeLatest runs the analyzer over the user's most recent snapshot.
func (s *Service) AnalyzeLatest(ctx context.Context, userID int) (Assessment, error) {
	user, err := s.repo.getUser(ctx, userID)
	if err != nil {
		return Assessment{}, fmt.Errorf("lookup user: %w", err)
	}
	snapshot, err := s.repo.latestTest(ctx, userID)
	if err != nil {
		return Assessment{}, fmt.Errorf("load latest test: %w", err)
	}
	assessment, err := Analyze(snapshot, user.Profile)
	if err != nil {
		return Assessment{}, fmt.Errorf("analyze snapshot: %w", err)
	}
	return assessment, nil
}
