package training

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gym-Brothers/Server/internal/inbody"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

// GenerateRequest is the client's input for a new training program.
type GenerateRequest struct {
	Type          ProgramType `json:"program_type"`
	Difficulty    Difficulty  `json:"difficulty"`
	DurationWeeks int         `json:"duration_weeks"`
	DaysPerWeek   int         `json:"days_per_week"`
}

// Service generates and stores training programs.
type Service struct {
	repo   *sqliteRepository
	body   *inbody.Service
	logger *slog.Logger
}

// NewService creates a training service backed by SQLite.
func NewService(db *sqlite.Database, body *inbody.Service, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		body:   body,
		logger: logger,
	}
}

// Generate builds a program for the user and stores it.
func (s *Service) Generate(ctx context.Context, userID int, req GenerateRequest) (Program, error) {
	if _, err := s.body.GetUser(ctx, userID); err != nil {
		return Program{}, fmt.Errorf("lookup user: %w", err)
	}

	program := generateProgram(req.Type, req.Difficulty, req.DurationWeeks, req.DaysPerWeek)
	program.UserID = userID

	stored, err := s.repo.createProgram(ctx, program)
	if err != nil {
		return Program{}, fmt.Errorf("store training program: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "training program generated",
		slog.Int("user_id", userID),
		slog.Int("program_id", stored.ID),
		slog.String("program_type", string(stored.Type)),
		slog.String("difficulty", string(stored.Difficulty)))
	return stored, nil
}

// Programs returns program headers for a user, newest first.
func (s *Service) Programs(ctx context.Context, userID int) ([]Program, error) {
	return s.repo.listPrograms(ctx, userID)
}

// Program loads one program with all days and exercises.
func (s *Service) Program(ctx context.Context, userID, programID int) (Program, error) {
	return s.repo.getProgram(ctx, userID, programID)
}

// Catalog returns the built-in exercise catalog grouped by focus area.
func Catalog() map[string][]Exercise {
	catalog := make(map[string][]Exercise, len(exerciseCatalog))
	for area, entries := range exerciseCatalog {
		exercises := make([]Exercise, 0, len(entries))
		for i, entry := range entries {
			exercise := scaleExercise(entry, DifficultyIntermediate)
			exercise.OrderIndex = i
			exercises = append(exercises, exercise)
		}
		catalog[area] = exercises
	}
	return catalog
}
