package nutrition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gym-Brothers/Server/internal/inbody"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

// GenerateRequest is the client's input for a new nutrition plan.
type GenerateRequest struct {
	Goal          Goal        `json:"goal"`
	DietType      DietType    `json:"diet_type"`
	DurationWeeks int         `json:"duration_weeks"`
	Preferences   Preferences `json:"preferences"`
}

// Service generates and stores nutrition plans. Calorie targets come from the
// client's latest body-composition analysis.
type Service struct {
	repo   *sqliteRepository
	body   *inbody.Service
	logger *slog.Logger
}

// NewService creates a nutrition service backed by SQLite.
func NewService(db *sqlite.Database, body *inbody.Service, logger *slog.Logger) *Service {
	return &Service{
		repo:   newSQLiteRepository(db, logger),
		body:   body,
		logger: logger,
	}
}

// Generate builds a plan from the user's latest body-composition test and
// stores it. Returns inbody.ErrNoSnapshot when no test is recorded.
func (s *Service) Generate(ctx context.Context, userID int, req GenerateRequest) (Plan, error) {
	user, err := s.body.GetUser(ctx, userID)
	if err != nil {
		return Plan{}, fmt.Errorf("lookup user: %w", err)
	}
	snapshot, err := s.body.Latest(ctx, userID)
	if err != nil {
		return Plan{}, fmt.Errorf("load latest test: %w", err)
	}
	assessment, err := inbody.Analyze(snapshot, user.Profile)
	if err != nil {
		return Plan{}, fmt.Errorf("analyze snapshot: %w", err)
	}

	targets := Targets{
		Calories:          assessment.TargetCalories,
		WeightKg:          snapshot.WeightKg,
		BodyFatPercentage: snapshot.BodyFatPercentage,
	}
	plan := generatePlan(targets, req.Goal, req.DietType, req.DurationWeeks, req.Preferences)
	plan.UserID = userID

	stored, err := s.repo.createPlan(ctx, plan)
	if err != nil {
		return Plan{}, fmt.Errorf("store nutrition plan: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "nutrition plan generated",
		slog.Int("user_id", userID),
		slog.Int("plan_id", stored.ID),
		slog.String("goal", string(stored.Goal)),
		slog.Int("daily_calories", stored.DailyCalories))
	return stored, nil
}

// Plans returns plan headers for a user, newest first.
func (s *Service) Plans(ctx context.Context, userID int) ([]Plan, error) {
	return s.repo.listPlans(ctx, userID)
}

// Plan loads one plan with all days, meals and food items.
func (s *Service) Plan(ctx context.Context, userID, planID int) (Plan, error) {
	return s.repo.getPlan(ctx, userID, planID)
}
