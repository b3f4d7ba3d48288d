package inbody

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

const dateFormat = time.DateOnly

// ErrNotFound signals a missing user.
var ErrNotFound = errors.NewSentinel("not found")

// ErrNoSnapshot signals a user without any recorded body-composition tests.
var ErrNoSnapshot = errors.NewSentinel("no body composition test recorded")

// sqliteRepository handles database operations for users and their
// body-composition tests.
type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{
		db:     db,
		logger: logger,
	}
}

// getUser retrieves a user with their demographic profile.
func (r *sqliteRepository) getUser(ctx context.Context, userID int) (User, error) {
	var (
		user        User
		dateOfBirth string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, name, date_of_birth, sex, activity_level
		FROM users
		WHERE id = ?`, userID).Scan(
		&user.ID,
		&user.Name,
		&dateOfBirth,
		&user.Profile.Sex,
		&user.Profile.ActivityLevel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("query user: %w", err)
	}
	user.Profile.DateOfBirth, err = time.Parse(dateFormat, dateOfBirth)
	if err != nil {
		return User{}, fmt.Errorf("parse date of birth: %w", err)
	}
	return user, nil
}

// createTest stores a new body-composition snapshot and returns it with the
// assigned ID.
func (r *sqliteRepository) createTest(ctx context.Context, snapshot Snapshot) (Snapshot, error) {
	var (
		trunk, armLeft, armRight, legLeft, legRight sql.NullFloat64
	)
	if snapshot.Segments != nil {
		trunk = sql.NullFloat64{Float64: snapshot.Segments.TrunkKg, Valid: true}
		armLeft = sql.NullFloat64{Float64: snapshot.Segments.ArmLeftKg, Valid: true}
		armRight = sql.NullFloat64{Float64: snapshot.Segments.ArmRightKg, Valid: true}
		legLeft = sql.NullFloat64{Float64: snapshot.Segments.LegLeftKg, Valid: true}
		legRight = sql.NullFloat64{Float64: snapshot.Segments.LegRightKg, Valid: true}
	}

	result, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO inbody_tests (
			user_id, test_date, weight_kg, height_cm,
			skeletal_muscle_mass_kg, body_fat_mass_kg, body_fat_percentage,
			total_body_water_l, basal_metabolic_rate_kcal, visceral_fat_level,
			trunk_muscle_mass_kg, arm_muscle_mass_left_kg, arm_muscle_mass_right_kg,
			leg_muscle_mass_left_kg, leg_muscle_mass_right_kg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.UserID,
		snapshot.TestDate.Format(dateFormat),
		snapshot.WeightKg,
		snapshot.HeightCm,
		snapshot.SkeletalMuscleMassKg,
		snapshot.BodyFatMassKg,
		snapshot.BodyFatPercentage,
		snapshot.TotalBodyWaterL,
		snapshot.BasalMetabolicRate,
		snapshot.VisceralFatLevel,
		trunk, armLeft, armRight, legLeft, legRight,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert inbody test: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return Snapshot{}, fmt.Errorf("last insert id: %w", err)
	}
	snapshot.ID = int(id)
	return snapshot, nil
}

// listTests returns all snapshots for a user, newest first.
func (r *sqliteRepository) listTests(ctx context.Context, userID int) ([]Snapshot, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, user_id, test_date, weight_kg, height_cm,
		       skeletal_muscle_mass_kg, body_fat_mass_kg, body_fat_percentage,
		       total_body_water_l, basal_metabolic_rate_kcal, visceral_fat_level,
		       trunk_muscle_mass_kg, arm_muscle_mass_left_kg, arm_muscle_mass_right_kg,
		       leg_muscle_mass_left_kg, leg_muscle_mass_right_kg
		FROM inbody_tests
		WHERE user_id = ?
		ORDER BY test_date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query inbody tests: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inbody tests: %w", err)
	}
	return snapshots, nil
}

// latestTest returns the most recent snapshot for a user.
func (r *sqliteRepository) latestTest(ctx context.Context, userID int) (Snapshot, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, user_id, test_date, weight_kg, height_cm,
		       skeletal_muscle_mass_kg, body_fat_mass_kg, body_fat_percentage,
		       total_body_water_l, basal_metabolic_rate_kcal, visceral_fat_level,
		       trunk_muscle_mass_kg, arm_muscle_mass_left_kg, arm_muscle_mass_right_kg,
		       leg_muscle_mass_left_kg, leg_muscle_mass_right_kg
		FROM inbody_tests
		WHERE user_id = ?
		ORDER BY test_date DESC, id DESC
		LIMIT 1`, userID)
	snapshot, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var (
		snapshot                                    Snapshot
		testDate                                    string
		trunk, armLeft, armRight, legLeft, legRight sql.NullFloat64
	)
	err := row.Scan(
		&snapshot.ID,
		&snapshot.UserID,
		&testDate,
		&snapshot.WeightKg,
		&snapshot.HeightCm,
		&snapshot.SkeletalMuscleMassKg,
		&snapshot.BodyFatMassKg,
		&snapshot.BodyFatPercentage,
		&snapshot.TotalBodyWaterL,
		&snapshot.BasalMetabolicRate,
		&snapshot.VisceralFatLevel,
		&trunk, &armLeft, &armRight, &legLeft, &legRight,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("scan inbody test: %w", err)
	}
	snapshot.TestDate, err = time.Parse(dateFormat, testDate)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse test date: %w", err)
	}
	if trunk.Valid {
		snapshot.Segments = &SegmentalMuscle{
			TrunkKg:    trunk.Float64,
			ArmLeftKg:  armLeft.Float64,
			ArmRightKg: armRight.Float64,
			LegLeftKg:  legLeft.Float64,
			LegRightKg: legRight.Float64,
		}
	}
	return snapshot, nil
}
