package training

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

// ErrNotFound signals a missing training program.
var ErrNotFound = errors.NewSentinel("training program not found")

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

// createProgram stores a program with all its days and exercises in one
// transaction, parents before children.
func (r *sqliteRepository) createProgram(ctx context.Context, program Program) (Program, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Program{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	equipment, err := json.Marshal(program.EquipmentNeeded)
	if err != nil {
		return Program{}, fmt.Errorf("marshal equipment: %w", err)
	}
	muscles, err := json.Marshal(program.TargetMuscles)
	if err != nil {
		return Program{}, fmt.Errorf("marshal target muscles: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO training_programs (
			user_id, name, description, program_type, difficulty,
			duration_weeks, days_per_week, estimated_duration_minutes,
			equipment_needed, target_muscles
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		program.UserID, program.Name, program.Description, program.Type,
		program.Difficulty, program.DurationWeeks, program.DaysPerWeek,
		program.DurationMinutes, string(equipment), string(muscles),
	)
	if err != nil {
		return Program{}, fmt.Errorf("insert training program: %w", err)
	}
	programID, err := result.LastInsertId()
	if err != nil {
		return Program{}, fmt.Errorf("training program id: %w", err)
	}
	program.ID = int(programID)

	for di := range program.Days {
		day := &program.Days[di]
		focusAreas, err := json.Marshal(emptyAsList(day.FocusAreas))
		if err != nil {
			return Program{}, fmt.Errorf("marshal focus areas: %w", err)
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO training_days (
				program_id, day_number, week_number, name, description,
				rest_day, estimated_duration_minutes, focus_areas,
				warm_up, cool_down
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			program.ID, day.DayNumber, day.WeekNumber, day.Name,
			day.Description, day.RestDay, day.DurationMinutes,
			string(focusAreas), day.WarmUp, day.CoolDown,
		)
		if err != nil {
			return Program{}, fmt.Errorf("insert training day %d: %w", day.DayNumber, err)
		}
		dayID, err := result.LastInsertId()
		if err != nil {
			return Program{}, fmt.Errorf("training day id: %w", err)
		}
		day.ID = int(dayID)

		for ei := range day.Exercises {
			exercise := &day.Exercises[ei]
			targetMuscles, err := json.Marshal(exercise.TargetMuscles)
			if err != nil {
				return Program{}, fmt.Errorf("marshal exercise muscles: %w", err)
			}
			equipment, err := json.Marshal(exercise.Equipment)
			if err != nil {
				return Program{}, fmt.Errorf("marshal exercise equipment: %w", err)
			}
			result, err := tx.ExecContext(ctx, `
				INSERT INTO exercises (
					day_id, order_index, name, exercise_type, sets, reps,
					duration_seconds, rest_seconds, target_muscles,
					equipment, instructions
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				day.ID, exercise.OrderIndex, exercise.Name, exercise.Type,
				exercise.Sets, exercise.Reps, exercise.DurationSeconds,
				exercise.RestSeconds, string(targetMuscles), string(equipment),
				exercise.Instructions,
			)
			if err != nil {
				return Program{}, fmt.Errorf("insert exercise %s: %w", exercise.Name, err)
			}
			exerciseID, err := result.LastInsertId()
			if err != nil {
				return Program{}, fmt.Errorf("exercise id: %w", err)
			}
			exercise.ID = int(exerciseID)
		}
	}

	if err := tx.Commit(); err != nil {
		return Program{}, fmt.Errorf("commit training program: %w", err)
	}
	return program, nil
}

// listPrograms returns program headers for a user, newest first, without days.
func (r *sqliteRepository) listPrograms(ctx context.Context, userID int) ([]Program, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, user_id, name, description, program_type, difficulty,
		       duration_weeks, days_per_week, estimated_duration_minutes,
		       equipment_needed, target_muscles
		FROM training_programs
		WHERE user_id = ?
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query training programs: %w", err)
	}
	defer rows.Close()

	var programs []Program
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training programs: %w", err)
	}
	return programs, nil
}

// getProgram loads a full program including days and exercises.
func (r *sqliteRepository) getProgram(ctx context.Context, userID, programID int) (Program, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, program_type, difficulty,
		       duration_weeks, days_per_week, estimated_duration_minutes,
		       equipment_needed, target_muscles
		FROM training_programs
		WHERE id = ? AND user_id = ?`, programID, userID)
	program, err := scanProgram(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Program{}, ErrNotFound
	}
	if err != nil {
		return Program{}, err
	}

	if program.Days, err = r.loadDays(ctx, program.ID); err != nil {
		return Program{}, err
	}
	return program, nil
}

func (r *sqliteRepository) loadDays(ctx context.Context, programID int) ([]Day, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, day_number, week_number, name, description, rest_day,
		       estimated_duration_minutes, focus_areas, warm_up, cool_down
		FROM training_days
		WHERE program_id = ?
		ORDER BY day_number`, programID)
	if err != nil {
		return nil, fmt.Errorf("query training days: %w", err)
	}
	defer rows.Close()

	var days []Day
	for rows.Next() {
		var (
			day        Day
			focusAreas string
		)
		if err := rows.Scan(
			&day.ID, &day.DayNumber, &day.WeekNumber, &day.Name,
			&day.Description, &day.RestDay, &day.DurationMinutes,
			&focusAreas, &day.WarmUp, &day.CoolDown,
		); err != nil {
			return nil, fmt.Errorf("scan training day: %w", err)
		}
		if err := json.Unmarshal([]byte(focusAreas), &day.FocusAreas); err != nil {
			return nil, fmt.Errorf("unmarshal focus areas: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate training days: %w", err)
	}

	for i := range days {
		if days[i].Exercises, err = r.loadExercises(ctx, days[i].ID); err != nil {
			return nil, err
		}
	}
	return days, nil
}

func (r *sqliteRepository) loadExercises(ctx context.Context, dayID int) ([]Exercise, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, order_index, name, exercise_type, sets, reps,
		       duration_seconds, rest_seconds, target_muscles, equipment,
		       instructions
		FROM exercises
		WHERE day_id = ?
		ORDER BY order_index`, dayID)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var (
			exercise                 Exercise
			targetMuscles, equipment string
		)
		if err := rows.Scan(
			&exercise.ID, &exercise.OrderIndex, &exercise.Name, &exercise.Type,
			&exercise.Sets, &exercise.Reps, &exercise.DurationSeconds,
			&exercise.RestSeconds, &targetMuscles, &equipment,
			&exercise.Instructions,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		if err := json.Unmarshal([]byte(targetMuscles), &exercise.TargetMuscles); err != nil {
			return nil, fmt.Errorf("unmarshal exercise muscles: %w", err)
		}
		if err := json.Unmarshal([]byte(equipment), &exercise.Equipment); err != nil {
			return nil, fmt.Errorf("unmarshal exercise equipment: %w", err)
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgram(row rowScanner) (Program, error) {
	var (
		program            Program
		equipment, muscles string
	)
	err := row.Scan(
		&program.ID, &program.UserID, &program.Name, &program.Description,
		&program.Type, &program.Difficulty, &program.DurationWeeks,
		&program.DaysPerWeek, &program.DurationMinutes, &equipment, &muscles,
	)
	if err != nil {
		return Program{}, fmt.Errorf("scan training program: %w", err)
	}
	if err := json.Unmarshal([]byte(equipment), &program.EquipmentNeeded); err != nil {
		return Program{}, fmt.Errorf("unmarshal equipment: %w", err)
	}
	if err := json.Unmarshal([]byte(muscles), &program.TargetMuscles); err != nil {
		return Program{}, fmt.Errorf("unmarshal target muscles: %w", err)
	}
	return program, nil
}

// emptyAsList keeps JSON columns as [] instead of null for empty slices.
func emptyAsList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
