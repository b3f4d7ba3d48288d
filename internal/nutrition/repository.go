package nutrition

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/sqlite"
)

// ErrNotFound signals a missing nutrition plan.
var ErrNotFound = errors.NewSentinel("nutrition plan not found")

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

// createPlan stores a plan with all its days, meals and food items in one
// transaction. Parents are inserted before children so foreign keys always
// resolve.
func (r *sqliteRepository) createPlan(ctx context.Context, plan Plan) (Plan, error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return Plan{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	mealTiming, err := json.Marshal(plan.MealTiming)
	if err != nil {
		return Plan{}, fmt.Errorf("marshal meal timing: %w", err)
	}
	supplements, err := json.Marshal(plan.Supplements)
	if err != nil {
		return Plan{}, fmt.Errorf("marshal supplements: %w", err)
	}
	allergies, err := json.Marshal(emptyAsList(plan.Allergies))
	if err != nil {
		return Plan{}, fmt.Errorf("marshal allergies: %w", err)
	}
	preferences, err := json.Marshal(emptyAsList(plan.FoodPreferences))
	if err != nil {
		return Plan{}, fmt.Errorf("marshal food preferences: %w", err)
	}
	avoid, err := json.Marshal(emptyAsList(plan.FoodsToAvoid))
	if err != nil {
		return Plan{}, fmt.Errorf("marshal foods to avoid: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO nutrition_plans (
			user_id, name, description, goal, diet_type, duration_weeks,
			daily_calories, protein_grams, carbs_grams, fat_grams, fiber_grams,
			water_liters, meals_per_day, meal_timing, supplements,
			allergies, food_preferences, foods_to_avoid
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.UserID, plan.Name, plan.Description, plan.Goal, plan.DietType,
		plan.DurationWeeks, plan.DailyCalories, plan.ProteinGrams,
		plan.CarbsGrams, plan.FatGrams, plan.FiberGrams, plan.WaterLiters,
		plan.MealsPerDay, string(mealTiming), string(supplements),
		string(allergies), string(preferences), string(avoid),
	)
	if err != nil {
		return Plan{}, fmt.Errorf("insert nutrition plan: %w", err)
	}
	planID, err := result.LastInsertId()
	if err != nil {
		return Plan{}, fmt.Errorf("nutrition plan id: %w", err)
	}
	plan.ID = int(planID)

	for di := range plan.Days {
		day := &plan.Days[di]
		hydration, err := json.Marshal(day.HydrationSchedule)
		if err != nil {
			return Plan{}, fmt.Errorf("marshal hydration schedule: %w", err)
		}
		result, err := tx.ExecContext(ctx, `
			INSERT INTO nutrition_days (
				plan_id, day_number, week_number, name, description,
				total_calories, total_protein, total_carbs, total_fat,
				total_fiber, daily_tip, hydration_schedule
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			plan.ID, day.DayNumber, day.WeekNumber, day.Name, day.Description,
			day.TotalCalories, day.TotalProtein, day.TotalCarbs, day.TotalFat,
			day.TotalFiber, day.DailyTip, string(hydration),
		)
		if err != nil {
			return Plan{}, fmt.Errorf("insert nutrition day %d: %w", day.DayNumber, err)
		}
		dayID, err := result.LastInsertId()
		if err != nil {
			return Plan{}, fmt.Errorf("nutrition day id: %w", err)
		}
		day.ID = int(dayID)

		for mi := range day.Meals {
			meal := &day.Meals[mi]
			result, err := tx.ExecContext(ctx, `
				INSERT INTO meals (
					day_id, meal_type, name, suggested_time, prep_time_minutes,
					calories, protein, carbs, fat, fiber
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				day.ID, meal.Type, meal.Name, meal.Time, meal.PrepTimeMinutes,
				meal.Calories, meal.Protein, meal.Carbs, meal.Fat, meal.Fiber,
			)
			if err != nil {
				return Plan{}, fmt.Errorf("insert meal %s: %w", meal.Type, err)
			}
			mealID, err := result.LastInsertId()
			if err != nil {
				return Plan{}, fmt.Errorf("meal id: %w", err)
			}
			meal.ID = int(mealID)

			for fi := range meal.Foods {
				food := &meal.Foods[fi]
				result, err := tx.ExecContext(ctx, `
					INSERT INTO food_items (
						meal_id, name, quantity, unit, calories,
						protein, carbs, fat, fiber
					) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					meal.ID, food.Name, food.Quantity, food.Unit, food.Calories,
					food.Protein, food.Carbs, food.Fat, food.Fiber,
				)
				if err != nil {
					return Plan{}, fmt.Errorf("insert food item %s: %w", food.Name, err)
				}
				foodID, err := result.LastInsertId()
				if err != nil {
					return Plan{}, fmt.Errorf("food item id: %w", err)
				}
				food.ID = int(foodID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Plan{}, fmt.Errorf("commit nutrition plan: %w", err)
	}
	return plan, nil
}

// listPlans returns plan headers for a user, newest first, without days.
func (r *sqliteRepository) listPlans(ctx context.Context, userID int) ([]Plan, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, user_id, name, description, goal, diet_type, duration_weeks,
		       daily_calories, protein_grams, carbs_grams, fat_grams, fiber_grams,
		       water_liters, meals_per_day, meal_timing, supplements,
		       allergies, food_preferences, foods_to_avoid
		FROM nutrition_plans
		WHERE user_id = ?
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query nutrition plans: %w", err)
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nutrition plans: %w", err)
	}
	return plans, nil
}

// getPlan loads a full plan including days, meals and food items.
func (r *sqliteRepository) getPlan(ctx context.Context, userID, planID int) (Plan, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, user_id, name, description, goal, diet_type, duration_weeks,
		       daily_calories, protein_grams, carbs_grams, fat_grams, fiber_grams,
		       water_liters, meals_per_day, meal_timing, supplements,
		       allergies, food_preferences, foods_to_avoid
		FROM nutrition_plans
		WHERE id = ? AND user_id = ?`, planID, userID)
	plan, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Plan{}, ErrNotFound
	}
	if err != nil {
		return Plan{}, err
	}

	if plan.Days, err = r.loadDays(ctx, plan.ID); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (r *sqliteRepository) loadDays(ctx context.Context, planID int) ([]DayPlan, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, day_number, week_number, name, description,
		       total_calories, total_protein, total_carbs, total_fat,
		       total_fiber, daily_tip, hydration_schedule
		FROM nutrition_days
		WHERE plan_id = ?
		ORDER BY day_number`, planID)
	if err != nil {
		return nil, fmt.Errorf("query nutrition days: %w", err)
	}
	defer rows.Close()

	var days []DayPlan
	for rows.Next() {
		var (
			day       DayPlan
			hydration string
		)
		if err := rows.Scan(
			&day.ID, &day.DayNumber, &day.WeekNumber, &day.Name, &day.Description,
			&day.TotalCalories, &day.TotalProtein, &day.TotalCarbs, &day.TotalFat,
			&day.TotalFiber, &day.DailyTip, &hydration,
		); err != nil {
			return nil, fmt.Errorf("scan nutrition day: %w", err)
		}
		if err := json.Unmarshal([]byte(hydration), &day.HydrationSchedule); err != nil {
			return nil, fmt.Errorf("unmarshal hydration schedule: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nutrition days: %w", err)
	}

	for i := range days {
		if days[i].Meals, err = r.loadMeals(ctx, days[i].ID); err != nil {
			return nil, err
		}
	}
	return days, nil
}

func (r *sqliteRepository) loadMeals(ctx context.Context, dayID int) ([]Meal, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, meal_type, name, suggested_time, prep_time_minutes,
		       calories, protein, carbs, fat, fiber
		FROM meals
		WHERE day_id = ?
		ORDER BY id`, dayID)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	var meals []Meal
	for rows.Next() {
		var meal Meal
		if err := rows.Scan(
			&meal.ID, &meal.Type, &meal.Name, &meal.Time, &meal.PrepTimeMinutes,
			&meal.Calories, &meal.Protein, &meal.Carbs, &meal.Fat, &meal.Fiber,
		); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}

	for i := range meals {
		if meals[i].Foods, err = r.loadFoods(ctx, meals[i].ID); err != nil {
			return nil, err
		}
	}
	return meals, nil
}

func (r *sqliteRepository) loadFoods(ctx context.Context, mealID int) ([]FoodItem, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, name, quantity, unit, calories, protein, carbs, fat, fiber
		FROM food_items
		WHERE meal_id = ?
		ORDER BY id`, mealID)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}
	defer rows.Close()

	var foods []FoodItem
	for rows.Next() {
		var food FoodItem
		if err := rows.Scan(
			&food.ID, &food.Name, &food.Quantity, &food.Unit, &food.Calories,
			&food.Protein, &food.Carbs, &food.Fat, &food.Fiber,
		); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food items: %w", err)
	}
	return foods, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (Plan, error) {
	var (
		plan                                             Plan
		mealTiming, supplements, allergies, prefs, avoid string
	)
	err := row.Scan(
		&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.Goal,
		&plan.DietType, &plan.DurationWeeks, &plan.DailyCalories,
		&plan.ProteinGrams, &plan.CarbsGrams, &plan.FatGrams, &plan.FiberGrams,
		&plan.WaterLiters, &plan.MealsPerDay, &mealTiming, &supplements,
		&allergies, &prefs, &avoid,
	)
	if err != nil {
		return Plan{}, fmt.Errorf("scan nutrition plan: %w", err)
	}
	columns := []struct {
		raw    string
		target any
	}{
		{mealTiming, &plan.MealTiming},
		{supplements, &plan.Supplements},
		{allergies, &plan.Allergies},
		{prefs, &plan.FoodPreferences},
		{avoid, &plan.FoodsToAvoid},
	}
	for _, column := range columns {
		if err := json.Unmarshal([]byte(column.raw), column.target); err != nil {
			return Plan{}, fmt.Errorf("unmarshal nutrition plan column: %w", err)
		}
	}
	return plan, nil
}

// emptyAsList keeps JSON columns as [] instead of null for empty slices.
func emptyAsList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
