package nutrition

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTargets() Targets {
	return Targets{
		Calories:          2604,
		WeightKg:          75.5,
		BodyFatPercentage: 16.3,
	}
}

func TestGeneratePlan_DaysAreContiguous(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalWeightLoss, DietBalanced, 8, Preferences{})

	if len(plan.Days) != 56 {
		t.Fatalf("len(Days) = %d, want 56", len(plan.Days))
	}
	for i, day := range plan.Days {
		if day.DayNumber != i+1 {
			t.Errorf("Days[%d].DayNumber = %d, want %d", i, day.DayNumber, i+1)
		}
		wantWeek := i/7 + 1
		if day.WeekNumber != wantWeek {
			t.Errorf("Days[%d].WeekNumber = %d, want %d", i, day.WeekNumber, wantWeek)
		}
	}
}

func TestGeneratePlan_GoalScalesCalories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal   Goal
		factor float64
	}{
		{GoalWeightLoss, 0.80},
		{GoalCutting, 0.80},
		{GoalWeightGain, 1.15},
		{GoalBulking, 1.15},
		{GoalMuscleGain, 1.10},
		{GoalMaintenance, 1.0},
		{Goal("unknown"), 1.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			t.Parallel()
			plan := generatePlan(testTargets(), tt.goal, DietBalanced, 1, Preferences{})
			want := int(math.Round(float64(testTargets().Calories) * tt.factor))
			if plan.DailyCalories != want {
				t.Errorf("DailyCalories = %d, want %d", plan.DailyCalories, want)
			}
		})
	}
}

func TestGeneratePlan_MacroSplits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		diet  DietType
		ratio macroRatio
	}{
		{DietHighProtein, macroRatio{0.35, 0.35, 0.30}},
		{DietLowCarb, macroRatio{0.30, 0.20, 0.50}},
		{DietKeto, macroRatio{0.25, 0.05, 0.70}},
		{DietBalanced, defaultMacroRatio},
		// Diets without a dedicated split fall back to balanced.
		{DietMediterranean, defaultMacroRatio},
		{DietType("unknown"), defaultMacroRatio},
	}
	for _, tt := range tests {
		t.Run(string(tt.diet), func(t *testing.T) {
			t.Parallel()
			plan := generatePlan(testTargets(), GoalMaintenance, tt.diet, 1, Preferences{})
			cal := float64(plan.DailyCalories)
			if want := int(math.Round(cal * tt.ratio.protein / 4)); plan.ProteinGrams != want {
				t.Errorf("ProteinGrams = %d, want %d", plan.ProteinGrams, want)
			}
			if want := int(math.Round(cal * tt.ratio.carbs / 4)); plan.CarbsGrams != want {
				t.Errorf("CarbsGrams = %d, want %d", plan.CarbsGrams, want)
			}
			if want := int(math.Round(cal * tt.ratio.fat / 9)); plan.FatGrams != want {
				t.Errorf("FatGrams = %d, want %d", plan.FatGrams, want)
			}
		})
	}
}

func TestGeneratePlan_MealShares(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMaintenance, DietBalanced, 1, Preferences{})

	day := plan.Days[0]
	if len(day.Meals) != 6 {
		t.Fatalf("len(Meals) = %d, want 6", len(day.Meals))
	}
	wantShares := []float64{0.25, 0.10, 0.30, 0.10, 0.20, 0.05}
	for i, meal := range day.Meals {
		want := int(math.Round(float64(plan.DailyCalories) * wantShares[i]))
		if meal.Calories != want {
			t.Errorf("Meals[%d] (%s) calories = %d, want %d", i, meal.Type, meal.Calories, want)
		}
	}
	if day.Meals[0].Type != MealBreakfast || day.Meals[0].Time != "07:00" {
		t.Errorf("first meal = %s at %s, want breakfast at 07:00", day.Meals[0].Type, day.Meals[0].Time)
	}
}

func TestGeneratePlan_MealsPerDayTruncates(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMaintenance, DietBalanced, 1, Preferences{MealsPerDay: 3})

	if plan.MealsPerDay != 3 {
		t.Fatalf("MealsPerDay = %d, want 3", plan.MealsPerDay)
	}
	day := plan.Days[0]
	if len(day.Meals) != 3 {
		t.Fatalf("len(Meals) = %d, want 3", len(day.Meals))
	}
	wantTypes := []MealType{MealBreakfast, MealMorningSnack, MealLunch}
	for i, meal := range day.Meals {
		if meal.Type != wantTypes[i] {
			t.Errorf("Meals[%d].Type = %s, want %s", i, meal.Type, wantTypes[i])
		}
	}
	if diff := len(plan.MealTiming) - 3; diff != 0 {
		t.Errorf("len(MealTiming) = %d, want 3", len(plan.MealTiming))
	}
}

func TestGeneratePlan_FoodsCoverMealBudget(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMaintenance, DietBalanced, 1, Preferences{})

	for _, meal := range plan.Days[0].Meals {
		if len(meal.Foods) == 0 {
			t.Errorf("meal %s has no foods", meal.Type)
			continue
		}
		var total int
		for _, food := range meal.Foods {
			if food.Quantity <= 0 {
				t.Errorf("meal %s food %s has quantity %v", meal.Type, food.Name, food.Quantity)
			}
			total += food.Calories
		}
		// The greedy fill either covers the budget (possibly overshooting on
		// the last food) or exhausts the catalog at its quantity caps.
		if total < meal.Calories {
			var max int
			for _, food := range catalogFor(meal.Type) {
				max += int(food.maxQuantity) * food.calories
			}
			if total != max {
				t.Errorf("meal %s foods total %d kcal, budget %d, catalog cap %d",
					meal.Type, total, meal.Calories, max)
			}
		}
	}
}

func TestGeneratePlan_HydrationSchedule(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMaintenance, DietBalanced, 1, Preferences{})

	// 75.5 kg * 35 ml = 2.6 L, at 0.25 L per glass capped at eight glasses.
	if plan.WaterLiters != 2.6 {
		t.Errorf("WaterLiters = %v, want 2.6", plan.WaterLiters)
	}
	schedule := plan.Days[0].HydrationSchedule
	if len(schedule) != 8 {
		t.Fatalf("len(HydrationSchedule) = %d, want 8", len(schedule))
	}
	if schedule[0].Time != "07:00" || schedule[0].Liters != 0.25 {
		t.Errorf("first glass = %+v, want 0.25 L at 07:00", schedule[0])
	}
}

func TestGeneratePlan_Supplements(t *testing.T) {
	t.Parallel()

	names := func(supps []Supplement) []string {
		var out []string
		for _, s := range supps {
			out = append(out, s.Name)
		}
		return out
	}

	tests := []struct {
		name    string
		goal    Goal
		bodyFat float64
		want    []string
	}{
		{"maintenance lean", GoalMaintenance, 16.3, []string{"Multivitamin", "Omega-3"}},
		{"muscle gain", GoalMuscleGain, 16.3, []string{"Whey Protein", "Creatine", "Multivitamin", "Omega-3"}},
		{"bulking high body fat", GoalBulking, 22, []string{"Whey Protein", "Creatine", "L-Carnitine", "Multivitamin", "Omega-3"}},
		{"weight loss high body fat", GoalWeightLoss, 28, []string{"L-Carnitine", "Multivitamin", "Omega-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			targets := testTargets()
			targets.BodyFatPercentage = tt.bodyFat
			plan := generatePlan(targets, tt.goal, DietBalanced, 1, Preferences{})
			if diff := cmp.Diff(tt.want, names(plan.Supplements)); diff != "" {
				t.Errorf("supplements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeneratePlan_TipsRotateByGoal(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMuscleGain, DietBalanced, 2, Preferences{})

	for _, day := range plan.Days {
		want := muscleGainTips[day.DayNumber%len(muscleGainTips)]
		if day.DailyTip != want {
			t.Errorf("day %d tip = %q, want %q", day.DayNumber, day.DailyTip, want)
		}
	}
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	t.Parallel()

	prefs := Preferences{
		MealsPerDay: 5,
		Allergies:   []string{"peanuts"},
	}
	first := generatePlan(testTargets(), GoalCutting, DietKeto, 4, prefs)
	second := generatePlan(testTargets(), GoalCutting, DietKeto, 4, prefs)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("generatePlan not deterministic (-first +second):\n%s", diff)
	}
}

func TestGeneratePlan_DefaultDuration(t *testing.T) {
	t.Parallel()

	plan := generatePlan(testTargets(), GoalMaintenance, DietBalanced, 0, Preferences{})
	if plan.DurationWeeks != 8 {
		t.Errorf("DurationWeeks = %d, want default 8", plan.DurationWeeks)
	}
	if len(plan.Days) != 56 {
		t.Errorf("len(Days) = %d, want 56", len(plan.Days))
	}
}
