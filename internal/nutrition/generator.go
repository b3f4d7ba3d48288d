package nutrition

import (
	"fmt"
	"math"
	"strings"
)

const (
	defaultDurationWeeks = 8
	defaultMealsPerDay   = 6
	litersPerGlass       = 0.25
)

// generatePlan builds a complete nutrition plan from analyzer targets and the
// client's preferences. It is pure and deterministic: the same inputs always
// produce the same plan.
func generatePlan(targets Targets, goal Goal, diet DietType, durationWeeks int, prefs Preferences) Plan {
	if durationWeeks <= 0 {
		durationWeeks = defaultDurationWeeks
	}
	mealsPerDay := prefs.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = defaultMealsPerDay
	}
	if mealsPerDay > len(mealSlots) {
		mealsPerDay = len(mealSlots)
	}

	factor, ok := goalCalorieFactors[goal]
	if !ok {
		factor = 1.0
	}
	dailyCalories := int(math.Round(float64(targets.Calories) * factor))

	ratio, ok := dietMacroRatios[diet]
	if !ok {
		ratio = defaultMacroRatio
	}

	plan := Plan{
		Name: fmt.Sprintf("%d-Week %s Nutrition Plan", durationWeeks, titleCase(string(goal))),
		Description: fmt.Sprintf("A %s plan with %d meals per day targeting %d kcal daily.",
			titleCase(string(diet)), mealsPerDay, dailyCalories),
		Goal:            goal,
		DietType:        diet,
		DurationWeeks:   durationWeeks,
		DailyCalories:   dailyCalories,
		ProteinGrams:    int(math.Round(float64(dailyCalories) * ratio.protein / 4)),
		CarbsGrams:      int(math.Round(float64(dailyCalories) * ratio.carbs / 4)),
		FatGrams:        int(math.Round(float64(dailyCalories) * ratio.fat / 9)),
		FiberGrams:      int(math.Round(float64(dailyCalories) * 0.014)),
		WaterLiters:     math.Round(targets.WeightKg*35/1000*10) / 10,
		MealsPerDay:     mealsPerDay,
		Supplements:     supplements(goal, targets.BodyFatPercentage),
		Allergies:       prefs.Allergies,
		FoodPreferences: prefs.FoodPreferences,
		FoodsToAvoid:    prefs.FoodsToAvoid,
	}

	slots := mealSlots[:mealsPerDay]
	for _, slot := range slots {
		plan.MealTiming = append(plan.MealTiming, slot.time)
	}

	hydration := hydrationSchedule(plan.WaterLiters)
	tips := tipsFor(goal)

	totalDays := durationWeeks * 7
	plan.Days = make([]DayPlan, 0, totalDays)
	for dayNumber := 1; dayNumber <= totalDays; dayNumber++ {
		weekNumber := (dayNumber-1)/7 + 1
		day := DayPlan{
			DayNumber:         dayNumber,
			WeekNumber:        weekNumber,
			Name:              fmt.Sprintf("Day %d", dayNumber),
			Description:       fmt.Sprintf("Week %d nutrition", weekNumber),
			DailyTip:          tips[dayNumber%len(tips)],
			HydrationSchedule: hydration,
		}
		for _, slot := range slots {
			meal := buildMeal(slot, plan)
			day.TotalCalories += meal.Calories
			day.TotalProtein += meal.Protein
			day.TotalCarbs += meal.Carbs
			day.TotalFat += meal.Fat
			day.TotalFiber += meal.Fiber
			day.Meals = append(day.Meals, meal)
		}
		plan.Days = append(plan.Days, day)
	}

	return plan
}

// buildMeal assigns the slot's share of the daily targets and fills it with
// catalog foods.
func buildMeal(slot mealSlot, plan Plan) Meal {
	meal := Meal{
		Name:            titleCase(string(slot.mealType)),
		Type:            slot.mealType,
		Time:            slot.time,
		PrepTimeMinutes: slot.prepTimeMinutes,
		Calories:        int(math.Round(float64(plan.DailyCalories) * slot.share)),
		Protein:         int(math.Round(float64(plan.ProteinGrams) * slot.share)),
		Carbs:           int(math.Round(float64(plan.CarbsGrams) * slot.share)),
		Fat:             int(math.Round(float64(plan.FatGrams) * slot.share)),
	}
	meal.Fiber = int(math.Round(float64(meal.Calories) * 0.014))
	meal.Foods = fillFoods(catalogFor(slot.mealType), meal.Calories)
	return meal
}

// fillFoods greedily covers the calorie budget with catalog foods in order.
// Each food contributes as many units as needed, capped at its maximum
// sensible quantity. The last food may overshoot the budget; if the catalog
// runs out early the meal stays under budget.
func fillFoods(catalog []catalogFood, calories int) []FoodItem {
	remaining := calories
	var foods []FoodItem
	for _, food := range catalog {
		if remaining <= 0 {
			break
		}
		quantity := math.Ceil(float64(remaining) / float64(food.calories))
		if quantity > food.maxQuantity {
			quantity = food.maxQuantity
		}
		foods = append(foods, FoodItem{
			Name:     food.name,
			Quantity: quantity,
			Unit:     food.unit,
			Calories: int(quantity) * food.calories,
			Protein:  quantity * food.protein,
			Carbs:    quantity * food.carbs,
			Fat:      quantity * food.fat,
			Fiber:    quantity * food.fiber,
		})
		remaining -= int(quantity) * food.calories
	}
	return foods
}

// hydrationSchedule spreads the daily water target over up to eight glasses.
func hydrationSchedule(waterLiters float64) []HydrationEntry {
	glasses := int(math.Ceil(waterLiters / litersPerGlass))
	if glasses > len(hydrationTimes) {
		glasses = len(hydrationTimes)
	}
	entries := make([]HydrationEntry, 0, glasses)
	for i := 0; i < glasses; i++ {
		entries = append(entries, HydrationEntry{Time: hydrationTimes[i], Liters: litersPerGlass})
	}
	return entries
}

// titleCase turns a snake_case enum value into a human-readable title.
func titleCase(value string) string {
	words := strings.Split(value, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func supplements(goal Goal, bodyFatPercentage float64) []Supplement {
	var supps []Supplement
	if goal == GoalMuscleGain || goal == GoalBulking {
		supps = append(supps,
			Supplement{Name: "Whey Protein", Dosage: "25-30g", Timing: "Post-workout"},
			Supplement{Name: "Creatine", Dosage: "5g", Timing: "Daily"},
		)
	}
	if bodyFatPercentage > 20 {
		supps = append(supps, Supplement{Name: "L-Carnitine", Dosage: "2g", Timing: "Pre-workout"})
	}
	supps = append(supps,
		Supplement{Name: "Multivitamin", Dosage: "1 tablet", Timing: "With breakfast"},
		Supplement{Name: "Omega-3", Dosage: "1000mg", Timing: "With dinner"},
	)
	return supps
}
