// Package nutrition generates and stores week-by-week nutrition plans derived
// from a client's body composition and goal.
package nutrition

// Goal scales the daily calorie target up or down.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalWeightGain  Goal = "weight_gain"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalMaintenance Goal = "maintenance"
	GoalCutting     Goal = "cutting"
	GoalBulking     Goal = "bulking"
)

// DietType selects the macro split.
type DietType string

const (
	DietBalanced      DietType = "balanced"
	DietHighProtein   DietType = "high_protein"
	DietLowCarb       DietType = "low_carb"
	DietKeto          DietType = "keto"
	DietMediterranean DietType = "mediterranean"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietPaleo         DietType = "paleo"
)

// MealType names a meal slot within the day.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealMorningSnack   MealType = "morning_snack"
	MealLunch          MealType = "lunch"
	MealAfternoonSnack MealType = "afternoon_snack"
	MealDinner         MealType = "dinner"
	MealEveningSnack   MealType = "evening_snack"
	MealPreWorkout     MealType = "pre_workout"
	MealPostWorkout    MealType = "post_workout"
)

// Preferences carries the client's dietary constraints and choices.
type Preferences struct {
	MealsPerDay     int      `json:"meals_per_day"`
	Allergies       []string `json:"allergies"`
	FoodPreferences []string `json:"food_preferences"`
	FoodsToAvoid    []string `json:"foods_to_avoid"`
}

// Targets is the analyzer-derived input the generator works from.
type Targets struct {
	Calories          int
	WeightKg          float64
	BodyFatPercentage float64
}

// Supplement is a recommended supplement with dosage and timing.
type Supplement struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Timing string `json:"timing"`
}

// HydrationEntry schedules one glass of water during the day.
type HydrationEntry struct {
	Time   string  `json:"time"`
	Liters float64 `json:"liters"`
}

// FoodItem is a concrete food with quantity and nutrition totals.
type FoodItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein_grams"`
	Carbs    float64 `json:"carbs_grams"`
	Fat      float64 `json:"fat_grams"`
	Fiber    float64 `json:"fiber_grams"`
}

// Meal is one meal slot of a day plan.
type Meal struct {
	ID              int        `json:"id"`
	Name            string     `json:"name"`
	Type            MealType   `json:"type"`
	Time            string     `json:"time"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	Calories        int        `json:"calories"`
	Protein         int        `json:"protein_grams"`
	Carbs           int        `json:"carbs_grams"`
	Fat             int        `json:"fat_grams"`
	Fiber           int        `json:"fiber_grams"`
	Foods           []FoodItem `json:"foods"`
}

// DayPlan is one day of a nutrition plan.
type DayPlan struct {
	ID                int              `json:"id"`
	DayNumber         int              `json:"day_number"`
	WeekNumber        int              `json:"week_number"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	TotalCalories     int              `json:"total_calories"`
	TotalProtein      int              `json:"total_protein_grams"`
	TotalCarbs        int              `json:"total_carbs_grams"`
	TotalFat          int              `json:"total_fat_grams"`
	TotalFiber        int              `json:"total_fiber_grams"`
	Meals             []Meal           `json:"meals"`
	DailyTip          string           `json:"daily_tip"`
	HydrationSchedule []HydrationEntry `json:"hydration_schedule"`
}

// Plan is a complete nutrition plan for a client.
type Plan struct {
	ID              int          `json:"id"`
	UserID          int          `json:"user_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Goal            Goal         `json:"goal"`
	DietType        DietType     `json:"diet_type"`
	DurationWeeks   int          `json:"duration_weeks"`
	DailyCalories   int          `json:"daily_calories"`
	ProteinGrams    int          `json:"protein_grams"`
	CarbsGrams      int          `json:"carbs_grams"`
	FatGrams        int          `json:"fat_grams"`
	FiberGrams      int          `json:"fiber_grams"`
	WaterLiters     float64      `json:"water_liters"`
	MealsPerDay     int          `json:"meals_per_day"`
	MealTiming      []string     `json:"meal_timing"`
	Supplements     []Supplement `json:"supplements"`
	Allergies       []string     `json:"allergies"`
	FoodPreferences []string     `json:"food_preferences"`
	FoodsToAvoid    []string     `json:"foods_to_avoid"`
	Days            []DayPlan    `json:"days"`
}
