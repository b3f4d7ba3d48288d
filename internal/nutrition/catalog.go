package nutrition

// catalogFood is one entry of the built-in food catalog. Nutrition values are
// per unit; the generator multiplies them by the chosen quantity.
type catalogFood struct {
	name        string
	unit        string
	calories    int
	protein     float64
	carbs       float64
	fat         float64
	fiber       float64
	maxQuantity float64
}

// mealSlot assigns a share of the daily calories to a named meal slot.
type mealSlot struct {
	mealType        MealType
	share           float64
	time            string
	prepTimeMinutes int
}

// mealSlots in day order. A plan with fewer meals per day uses a prefix of
// this list, so the shares of the dropped snacks are simply not eaten.
var mealSlots = []mealSlot{
	{MealBreakfast, 0.25, "07:00", 15},
	{MealMorningSnack, 0.10, "10:00", 5},
	{MealLunch, 0.30, "13:00", 25},
	{MealAfternoonSnack, 0.10, "16:00", 5},
	{MealDinner, 0.20, "19:00", 30},
	{MealEveningSnack, 0.05, "21:00", 5},
}

// foodCatalog maps meal slots to candidate foods, tried in order by the
// greedy calorie fill.
var foodCatalog = map[MealType][]catalogFood{
	MealBreakfast: {
		{"Oatmeal", "cup", 150, 5, 27, 3, 4, 2},
		{"Greek Yogurt", "cup", 100, 17, 6, 0, 0, 2},
		{"Banana", "piece", 105, 1, 27, 0, 3, 2},
	},
	MealLunch: {
		{"Chicken Breast", "100g", 165, 31, 0, 4, 0, 2},
		{"Brown Rice", "half cup", 110, 3, 23, 1, 2, 3},
		{"Broccoli", "cup", 25, 3, 5, 0, 3, 2},
	},
	MealDinner: {
		{"Salmon Fillet", "100g", 206, 22, 0, 12, 0, 2},
		{"Sweet Potato", "medium", 103, 2, 24, 0, 4, 2},
		{"Spinach", "cup", 7, 1, 1, 0, 1, 3},
	},
}

// snackCatalog serves every snack slot.
var snackCatalog = []catalogFood{
	{"Almonds", "30g", 170, 6, 6, 15, 3, 2},
	{"Apple", "piece", 95, 0, 25, 0, 4, 2},
	{"Cottage Cheese", "half cup", 90, 12, 5, 2, 0, 2},
}

// catalogFor returns the candidate foods for a meal slot. Slots without a
// dedicated list fall back to the snack catalog.
func catalogFor(mealType MealType) []catalogFood {
	if foods, ok := foodCatalog[mealType]; ok {
		return foods
	}
	return snackCatalog
}

// goalCalorieFactors scale the maintenance calorie target per goal. Unknown
// goals keep the target unchanged.
var goalCalorieFactors = map[Goal]float64{
	GoalWeightLoss: 0.80,
	GoalCutting:    0.80,
	GoalWeightGain: 1.15,
	GoalBulking:    1.15,
	GoalMuscleGain: 1.10,
}

// macroRatio splits daily calories across protein, carbs and fat.
type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

var defaultMacroRatio = macroRatio{protein: 0.25, carbs: 0.45, fat: 0.30}

// dietMacroRatios per diet type. Diets without an entry use the balanced split.
var dietMacroRatios = map[DietType]macroRatio{
	DietHighProtein: {protein: 0.35, carbs: 0.35, fat: 0.30},
	DietLowCarb:     {protein: 0.30, carbs: 0.20, fat: 0.50},
	DietKeto:        {protein: 0.25, carbs: 0.05, fat: 0.70},
}

var hydrationTimes = []string{
	"07:00", "09:00", "11:00", "13:00", "15:00", "17:00", "19:00", "21:00",
}

var weightLossTips = []string{
	"Stay hydrated throughout the day",
	"Eat slowly and mindfully",
	"Include fiber-rich foods to stay full",
	"Track your portion sizes",
}

var muscleGainTips = []string{
	"Consume protein within 30 minutes post-workout",
	"Eat frequently throughout the day",
	"Don't skip meals, especially breakfast",
	"Include healthy fats for hormone production",
}

// tipsFor returns the daily-tip rotation for a goal.
func tipsFor(goal Goal) []string {
	switch goal {
	case GoalMuscleGain, GoalBulking:
		return muscleGainTips
	default:
		return weightLossTips
	}
}
