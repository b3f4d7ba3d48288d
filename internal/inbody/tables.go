package inbody

// bodyFatBand is the inclusive upper bound of one body-fat classification band.
type bodyFatBand struct {
	upper    float64
	category BodyFatCategory
}

// Body-fat bands per sex. The first band whose upper bound is at or above the
// measured percentage wins; above the last band the subject is classified Obese.
var bodyFatBands = map[Sex][]bodyFatBand{
	SexMale: {
		{5, BodyFatEssential},
		{13, BodyFatAthlete},
		{17, BodyFatFitness},
		{25, BodyFatAverage},
	},
	SexFemale: {
		{12, BodyFatEssential},
		{20, BodyFatAthlete},
		{24, BodyFatFitness},
		{31, BodyFatAverage},
	},
}

// muscleMassBand classifies skeletal muscle mass as a percentage of body weight.
type muscleMassBand struct {
	lower    float64
	category MuscleMassCategory
}

var muscleMassBands = []muscleMassBand{
	{45, MuscleMassExcellent},
	{40, MuscleMassGood},
	{35, MuscleMassAverage},
}

// hydrationBand classifies total body water as a percentage of body weight.
type hydrationBand struct {
	lower  float64
	status HydrationStatus
}

var hydrationBands = []hydrationBand{
	{60, HydrationWell},
	{55, HydrationAdequate},
	{50, HydrationMild},
}

// activityMultipliers scale the basal metabolic rate into a daily calorie
// target. Unknown levels fall back to the moderately-active multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

const defaultActivityMultiplier = 1.375

const (
	recCardioDeficit   = "Focus on cardio exercises and caloric deficit for fat loss"
	recHealthyFats     = "Consider increasing healthy fats in your diet"
	recStrengthTrain   = "Incorporate strength training to build muscle mass"
	recProteinIntake   = "Increase protein intake to support muscle growth"
	recWaterIntake     = "Increase daily water intake"
	recVisceralFatDown = "Reduce visceral fat through regular exercise and proper nutrition"
)
