// Package inbody stores body-composition test results and derives structured
// health assessments from them.
package inbody

import "time"

// Sex selects the classification bands used by the analyzer.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel maps to a calorie multiplier on top of the basal metabolic rate.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// Snapshot is a single point-in-time body-composition measurement, e.g. the
// output of an InBody scan.
type Snapshot struct {
	ID                   int              `json:"id"`
	UserID               int              `json:"user_id"`
	TestDate             time.Time        `json:"test_date"`
	WeightKg             float64          `json:"weight_kg"`
	HeightCm             float64          `json:"height_cm"`
	SkeletalMuscleMassKg float64          `json:"skeletal_muscle_mass_kg"`
	BodyFatMassKg        float64          `json:"body_fat_mass_kg"`
	BodyFatPercentage    float64          `json:"body_fat_percentage"`
	TotalBodyWaterL      float64          `json:"total_body_water_l"`
	BasalMetabolicRate   float64          `json:"basal_metabolic_rate_kcal"`
	VisceralFatLevel     float64          `json:"visceral_fat_level"`
	Segments             *SegmentalMuscle `json:"segments,omitempty"`
}

// SegmentalMuscle holds the optional per-segment muscle-mass readings.
type SegmentalMuscle struct {
	TrunkKg    float64 `json:"trunk_kg"`
	ArmLeftKg  float64 `json:"arm_left_kg"`
	ArmRightKg float64 `json:"arm_right_kg"`
	LegLeftKg  float64 `json:"leg_left_kg"`
	LegRightKg float64 `json:"leg_right_kg"`
}

// Profile is the demographic data needed to interpret a snapshot.
type Profile struct {
	DateOfBirth   time.Time     `json:"date_of_birth"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// User is a client of the coaching service.
type User struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Profile Profile `json:"profile"`
}

// BodyFatCategory is an ordered classification of body-fat percentage.
type BodyFatCategory string

const (
	BodyFatEssential BodyFatCategory = "Essential Fat"
	BodyFatAthlete   BodyFatCategory = "Athlete"
	BodyFatFitness   BodyFatCategory = "Fitness"
	BodyFatAverage   BodyFatCategory = "Average"
	BodyFatObese     BodyFatCategory = "Obese"
)

// MuscleMassCategory classifies skeletal muscle mass as a share of body weight.
type MuscleMassCategory string

const (
	MuscleMassExcellent    MuscleMassCategory = "Excellent"
	MuscleMassGood         MuscleMassCategory = "Good"
	MuscleMassAverage      MuscleMassCategory = "Average"
	MuscleMassBelowAverage MuscleMassCategory = "Below Average"
)

// HydrationStatus classifies total body water as a share of body weight.
type HydrationStatus string

const (
	HydrationWell     HydrationStatus = "Well Hydrated"
	HydrationAdequate HydrationStatus = "Adequately Hydrated"
	HydrationMild     HydrationStatus = "Mildly Dehydrated"
	HydrationDehydr   HydrationStatus = "Dehydrated"
)

// Assessment is the structured health analysis derived from a snapshot and a
// profile. Every field is a pure function of the two inputs.
type Assessment struct {
	BMI                float64            `json:"bmi"`
	BodyFatCategory    BodyFatCategory    `json:"body_fat_category"`
	MuscleMassCategory MuscleMassCategory `json:"muscle_mass_category"`
	MetabolicAge       int                `json:"metabolic_age"`
	HydrationStatus    HydrationStatus    `json:"hydration_status"`
	Recommendations    []string           `json:"recommendations"`
	TargetCalories     int                `json:"target_calories"`
	TargetProtein      int                `json:"target_protein"`
	TargetCarbs        int                `json:"target_carbs"`
	TargetFat          int                `json:"target_fat"`
}
