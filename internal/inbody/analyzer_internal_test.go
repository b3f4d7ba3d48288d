package inbody

import (
	"slices"
	"testing"
	"time"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/google/go-cmp/cmp"
)

func testProfile(sex Sex, level ActivityLevel) Profile {
	return Profile{
		DateOfBirth:   time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Sex:           sex,
		ActivityLevel: level,
	}
}

func testSnapshot() Snapshot {
	return Snapshot{
		TestDate:             time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		WeightKg:             75.5,
		HeightCm:             175,
		SkeletalMuscleMassKg: 32.8,
		BodyFatMassKg:        12.3,
		BodyFatPercentage:    16.3,
		TotalBodyWaterL:      45.2,
		BasalMetabolicRate:   1680,
		VisceralFatLevel:     7,
	}
}

func TestAnalyze_BMI(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.WeightKg = 80
	snapshot.HeightCm = 200

	assessment, err := Analyze(snapshot, testProfile(SexMale, ActivityModeratelyActive))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if assessment.BMI != 20.0 {
		t.Errorf("BMI = %v, want 20.0", assessment.BMI)
	}
}

func TestAnalyze_Classifications(t *testing.T) {
	t.Parallel()

	assessment, err := Analyze(testSnapshot(), testProfile(SexMale, ActivityModeratelyActive))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// 16.3% body fat for a male falls in the 13-17 band.
	if assessment.BodyFatCategory != BodyFatFitness {
		t.Errorf("BodyFatCategory = %q, want %q", assessment.BodyFatCategory, BodyFatFitness)
	}
	// 32.8 kg of 75.5 kg is 43.4% skeletal muscle.
	if assessment.MuscleMassCategory != MuscleMassGood {
		t.Errorf("MuscleMassCategory = %q, want %q", assessment.MuscleMassCategory, MuscleMassGood)
	}
}

func TestAnalyze_BodyFatBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sex        Sex
		percentage float64
		want       BodyFatCategory
	}{
		{"male essential", SexMale, 4.5, BodyFatEssential},
		{"male athlete upper bound", SexMale, 13, BodyFatAthlete},
		{"male average", SexMale, 24.9, BodyFatAverage},
		{"male obese", SexMale, 25.1, BodyFatObese},
		{"female athlete", SexFemale, 18, BodyFatAthlete},
		{"female fitness", SexFemale, 23, BodyFatFitness},
		{"female obese", SexFemale, 32, BodyFatObese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			snapshot := testSnapshot()
			snapshot.BodyFatPercentage = tt.percentage
			assessment, err := Analyze(snapshot, testProfile(tt.sex, ActivityModeratelyActive))
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if assessment.BodyFatCategory != tt.want {
				t.Errorf("BodyFatCategory = %q, want %q", assessment.BodyFatCategory, tt.want)
			}
		})
	}
}

func TestAnalyze_DehydratedGetsWaterRecommendation(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.TotalBodyWaterL = 35 // 46.4% of body weight.

	assessment, err := Analyze(snapshot, testProfile(SexMale, ActivityModeratelyActive))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if assessment.HydrationStatus != HydrationDehydr {
		t.Errorf("HydrationStatus = %q, want %q", assessment.HydrationStatus, HydrationDehydr)
	}
	if !slices.Contains(assessment.Recommendations, recWaterIntake) {
		t.Errorf("Recommendations = %v, want to contain %q", assessment.Recommendations, recWaterIntake)
	}
}

func TestAnalyze_HighBodyFatRecommendation(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.BodyFatPercentage = 28

	assessment, err := Analyze(snapshot, testProfile(SexMale, ActivityModeratelyActive))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(assessment.Recommendations) == 0 || assessment.Recommendations[0] != recCardioDeficit {
		t.Errorf("Recommendations = %v, want first %q", assessment.Recommendations, recCardioDeficit)
	}
}

func TestAnalyze_TargetCaloriesExceedBMR(t *testing.T) {
	t.Parallel()

	levels := []ActivityLevel{
		ActivitySedentary,
		ActivityLightlyActive,
		ActivityModeratelyActive,
		ActivityVeryActive,
		ActivityExtremelyActive,
		ActivityLevel("unknown"),
	}
	for _, level := range levels {
		assessment, err := Analyze(testSnapshot(), testProfile(SexMale, level))
		if err != nil {
			t.Fatalf("Analyze(%s): %v", level, err)
		}
		if float64(assessment.TargetCalories) <= testSnapshot().BasalMetabolicRate {
			t.Errorf("TargetCalories(%s) = %d, want > BMR %v",
				level, assessment.TargetCalories, testSnapshot().BasalMetabolicRate)
		}
	}
}

func TestAnalyze_MacroTargetsBalance(t *testing.T) {
	t.Parallel()

	assessment, err := Analyze(testSnapshot(), testProfile(SexMale, ActivityModeratelyActive))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if assessment.TargetProtein != 136 { // round(75.5 * 1.8)
		t.Errorf("TargetProtein = %d, want 136", assessment.TargetProtein)
	}
	macroCalories := assessment.TargetProtein*4 + assessment.TargetCarbs*4 + assessment.TargetFat*9
	diff := macroCalories - assessment.TargetCalories
	if diff < -4 || diff > 4 {
		t.Errorf("macro calories %d stray from target %d by more than rounding",
			macroCalories, assessment.TargetCalories)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	t.Parallel()

	profile := testProfile(SexFemale, ActivityVeryActive)
	first, err := Analyze(testSnapshot(), profile)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := Analyze(testSnapshot(), profile)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Analyze not deterministic (-first +second):\n%s", diff)
	}
}

func TestAnalyze_InvalidMeasurement(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	snapshot.HeightCm = 0

	_, err := Analyze(snapshot, testProfile(SexMale, ActivityModeratelyActive))
	if !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Analyze error = %v, want ErrInvalidMeasurement", err)
	}
}

func TestMetabolicAge_TracksMeasuredRate(t *testing.T) {
	t.Parallel()

	snapshot := testSnapshot()
	profile := testProfile(SexMale, ActivityModeratelyActive)

	base, err := Analyze(snapshot, profile)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// A higher measured metabolic rate should read as a younger metabolism.
	snapshot.BasalMetabolicRate += 100
	faster, err := Analyze(snapshot, profile)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if faster.MetabolicAge >= base.MetabolicAge {
		t.Errorf("MetabolicAge with faster metabolism = %d, want < %d",
			faster.MetabolicAge, base.MetabolicAge)
	}
	if faster.MetabolicAge != base.MetabolicAge-10 {
		t.Errorf("MetabolicAge delta = %d, want exactly 10 years per 100 kcal",
			base.MetabolicAge-faster.MetabolicAge)
	}
}

func TestAgeAt(t *testing.T) {
	t.Parallel()

	birth := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"day before birthday", time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC), 29},
		{"on birthday", time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC), 30},
		{"after birthday", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ageAt(birth, tt.at); got != tt.want {
				t.Errorf("ageAt = %d, want %d", got, tt.want)
			}
		})
	}
}
