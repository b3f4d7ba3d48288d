package inbody

import (
	"math"
	"time"

	"github.com/Gym-Brothers/Server/internal/errors"
)

// ErrInvalidMeasurement signals a snapshot with non-positive weight or height.
var ErrInvalidMeasurement = errors.NewSentinel("invalid measurement")

// Analyze derives a full health assessment from a snapshot and the subject's
// profile. It is deterministic: age is computed relative to the test date, so
// re-analyzing an old snapshot always yields the same result.
func Analyze(snapshot Snapshot, profile Profile) (Assessment, error) {
	if snapshot.WeightKg <= 0 || snapshot.HeightCm <= 0 {
		return Assessment{}, errors.Wrap(ErrInvalidMeasurement, "analyze snapshot")
	}

	age := ageAt(profile.DateOfBirth, snapshot.TestDate)

	assessment := Assessment{
		BMI:                bmi(snapshot.WeightKg, snapshot.HeightCm),
		BodyFatCategory:    classifyBodyFat(snapshot.BodyFatPercentage, profile.Sex),
		MuscleMassCategory: classifyMuscleMass(snapshot.SkeletalMuscleMassKg, snapshot.WeightKg),
		MetabolicAge:       metabolicAge(snapshot, profile.Sex, age),
		HydrationStatus:    classifyHydration(snapshot.TotalBodyWaterL, snapshot.WeightKg),
	}
	assessment.Recommendations = recommendations(snapshot, assessment)

	multiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		multiplier = defaultActivityMultiplier
	}
	assessment.TargetCalories = int(math.Round(snapshot.BasalMetabolicRate * multiplier))
	assessment.TargetProtein = int(math.Round(snapshot.WeightKg * 1.8))
	assessment.TargetFat = int(math.Round(float64(assessment.TargetCalories) * 0.275 / 9))
	assessment.TargetCarbs = int(math.Round(
		(float64(assessment.TargetCalories) -
			float64(assessment.TargetProtein)*4 -
			float64(assessment.TargetFat)*9) / 4))

	return assessment, nil
}

// bmi returns the body mass index rounded to one decimal.
func bmi(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10
}

func classifyBodyFat(percentage float64, sex Sex) BodyFatCategory {
	bands, ok := bodyFatBands[sex]
	if !ok {
		bands = bodyFatBands[SexMale]
	}
	for _, band := range bands {
		if percentage <= band.upper {
			return band.category
		}
	}
	return BodyFatObese
}

func classifyMuscleMass(muscleKg, weightKg float64) MuscleMassCategory {
	percentage := muscleKg / weightKg * 100
	for _, band := range muscleMassBands {
		if percentage >= band.lower {
			return band.category
		}
	}
	return MuscleMassBelowAverage
}

func classifyHydration(waterL, weightKg float64) HydrationStatus {
	percentage := waterL / weightKg * 100
	for _, band := range hydrationBands {
		if percentage >= band.lower {
			return band.status
		}
	}
	return HydrationDehydr
}

// metabolicAge compares the measured basal metabolic rate against the
// Harris-Benedict expectation for the subject's own weight, height and age.
// A measured rate below expectation ages the subject, above rejuvenates.
func metabolicAge(snapshot Snapshot, sex Sex, age int) int {
	var expected float64
	if sex == SexFemale {
		expected = 447.593 + 9.247*snapshot.WeightKg + 3.098*snapshot.HeightCm - 4.330*float64(age)
	} else {
		expected = 88.362 + 13.397*snapshot.WeightKg + 4.799*snapshot.HeightCm - 5.677*float64(age)
	}
	return int(math.Round(float64(age) + (expected-snapshot.BasalMetabolicRate)/10))
}

func recommendations(snapshot Snapshot, assessment Assessment) []string {
	var recs []string

	if snapshot.BodyFatPercentage > 25 {
		recs = append(recs, recCardioDeficit)
	} else if snapshot.BodyFatPercentage < 10 {
		recs = append(recs, recHealthyFats)
	}

	musclePct := snapshot.SkeletalMuscleMassKg / snapshot.WeightKg * 100
	if musclePct < 35 {
		recs = append(recs, recStrengthTrain, recProteinIntake)
	}

	hydrationPct := snapshot.TotalBodyWaterL / snapshot.WeightKg * 100
	if hydrationPct < 55 {
		recs = append(recs, recWaterIntake)
	}

	if snapshot.VisceralFatLevel > 12 {
		recs = append(recs, recVisceralFatDown)
	}

	return recs
}

// ageAt returns completed years between birth and the reference date.
func ageAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}
