package main

import (
	"testing"

	"github.com/Gym-Brothers/Server/internal/e2etest"
	"github.com/Gym-Brothers/Server/internal/testhelpers"
)

func Test_application_coachingPackage(t *testing.T) {
	ctx := t.Context()

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if err = client.Login(ctx, 1); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	packageRequest := map[string]any{
		"nutrition": map[string]any{
			"goal":           "muscle_gain",
			"diet_type":      "high_protein",
			"duration_weeks": 8,
		},
		"training": map[string]any{
			"program_type":   "muscle_gain",
			"difficulty":     "intermediate",
			"duration_weeks": 8,
			"days_per_week":  4,
		},
	}

	// The package needs a recorded body-composition test.
	if err = client.PostJSON(ctx, "/api/coaching-package", packageRequest, nil); err == nil {
		t.Error("expected package generation without a recorded test to fail")
	}

	if err = client.PostJSON(ctx, "/api/inbody", testSnapshotBody(), nil); err != nil {
		t.Fatalf("Failed to record test: %v", err)
	}

	var pkg struct {
		Assessment struct {
			BMI            float64 `json:"bmi"`
			TargetCalories int     `json:"target_calories"`
		} `json:"assessment"`
		NutritionPlan struct {
			ID            int    `json:"id"`
			Goal          string `json:"goal"`
			DailyCalories int    `json:"daily_calories"`
		} `json:"nutrition_plan"`
		Program struct {
			ID   int    `json:"id"`
			Type string `json:"program_type"`
		} `json:"training_program"`
	}
	if err = client.PostJSON(ctx, "/api/coaching-package", packageRequest, &pkg); err != nil {
		t.Fatalf("Failed to generate package: %v", err)
	}

	if pkg.Assessment.BMI != 24.7 || pkg.Assessment.TargetCalories != 2604 {
		t.Errorf("assessment = %+v, want BMI 24.7 and 2604 kcal", pkg.Assessment)
	}
	// Muscle gain scales the maintenance target by 1.10.
	if pkg.NutritionPlan.DailyCalories != 2864 {
		t.Errorf("daily calories = %d, want 2864", pkg.NutritionPlan.DailyCalories)
	}
	if pkg.NutritionPlan.ID == 0 || pkg.Program.ID == 0 {
		t.Errorf("package plan ID %d and program ID %d, want both persisted",
			pkg.NutritionPlan.ID, pkg.Program.ID)
	}

	// Both artifacts are listed afterwards.
	var plans, programs []struct {
		ID int `json:"id"`
	}
	if err = client.GetJSON(ctx, "/api/nutrition-plans", &plans); err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	if err = client.GetJSON(ctx, "/api/programs", &programs); err != nil {
		t.Fatalf("Failed to list programs: %v", err)
	}
	if len(plans) != 1 || len(programs) != 1 {
		t.Errorf("found %d plans and %d programs, want 1 and 1", len(plans), len(programs))
	}
}
