package main

import (
	"net/http"
	"testing"

	"github.com/Gym-Brothers/Server/internal/e2etest"
	"github.com/Gym-Brothers/Server/internal/testhelpers"
)

// testSnapshotBody is a realistic body-composition reading for the demo user.
func testSnapshotBody() map[string]any {
	return map[string]any{
		"test_date":                 "2025-06-01",
		"weight_kg":                 75.5,
		"height_cm":                 175.0,
		"skeletal_muscle_mass_kg":   32.8,
		"body_fat_mass_kg":          12.3,
		"body_fat_percentage":       16.3,
		"total_body_water_l":        45.2,
		"basal_metabolic_rate_kcal": 1680.0,
		"visceral_fat_level":        7.0,
	}
}

func Test_application_inbody(t *testing.T) {
	ctx := t.Context()

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if err = client.Login(ctx, 1); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	// Analysis before any test is recorded yields 404.
	resp, err := client.Get(ctx, "/api/inbody/analysis")
	if err != nil {
		t.Fatalf("Failed to get analysis: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("analysis without test status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}

	// Invalid measurements are rejected.
	invalid := testSnapshotBody()
	invalid["height_cm"] = 0.0
	if err = client.PostJSON(ctx, "/api/inbody", invalid, nil); err == nil {
		t.Error("expected recording a zero-height test to fail")
	}

	var created struct {
		ID       int     `json:"id"`
		WeightKg float64 `json:"weight_kg"`
	}
	if err = client.PostJSON(ctx, "/api/inbody", testSnapshotBody(), &created); err != nil {
		t.Fatalf("Failed to record test: %v", err)
	}
	if created.ID == 0 || created.WeightKg != 75.5 {
		t.Errorf("created test = %+v, want assigned ID and weight 75.5", created)
	}

	var history []struct {
		ID int `json:"id"`
	}
	if err = client.GetJSON(ctx, "/api/inbody", &history); err != nil {
		t.Fatalf("Failed to list tests: %v", err)
	}
	if len(history) != 1 || history[0].ID != created.ID {
		t.Errorf("history = %+v, want the single recorded test", history)
	}

	var analysis struct {
		BMI             float64  `json:"bmi"`
		BodyFatCategory string   `json:"body_fat_category"`
		MuscleMass      string   `json:"muscle_mass_category"`
		HydrationStatus string   `json:"hydration_status"`
		TargetCalories  int      `json:"target_calories"`
		TargetProtein   int      `json:"target_protein"`
		Recommendations []string `json:"recommendations"`
	}
	if err = client.GetJSON(ctx, "/api/inbody/analysis", &analysis); err != nil {
		t.Fatalf("Failed to get analysis: %v", err)
	}
	if analysis.BMI != 24.7 {
		t.Errorf("BMI = %v, want 24.7", analysis.BMI)
	}
	if analysis.BodyFatCategory != "Fitness" {
		t.Errorf("body fat category = %q, want Fitness", analysis.BodyFatCategory)
	}
	if analysis.MuscleMass != "Good" {
		t.Errorf("muscle mass category = %q, want Good", analysis.MuscleMass)
	}
	if analysis.HydrationStatus != "Adequately Hydrated" {
		t.Errorf("hydration status = %q, want Adequately Hydrated", analysis.HydrationStatus)
	}
	// The demo user is moderately active: 1680 kcal at 1.55 multiplier.
	if analysis.TargetCalories != 2604 {
		t.Errorf("target calories = %d, want 2604", analysis.TargetCalories)
	}
}
