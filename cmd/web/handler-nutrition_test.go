package main

import (
	"net/http"
	"testing"

	"github.com/Gym-Brothers/Server/internal/e2etest"
	"github.com/Gym-Brothers/Server/internal/testhelpers"
)

func Test_application_nutritionPlans(t *testing.T) {
	ctx := t.Context()

	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if err = client.Login(ctx, 1); err != nil {
		t.Fatalf("Failed to login: %v", err)
	}

	planRequest := map[string]any{
		"goal":           "weight_loss",
		"diet_type":      "high_protein",
		"duration_weeks": 4,
		"preferences": map[string]any{
			"meals_per_day": 5,
			"allergies":     []string{"peanuts"},
		},
	}

	// Generating without a body-composition test conflicts.
	resp, err := client.Get(ctx, "/api/nutrition-plans")
	if err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("list plans status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if err = client.PostJSON(ctx, "/api/nutrition-plans", planRequest, nil); err == nil {
		t.Error("expected plan generation without a recorded test to fail")
	}

	if err = client.PostJSON(ctx, "/api/inbody", testSnapshotBody(), nil); err != nil {
		t.Fatalf("Failed to record test: %v", err)
	}

	var plan struct {
		ID            int    `json:"id"`
		Goal          string `json:"goal"`
		DailyCalories int    `json:"daily_calories"`
		MealsPerDay   int    `json:"meals_per_day"`
		Days          []struct {
			DayNumber  int `json:"day_number"`
			WeekNumber int `json:"week_number"`
			Meals      []struct {
				Type     string `json:"type"`
				Calories int    `json:"calories"`
				Foods    []struct {
					Name string `json:"name"`
				} `json:"foods"`
			} `json:"meals"`
		} `json:"days"`
	}
	if err = client.PostJSON(ctx, "/api/nutrition-plans", planRequest, &plan); err != nil {
		t.Fatalf("Failed to generate plan: %v", err)
	}
	if plan.ID == 0 {
		t.Error("generated plan has no ID")
	}
	// Weight loss scales the 2604 kcal maintenance target by 0.80.
	if plan.DailyCalories != 2083 {
		t.Errorf("daily calories = %d, want 2083", plan.DailyCalories)
	}
	if len(plan.Days) != 28 {
		t.Fatalf("len(days) = %d, want 28", len(plan.Days))
	}
	if got := len(plan.Days[0].Meals); got != 5 {
		t.Errorf("meals on day 1 = %d, want 5", got)
	}
	if plan.Days[0].Meals[0].Type != "breakfast" || len(plan.Days[0].Meals[0].Foods) == 0 {
		t.Errorf("first meal = %+v, want a breakfast with foods", plan.Days[0].Meals[0])
	}

	// The stored plan round-trips through the database.
	var loaded struct {
		ID   int `json:"id"`
		Days []struct {
			DayNumber int `json:"day_number"`
		} `json:"days"`
	}
	if err = client.GetJSON(ctx, "/api/nutrition-plans/1", &loaded); err != nil {
		t.Fatalf("Failed to load plan: %v", err)
	}
	if loaded.ID != plan.ID || len(loaded.Days) != 28 {
		t.Errorf("loaded plan ID %d with %d days, want ID %d with 28 days",
			loaded.ID, len(loaded.Days), plan.ID)
	}

	var plans []struct {
		ID int `json:"id"`
	}
	if err = client.GetJSON(ctx, "/api/nutrition-plans", &plans); err != nil {
		t.Fatalf("Failed to list plans: %v", err)
	}
	if len(plans) != 1 {
		t.Errorf("len(plans) = %d, want 1", len(plans))
	}

	// Other users' plans are not reachable.
	resp, err = client.Get(ctx, "/api/nutrition-plans/42")
	if err != nil {
		t.Fatalf("Failed to get missing plan: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing plan status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}
