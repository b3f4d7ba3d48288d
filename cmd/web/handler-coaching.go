package main

import (
	"net/http"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/inbody"
	"github.com/Gym-Brothers/Server/internal/nutrition"
	"github.com/Gym-Brothers/Server/internal/training"
	"golang.org/x/sync/errgroup"
)

type coachingPackageRequest struct {
	Nutrition nutrition.GenerateRequest `json:"nutrition"`
	Training  training.GenerateRequest  `json:"training"`
}

type coachingPackageResponse struct {
	Assessment    inbody.Assessment `json:"assessment"`
	NutritionPlan nutrition.Plan    `json:"nutrition_plan"`
	Program       training.Program  `json:"training_program"`
}

// coachingPackagePOST generates the full coaching package in one call: the
// health assessment plus a nutrition plan and a training program, generated
// concurrently.
func (app *application) coachingPackagePOST(w http.ResponseWriter, r *http.Request) {
	var req coachingPackageRequest
	if !app.readJSON(w, r, &req) {
		return
	}
	userID := app.currentUserID(r)

	assessment, err := app.bodyService.AnalyzeLatest(r.Context(), userID)
	if errors.Is(err, inbody.ErrNoSnapshot) {
		app.clientError(w, r, http.StatusConflict, "record a body composition test before generating a package")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var (
		plan    nutrition.Plan
		program training.Program
	)
	group, ctx := errgroup.WithContext(r.Context())
	group.Go(func() error {
		var err error
		plan, err = app.nutritionSvc.Generate(ctx, userID, req.Nutrition)
		return err
	})
	group.Go(func() error {
		var err error
		program, err = app.trainingSvc.Generate(ctx, userID, req.Training)
		return err
	})
	if err := group.Wait(); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, coachingPackageResponse{
		Assessment:    assessment,
		NutritionPlan: plan,
		Program:       program,
	})
}
