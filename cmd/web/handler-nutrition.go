package main

import (
	"net/http"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/inbody"
	"github.com/Gym-Brothers/Server/internal/nutrition"
)

// nutritionPlanCreatePOST generates a nutrition plan from the latest
// body-composition test.
func (app *application) nutritionPlanCreatePOST(w http.ResponseWriter, r *http.Request) {
	var req nutrition.GenerateRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	plan, err := app.nutritionSvc.Generate(r.Context(), app.currentUserID(r), req)
	if errors.Is(err, inbody.ErrNoSnapshot) {
		app.clientError(w, r, http.StatusConflict, "record a body composition test before generating a plan")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, plan)
}

// nutritionPlansGET lists the user's nutrition plans, newest first.
func (app *application) nutritionPlansGET(w http.ResponseWriter, r *http.Request) {
	plans, err := app.nutritionSvc.Plans(r.Context(), app.currentUserID(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if plans == nil {
		plans = []nutrition.Plan{}
	}
	app.writeJSON(w, r, http.StatusOK, plans)
}

// nutritionPlanGET returns one plan with all days, meals and food items.
func (app *application) nutritionPlanGET(w http.ResponseWriter, r *http.Request) {
	planID, ok := app.parseIDParam(w, r, "planID")
	if !ok {
		return
	}
	plan, err := app.nutritionSvc.Plan(r.Context(), app.currentUserID(r), planID)
	if errors.Is(err, nutrition.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}
