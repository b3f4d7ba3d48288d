package main

import (
	"net/http"
	"time"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/inbody"
)

type inbodyCreateRequest struct {
	TestDate             string                  `json:"test_date"`
	WeightKg             float64                 `json:"weight_kg"`
	HeightCm             float64                 `json:"height_cm"`
	SkeletalMuscleMassKg float64                 `json:"skeletal_muscle_mass_kg"`
	BodyFatMassKg        float64                 `json:"body_fat_mass_kg"`
	BodyFatPercentage    float64                 `json:"body_fat_percentage"`
	TotalBodyWaterL      float64                 `json:"total_body_water_l"`
	BasalMetabolicRate   float64                 `json:"basal_metabolic_rate_kcal"`
	VisceralFatLevel     float64                 `json:"visceral_fat_level"`
	Segments             *inbody.SegmentalMuscle `json:"segments"`
}

// inbodyCreatePOST records a new body-composition test for the logged-in user.
func (app *application) inbodyCreatePOST(w http.ResponseWriter, r *http.Request) {
	var req inbodyCreateRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	testDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.TestDate != "" {
		var err error
		if testDate, err = time.Parse(time.DateOnly, req.TestDate); err != nil {
			app.clientError(w, r, http.StatusBadRequest, "test_date must be formatted as 2006-01-02")
			return
		}
	}

	snapshot := inbody.Snapshot{
		UserID:               app.currentUserID(r),
		TestDate:             testDate,
		WeightKg:             req.WeightKg,
		HeightCm:             req.HeightCm,
		SkeletalMuscleMassKg: req.SkeletalMuscleMassKg,
		BodyFatMassKg:        req.BodyFatMassKg,
		BodyFatPercentage:    req.BodyFatPercentage,
		TotalBodyWaterL:      req.TotalBodyWaterL,
		BasalMetabolicRate:   req.BasalMetabolicRate,
		VisceralFatLevel:     req.VisceralFatLevel,
		Segments:             req.Segments,
	}

	stored, err := app.bodyService.RecordTest(r.Context(), snapshot)
	if errors.Is(err, inbody.ErrInvalidMeasurement) {
		app.clientError(w, r, http.StatusBadRequest, "weight and height must be positive")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, stored)
}

// inbodyHistoryGET lists the user's body-composition tests, newest first.
func (app *application) inbodyHistoryGET(w http.ResponseWriter, r *http.Request) {
	snapshots, err := app.bodyService.History(r.Context(), app.currentUserID(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if snapshots == nil {
		snapshots = []inbody.Snapshot{}
	}
	app.writeJSON(w, r, http.StatusOK, snapshots)
}

// inbodyLatestGET returns the user's most recent body-composition test.
func (app *application) inbodyLatestGET(w http.ResponseWriter, r *http.Request) {
	snapshot, err := app.bodyService.Latest(r.Context(), app.currentUserID(r))
	if errors.Is(err, inbody.ErrNoSnapshot) {
		app.clientError(w, r, http.StatusNotFound, "no body composition test recorded")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, snapshot)
}

// inbodyAnalysisGET returns the health assessment for the latest test.
func (app *application) inbodyAnalysisGET(w http.ResponseWriter, r *http.Request) {
	assessment, err := app.bodyService.AnalyzeLatest(r.Context(), app.currentUserID(r))
	if errors.Is(err, inbody.ErrNoSnapshot) {
		app.clientError(w, r, http.StatusNotFound, "no body composition test recorded")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, assessment)
}
