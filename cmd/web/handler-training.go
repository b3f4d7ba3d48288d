package main

import (
	"net/http"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/training"
)

// programCreatePOST generates a training program for the logged-in user.
func (app *application) programCreatePOST(w http.ResponseWriter, r *http.Request) {
	var req training.GenerateRequest
	if !app.readJSON(w, r, &req) {
		return
	}

	program, err := app.trainingSvc.Generate(r.Context(), app.currentUserID(r), req)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, program)
}

// programsGET lists the user's training programs, newest first.
func (app *application) programsGET(w http.ResponseWriter, r *http.Request) {
	programs, err := app.trainingSvc.Programs(r.Context(), app.currentUserID(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if programs == nil {
		programs = []training.Program{}
	}
	app.writeJSON(w, r, http.StatusOK, programs)
}

// programGET returns one program with all days and exercises.
func (app *application) programGET(w http.ResponseWriter, r *http.Request) {
	programID, ok := app.parseIDParam(w, r, "programID")
	if !ok {
		return
	}
	program, err := app.trainingSvc.Program(r.Context(), app.currentUserID(r), programID)
	if errors.Is(err, training.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, program)
}
