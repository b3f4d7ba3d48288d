package main

import (
	"net/http"

	"github.com/Gym-Brothers/Server/internal/errors"
	"github.com/Gym-Brothers/Server/internal/inbody"
)

// loginPOST starts a session for an existing user.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID int `json:"user_id"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}

	user, err := app.bodyService.GetUser(r.Context(), req.UserID)
	if errors.Is(err, inbody.ErrNotFound) {
		app.clientError(w, r, http.StatusUnauthorized, "unknown user")
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// Renew the session token on privilege change to prevent session fixation.
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, user.ID)

	app.writeJSON(w, r, http.StatusOK, user)
}

// logoutPOST destroys the current session.
func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged out"})
}

// currentUserGET returns the logged-in user with their profile.
func (app *application) currentUserGET(w http.ResponseWriter, r *http.Request) {
	user, err := app.bodyService.GetUser(r.Context(), app.currentUserID(r))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, user)
}
