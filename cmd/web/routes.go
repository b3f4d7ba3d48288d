package main

import (
	"net/http"

	"github.com/rs/cors"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(app.timeout(next))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(shared(next))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("POST /api/inbody", mustSession(http.HandlerFunc(app.inbodyCreatePOST)))
	mux.Handle("GET /api/inbody", mustSession(http.HandlerFunc(app.inbodyHistoryGET)))
	mux.Handle("GET /api/inbody/latest", mustSession(http.HandlerFunc(app.inbodyLatestGET)))
	mux.Handle("GET /api/inbody/analysis", mustSession(http.HandlerFunc(app.inbodyAnalysisGET)))

	mux.Handle("POST /api/nutrition-plans", mustSession(http.HandlerFunc(app.nutritionPlanCreatePOST)))
	mux.Handle("GET /api/nutrition-plans", mustSession(http.HandlerFunc(app.nutritionPlansGET)))
	mux.Handle("GET /api/nutrition-plans/{planID}", mustSession(http.HandlerFunc(app.nutritionPlanGET)))

	mux.Handle("POST /api/programs", mustSession(http.HandlerFunc(app.programCreatePOST)))
	mux.Handle("GET /api/programs", mustSession(http.HandlerFunc(app.programsGET)))
	mux.Handle("GET /api/programs/{programID}", mustSession(http.HandlerFunc(app.programGET)))

	mux.Handle("POST /api/coaching-package", mustSession(http.HandlerFunc(app.coachingPackagePOST)))

	mux.Handle("GET /api/exercise-catalog", session(http.HandlerFunc(app.exerciseCatalogGET)))

	mux.Handle("GET /api/users/me", mustSession(http.HandlerFunc(app.currentUserGET)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   app.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return corsMiddleware.Handler(mux)
}
