package main

import (
	"bytes"
	"net/http"
	"sort"

	"github.com/Gym-Brothers/Server/internal/training"
	"github.com/yuin/goldmark"
)

type catalogExerciseResponse struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Sets             int      `json:"sets"`
	Reps             int      `json:"reps"`
	DurationSeconds  int      `json:"duration_seconds"`
	RestSeconds      int      `json:"rest_seconds"`
	TargetMuscles    []string `json:"target_muscles"`
	Equipment        []string `json:"equipment"`
	Instructions     string   `json:"instructions"`
	InstructionsHTML string   `json:"instructions_html"`
}

type catalogAreaResponse struct {
	FocusArea string                    `json:"focus_area"`
	Exercises []catalogExerciseResponse `json:"exercises"`
}

// exerciseCatalogGET returns the built-in exercise catalog with instructions
// rendered to HTML.
func (app *application) exerciseCatalogGET(w http.ResponseWriter, r *http.Request) {
	catalog := training.Catalog()

	areas := make([]string, 0, len(catalog))
	for area := range catalog {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	md := goldmark.New()
	response := make([]catalogAreaResponse, 0, len(areas))
	for _, area := range areas {
		entry := catalogAreaResponse{FocusArea: area}
		for _, exercise := range catalog[area] {
			var html bytes.Buffer
			if err := md.Convert([]byte(exercise.Instructions), &html); err != nil {
				app.serverError(w, r, err)
				return
			}
			entry.Exercises = append(entry.Exercises, catalogExerciseResponse{
				Name:             exercise.Name,
				Type:             exercise.Type,
				Sets:             exercise.Sets,
				Reps:             exercise.Reps,
				DurationSeconds:  exercise.DurationSeconds,
				RestSeconds:      exercise.RestSeconds,
				TargetMuscles:    exercise.TargetMuscles,
				Equipment:        exercise.Equipment,
				Instructions:     exercise.Instructions,
				InstructionsHTML: html.String(),
			})
		}
		response = append(response, entry)
	}
	app.writeJSON(w, r, http.StatusOK, response)
}
