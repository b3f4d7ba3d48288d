package training

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	defaultDurationWeeks = 8
	defaultDaysPerWeek   = 3
	// secondsPerRep approximates time under load for rep-based exercises when
	// estimating session length.
	secondsPerRep = 3
)

// generateProgram builds a complete training program. It is pure and
// deterministic: the same inputs always produce the same program.
func generateProgram(programType ProgramType, difficulty Difficulty, durationWeeks, daysPerWeek int) Program {
	if durationWeeks <= 0 {
		durationWeeks = defaultDurationWeeks
	}
	if daysPerWeek <= 0 || daysPerWeek > 7 {
		daysPerWeek = defaultDaysPerWeek
	}

	split := splitFor(programType, daysPerWeek)
	perArea, ok := exercisesPerArea[difficulty]
	if !ok {
		difficulty = DifficultyIntermediate
		perArea = defaultExercisesPerArea
	}

	program := Program{
		Name: fmt.Sprintf("%d-Week %s Program", durationWeeks, titleCase(string(programType))),
		Description: fmt.Sprintf("A %s %s program with %d training days per week.",
			string(difficulty), titleCase(string(programType)), daysPerWeek),
		Type:          programType,
		Difficulty:    difficulty,
		DurationWeeks: durationWeeks,
		DaysPerWeek:   daysPerWeek,
	}

	muscles := map[string]bool{}
	equipment := map[string]bool{}

	totalDays := durationWeeks * 7
	program.Days = make([]Day, 0, totalDays)
	for dayNumber := 1; dayNumber <= totalDays; dayNumber++ {
		weekday := (dayNumber - 1) % 7
		weekNumber := (dayNumber-1)/7 + 1

		if weekday >= daysPerWeek {
			program.Days = append(program.Days, Day{
				DayNumber:   dayNumber,
				WeekNumber:  weekNumber,
				Name:        "Rest Day",
				Description: "Recovery day. Light walking and stretching only.",
				RestDay:     true,
			})
			continue
		}

		archetype := split[weekday%len(split)]
		day := buildWorkoutDay(dayNumber, weekNumber, archetype, difficulty, perArea)
		for _, exercise := range day.Exercises {
			for _, muscle := range exercise.TargetMuscles {
				muscles[muscle] = true
			}
			for _, item := range exercise.Equipment {
				equipment[item] = true
			}
		}
		if program.DurationMinutes == 0 {
			program.DurationMinutes = day.DurationMinutes
		}
		program.Days = append(program.Days, day)
	}

	program.TargetMuscles = sortedKeys(muscles)
	program.EquipmentNeeded = sortedKeys(equipment)
	return program
}

// buildWorkoutDay prescribes exercises for each focus area of the archetype,
// scaled to the difficulty, with sequential order indices across areas.
func buildWorkoutDay(dayNumber, weekNumber int, archetype dayArchetype, difficulty Difficulty, perArea int) Day {
	day := Day{
		DayNumber:   dayNumber,
		WeekNumber:  weekNumber,
		Name:        archetype.name,
		Description: fmt.Sprintf("Week %d %s session", weekNumber, archetype.name),
		FocusAreas:  archetype.focusAreas,
		WarmUp: fmt.Sprintf(
			"5-10 minutes of light cardio followed by dynamic stretching targeting %s",
			strings.Join(archetype.focusAreas, ", ")),
		CoolDown: "5-10 minutes of static stretching and light walking to cool down",
	}

	orderIndex := 0
	totalSeconds := 0
	for _, area := range archetype.focusAreas {
		catalog := catalogFor(area)
		count := perArea
		if count > len(catalog) {
			count = len(catalog)
		}
		for _, entry := range catalog[:count] {
			exercise := scaleExercise(entry, difficulty)
			exercise.OrderIndex = orderIndex
			orderIndex++
			totalSeconds += exerciseSeconds(exercise)
			day.Exercises = append(day.Exercises, exercise)
		}
	}
	day.DurationMinutes = int(math.Round(float64(totalSeconds) / 60))
	return day
}

// scaleExercise adjusts the catalog baseline for the difficulty. Beginners
// drop a set and two reps against floors of two sets and eight reps; advanced
// and expert add a set and two reps. Duration-based exercises keep their
// prescribed time at every level.
func scaleExercise(entry catalogExercise, difficulty Difficulty) Exercise {
	exercise := Exercise{
		Name:            entry.name,
		Type:            entry.exerciseType,
		Sets:            entry.sets,
		Reps:            entry.reps,
		DurationSeconds: entry.durationSeconds,
		RestSeconds:     entry.restSeconds,
		TargetMuscles:   entry.targetMuscles,
		Equipment:       entry.equipment,
		Instructions:    entry.instructions,
	}
	switch difficulty {
	case DifficultyBeginner:
		exercise.Sets = max(2, exercise.Sets-1)
		if exercise.Reps > 0 {
			exercise.Reps = max(8, exercise.Reps-2)
		}
	case DifficultyAdvanced, DifficultyExpert:
		exercise.Sets++
		if exercise.Reps > 0 {
			exercise.Reps += 2
		}
	}
	return exercise
}

// exerciseSeconds estimates total time spent on an exercise including rest
// between sets.
func exerciseSeconds(exercise Exercise) int {
	work := exercise.DurationSeconds
	if exercise.Reps > 0 {
		work = exercise.Reps * secondsPerRep
	}
	return exercise.Sets * (work + exercise.RestSeconds)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// titleCase turns a snake_case enum value into a human-readable title.
func titleCase(value string) string {
	words := strings.Split(value, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
