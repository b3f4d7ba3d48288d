// Package training generates and stores week-by-week training programs scaled
// to the client's goal and experience level.
package training

// ProgramType selects the workout split.
type ProgramType string

const (
	ProgramWeightLoss     ProgramType = "weight_loss"
	ProgramMuscleGain     ProgramType = "muscle_gain"
	ProgramStrength       ProgramType = "strength"
	ProgramEndurance      ProgramType = "endurance"
	ProgramFlexibility    ProgramType = "flexibility"
	ProgramRehabilitation ProgramType = "rehabilitation"
	ProgramGeneralFitness ProgramType = "general_fitness"
)

// Difficulty scales exercise volume up or down.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Exercise is one prescribed exercise within a training day. Either Reps or
// DurationSeconds is set, never both.
type Exercise struct {
	ID              int      `json:"id"`
	OrderIndex      int      `json:"order_index"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Sets            int      `json:"sets"`
	Reps            int      `json:"reps"`
	DurationSeconds int      `json:"duration_seconds"`
	RestSeconds     int      `json:"rest_seconds"`
	TargetMuscles   []string `json:"target_muscles"`
	Equipment       []string `json:"equipment"`
	Instructions    string   `json:"instructions"`
}

// Day is one day of a training program, either a workout or a rest day.
type Day struct {
	ID              int        `json:"id"`
	DayNumber       int        `json:"day_number"`
	WeekNumber      int        `json:"week_number"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	RestDay         bool       `json:"rest_day"`
	DurationMinutes int        `json:"estimated_duration_minutes"`
	FocusAreas      []string   `json:"focus_areas"`
	WarmUp          string     `json:"warm_up"`
	CoolDown        string     `json:"cool_down"`
	Exercises       []Exercise `json:"exercises"`
}

// Program is a complete training program for a client.
type Program struct {
	ID              int         `json:"id"`
	UserID          int         `json:"user_id"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Type            ProgramType `json:"program_type"`
	Difficulty      Difficulty  `json:"difficulty"`
	DurationWeeks   int         `json:"duration_weeks"`
	DaysPerWeek     int         `json:"days_per_week"`
	DurationMinutes int         `json:"estimated_duration_minutes"`
	EquipmentNeeded []string    `json:"equipment_needed"`
	TargetMuscles   []string    `json:"target_muscles"`
	Days            []Day       `json:"days"`
}
