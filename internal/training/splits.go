package training

// dayArchetype is one workout day template within a split.
type dayArchetype struct {
	name       string
	focusAreas []string
}

// splitKey selects a split by program type and training days per week.
type splitKey struct {
	programType ProgramType
	daysPerWeek int
}

// splits maps program configurations to their weekly day archetypes. The
// archetypes repeat across the program in weekday order.
var splits = map[splitKey][]dayArchetype{
	{ProgramStrength, 3}: {
		{"Upper Body Strength", []string{"chest", "back", "shoulders", "arms"}},
		{"Lower Body Strength", []string{"quads", "hamstrings", "glutes", "calves"}},
		{"Full Body Power", []string{"full body"}},
	},
	{ProgramStrength, 4}: {
		{"Push Day", []string{"chest", "shoulders", "triceps"}},
		{"Pull Day", []string{"back", "biceps"}},
		{"Leg Day", []string{"quads", "hamstrings", "glutes", "calves"}},
		{"Upper Body", []string{"chest", "back", "shoulders", "arms"}},
	},
	{ProgramMuscleGain, 4}: {
		{"Chest & Triceps", []string{"chest", "triceps"}},
		{"Back & Biceps", []string{"back", "biceps"}},
		{"Legs & Glutes", []string{"legs", "glutes"}},
		{"Shoulders & Arms", []string{"shoulders", "arms"}},
	},
	{ProgramMuscleGain, 5}: {
		{"Chest Day", []string{"chest"}},
		{"Back Day", []string{"back"}},
		{"Shoulder Day", []string{"shoulders"}},
		{"Arm Day", []string{"arms"}},
		{"Leg Day", []string{"legs"}},
	},
	{ProgramWeightLoss, 4}: {
		{"HIIT Cardio", []string{"cardio"}},
		{"Upper Body Circuit", []string{"chest", "back", "shoulders", "arms"}},
		{"Lower Body Circuit", []string{"legs", "glutes"}},
		{"Full Body HIIT", []string{"full body"}},
	},
}

var defaultSplitKey = splitKey{ProgramStrength, 3}

// splitFor returns the day archetypes for a program configuration, falling
// back to the three-day strength split when no dedicated split exists.
func splitFor(programType ProgramType, daysPerWeek int) []dayArchetype {
	if split, ok := splits[splitKey{programType, daysPerWeek}]; ok {
		return split
	}
	return splits[defaultSplitKey]
}

// exercisesPerArea is the number of exercises drawn per focus area at each
// difficulty.
var exercisesPerArea = map[Difficulty]int{
	DifficultyBeginner:     2,
	DifficultyIntermediate: 3,
	DifficultyAdvanced:     4,
	DifficultyExpert:       4,
}

const defaultExercisesPerArea = 3
