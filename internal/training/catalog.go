package training

// catalogExercise is one entry of the built-in exercise catalog. Sets, reps
// and rest are the intermediate-level baseline; the generator scales them per
// difficulty. Duration-based exercises have Reps zero.
type catalogExercise struct {
	name            string
	exerciseType    string
	sets            int
	reps            int
	durationSeconds int
	restSeconds     int
	targetMuscles   []string
	equipment       []string
	instructions    string
}

// exerciseCatalog maps canonical focus areas to candidate exercises. Each area
// carries at least four entries so the advanced prescription never runs short.
var exerciseCatalog = map[string][]catalogExercise{
	"chest": {
		{"Push-ups", "strength", 3, 12, 0, 60, []string{"chest", "triceps", "shoulders"}, []string{"bodyweight"},
			"Keep your body in a straight line from head to heels. Lower until your chest nearly touches the floor, then press back up."},
		{"Bench Press", "strength", 4, 8, 0, 90, []string{"chest", "triceps"}, []string{"barbell", "bench"},
			"Grip slightly wider than shoulder width. Lower the bar to mid-chest under control and drive it back up without bouncing."},
		{"Dumbbell Flyes", "strength", 3, 12, 0, 60, []string{"chest"}, []string{"dumbbells", "bench"},
			"With a slight bend in the elbows, open your arms in a wide arc until you feel a stretch, then squeeze back together."},
		{"Incline Dumbbell Press", "strength", 3, 10, 0, 75, []string{"chest", "shoulders"}, []string{"dumbbells", "bench"},
			"Set the bench to roughly 30 degrees. Press the dumbbells up and slightly together without locking out hard."},
	},
	"back": {
		{"Pull-ups", "strength", 3, 8, 0, 90, []string{"back", "biceps"}, []string{"pull-up bar"},
			"Start from a dead hang. Pull your chin over the bar leading with the chest, then lower under full control."},
		{"Bent-over Rows", "strength", 4, 10, 0, 75, []string{"back", "biceps"}, []string{"barbell"},
			"Hinge at the hips with a flat back. Row the bar to your lower ribs and squeeze the shoulder blades together."},
		{"Lat Pulldowns", "strength", 3, 12, 0, 60, []string{"back", "biceps"}, []string{"cable machine"},
			"Pull the bar to your upper chest while keeping the torso upright. Resist the weight on the way up."},
		{"Face Pulls", "strength", 3, 15, 0, 45, []string{"back", "shoulders"}, []string{"cable machine"},
			"Pull the rope towards your face with elbows high, finishing with the hands beside your ears."},
	},
	"shoulders": {
		{"Overhead Press", "strength", 4, 8, 0, 90, []string{"shoulders", "triceps"}, []string{"barbell"},
			"Brace your core and press the bar overhead in a straight line, finishing with biceps beside the ears."},
		{"Lateral Raises", "strength", 3, 15, 0, 45, []string{"shoulders"}, []string{"dumbbells"},
			"Raise the dumbbells out to the side to shoulder height with a soft bend in the elbows. Lower slowly."},
		{"Front Raises", "strength", 3, 12, 0, 45, []string{"shoulders"}, []string{"dumbbells"},
			"Raise one dumbbell at a time straight in front of you to eye level without swinging."},
		{"Rear Delt Flyes", "strength", 3, 15, 0, 45, []string{"shoulders", "back"}, []string{"dumbbells"},
			"Hinge forward and open your arms out to the side, leading with the elbows. Pause briefly at the top."},
	},
	"arms": {
		{"Bicep Curls", "strength", 3, 12, 0, 60, []string{"biceps"}, []string{"dumbbells"},
			"Keep the elbows pinned to your sides. Curl the dumbbells up without swinging and lower slowly."},
		{"Tricep Dips", "strength", 3, 10, 0, 60, []string{"triceps", "chest"}, []string{"bodyweight"},
			"Lower your body until the upper arms are parallel to the floor, then press back up keeping the elbows tucked."},
		{"Hammer Curls", "strength", 3, 12, 0, 60, []string{"biceps", "forearms"}, []string{"dumbbells"},
			"Hold the dumbbells with a neutral grip and curl both up together, keeping the wrists locked."},
		{"Tricep Pushdowns", "strength", 3, 12, 0, 60, []string{"triceps"}, []string{"cable machine"},
			"Keep the elbows fixed at your sides and extend the arms fully, squeezing the triceps at the bottom."},
	},
	"legs": {
		{"Squats", "strength", 4, 10, 0, 90, []string{"quads", "glutes", "hamstrings"}, []string{"barbell"},
			"Sit back and down until the thighs are at least parallel to the floor, keeping the chest up and knees tracking over the toes."},
		{"Deadlifts", "strength", 3, 8, 0, 120, []string{"hamstrings", "glutes", "back"}, []string{"barbell"},
			"Hinge at the hips with a neutral spine. Drive through the floor and stand tall, keeping the bar close to your body."},
		{"Lunges", "strength", 3, 12, 0, 60, []string{"quads", "glutes"}, []string{"bodyweight", "dumbbells"},
			"Step forward and lower until both knees are at ninety degrees. Push back through the front heel."},
		{"Leg Press", "strength", 3, 12, 0, 75, []string{"quads", "glutes"}, []string{"machine"},
			"Lower the platform until the knees reach ninety degrees and press back without locking the knees."},
	},
	"core": {
		{"Plank", "core", 3, 0, 60, 45, []string{"core"}, []string{"bodyweight"},
			"Hold a straight line from head to heels on your forearms. Brace the abs and do not let the hips sag."},
		{"Russian Twists", "core", 3, 20, 0, 45, []string{"core", "obliques"}, []string{"bodyweight"},
			"Sit with the feet off the floor and rotate your torso side to side, touching the floor beside each hip."},
		{"Leg Raises", "core", 3, 15, 0, 45, []string{"core"}, []string{"bodyweight"},
			"Lying flat, raise your legs to vertical and lower them slowly without letting the lower back arch."},
		{"Bicycle Crunches", "core", 3, 20, 0, 45, []string{"core", "obliques"}, []string{"bodyweight"},
			"Alternate bringing each elbow towards the opposite knee in a slow, controlled pedalling motion."},
	},
	"cardio": {
		{"High Knees", "cardio", 3, 0, 30, 30, []string{"legs", "core"}, []string{"bodyweight"},
			"Run in place driving the knees to hip height as fast as you can while pumping the arms."},
		{"Burpees", "plyometric", 3, 10, 0, 60, []string{"full body"}, []string{"bodyweight"},
			"Drop into a push-up, jump the feet back in and explode upwards with the arms overhead."},
		{"Mountain Climbers", "cardio", 3, 0, 45, 15, []string{"core", "legs"}, []string{"bodyweight"},
			"From a high plank, drive the knees towards the chest in alternation while keeping the hips level."},
		{"Jumping Jacks", "cardio", 3, 0, 60, 30, []string{"full body"}, []string{"bodyweight"},
			"Jump the feet out while raising the arms overhead, then snap back to the start in rhythm."},
	},
}

// focusAreaAliases maps split focus areas to catalog areas. Unknown areas fall
// back to cardio so every workout day gets exercises.
var focusAreaAliases = map[string]string{
	"quads":      "legs",
	"hamstrings": "legs",
	"glutes":     "legs",
	"calves":     "legs",
	"biceps":     "arms",
	"triceps":    "arms",
	"full body":  "cardio",
}

// catalogFor resolves a focus area to its catalog exercises.
func catalogFor(focusArea string) []catalogExercise {
	area := focusArea
	if alias, ok := focusAreaAliases[area]; ok {
		area = alias
	}
	if exercises, ok := exerciseCatalog[area]; ok {
		return exercises
	}
	return exerciseCatalog["cardio"]
}
