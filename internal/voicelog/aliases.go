package voicelog

import (
	"sort"
	"strings"
)

// exerciseAlias maps the ways circle members say an exercise to the canonical
// name the rest of the app uses. Keys are matched lowercase; plural and
// hyphen/space variants of one movement share a single canonical bucket.
type exerciseAlias struct {
	Canonical string
	Aliases   []string
}

var exerciseAliases = []exerciseAlias{
	{Canonical: "Bench Press", Aliases: []string{"bench", "bench press", "benchpress"}},
	{Canonical: "Flat Bench Press", Aliases: []string{"flat bench", "flat bench press"}},
	{Canonical: "Incline Bench Press", Aliases: []string{"incline bench", "incline bench press", "incline press"}},
	{Canonical: "Decline Bench Press", Aliases: []string{"decline bench", "decline bench press"}},
	{Canonical: "Overhead Press", Aliases: []string{"ohp", "overhead press", "shoulder press", "military press"}},
	{Canonical: "Squat", Aliases: []string{"squat", "squats", "back squat", "back squats"}},
	{Canonical: "Front Squat", Aliases: []string{"front squat", "front squats"}},
	{Canonical: "Deadlift", Aliases: []string{"deadlift", "deadlifts", "dead lift", "dead lifts"}},
	{Canonical: "Romanian Deadlift", Aliases: []string{"rdl", "rdls", "romanian deadlift", "romanian deadlifts"}},
	{Canonical: "Push-ups", Aliases: []string{"push up", "push ups", "pushup", "pushups", "push-up", "push-ups"}},
	{Canonical: "Pull-ups", Aliases: []string{"pull up", "pull ups", "pullup", "pullups", "pull-up", "pull-ups"}},
	{Canonical: "Chin-ups", Aliases: []string{"chin up", "chin ups", "chinup", "chinups", "chin-up", "chin-ups"}},
	{Canonical: "Dips", Aliases: []string{"dip", "dips"}},
	{Canonical: "Barbell Row", Aliases: []string{"row", "rows", "barbell row", "barbell rows", "bent over row", "bent over rows"}},
	{Canonical: "Lat Pulldown", Aliases: []string{"lat pulldown", "lat pulldowns", "pulldown", "pulldowns"}},
	{Canonical: "Bicep Curls", Aliases: []string{"curl", "curls", "bicep curl", "bicep curls"}},
	{Canonical: "Tricep Extensions", Aliases: []string{"tricep extension", "tricep extensions", "skullcrusher", "skullcrushers"}},
	{Canonical: "Lunges", Aliases: []string{"lunge", "lunges", "walking lunges"}},
	{Canonical: "Burpees", Aliases: []string{"burpee", "burpees"}},
	{Canonical: "Kettlebell Swings", Aliases: []string{"kettlebell swing", "kettlebell swings", "kb swing", "kb swings"}},
	{Canonical: "Sit-ups", Aliases: []string{"sit up", "sit ups", "situp", "situps", "sit-up", "sit-ups"}},
	{Canonical: "Crunches", Aliases: []string{"crunch", "crunches"}},
	{Canonical: "Plank", Aliases: []string{"plank", "planks"}},
	{Canonical: "Leg Press", Aliases: []string{"leg press", "leg presses"}},
	{Canonical: "Hip Thrusts", Aliases: []string{"hip thrust", "hip thrusts"}},
	{Canonical: "Calf Raises", Aliases: []string{"calf raise", "calf raises"}},
	{Canonical: "Face Pulls", Aliases: []string{"face pull", "face pulls"}},
	{Canonical: "Clean and Jerk", Aliases: []string{"clean and jerk", "clean & jerk"}},
	{Canonical: "Snatch", Aliases: []string{"snatch", "snatches"}},
	{Canonical: "Thrusters", Aliases: []string{"thruster", "thrusters"}},
	{Canonical: "Box Jumps", Aliases: []string{"box jump", "box jumps"}},
	{Canonical: "Wall Balls", Aliases: []string{"wall ball", "wall balls"}},
	{Canonical: "Mountain Climbers", Aliases: []string{"mountain climber", "mountain climbers"}},
}

var aliasToCanonical = buildAliasLookup()

func buildAliasLookup() map[string]string {
	lookup := make(map[string]string)
	for _, ea := range exerciseAliases {
		for _, alias := range ea.Aliases {
			lookup[alias] = ea.Canonical
		}
	}
	return lookup
}

// leading filler words stripped from exercise name candidates before lookup
// ("i did squats ..." => "squats ...")
var nameFillerWords = map[string]bool{
	"i": true, "we": true, "a": true, "an": true, "the": true,
	"my": true, "some": true, "did": true, "do": true, "doing": true,
	"done": true, "and": true, "also": true, "then": true, "with": true,
	"today": true, "later": true, "finally": true,
}

// cleanExerciseName normalizes a raw name candidate from the pattern battery:
// trims whitespace, collapses inner spaces, and strips leading filler words.
func cleanExerciseName(raw string) string {
	fields := strings.Fields(raw)
	for len(fields) > 0 && nameFillerWords[fields[0]] {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// canonicalExerciseName maps a cleaned candidate to its canonical name.
// Unknown names fall back to per-word title casing.
func canonicalExerciseName(name string) string {
	if canonical, ok := aliasToCanonical[strings.ToLower(name)]; ok {
		return canonical
	}
	return titleCase(name)
}

// knownExercise reports whether the candidate resolves through the alias
// table; the title-case fallback does not count.
func knownExercise(name string) bool {
	_, ok := aliasToCanonical[strings.ToLower(name)]
	return ok
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CanonicalExerciseNames returns the sorted canonical names the parser can
// map speech onto; clients use it for autocomplete in the confirmation UI.
func CanonicalExerciseNames() []string {
	names := make([]string, 0, len(exerciseAliases))
	for _, ea := range exerciseAliases {
		names = append(names, ea.Canonical)
	}
	sort.Strings(names)
	return names
}
