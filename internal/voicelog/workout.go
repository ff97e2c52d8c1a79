package voicelog

// ParsedExercise is one exercise extracted from a spoken workout description.
// Optional fields stay nil / empty when the transcript did not state them;
// a zero value is never fabricated for a field that was not heard.
type ParsedExercise struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Sets   *int     `json:"sets,omitempty"`
	Reps   string   `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	// Unit is "lbs" or "kg", set whenever Weight is set.
	Unit string `json:"unit,omitempty"`
	// Duration is in minutes: EMOM block length or cardio time.
	Duration     *int     `json:"duration,omitempty"`
	Distance     *float64 `json:"distance,omitempty"`
	DistanceUnit string   `json:"distanceUnit,omitempty"`
}

// ParsedWorkoutData is the full result of parsing one workout transcript.
type ParsedWorkoutData struct {
	Exercises []ParsedExercise `json:"exercises"`
	// Duration is the whole-session duration in minutes.
	Duration *int     `json:"duration,omitempty"`
	Feeling  string   `json:"feeling,omitempty"`
	RPE      *float64 `json:"rpe,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	// Confidence is an editing-UI hint in [0.1, 1.0]: how sure the parser is
	// that the extracted exercises reflect what was said.
	Confidence float64 `json:"confidence"`
}

// FeelingResult is the result of parsing a spoken post-workout check-in.
type FeelingResult struct {
	Feeling string   `json:"feeling"`
	RPE     *float64 `json:"rpe,omitempty"`
}
