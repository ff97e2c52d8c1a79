package voicelog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// The pattern battery runs over the whole normalized transcript in fixed
// order; patterns do not consume text, so several can fire on one sentence.
var (
	// setsRepsWeightRe matches: "3 sets of 10 reps at 135 pounds on bench press";
	// the name runs to punctuation or a clause word ("... for 45 minutes")
	setsRepsWeightRe = regexp.MustCompile(`(\d+)\s*sets?\s+(?:of\s+)?(\d+)\s*reps?\s*(?:(?:at|with)\s+)?(\d+(?:\.\d+)?)\s*(pounds?|lbs?|kilos?|kgs?)?\s*(?:(?:on|for|doing)\s+)?([a-z][a-z\s'-]*?)\s*(?:[,.;!?]|\b(?:for|then|felt|in|on)\b|$)`)

	// exerciseFirstRe matches: "squats, 5 by 5 at 225" or "bench press 3x10 with 80 kg"
	exerciseFirstRe = regexp.MustCompile(`([a-z][a-z\s'-]*?),?\s+(\d+)\s*(?:by|x)\s*(\d+)(?:\s*(?:at|with)\s+(\d+(?:\.\d+)?)\s*(pounds?|lbs?|kilos?|kgs?)?)?`)

	// cardioRe matches: "ran 5 km in 30 minutes", "jogged 2 miles"
	cardioRe = regexp.MustCompile(`\b(?:ran|running|jogged|jogging|walked|walking|cycled|cycling|biked|biking)\s+(?:for\s+)?(\d+(?:\.\d+)?)\s*(miles?|mi|kilometers?|kms?|meters?|m)\b(?:\s+in\s+(\d+)\s*(?:minutes?|mins?))?`)

	// toFailureRe matches: "did push-ups to failure, got 20 reps, then 15, then 12"
	toFailureRe = regexp.MustCompile(`(?:did\s+)?([a-z][a-z\s'-]*?)\s+(?:to|until)\s+failure[,:]?\s*(?:got\s+)?(\d+)(?:\s*reps?)?(?:,?\s*(?:then\s+)?(\d+)(?:\s*reps?)?)?(?:,?\s*(?:then\s+)?(\d+)(?:\s*reps?)?)?`)

	// emomRe matches: "emom 12 minutes, 8 kettlebell swings each minute"
	emomRe = regexp.MustCompile(`\bemom\s+(?:of\s+)?(\d+)(?:\s*(?:minutes?|mins?))?[,:]?\s*(\d+)\s+([a-z][a-z\s'-]*?)(?:\s+(?:each|every|per)\s+minute)?\s*(?:[,.;!?]|\b(?:for|then|felt|in|on)\b|$)`)

	// simpleWeightRe matches: "bench at 225"; only accepted for known aliases
	simpleWeightRe = regexp.MustCompile(`([a-z][a-z\s'-]*?)\s+(?:at|@)\s+(\d{2,3})\b\s*(pounds?|lbs?|kilos?|kgs?)?`)

	// sessionDurationRe matches: "for 45 minutes", "about 2 hours"
	sessionDurationRe = regexp.MustCompile(`(?:for|total|overall|about|around)\s+(\d+)\s*(minutes?|mins?|hours?)`)

	// rpeRe matches: "rpe 7", "rpe was 8.5", "rate of perceived exertion of 9"
	rpeRe = regexp.MustCompile(`(?:rpe|rate of perceived exertion)\s*(?:of|was|at)?\s*(\d+(?:\.\d+)?)`)

	// notesRe captures from a note marker to the end of the sentence
	notesRe = regexp.MustCompile(`(?:notes?:|felt like|thought)\s*(.+?)(?:[.!?]|\s{2}|$)`)
)

// session feeling patterns, checked in order; first hit wins
var sessionFeelings = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`felt\s+(?:really\s+|very\s+|pretty\s+)?(?:great|amazing|awesome|fantastic|strong|powerful)`), "great"},
	{regexp.MustCompile(`felt\s+(?:really\s+|very\s+|pretty\s+)?(?:good|nice|solid|decent)`), "good"},
	{regexp.MustCompile(`felt\s+(?:really\s+|very\s+|pretty\s+)?(?:tired|exhausted|fatigued|drained)`), "tired"},
	{regexp.MustCompile(`felt\s+(?:really\s+|very\s+|pretty\s+)?(?:bad|rough|terrible|awful|weak)`), "struggled"},
	{regexp.MustCompile(`pretty\s+good`), "good"},
	{regexp.MustCompile(`really\s+good`), "great"},
}

// Confidence starts at the base value and grows with every extracted
// exercise: full-detail patterns are worth more than bare weight mentions.
const (
	confidenceBase    = 0.5
	confidenceFull    = 0.15
	confidencePartial = 0.10
	confidenceMention = 0.05
	confidenceFloor   = 0.1
)

// ParseWorkoutSpeech turns a free-form spoken workout description into
// structured workout data. It is a pure function over the text (apart from
// the generated record IDs): no I/O, no clock, and it never panics; text the
// battery cannot interpret simply yields no exercises and floor confidence.
func ParseWorkoutSpeech(text string) ParsedWorkoutData {
	normalized := strings.ToLower(strings.TrimSpace(text))

	result := ParsedWorkoutData{Exercises: []ParsedExercise{}}
	confidence := confidenceBase
	seen := make(map[string]bool)

	addExercise := func(ex ParsedExercise, boost float64) {
		ex.ID = uuid.NewString()
		result.Exercises = append(result.Exercises, ex)
		seen[strings.ToLower(ex.Name)] = true
		confidence += boost
	}

	// 1: full sets x reps x weight statements
	for _, m := range setsRepsWeightRe.FindAllStringSubmatch(normalized, -1) {
		name := canonicalExerciseName(cleanExerciseName(m[5]))
		if name == "" {
			continue
		}
		ex := ParsedExercise{Name: name, Sets: parseIntPtr(m[1]), Reps: m[2]}
		if w := parseFloatPtr(m[3]); w != nil {
			ex.Weight = w
			ex.Unit = weightUnit(m[4])
		}
		addExercise(ex, confidenceFull)
	}

	// 2: exercise-first statements ("squats, 5 by 5 at 225")
	for _, m := range exerciseFirstRe.FindAllStringSubmatch(normalized, -1) {
		name := canonicalExerciseName(cleanExerciseName(m[1]))
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		ex := ParsedExercise{Name: name, Sets: parseIntPtr(m[2]), Reps: m[3]}
		if m[4] != "" {
			if w := parseFloatPtr(m[4]); w != nil {
				ex.Weight = w
				ex.Unit = weightUnit(m[5])
			}
		}
		addExercise(ex, confidenceFull)
	}

	// 3: cardio; the app logs all of it under "Running"
	for _, m := range cardioRe.FindAllStringSubmatch(normalized, -1) {
		ex := ParsedExercise{Name: "Running"}
		if d := parseFloatPtr(m[1]); d != nil {
			ex.Distance = d
			ex.DistanceUnit = distanceUnit(m[2])
		}
		if m[3] != "" {
			ex.Duration = parseIntPtr(m[3])
		}
		addExercise(ex, confidenceFull)
	}

	// 4: bodyweight work taken to failure, up to three rep counts
	for _, m := range toFailureRe.FindAllStringSubmatch(normalized, -1) {
		raw := cleanExerciseName(m[1])
		if len(raw) < 3 {
			continue
		}
		name := canonicalExerciseName(raw)
		if seen[strings.ToLower(name)] {
			continue
		}
		var reps []string
		for _, r := range []string{m[2], m[3], m[4]} {
			if r != "" {
				reps = append(reps, r)
			}
		}
		sets := len(reps)
		addExercise(ParsedExercise{
			Name: name,
			Sets: &sets,
			Reps: strings.Join(reps, ", "),
		}, confidencePartial)
	}

	// 5: EMOM blocks; round count doubles as block duration in minutes
	for _, m := range emomRe.FindAllStringSubmatch(normalized, -1) {
		name := canonicalExerciseName(cleanExerciseName(m[3]))
		if name == "" {
			continue
		}
		addExercise(ParsedExercise{
			Name:     "EMOM: " + name,
			Sets:     parseIntPtr(m[1]),
			Reps:     m[2],
			Duration: parseIntPtr(m[1]),
		}, confidencePartial)
	}

	// 6: bare weight mentions ("bench at 225"), known aliases only
	for _, m := range simpleWeightRe.FindAllStringSubmatch(normalized, -1) {
		raw := cleanExerciseName(m[1])
		if len(raw) < 3 || !knownExercise(raw) {
			continue
		}
		name := canonicalExerciseName(raw)
		if seen[strings.ToLower(name)] {
			continue
		}
		ex := ParsedExercise{Name: name}
		if w := parseFloatPtr(m[2]); w != nil {
			ex.Weight = w
			ex.Unit = weightUnit(m[3])
		}
		addExercise(ex, confidenceMention)
	}

	// session metadata
	if m := sessionDurationRe.FindStringSubmatch(normalized); m != nil {
		if v := parseIntPtr(m[1]); v != nil {
			if strings.Contains(m[2], "hour") {
				*v *= 60
			}
			result.Duration = v
		}
	}
	for _, f := range sessionFeelings {
		if f.re.MatchString(normalized) {
			result.Feeling = f.label
			break
		}
	}
	if m := rpeRe.FindStringSubmatch(normalized); m != nil {
		if v := parseFloatPtr(m[1]); v != nil {
			rpe := clampRPE(*v)
			result.RPE = &rpe
		}
	}
	if m := notesRe.FindStringSubmatch(normalized); m != nil {
		result.Notes = strings.TrimSpace(m[1])
	}

	switch {
	case len(result.Exercises) == 0:
		result.Confidence = confidenceFloor
	case confidence > 1.0:
		result.Confidence = 1.0
	default:
		result.Confidence = confidence
	}
	return result
}

// parseIntPtr parses a captured number, nil when it does not fit an int.
func parseIntPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseFloatPtr parses a captured number, nil on overflow or garbage.
func parseFloatPtr(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// weightUnit normalizes a spoken weight unit token; anything with a "k" in
// it is kilograms, everything else (including no token at all) is pounds.
func weightUnit(token string) string {
	if strings.Contains(token, "k") {
		return "kg"
	}
	return "lbs"
}

// distanceUnit normalizes a spoken distance unit token.
func distanceUnit(token string) string {
	switch {
	case strings.HasPrefix(token, "mi"):
		return "miles"
	case strings.HasPrefix(token, "k"):
		return "km"
	default:
		return "meters"
	}
}

func clampRPE(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
