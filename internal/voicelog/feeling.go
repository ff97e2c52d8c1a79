package voicelog

import "strings"

// feelingRPETable maps feeling words to an implied RPE, roughly "the better
// it felt, the easier it was". Checked in order; the first word found in the
// transcript wins.
var feelingRPETable = []struct {
	word string
	rpe  float64
}{
	{"amazing", 5},
	{"fantastic", 5},
	{"great", 6},
	{"strong", 6},
	{"powerful", 6},
	{"good", 7},
	{"solid", 7},
	{"decent", 7},
	{"okay", 8},
	{"fine", 8},
	{"tired", 8.5},
	{"hard", 9},
	{"difficult", 9},
	{"exhausted", 9.5},
	{"brutal", 10},
	{"terrible", 10},
}

// ParseFeelingFromSpeech turns a spoken post-workout check-in ("felt really
// tired today") into a feeling label and an optional RPE. An explicitly
// stated RPE always beats the word table; intensifiers shade both the label
// and the RPE. Pure function, never panics.
func ParseFeelingFromSpeech(text string) FeelingResult {
	normalized := strings.ToLower(strings.TrimSpace(text))

	var rpe *float64
	if m := rpeRe.FindStringSubmatch(normalized); m != nil {
		if v := parseFloatPtr(m[1]); v != nil {
			clamped := clampRPE(*v)
			rpe = &clamped
		}
	}

	feeling := ""
	for _, entry := range feelingRPETable {
		if strings.Contains(normalized, entry.word) {
			feeling = entry.word
			if rpe == nil {
				implied := entry.rpe
				rpe = &implied
			}
			break
		}
	}
	if feeling == "" {
		feeling = "okay"
	}

	// intensifiers are independent checks and stack on the label
	if strings.Contains(normalized, "pretty") || strings.Contains(normalized, "fairly") {
		feeling = "pretty " + feeling
	}
	if strings.Contains(normalized, "really") || strings.Contains(normalized, "very") {
		feeling = "really " + feeling
		if rpe != nil {
			adjusted := clampRPE(*rpe + 0.5)
			rpe = &adjusted
		}
	}
	if strings.Contains(normalized, "kind of") || strings.Contains(normalized, "kinda") {
		feeling = "kind of " + feeling
		if rpe != nil {
			adjusted := clampRPE(*rpe - 0.5)
			rpe = &adjusted
		}
	}

	return FeelingResult{Feeling: feeling, RPE: rpe}
}
