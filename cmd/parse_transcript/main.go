package main

//// Small CLI tool to run the voicelog parser on a transcript without a running backend.
//// Handy for tuning the pattern battery: pipe a transcript in, get the parsed JSON out.

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fitcircle/backend/internal/voicelog"
)

func init() {
	// parsed JSON goes to stdout, everything else to stderr
	log.SetOutput(os.Stderr)
}

func main() {
	filePath := flag.String("file", "", "path to a transcript file; remaining args or stdin used when empty")
	feelingOnly := flag.Bool("feeling", false, "parse a feeling check-in instead of a full workout")
	flag.Parse()

	transcript, err := readTranscript(*filePath, flag.Args())
	if err != nil {
		log.Fatalf("read transcript: %v", err)
	}
	if strings.TrimSpace(transcript) == "" {
		log.Fatal("empty transcript")
	}

	var result any
	if *feelingOnly {
		result = voicelog.ParseFeelingFromSpeech(transcript)
	} else {
		result = voicelog.ParseWorkoutSpeech(transcript)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))
}

// readTranscript takes the transcript from, in order: the -file flag,
// the remaining args, or stdin.
func readTranscript(filePath string, args []string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
