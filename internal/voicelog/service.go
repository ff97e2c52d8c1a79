package voicelog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fitcircle/backend/internal/telemetry/metrics"
	"github.com/fitcircle/backend/internal/telemetry/tracing"
)

var ErrEmptyTranscript = errors.New("empty transcript")

const (
	megabyte                  = 1024 * 1024
	defaultCacheSizeMegabytes = 10
	defaultCacheExpireSeconds = 5 * 60

	// parses below this confidence land on the review screen in the app
	lowConfidenceThreshold = 0.5
)

// Service wraps the transcript parsing with short lived memoization and
// telemetry. Identical transcripts (same device retrying, user repeating
// the same phrase) are served from the cache, with fresh exercise IDs.
type Service struct {
	cache          *freecache.Cache
	cacheExpire    int // seconds
	metricsManager *metrics.Manager
}

type NewServiceParams struct {
	CacheSizeMegabytes int
	CacheExpireSeconds int
	MetricsManager     *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	cacheSizeMegabytes := params.CacheSizeMegabytes
	if cacheSizeMegabytes <= 0 {
		cacheSizeMegabytes = defaultCacheSizeMegabytes
	}
	cacheExpire := params.CacheExpireSeconds
	if cacheExpire <= 0 {
		cacheExpire = defaultCacheExpireSeconds
	}

	return &Service{
		cache:          freecache.NewCache(cacheSizeMegabytes * megabyte),
		cacheExpire:    cacheExpire,
		metricsManager: params.MetricsManager,
	}
}

func (s *Service) ParseWorkout(ctx context.Context, transcript string) (result *ParsedWorkoutData, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "voicelog.service.parseWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	defer func(begin time.Time) {
		s.metricsManager.HistParseDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())

	cacheKey := transcriptCacheKey("workout", transcript)
	if cachedBytes, cacheErr := s.cache.Get(cacheKey); cacheErr == nil {
		cached := &ParsedWorkoutData{}
		if unmarshalErr := json.Unmarshal(cachedBytes, cached); unmarshalErr == nil {
			s.metricsManager.CounterParseCacheHits.Inc()
			span.SetAttributes(attribute.Bool("parse.cache_hit", true))
			refreshExerciseIDs(cached)
			return cached, nil
		} else {
			log.Errorf("failed to unmarshal cached workout parse: %s", unmarshalErr)
		}
	}

	parsed := ParseWorkoutSpeech(transcript)
	result = &parsed

	s.metricsManager.CounterParsedWorkouts.Inc()
	if result.Confidence < lowConfidenceThreshold {
		s.metricsManager.CounterLowConfidenceParses.Inc()
	}

	span.SetAttributes(
		attribute.Int("parse.exercises", len(result.Exercises)),
		attribute.Float64("parse.confidence", result.Confidence),
	)

	resultBytes, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		// the parse result is still usable, only caching is skipped
		log.Errorf("failed to marshal workout parse for cache: %s", marshalErr)
		return result, nil
	}
	if cacheErr := s.cache.Set(cacheKey, resultBytes, s.cacheExpire); cacheErr != nil {
		log.Errorf("failed to write workout parse cache: %s", cacheErr)
	}

	return result, nil
}

func (s *Service) ParseFeeling(ctx context.Context, transcript string) (result *FeelingResult, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "voicelog.service.parseFeeling")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	parsed := ParseFeelingFromSpeech(transcript)
	result = &parsed

	s.metricsManager.CounterParsedFeelings.Inc()
	span.SetAttributes(attribute.String("parse.feeling", result.Feeling))

	return result, nil
}

// KnownExercises returns the canonical exercise names the parser can resolve.
func (s *Service) KnownExercises() []string {
	return CanonicalExerciseNames()
}

// transcriptCacheKey hashes the normalized transcript so arbitrarily long
// speech input maps to a fixed size cache key.
func transcriptCacheKey(kind, transcript string) []byte {
	normalized := strings.ToLower(strings.TrimSpace(transcript))
	sum := sha256.Sum256([]byte(normalized))
	return []byte(kind + "::" + hex.EncodeToString(sum[:]))
}

// refreshExerciseIDs gives cached results new exercise IDs, every parse
// response must be safe to insert as new workout entries.
func refreshExerciseIDs(data *ParsedWorkoutData) {
	for i := range data.Exercises {
		data.Exercises[i].ID = uuid.NewString()
	}
}
