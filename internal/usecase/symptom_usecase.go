package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const symptomCacheTTL = 15 * time.Minute

type SymptomUsecase interface {
	Analyze(ctx context.Context, req *dto.AnalyzeSymptomsRequest) (*dto.AnalyzeSymptomsResponse, error)
}

type symptomUsecase struct {
	log         *logrus.Logger
	analyzer    service.SymptomAnalyzer
	redisClient *redis.Client
}

func NewSymptomUsecase(log *logrus.Logger, analyzer service.SymptomAnalyzer, redisClient *redis.Client) SymptomUsecase {
	return &symptomUsecase{log: log, analyzer: analyzer, redisClient: redisClient}
}

// Analyze serves cached results for recently seen symptom text, keyed by a
// hash of the normalized input. Cache failures degrade to a direct call,
// never to an error.
func (u *symptomUsecase) Analyze(ctx context.Context, req *dto.AnalyzeSymptomsRequest) (*dto.AnalyzeSymptomsResponse, error) {
	cacheKey := symptomCacheKey(req.Symptoms)

	if cached, err := u.redisClient.Get(ctx, cacheKey).Result(); err == nil {
		var response dto.AnalyzeSymptomsResponse
		if err := json.Unmarshal([]byte(cached), &response); err == nil {
			return &response, nil
		}
	}

	conditions, fromModel := u.analyzer.Analyze(ctx, req.Symptoms)

	source := "fallback"
	if fromModel {
		source = "model"
	}

	response := &dto.AnalyzeSymptomsResponse{
		Conditions: conditions,
		Source:     source,
	}

	// Only model answers are worth caching; the fallback list is static.
	if fromModel {
		if payload, err := json.Marshal(response); err == nil {
			if err := u.redisClient.Set(ctx, cacheKey, payload, symptomCacheTTL).Err(); err != nil {
				u.log.Warnf("Failed to cache symptom analysis: %+v", err)
			}
		}
	}

	return response, nil
}

func symptomCacheKey(symptoms string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(symptoms), " "))
	sum := sha256.Sum256([]byte(normalized))
	return "symptom_analysis:" + hex.EncodeToString(sum[:])
}
