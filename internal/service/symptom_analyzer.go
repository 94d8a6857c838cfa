package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"symptocare-backend/config"

	"github.com/sirupsen/logrus"
)

// maxConditions caps how many condition lines are returned per analysis.
const maxConditions = 10

// fallbackConditions is served whenever the model is unconfigured or
// unreachable. Order matters: clients show the list as ranked suggestions.
var fallbackConditions = []string{
	"Diabetes - A chronic condition that affects how your body processes blood sugar.",
	"Hypertension - High blood pressure that can lead to serious health problems.",
	"Asthma - A condition in which your airways narrow and swell, causing breathing difficulties.",
	"Common Cold - A viral infection of your nose and throat.",
	"Migraine - A headache that can cause severe throbbing pain or a pulsing sensation.",
	"Anemia - A condition where you lack enough healthy red blood cells.",
	"Allergy - An immune system reaction to a foreign substance.",
	"Bronchitis - Inflammation of the lining of your bronchial tubes.",
	"Flu - A contagious respiratory illness caused by influenza viruses.",
	"Gastroenteritis - Inflammation of the stomach and intestines causing vomiting and diarrhea.",
}

// Gemini generateContent wire types.

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// SymptomAnalyzer maps free-text symptoms to an ordered list of possible
// conditions via the Gemini API, degrading to a static list on any failure.
type SymptomAnalyzer interface {
	Analyze(ctx context.Context, symptoms string) ([]string, bool)
}

type symptomAnalyzer struct {
	cfg    config.GeminiConfig
	log    *logrus.Logger
	client *http.Client
}

func NewSymptomAnalyzer(cfg config.GeminiConfig, log *logrus.Logger) SymptomAnalyzer {
	return &symptomAnalyzer{
		cfg: cfg,
		log: log,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Analyze returns up to 10 condition lines. The second return value is true
// when the result came from the model and false when the fallback was served.
// It never returns an error: the fallback list is the error path.
func (s *symptomAnalyzer) Analyze(ctx context.Context, symptoms string) ([]string, bool) {
	if s.cfg.APIKey == "" {
		return fallbackList(), false
	}

	conditions, err := s.queryModel(ctx, symptoms)
	if err != nil {
		s.log.Warnf("Symptom analysis request failed, serving fallback: %+v", err)
		return fallbackList(), false
	}
	if len(conditions) == 0 {
		s.log.Warn("Symptom analysis returned no parseable conditions, serving fallback")
		return fallbackList(), false
	}

	return conditions, true
}

func (s *symptomAnalyzer) queryModel(ctx context.Context, symptoms string) ([]string, error) {
	prompt := fmt.Sprintf(
		"You are a medical assistant. Based on the following symptoms: %q, provide a list of 10 possible medical conditions with brief descriptions.",
		symptoms,
	)

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return ParseConditionList(result.Candidates[0].Content.Parts[0].Text), nil
}

// ParseConditionList splits model output into condition lines: one per
// non-empty trimmed line, capped at 10.
func ParseConditionList(text string) []string {
	var conditions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		conditions = append(conditions, line)
		if len(conditions) == maxConditions {
			break
		}
	}
	return conditions
}

func fallbackList() []string {
	out := make([]string, len(fallbackConditions))
	copy(out, fallbackConditions)
	return out
}
