package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"symptocare-backend/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testAnalyzerLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func analyzerConfig(baseURL, apiKey string) config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   "gemini-1.5-flash",
		Timeout: 5 * time.Second,
	}
}

func TestAnalyzeWithoutAPIKeyServesFallback(t *testing.T) {
	analyzer := NewSymptomAnalyzer(analyzerConfig("http://unused", ""), testAnalyzerLogger())

	conditions, fromModel := analyzer.Analyze(context.Background(), "fever and cough")
	assert.False(t, fromModel)
	assert.Len(t, conditions, 10)
	assert.Contains(t, conditions[0], "Diabetes")
}

func TestAnalyzeModelResponseParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Tension headache - stress related\nSinusitis - sinus inflammation\n\nDehydration - fluid deficit"}]}}]}`))
	}))
	defer server.Close()

	analyzer := NewSymptomAnalyzer(analyzerConfig(server.URL, "test-key"), testAnalyzerLogger())

	conditions, fromModel := analyzer.Analyze(context.Background(), "headache for three days")
	assert.True(t, fromModel)
	assert.Equal(t, []string{
		"Tension headache - stress related",
		"Sinusitis - sinus inflammation",
		"Dehydration - fluid deficit",
	}, conditions)
}

func TestAnalyzeTransportFailureServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	server.Close() // connection refused from here on

	analyzer := NewSymptomAnalyzer(analyzerConfig(server.URL, "test-key"), testAnalyzerLogger())

	conditions, fromModel := analyzer.Analyze(context.Background(), "fever and cough")
	assert.False(t, fromModel)
	assert.Len(t, conditions, 10)
}

func TestAnalyzeErrorStatusServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	analyzer := NewSymptomAnalyzer(analyzerConfig(server.URL, "test-key"), testAnalyzerLogger())

	conditions, fromModel := analyzer.Analyze(context.Background(), "fever and cough")
	assert.False(t, fromModel)
	assert.Len(t, conditions, 10)
}

func TestAnalyzeEmptyModelTextServesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"\n\n  \n"}]}}]}`))
	}))
	defer server.Close()

	analyzer := NewSymptomAnalyzer(analyzerConfig(server.URL, "test-key"), testAnalyzerLogger())

	conditions, fromModel := analyzer.Analyze(context.Background(), "fever and cough")
	assert.False(t, fromModel)
	assert.Len(t, conditions, 10)
}

func TestParseConditionList(t *testing.T) {
	assert.Nil(t, ParseConditionList(""))
	assert.Equal(t, []string{"One"}, ParseConditionList("  One  \n\n"))

	// Cap at 10 lines.
	long := strings.Repeat("line\n", 15)
	assert.Len(t, ParseConditionList(long), 10)
}

func TestFallbackListIsACopy(t *testing.T) {
	first := fallbackList()
	first[0] = "mutated"
	second := fallbackList()
	assert.Contains(t, second[0], "Diabetes")
}
