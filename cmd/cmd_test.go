package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/config"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/model"
	"github.com/jpsleep/sleepcheck/internal/store"
)

// parsePredict resets the predict flags and parses args.
func parsePredict(t *testing.T, args ...string) {
	t.Helper()
	predictCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	require.NoError(t, predictCmd.ParseFlags(args))
}

func TestInputsFromFlags_Defaults(t *testing.T) {
	parsePredict(t)
	in, err := inputsFromFlags(predictCmd)
	require.NoError(t, err)
	assert.Equal(t, features.DefaultInputs(), in)
}

func TestInputsFromFlags_Values(t *testing.T) {
	parsePredict(t,
		"--age", "45",
		"--gender", "female",
		"--occupation", "NURSE",
		"--sleep-duration-hours", "5.5",
		"--stress-level", "8",
	)
	in, err := inputsFromFlags(predictCmd)
	require.NoError(t, err)
	assert.Equal(t, 45, in.Age)
	assert.Equal(t, features.GenderFemale, in.Gender)
	assert.Equal(t, features.OccupationNurse, in.Occupation)
	assert.InDelta(t, 5.5, in.SleepDuration, 1e-9)
	assert.Equal(t, 8, in.StressLevel)
}

func TestInputsFromFlags_Errors(t *testing.T) {
	t.Run("fractional whole-number field", func(t *testing.T) {
		parsePredict(t, "--age", "30.5")
		_, err := inputsFromFlags(predictCmd)
		var verr *features.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, features.FieldAge, verr.Field)
	})
	t.Run("unknown gender", func(t *testing.T) {
		parsePredict(t, "--gender", "robot")
		_, err := inputsFromFlags(predictCmd)
		var uerr *features.UnmappedCategoryError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "gender", uerr.Field)
	})
}

func positiveAssessment() *assess.Assessment {
	p := 0.82
	return &assess.Assessment{
		ID:          "abc12345-0000",
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Inputs:      features.DefaultInputs(),
		BMI:         31.1,
		BMICategory: features.BMIObese,
		Prediction:  model.HighRisk,
		Probability: &p,
		Labels:      []disorder.Label{disorder.LabelInsomnia},
		Entries:     []disorder.Entry{disorder.MustLookup(disorder.LabelInsomnia)},
	}
}

func TestWritePredictText_Positive(t *testing.T) {
	var buf bytes.Buffer
	advice := &advisor.Advice{Summary: "Keep a regular schedule.", Suggestions: []string{"Dim lights at 9pm"}}
	writePredictText(&buf, positiveAssessment(), advice, "out.pdf")

	out := buf.String()
	assert.Contains(t, out, "High risk of sleep disorder detected")
	assert.Contains(t, out, "BMI: 31.1 (Obese)")
	assert.Contains(t, out, "Risk probability: 82%")
	assert.Contains(t, out, "Insomnia")
	assert.Contains(t, out, "Dim lights at 9pm")
	assert.Contains(t, out, "Report written to out.pdf")
}

func TestWritePredictText_NegativeShowsHabits(t *testing.T) {
	a := &assess.Assessment{Inputs: features.DefaultInputs(), BMI: 22, BMICategory: features.BMINormal, Prediction: model.LowRisk}
	var buf bytes.Buffer
	writePredictText(&buf, a, nil, "")

	out := buf.String()
	assert.Contains(t, out, "No disorder detected")
	assert.Contains(t, out, "Tips for healthy sleep")
	assert.NotContains(t, out, "Report written")
}

func TestWritePredictJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePredictJSON(&buf, positiveAssessment(), nil, "out.pdf"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Obese", got["bmi_category"])
	assert.Equal(t, "high risk", got["result"])
	assert.Equal(t, "out.pdf", got["report_path"])
	assert.Equal(t, []any{"Insomnia"}, got["labels"])
	assert.NotContains(t, got, "advice")
}

func TestPrintAssessments(t *testing.T) {
	var buf bytes.Buffer
	printAssessments(&buf, nil)
	assert.Contains(t, buf.String(), "No assessments recorded yet.")

	buf.Reset()
	p := 0.4
	printAssessments(&buf, []store.AssessmentRecord{{
		Timestamp: time.Now(),
		AssessmentEventData: store.AssessmentEventData{
			AssessmentID: "0123456789",
			Source:       "cli",
			BMI:          24.5,
			Prediction:   0,
			Probability:  &p,
		},
	}})
	out := buf.String()
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "low risk")
	assert.Contains(t, out, "40%")
}

func TestPrintReports(t *testing.T) {
	var buf bytes.Buffer
	printReports(&buf, []store.ReportRecord{{
		Timestamp: time.Now(),
		ReportEventData: store.ReportEventData{
			AssessmentID: "a1",
			Destination:  "/nope/r.pdf",
			Success:      false,
			ErrorMessage: "permission denied",
		},
	}})
	out := buf.String()
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "permission denied")
}

func TestFlagNames(t *testing.T) {
	assert.Equal(t, "heart-rate-bpm", flagName(features.FieldHeartRate))
	for _, b := range features.Bounds() {
		assert.NotNil(t, predictCmd.Flags().Lookup(flagName(b.Field)), b.Field)
	}
}

func TestPrintLLMEvents(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvents(&buf, nil)
	assert.Contains(t, buf.String(), "No LLM events")

	buf.Reset()
	printLLMEvents(&buf, []store.LLMEventRecord{
		{ID: 7, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Model: "claude-haiku-4-5", Purpose: "advice", InputTokens: 120, Success: true,
		}},
		{ID: 8, Timestamp: time.Now(), LLMRequestEventData: store.LLMRequestEventData{
			Model: "gpt-4o-mini", Purpose: "advice", Success: false,
		}},
	})
	out := buf.String()
	assert.Contains(t, out, "claude-haiku-4-5")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "✗")
}

func TestPrintLLMEvent(t *testing.T) {
	var buf bytes.Buffer
	printLLMEvent(&buf, store.LLMEventRecord{ID: 3, LLMRequestEventData: store.LLMRequestEventData{
		Provider: "openai", ErrorMessage: "rate limited", RequestBody: "[user]\nhello",
	}})
	out := buf.String()
	assert.Contains(t, out, "Provider:  openai")
	assert.Contains(t, out, "Error:     rate limited")
	assert.Contains(t, out, "[user]\nhello")
	assert.Contains(t, out, "(not captured)")
}

func TestPrintLLMUsage(t *testing.T) {
	var buf bytes.Buffer
	printLLMUsage(&buf, nil, nil)
	assert.Contains(t, buf.String(), "No LLM usage")

	buf.Reset()
	printLLMUsage(&buf,
		[]store.LLMUsage{{Purpose: "advice", Calls: 2, InputTokens: 1000, OutputTokens: 200}},
		[]store.LLMUsage{
			{Model: "claude-haiku-4-5", Calls: 1, InputTokens: 1000, OutputTokens: 200},
			{Model: "local-llama", Calls: 1},
		})
	out := buf.String()
	assert.Contains(t, out, "$0.0020")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: local-llama")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0050", formatCost(0.005))
	assert.Equal(t, "$1.25", formatCost(1.25))
}

func TestBuildAdvisor_TagsComponentOnce(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "mock"}}

	adv := buildAdvisor(context.Background(), cfg, nil, zerolog.New(&buf))
	require.NotNil(t, adv)

	// The mock has no scripted responses, so the advisor logs a warning.
	_, err := adv.Advise(context.Background(), &assess.Assessment{ID: "a-1", Inputs: features.DefaultInputs()})
	require.Error(t, err)

	out := strings.TrimSpace(buf.String())
	require.NotEmpty(t, out)
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 1, strings.Count(line, `"component"`), line)
	}
	assert.Contains(t, out, `"component":"advisor"`)
}

func TestBuildAdvisor_NoneDisablesAdvice(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "none"}}
	assert.Nil(t, buildAdvisor(context.Background(), cfg, nil, zerolog.Nop()))
}
