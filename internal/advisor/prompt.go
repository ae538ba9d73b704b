package advisor

import (
	"fmt"
	"strings"

	"github.com/jpsleep/sleepcheck/internal/assess"
)

const systemPrompt = `You write short, friendly notes for a sleep self-assessment tool. You are not a doctor and must not diagnose. The detected conditions come from fixed rules and must not be changed or disputed.`

func buildUserMessage(a *assess.Assessment) string {
	var b strings.Builder
	in := a.Inputs

	b.WriteString("Profile:\n")
	b.WriteString(fmt.Sprintf("- Age: %d, gender: %s, occupation: %s\n", in.Age, in.Gender, in.Occupation))
	b.WriteString(fmt.Sprintf("- BMI: %.1f (%s)\n", a.BMI, a.BMICategory))
	b.WriteString(fmt.Sprintf("- Sleep: %.1f hours, quality %d/10\n", in.SleepDuration, in.QualityOfSleep))
	b.WriteString(fmt.Sprintf("- Stress: %d/10, physical activity: %d, daily steps: %d\n", in.StressLevel, in.PhysicalActivity, in.DailySteps))
	b.WriteString(fmt.Sprintf("- Heart rate: %d bpm, blood pressure: %d/%d\n", in.HeartRate, in.Systolic, in.Diastolic))

	b.WriteString(fmt.Sprintf("\nModel result: %s\n", a.Prediction))
	b.WriteString("\nDetected conditions:\n")
	if len(a.Entries) == 0 {
		b.WriteString("None\n")
	} else {
		for _, e := range a.Entries {
			b.WriteString(fmt.Sprintf("- %s: %s\n", e.Label, e.Definition))
		}
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
1. Summarize the result in 2-3 sentences. Refer to the detected conditions by name only.
2. Give at most %d concrete habit suggestions tied to the numbers above.
3. Recommend seeing a healthcare professional when conditions were detected.
4. Plain text only, no markdown.`, MaxSuggestions))

	return b.String()
}
