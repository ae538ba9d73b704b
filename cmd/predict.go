package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/advisor"
	"github.com/jpsleep/sleepcheck/internal/assess"
	"github.com/jpsleep/sleepcheck/internal/disorder"
	"github.com/jpsleep/sleepcheck/internal/features"
	"github.com/jpsleep/sleepcheck/internal/report"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run one assessment from flags",
	Long: "Evaluate one set of measurements without the interactive form. Unset flags " +
		"take the form defaults. With --report, a PDF is written when disorders are detected.",
	Example: "  sleepcheck predict --age 45 --gender female --occupation nurse --stress-level 8 --json",
	RunE:    runPredict,
}

func init() {
	def := features.DefaultInputs()
	for _, b := range features.Bounds() {
		predictCmd.Flags().Float64(flagName(b.Field), def.Get(b.Field),
			fmt.Sprintf("%s, %s to %s", b.Label, formatBound(b, b.Min), formatBound(b, b.Max)))
	}
	predictCmd.Flags().String("gender", string(def.Gender), "Gender: "+joinNames(features.Genders()))
	predictCmd.Flags().String("occupation", string(def.Occupation), "Occupation: "+joinNames(features.Occupations()))
	predictCmd.Flags().String("report", "", "Write the PDF report to this path when disorders are detected (default report.path)")
	predictCmd.Flags().Bool("no-report", false, "Never write a report")
	predictCmd.Flags().Bool("json", false, "Print the assessment as JSON")
	predictCmd.Flags().Bool("advice", false, "Ask the configured LLM provider for lifestyle suggestions")
}

func flagName(f features.Field) string {
	return strings.ReplaceAll(string(f), "_", "-")
}

func formatBound(b features.Bound, v float64) string {
	return fmt.Sprintf("%.*f", b.Decimals, v)
}

func joinNames[T ~string](xs []T) string {
	names := make([]string, len(xs))
	for i, x := range xs {
		names[i] = strings.ToLower(string(x))
	}
	return strings.Join(names, ", ")
}

// inputsFromFlags collects the form fields from the predict flags.
// Whole-number fields reject fractional values instead of truncating them.
func inputsFromFlags(cmd *cobra.Command) (features.RawInputs, error) {
	in := features.DefaultInputs()
	for _, b := range features.Bounds() {
		v, err := cmd.Flags().GetFloat64(flagName(b.Field))
		if err != nil {
			return in, err
		}
		if b.Decimals == 0 && v != math.Trunc(v) {
			return in, &features.ValidationError{Field: b.Field, Value: v, Min: b.Min, Max: b.Max}
		}
		in.Set(b.Field, v)
	}

	gender, _ := cmd.Flags().GetString("gender")
	g, err := features.ParseGender(gender)
	if err != nil {
		return in, err
	}
	in.Gender = g

	occupation, _ := cmd.Flags().GetString("occupation")
	o, err := features.ParseOccupation(occupation)
	if err != nil {
		return in, err
	}
	in.Occupation = o
	return in, nil
}

func runPredict(cmd *cobra.Command, args []string) error {
	in, err := inputsFromFlags(cmd)
	if err != nil {
		return err
	}
	wantAdvice, _ := cmd.Flags().GetBool("advice")
	asJSON, _ := cmd.Flags().GetBool("json")
	noReport, _ := cmd.Flags().GetBool("no-report")

	rt, err := bootstrap(cmd, bootOptions{withAdvisor: wantAdvice})
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = assess.WithSource(ctx, assess.SourceCLI)

	a, err := rt.service.Evaluate(ctx, in)
	if err != nil {
		return err
	}
	var session assess.Session
	session.Apply(a)

	var advice *advisor.Advice
	if wantAdvice {
		advice = fetchAdvice(ctx, rt, a)
		if advice != nil {
			session.AttachNotes(a.ID, advice.Summary, advice.Suggestions)
		}
	}

	reportPath := ""
	if !noReport && session.CanExport() {
		reportPath, _ = cmd.Flags().GetString("report")
		if reportPath == "" {
			reportPath = rt.cfg.Report.Path
		}
		if err := rt.service.Export(ctx, &session, reportPath); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writePredictJSON(out, a, advice, reportPath)
	}
	writePredictText(out, a, advice, reportPath)
	return nil
}

func fetchAdvice(ctx context.Context, rt *appDeps, a *assess.Assessment) *advisor.Advice {
	if !rt.advisor.Enabled() {
		fmt.Fprintln(os.Stderr, "No LLM provider configured; skipping advice.")
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()
	advice, err := rt.advisor.Advise(ctx, a)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Advice unavailable:", err)
		return nil
	}
	return advice
}

type predictOutput struct {
	*assess.Assessment
	BMICategory string           `json:"bmi_category"`
	Result      string           `json:"result"`
	Headline    string           `json:"headline"`
	Entries     []disorder.Entry `json:"entries"`
	Advice      *advisor.Advice  `json:"advice,omitempty"`
	ReportPath  string           `json:"report_path,omitempty"`
}

func writePredictJSON(w io.Writer, a *assess.Assessment, advice *advisor.Advice, reportPath string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(predictOutput{
		Assessment:  a,
		BMICategory: a.BMICategory.String(),
		Result:      a.Prediction.String(),
		Headline:    a.Headline(),
		Entries:     a.Entries,
		Advice:      advice,
		ReportPath:  reportPath,
	})
}

func writePredictText(w io.Writer, a *assess.Assessment, advice *advisor.Advice, reportPath string) {
	fmt.Fprintln(w, a.Headline())
	fmt.Fprintf(w, "BMI: %.1f (%s)\n", a.BMI, a.BMICategory)
	if a.Probability != nil {
		fmt.Fprintf(w, "Risk probability: %.0f%%\n", *a.Probability*100)
	}

	if a.Positive() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Possible sleep disorders:")
		for _, e := range a.Entries {
			fmt.Fprintf(w, "  • %s\n", e.Label)
			fmt.Fprintf(w, "    %s\n", e.Definition)
			fmt.Fprintf(w, "    Tip: %s\n", e.Tip)
		}
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Tips for healthy sleep:")
		for _, h := range disorder.HealthyHabits() {
			fmt.Fprintf(w, "  • %s: %s\n", h.Title, h.Detail)
		}
	}

	if advice != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, advice.Summary)
		for _, s := range advice.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}

	if reportPath != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Report written to", reportPath)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Disclaimer())
}
