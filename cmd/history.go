package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent assessments and report exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		reports, _ := cmd.Flags().GetBool("reports")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		out := cmd.OutOrStdout()
		if reports {
			records, err := s.EventRepo().QueryReports(ctx, store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query reports: %w", err)
			}
			printReports(out, records)
			return nil
		}

		records, err := s.EventRepo().QueryAssessments(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		printAssessments(out, records)
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <assessment-id>",
	Short: "Print the stored inputs of one assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.EventRepo().QueryAssessments(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		for _, r := range records {
			if r.AssessmentID != args[0] && !strings.HasPrefix(r.AssessmentID, args[0]) {
				continue
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		return fmt.Errorf("assessment %s not found", args[0])
	},
}

// openStore opens the event log without loading the model artifacts.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func printAssessments(w io.Writer, records []store.AssessmentRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No assessments recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-5s  %-10s  %-5s  %-6s  %s\n",
		"ID", "Timestamp", "From", "Result", "BMI", "Prob", "Labels")
	fmt.Fprintln(w, strings.Repeat("─", 90))

	for _, r := range records {
		result := "low risk"
		if r.Prediction == 1 {
			result = "high risk"
		}
		prob := "-"
		if r.Probability != nil {
			prob = fmt.Sprintf("%.0f%%", *r.Probability*100)
		}
		labels := strings.Join(r.Labels, ", ")
		if labels == "" {
			labels = "-"
		}
		fmt.Fprintf(w, "%-8s  %-19s  %-5s  %-10s  %-5.1f  %-6s  %s\n",
			truncate(r.AssessmentID, 8),
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Source,
			result,
			r.BMI,
			prob,
			labels,
		)
	}
}

func printReports(w io.Writer, records []store.ReportRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No reports exported yet.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-19s  %-8s  %-3s  %s\n",
		"ID", "Timestamp", "Bytes", "OK", "Destination")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, r := range records {
		ok := "✓"
		if !r.Success {
			ok = "✗"
		}
		dest := r.Destination
		if r.ErrorMessage != "" {
			dest += "  (" + r.ErrorMessage + ")"
		}
		fmt.Fprintf(w, "%-8s  %-19s  %-8d  %-3s  %s\n",
			truncate(r.AssessmentID, 8),
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.SizeBytes,
			ok,
			dest,
		)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show")
	historyCmd.Flags().Bool("reports", false, "List report exports instead of assessments")
	historyCmd.AddCommand(historyViewCmd)
}
