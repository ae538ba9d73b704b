package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jpsleep/sleepcheck/internal/app"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := bootstrap(cmd, bootOptions{logToFile: true, withAdvisor: true})
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{
		Service:    rt.service,
		Advisor:    rt.advisor,
		History:    rt.store.EventRepo(),
		ReportPath: rt.cfg.Report.Path,
		ModelInfo:  modelInfo(rt.bundle),
		Logger:     rt.log.With().Str("component", "tui").Logger(),
	})
}
