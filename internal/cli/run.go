package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seahorse-ai-ryan/tiledock/internal/cli/model"
	"github.com/seahorse-ai-ryan/tiledock/internal/config"
	"github.com/seahorse-ai-ryan/tiledock/internal/logging"
	"github.com/seahorse-ai-ryan/tiledock/internal/panels"
	"github.com/seahorse-ai-ryan/tiledock/internal/workspace"
)

// NewRunCmd creates the run command: the interactive docking demo.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive docking demo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}
			cfg := config.Get()

			logger := logging.NewFromValues(cfg.Logging.Level, cfg.Logging.Format)

			manager := workspace.New(workspace.Options{
				Simplify:      cfg.Simplify.Options(),
				DefaultRect:   cfg.Floating.DefaultRect(),
				CascadeOffset: cfg.Floating.CascadeOffset,
				Validate:      cfg.Validation.Enabled,
				Logger:        logger,
			})
			panels.DefaultLayout(manager)

			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				fmt.Print(manager.DumpTree())
			}

			p := tea.NewProgram(model.NewDockModel(manager), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("demo exited with error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Bool("debug", false, "Print the initial tree layout before starting")

	return cmd
}
