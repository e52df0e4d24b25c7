package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/flexplay/internal/playground"
	"github.com/alexisbeaulieu97/flexplay/internal/tui/editor"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	verbose    bool
}

var editorRunner = runEditor

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "flexplay",
		Short:         "flexplay is a terminal playground for flex layouts",
		Long:          "Adjust flex container and item properties and watch a simulated device screen re-layout live.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			session := app.NewSession()

			// Without a terminal there is nothing to draw on; print the
			// stylesheet instead.
			if !isTerminal(cmd.OutOrStdout()) {
				app.Logger.Debug("stdout is not a terminal, printing css")
				_, err := fmt.Fprint(cmd.OutOrStdout(), playground.RenderCSS(session.Project()))
				return err
			}

			return editorRunner(app, session)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a flexplay.yaml starting state")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runEditor(app *AppContext, session *playground.Session) error {
	log := app.Logger.Component("command.root")
	log.Info("launching editor", "items", session.ItemCount(), "orientation", session.Orientation().String())

	m := editor.NewModel(session, editor.WithLogger(app.Logger))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "editor execution failed")
		return fmt.Errorf("failed to run editor: %w", err)
	}

	log.Info("editor closed")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
