package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/output"
	"github.com/sornas/pizzagami/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <menu-dir>",
	Short: "Re-run the report whenever a menu file changes",
	Long: `Watch the menu directory and re-run the analysis report after every
change. Each change triggers a fresh batch analysis of the whole
directory; nothing is updated incrementally.

The command runs in the foreground until interrupted with Ctrl-C.`,
	Example: `  pizzagami watch ./menus`,
	Args:    cobra.ExactArgs(1),
	RunE:    runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&reportFeasible, "feasible", true, "include the feasible-pizza closure in each report")
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	rerun := func() {
		a, err := runAnalysis(dir, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		summary, err := buildSummary(a, reportFeasible)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		fmt.Print(output.RenderSummary(summary))
		fmt.Println()
	}

	// First report immediately, then once per debounced change.
	rerun()

	w, err := watcher.New(dir, rerun)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("watching %s for changes (Ctrl-C to stop)\n", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	fmt.Fprintf(os.Stderr, "received signal %v, shutting down...\n", sig)

	return w.Stop()
}
