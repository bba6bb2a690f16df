package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sornas/pizzagami/internal/menu"
)

var checkCmd = &cobra.Command{
	Use:   "check <menu-dir>",
	Short: "Validate the format of menu files",
	Long: `Check every menu file in the directory for format violations.

Each line must read "Name: ingr1, ingr2, ..." with the pizza name
capitalized and every ingredient lowercase. Diagnostics are reported as
"path:line: message" and the command exits non-zero if any are found.`,
	Example: `  # Validate all menus before analyzing them
  pizzagami check ./menus`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir, err := menuDirArg(args)
	if err != nil {
		return err
	}

	diags, err := menu.CheckDirectory(dir)
	if err != nil {
		return err
	}

	for _, d := range diags {
		fmt.Println(d)
	}
	if len(diags) > 0 {
		return fmt.Errorf("found %d format problem(s)", len(diags))
	}
	return nil
}
