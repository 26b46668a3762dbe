package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/wm"
	"github.com/spf13/cobra"
)

func (a *App) newRaiseCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "raise <app-id> [search-args...]",
		Short: "열린 window를 전면으로 가져오거나 앱을 실행한다",
		Long: `kdotool로 window를 검색해 있으면 활성화하고, 없으면 kstart로
앱을 실행한다. 검색 인자가 없으면 app-id를 class로 검색한다.

  shw raise firefox
  shw raise org.kde.dolphin --name "Downloads"
  shw raise code "--name 'My Project'"   # 단축키가 인자를 하나로 묶은 경우`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := &wm.Manager{Exec: a.Commander, DryRun: dryRun}
			search := wm.ParseSearchArgs(args[0], args[1:])
			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "search: kdotool search %s %s\n", search.Flag, search.Pattern)
			}
			if err := manager.RunOrRaise(cmd.Context(), args[0], search); err != nil {
				return fmt.Errorf("cli.raise: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "활성화/실행 없이 검색만 수행")
	return cmd
}
