package cli

import (
	"github.com/hbjs97/shw/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "shw 초기 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &setup.Runner{
				CfgPath:    a.CfgPath,
				Commander:  a.Commander,
				FormRunner: &setup.HuhFormRunner{},
			}
			return runner.Run(cmd.Context())
		},
	}
}
