package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/exitnode"
	"github.com/spf13/cobra"
)

func (a *App) newExitNodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exitnode [target]",
		Short: "tailscale exit node 연결을 토글한다",
		Long: `exit node에 연결되어 있으면 끊고 다시 광고(서버 모드)를 켠다.
연결되어 있지 않으면 광고를 끄고 target에 연결한다. target을 생략하면
설정의 [exitnode] default를 사용한다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}

			target := cfg.ExitNode.Default
			if len(args) > 0 {
				target = args[0]
			}

			toggler := &exitnode.Toggler{Exec: a.Commander}
			state, err := toggler.Toggle(cmd.Context(), target)
			if err != nil {
				return fmt.Errorf("cli.exitnode: %w", err)
			}

			switch state {
			case exitnode.StateServer:
				fmt.Fprintln(cmd.OutOrStdout(), "exit node 연결을 끊고 다시 광고 중입니다 (서버 모드)")
			case exitnode.StateClient:
				fmt.Fprintf(cmd.OutOrStdout(), "exit node %s에 연결했습니다 (클라이언트 모드)\n", target)
			}
			return nil
		},
	}
}
