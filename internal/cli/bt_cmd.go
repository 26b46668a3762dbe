package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/bt"
	"github.com/hbjs97/shw/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newBTCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "bt [device]",
		Short: "bluetooth 장치를 다른 호스트로 전환한다",
		Long: `설정된 다른 호스트들에서 장치 연결을 해제한 뒤 target 호스트에서
연결한다. device와 --target을 생략하면 [bt.defaults]를 사용한다.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}

			device := cfg.BT.Defaults.Device
			if len(args) > 0 {
				device = args[0]
			}
			if target == "" {
				target = cfg.BT.Defaults.Target
			}
			if device == "" || target == "" {
				return fmt.Errorf("cli.bt: 장치와 대상 호스트를 지정하세요 (인자 또는 [bt.defaults]): %w", ErrConfig)
			}

			switcher := &bt.Switcher{Exec: a.Commander, Cfg: cfg.BT}
			if err := switcher.Switch(cmd.Context(), device, target); err != nil {
				return fmt.Errorf("cli.bt: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s를 %s로 전환했습니다\n", device, target)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "장치를 넘겨받을 호스트")
	return cmd
}
