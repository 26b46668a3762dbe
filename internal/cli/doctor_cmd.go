package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "shw가 의존하는 환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := doctor.RunAll(cmd.Context(), a.Commander, a.CfgPath)

			failed := false
			for _, res := range results {
				icon := "✓"
				switch res.Status {
				case doctor.StatusFail:
					icon = "✗"
					failed = true
				case doctor.StatusWarn:
					icon = "!"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", icon, res.Name, MaskSecrets(res.Message))
				if res.Fix != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    Fix: %s\n", res.Fix)
				}
			}
			if failed {
				return fmt.Errorf("cli.doctor: 진단 실패 항목이 있습니다")
			}
			return nil
		},
	}
}
