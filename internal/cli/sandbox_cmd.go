package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/sandbox"
	"github.com/spf13/cobra"
)

func (a *App) newSandboxCmd() *cobra.Command {
	var image, runtime string

	cmd := &cobra.Command{
		Use:   "sandbox <name> [-- command...]",
		Short: "컨테이너에 진입하거나 새로 실행한다",
		Long: `이름의 컨테이너가 실행 중이면 exec로 진입하고, 멈춰 있으면 시작 후
진입하고, 없으면 --image로 새로 실행한다. command를 생략하면 셸을 연다.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docker := &sandbox.Docker{Exec: a.Commander, Runtime: runtime}
			code, err := docker.Dispatch(cmd.Context(), args[0], image, args[1:])
			if err != nil {
				return fmt.Errorf("cli.sandbox: %w", err)
			}
			if code != 0 {
				return &StatusError{Code: code}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "컨테이너가 없을 때 실행할 이미지")
	cmd.Flags().StringVar(&runtime, "runtime", "", "컨테이너 런타임 (기본값: docker)")
	return cmd
}
