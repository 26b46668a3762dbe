package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/shellgen"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "셸 통합 스니펫을 출력한다",
		Long: `셸 rc 파일에서 eval할 통합 스니펫을 출력한다:

  eval "$(shw init --shell zsh)"   # ~/.zshrc

shw-create 함수가 설치되고, 저장된 wrapper들이 현재 세션에 로드된다.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish)")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, shellType string) error {
	if shellType == "" {
		cfg, err := config.Load(a.CfgPath)
		if err != nil {
			return err
		}
		shellType = cfg.DefaultShell
	}

	snippet := shellgen.InitSnippet(shellType)
	if snippet == "" {
		return fmt.Errorf("cli.init: 지원하지 않는 셸: %s", shellType)
	}
	fmt.Fprint(cmd.OutOrStdout(), snippet)
	return nil
}
