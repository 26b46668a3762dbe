package cli

import (
	"fmt"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/spf13/cobra"
)

func (a *App) newCreateCmd() *cobra.Command {
	var shellType string
	var save bool

	cmd := &cobra.Command{
		Use:   "create <name> <command...>",
		Short: "command를 감싸는 셸 함수 소스를 생성한다",
		Long: `command를 감싸는 셸 함수 소스를 생성하여 stdout에 출력한다.
출력을 eval하면 현재 세션에 함수가 설치된다:

  eval "$(shw create gw git worktree)"

설치된 함수는 고정 command 뒤에 호출 인자를 그대로 전달하고, 출력이
EVAL::로 시작하면 나머지를 현재 셸에서 실행한다 (cd, export 등).
EVAL:: 출력은 호출자 권한으로 그대로 실행되므로 신뢰할 수 있는
command만 감싸야 한다.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCreate(cmd, args[0], args[1:], shellType, save)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish; 기본값은 설정의 default_shell)")
	cmd.Flags().BoolVar(&save, "save", false, "설정 파일에 wrapper를 저장한다")
	return cmd
}

func (a *App) runCreate(cmd *cobra.Command, name string, command []string, shellType string, save bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if shellType == "" {
		shellType = cfg.DefaultShell
	}

	factory := &wrapper.Factory{Registry: wrapper.NewRegistry()}
	fn, err := factory.Create(name, command, shellType)
	if err != nil {
		return fmt.Errorf("cli.create: %w", err)
	}

	if save {
		cfg.Wrappers[name] = command
		if err := config.Save(a.CfgPath, cfg); err != nil {
			return err
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), fn)
	return nil
}
