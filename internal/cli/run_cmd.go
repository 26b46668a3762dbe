package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/spf13/cobra"
)

func (a *App) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name> [args...]",
		Short: "저장된 wrapper를 실행한다",
		Long: `저장된 wrapper를 현재 프로세스에서 실행한다. EVAL:: directive는
$SHELL -c의 자식 프로세스로 실행되므로, cd/export 같은 호출자 컨텍스트
변경은 부모 셸에 반영되지 않는다 — 그 용도는 shw init이 설치하는
eval 기반 함수를 쓰라. run은 스크립트에서 wrapper를 호출하는 용도다.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRun(cmd.Context(), args[0], args[1:])
		},
	}
}

// shellEval은 directive를 사용자 셸의 -c 옵션으로 실행하는
// DirectiveRunner다.
type shellEval struct {
	exec cmdexec.Commander
}

func (e *shellEval) RunDirective(ctx context.Context, directive string) (int, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return e.exec.RunInteractive(ctx, shell, "-c", directive)
}

func (a *App) runRun(ctx context.Context, name string, args []string) error {
	_, reg, err := a.loadRegistry()
	if err != nil {
		return err
	}

	dispatcher := &wrapper.Dispatcher{
		Registry: reg,
		Exec:     a.Commander,
		Eval:     &shellEval{exec: a.Commander},
		Out:      os.Stdout,
	}

	result, err := dispatcher.Invoke(ctx, name, args)
	if err != nil {
		return fmt.Errorf("cli.run: %w", err)
	}
	if result.ExitCode != 0 {
		return &StatusError{Code: result.ExitCode}
	}
	return nil
}
