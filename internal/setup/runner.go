package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/doctor"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	Commander  cmdexec.Commander
	FormRunner FormRunner
	RCPath     string // 테스트용. 비어있으면 셸별 기본 경로.
}

// Run은 setup 플로우를 실행한다. 기존 설정이 있으면 그 값을 기본값으로
// 보여주고 덮어쓸지 확인한다.
func (r *Runner) Run(ctx context.Context) error {
	var defaults *Input
	cfg := config.Default()

	if _, err := os.Stat(r.CfgPath); err == nil {
		existing, err := config.Load(r.CfgPath)
		if err != nil {
			return err
		}
		cfg = existing
		defaults = &Input{
			Shell:           existing.DefaultShell,
			InstallHook:     true,
			ObsidianAPIKey:  existing.Obsidian.APIKey,
			ExitNodeDefault: existing.ExitNode.Default,
		}

		overwrite, err := r.FormRunner.RunConfirm(
			fmt.Sprintf("설정 파일이 이미 있습니다 (%s). 수정할까요?", r.CfgPath))
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("설정을 변경하지 않았습니다.")
			return nil
		}
	}

	input, err := r.FormRunner.RunSetupForm(defaults)
	if err != nil {
		return err
	}

	cfg.DefaultShell = input.Shell
	cfg.Obsidian.APIKey = input.ObsidianAPIKey
	cfg.ExitNode.Default = input.ExitNodeDefault

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("설정 파일이 저장되었습니다: %s\n", r.CfgPath)

	if input.InstallHook {
		rcPath := r.RCPath
		if rcPath == "" {
			rcPath = ShellRCPath(input.Shell)
		}
		if rcPath == "" {
			fmt.Fprintf(os.Stderr, "경고: %s의 RC 파일 경로를 모릅니다 — hook을 건너뜁니다\n", input.Shell)
		} else if err := InstallShellHook(input.Shell, rcPath); err != nil {
			fmt.Fprintf(os.Stderr, "경고: 셸 hook 설치 실패: %v\n", err)
		} else {
			fmt.Printf("셸 hook이 설치되었습니다: %s\n", rcPath)
		}
	}

	r.runDoctor(ctx)
	return nil
}

// runDoctor는 설정 완료 후 환경 진단을 실행한다.
func (r *Runner) runDoctor(ctx context.Context) {
	fmt.Println("\n환경 진단 실행 중...")
	results := doctor.RunAll(ctx, r.Commander, r.CfgPath)
	for _, res := range results {
		icon := "✓"
		if res.Status == doctor.StatusFail {
			icon = "✗"
		} else if res.Status == doctor.StatusWarn {
			icon = "!"
		}
		fmt.Printf("  [%s] %s: %s\n", icon, res.Name, res.Message)
		if res.Fix != "" {
			fmt.Printf("      Fix: %s\n", res.Fix)
		}
	}
}
