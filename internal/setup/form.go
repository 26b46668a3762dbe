package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunSetupForm은 초기 설정 폼을 실행한다.
func (h *HuhFormRunner) RunSetupForm(defaults *Input) (*Input, error) {
	input := &Input{Shell: DetectShell(), InstallHook: true}
	if defaults != nil {
		*input = *defaults
	}
	if input.Shell == "" {
		input.Shell = "zsh"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("셸 유형").
			Options(
				huh.NewOption("zsh", "zsh"),
				huh.NewOption("bash", "bash"),
				huh.NewOption("fish", "fish"),
			).
			Value(&input.Shell),
		huh.NewConfirm().
			Title("셸 RC 파일에 shw 통합을 설치할까요?").
			Description("shw-create 함수와 저장된 wrapper 로드를 추가합니다").
			Value(&input.InstallHook),
		huh.NewInput().
			Title("Obsidian Local REST API key").
			Description("비워두면 shw obsidian을 비활성화합니다").
			Value(&input.ObsidianAPIKey),
		huh.NewInput().
			Title("기본 tailscale exit node").
			Description("비워두면 shw exitnode 호출 시 인자로 지정해야 합니다").
			Value(&input.ExitNodeDefault),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunSetupForm: %w", err)
	}
	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}
