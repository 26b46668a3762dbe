package setup

// Input은 setup 폼에서 수집하는 사용자 입력 값이다.
type Input struct {
	Shell           string
	InstallHook     bool
	ObsidianAPIKey  string
	ExitNodeDefault string
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunSetupForm은 초기 설정 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다 (수정 모드).
	RunSetupForm(defaults *Input) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
