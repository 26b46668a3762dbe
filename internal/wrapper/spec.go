// Package wrapper implements the shell wrapper factory: a registry of
// wrapper specs, a factory that validates and installs them, and a
// dispatcher that runs a wrapped command and interprets its output
// through the EVAL:: control protocol.
package wrapper

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidArguments는 팩토리 사용 오류(이름 누락, 빈 command)의 sentinel error다.
var ErrInvalidArguments = errors.New("wrapper: invalid arguments")

// ErrNotFound는 레지스트리에 없는 wrapper를 호출했을 때의 sentinel error다.
var ErrNotFound = errors.New("wrapper: not found")

var nameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Spec은 하나의 wrapper 정의다. Command는 캡처 시점에 복사되어
// 이후 호출에서 다시 해석되지 않는다.
type Spec struct {
	Name    string
	Command []string
}

// NewSpec은 name과 command를 검증하고 Spec을 생성한다.
// command는 방어적으로 복사된다.
func NewSpec(name string, command []string) (Spec, error) {
	if err := ValidateName(name); err != nil {
		return Spec{}, err
	}
	if len(command) == 0 {
		return Spec{}, fmt.Errorf("wrapper.NewSpec: command가 비어 있습니다: %w", ErrInvalidArguments)
	}
	cmd := make([]string, len(command))
	copy(cmd, command)
	return Spec{Name: name, Command: cmd}, nil
}

// ValidateName은 name이 셸 함수 이름으로 유효한지 검증한다.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("wrapper.ValidateName: 이름이 비어 있습니다: %w", ErrInvalidArguments)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("wrapper.ValidateName: 유효하지 않은 이름 %q: %w", name, ErrInvalidArguments)
	}
	return nil
}
