package wrapper

import (
	"fmt"

	"github.com/hbjs97/shw/internal/shellgen"
)

// Factory는 wrapper 생성의 진입점이다. Create는 검증 → 직렬화/template
// 치환 → 레지스트리 설치를 순서대로 수행하는 동기 로컬 연산이다.
// 재시도는 없다; 자식 프로세스 작업은 이후 생성된 wrapper가 호출될 때
// 비로소 일어난다.
type Factory struct {
	Registry *Registry
}

// Create는 spec을 검증하고 shellType용 함수 소스를 생성한 뒤 레지스트리에
// 설치한다. 선조건 위반 시 ErrInvalidArguments를 반환하며 레지스트리는
// 건드리지 않는다. 성공 시 반환된 소스를 eval하는 즉시 wrapper를 쓸 수 있다.
func (f *Factory) Create(name string, command []string, shellType string) (string, error) {
	spec, err := NewSpec(name, command)
	if err != nil {
		return "", err
	}

	fn, err := shellgen.Function(spec.Name, spec.Command, shellType)
	if err != nil {
		return "", fmt.Errorf("wrapper.Create: %w", err)
	}

	f.Registry.Install(spec)
	return fn, nil
}
