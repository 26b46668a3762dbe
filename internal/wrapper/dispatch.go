package wrapper

import (
	"context"
	"fmt"
	"io"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/rs/zerolog/log"
)

// DirectiveRunner는 directive를 호출자 컨텍스트에서 실행하는 privileged
// callback이다. directive는 wrapping된 command가 출력한 텍스트 그대로이며
// 어떤 sandbox도 거치지 않는다 — 신뢰할 수 있는 command만 wrapping해야 한다.
type DirectiveRunner interface {
	// RunDirective는 directive를 실행하고 exit code를 반환한다.
	RunDirective(ctx context.Context, directive string) (int, error)
}

// Dispatcher는 등록된 wrapper 하나를 호출하는 상태 기계다.
// 호출 간 공유 상태는 Registry뿐이며, 각 호출은 독립적으로 자식
// 프로세스를 생성한다. timeout은 부과하지 않는다 — command가 끝나지
// 않으면 호출자도 끝나지 않는다.
type Dispatcher struct {
	Registry *Registry
	Exec     cmdexec.Commander
	Eval     DirectiveRunner
	Out      io.Writer
}

// Invoke는 name의 wrapper를 call-time 인자와 함께 실행한다.
// 고정 command 뒤에 args를 이어붙여 실행하고, 결과를 Classify한 뒤
// 판정된 경로 하나만 수행한다:
//   - short-circuit: 아무것도 하지 않는다 (출력 미해석, exit code 전파)
//   - directive: Eval로 실행하고 그 exit code를 결과로 한다
//   - printed: Out에 출력 + 개행, exit code 0
//   - noop: exit code 0
func (d *Dispatcher) Invoke(ctx context.Context, name string, args []string) (Result, error) {
	spec, ok := d.Registry.Lookup(name)
	if !ok {
		return Result{}, fmt.Errorf("wrapper.Invoke: %q: %w", name, ErrNotFound)
	}

	full := append(append([]string(nil), spec.Command[1:]...), args...)
	stdout, code, err := d.Exec.Capture(ctx, spec.Command[0], full...)
	if err != nil {
		return Result{}, fmt.Errorf("wrapper.Invoke: %w", err)
	}

	result := Classify(string(stdout), code)
	log.Debug().Str("wrapper", name).Stringer("kind", result.Kind).Int("exit", result.ExitCode).Msg("dispatch")

	switch result.Kind {
	case KindShortCircuit:
		// 출력은 버린다. 실패한 command는 directive를 트리거할 수 없다.
	case KindDirective:
		evalCode, err := d.Eval.RunDirective(ctx, result.Directive)
		if err != nil {
			return result, fmt.Errorf("wrapper.Invoke: directive 실행 실패: %w", err)
		}
		result.ExitCode = evalCode
	case KindPrinted:
		if _, err := fmt.Fprintln(d.Out, result.Output); err != nil {
			return result, fmt.Errorf("wrapper.Invoke: %w", err)
		}
	case KindNoOp:
	}
	return result, nil
}
