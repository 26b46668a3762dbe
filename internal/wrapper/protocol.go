package wrapper

import "strings"

// EvalPrefix는 directive 출력을 표시하는 sentinel prefix다 (ASCII 6바이트).
// prefix로 시작하는 정상 출력은 directive로 오인된다 — 이 충돌에 대한
// escape 규칙은 프로토콜에 없으며, in-process 소비자는 문자열 대신
// Result의 Kind를 사용해야 한다.
const EvalPrefix = "EVAL::"

// Kind는 한 번의 wrapper 호출이 도달한 종료 상태다.
type Kind int

const (
	// KindNoOp는 exit 0 + 빈 출력이다.
	KindNoOp Kind = iota
	// KindPrinted는 exit 0 + prefix 없는 출력이다.
	KindPrinted
	// KindDirective는 exit 0 + EVAL:: prefix 출력이다.
	KindDirective
	// KindShortCircuit는 command가 0이 아닌 코드로 종료한 경우다.
	// 출력은 해석되지 않는다.
	KindShortCircuit
)

// String은 Kind의 로그용 표현이다.
func (k Kind) String() string {
	switch k {
	case KindNoOp:
		return "noop"
	case KindPrinted:
		return "printed"
	case KindDirective:
		return "directive"
	case KindShortCircuit:
		return "short-circuit"
	default:
		return "unknown"
	}
}

// Result는 호출 결과의 tagged union이다. Kind에 따라 Output 또는
// Directive 중 정확히 하나만 의미를 가진다.
type Result struct {
	Kind      Kind
	ExitCode  int
	Output    string
	Directive string
}

// Classify는 command의 stdout과 exit code로부터 Result를 판정한다.
// 판정 경로는 항상 정확히 하나다: exit code 우선, 그 다음 prefix 검사.
// stdout의 trailing newline은 셸의 command substitution과 동일하게 제거된다.
func Classify(stdout string, exitCode int) Result {
	out := strings.TrimRight(stdout, "\n")
	if exitCode != 0 {
		return Result{Kind: KindShortCircuit, ExitCode: exitCode}
	}
	if strings.HasPrefix(out, EvalPrefix) {
		return Result{Kind: KindDirective, Directive: out[len(EvalPrefix):]}
	}
	if out != "" {
		return Result{Kind: KindPrinted, Output: out}
	}
	return Result{Kind: KindNoOp}
}
