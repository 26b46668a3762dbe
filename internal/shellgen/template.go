package shellgen

import (
	"fmt"
	"strings"
)

// commandPlaceholder는 함수 본문 template에서 직렬화된 command로 치환되는
// 유일한 자리다. 치환은 literal text replacement이며, template에 정확히
// 한 번 나타나야 한다.
const commandPlaceholder = "@COMMAND@"

// posixBodyTemplate는 zsh/bash 공용 함수 본문이다.
// 고정 command 뒤에 call-time 인자를 positional 그대로 전달하고,
// stdout과 exit status를 캡처한 뒤:
//   - exit status != 0 → 그 status로 즉시 return (출력 미해석)
//   - EVAL:: prefix     → 나머지를 호출자 컨텍스트에서 eval
//   - 비어있지 않은 출력 → 그대로 출력 + 개행
//   - 빈 출력           → 아무것도 하지 않음
// 마지막 case의 status가 함수의 return status가 된다 (아무것도 안 했으면 0).
const posixBodyTemplate = `  local __shw_out __shw_rc
  __shw_out="$(@COMMAND@ "$@")"
  __shw_rc=$?
  if [ "$__shw_rc" -ne 0 ]; then
    return "$__shw_rc"
  fi
  case "$__shw_out" in
  'EVAL::'*)
    eval "${__shw_out#EVAL::}"
    ;;
  ?*)
    printf '%s\n' "$__shw_out"
    ;;
  esac`

const fishBodyTemplate = `  set -l __shw_out (@COMMAND@ $argv | string collect)
  set -l __shw_rc $pipestatus[1]
  if test $__shw_rc -ne 0
    return $__shw_rc
  end
  if string match -q 'EVAL::*' -- "$__shw_out"
    eval (string replace -r '^EVAL::' '' -- "$__shw_out")
  else if test -n "$__shw_out"
    printf '%s\n' "$__shw_out"
  end`

// Function은 name의 wrapper 함수 전체 소스를 생성한다.
// command는 shellType의 단어 분리 규칙으로 원래 시퀀스가 복원되도록
// 직렬화되어 template에 치환된다.
func Function(name string, command []string, shellType string) (string, error) {
	if len(command) == 0 {
		return "", fmt.Errorf("shellgen.Function: command가 비어 있습니다")
	}

	var tmpl, serialized string
	switch shellType {
	case "fish":
		tmpl = fishBodyTemplate
		serialized = JoinFish(command)
	default: // bash, zsh, sh
		tmpl = posixBodyTemplate
		serialized = Join(command)
	}

	if n := strings.Count(tmpl, commandPlaceholder); n != 1 {
		return "", fmt.Errorf("shellgen.Function: placeholder가 %d번 나타남 (1번이어야 함)", n)
	}
	body := strings.Replace(tmpl, commandPlaceholder, serialized, 1)

	if shellType == "fish" {
		return fmt.Sprintf("function %s\n%s\nend\n", name, body), nil
	}
	return fmt.Sprintf("%s() {\n%s\n}\n", name, body), nil
}
