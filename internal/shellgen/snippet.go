package shellgen

// InitSnippet는 셸 rc 파일에서 eval되는 shw 통합 스니펫을 반환한다.
// shw-create 함수는 shw create의 출력(함수 소스)을 현재 세션에 eval하여
// 설치하고, 저장된 wrapper들은 shw export 출력으로 복원한다.
func InitSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		return `# shw shell integration (zsh)
shw-create() {
  local __shw_fn
  __shw_fn="$(command shw create "$@")" || return $?
  eval "$__shw_fn"
}
eval "$(command shw export --shell zsh 2>/dev/null)"
`
	case "bash":
		return `# shw shell integration (bash)
shw-create() {
  local __shw_fn
  __shw_fn="$(command shw create "$@")" || return $?
  eval "$__shw_fn"
}
eval "$(command shw export --shell bash 2>/dev/null)"
`
	case "fish":
		return `# shw shell integration (fish)
function shw-create
  set -l __shw_fn (command shw create $argv | string collect)
  or return $status
  eval "$__shw_fn"
end
command shw export --shell fish 2>/dev/null | source
`
	default:
		return ""
	}
}
