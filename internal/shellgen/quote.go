package shellgen

import (
	"fmt"
	"strings"
)

// Quote는 token을 POSIX 셸이 단어 하나로 다시 읽도록 직렬화한다.
// 모든 바이트 시퀀스에 대해 전역적이다: 표현할 수 없는 token은 없고,
// 표현 규칙의 결함은 여기서 고친다.
func Quote(token string) string {
	if token == "" {
		return "''"
	}
	if !needsQuoting(token) {
		return token
	}
	// 작은따옴표로 감싸고, 내부의 작은따옴표는 '\'' 시퀀스로 잇는다.
	return "'" + strings.ReplaceAll(token, "'", `'\''`) + "'"
}

// Join은 token 시퀀스를 공백으로 잇는다. 결과를 셸 단어 분리 규칙으로
// 다시 나누면 원래 시퀀스가 그대로 복원된다 (round-trip).
func Join(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = Quote(t)
	}
	return strings.Join(quoted, " ")
}

// QuoteFish는 token을 fish 문법으로 직렬화한다. fish의 작은따옴표 안에서는
// \'와 \\만 escape 시퀀스다.
func QuoteFish(token string) string {
	if token == "" {
		return "''"
	}
	if !needsQuoting(token) {
		return token
	}
	escaped := strings.ReplaceAll(token, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}

// JoinFish는 Join의 fish 버전이다.
func JoinFish(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = QuoteFish(t)
	}
	return strings.Join(quoted, " ")
}

func needsQuoting(token string) bool {
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '/', r == ':', r == '=',
			r == '+', r == '%', r == '@', r == ',':
		default:
			return true
		}
	}
	return false
}

// Split은 문자열을 POSIX 단어 분리 규칙으로 token 시퀀스로 나눈다.
// 작은따옴표, 큰따옴표, backslash escape를 처리한다. Quote/Join의
// 역연산이며, 단축키 시스템이 전달한 따옴표 포함 단일 인자를 다시
// 나누는 데도 쓰인다.
func Split(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inToken := false

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
			i++
		case c == '\'':
			inToken = true
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("shellgen.Split: 닫히지 않은 작은따옴표")
			}
			cur.WriteString(s[i+1 : i+1+end])
			i += end + 2
		case c == '"':
			inToken = true
			i++
			for {
				if i >= len(s) {
					return nil, fmt.Errorf("shellgen.Split: 닫히지 않은 큰따옴표")
				}
				if s[i] == '"' {
					i++
					break
				}
				if s[i] == '\\' && i+1 < len(s) {
					next := s[i+1]
					if next == '"' || next == '\\' || next == '$' || next == '`' {
						cur.WriteByte(next)
						i += 2
						continue
					}
				}
				cur.WriteByte(s[i])
				i++
			}
		case c == '\\':
			if i+1 >= len(s) {
				return nil, fmt.Errorf("shellgen.Split: 끝에 붙은 backslash")
			}
			inToken = true
			cur.WriteByte(s[i+1])
			i += 2
		default:
			inToken = true
			cur.WriteByte(c)
			i++
		}
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
