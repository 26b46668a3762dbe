package cli

import "regexp"

var secretPattern = regexp.MustCompile(`(Bearer |api_key\s*=\s*"?)([A-Za-z0-9+/_-]{8,})`)

// MaskSecrets는 진단/verbose 출력에 섞인 API key를 마스킹한다.
func MaskSecrets(s string) string {
	return secretPattern.ReplaceAllString(s, "$1****")
}
