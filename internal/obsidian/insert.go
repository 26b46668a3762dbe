package obsidian

import (
	"fmt"
	"regexp"
	"strings"
)

// InsertUnderHeading은 content에서 heading 섹션을 찾아 그 끝(섹션 구분
// 공백 줄 앞)에 dataLine을 삽입한다. heading이 없으면 문서 끝에 새 섹션을
// 만든다. hash 레벨과 앞뒤 공백은 유연하게 처리한다.
func InsertUnderHeading(content, heading, dataLine string) string {
	headingPattern := regexp.MustCompile(`(^|\n)(#+)[ \t]+` + regexp.QuoteMeta(heading) + `[ \t]*(\n|$)`)
	loc := headingPattern.FindStringSubmatchIndex(content)

	if loc == nil {
		prefix := ""
		if content != "" && !strings.HasSuffix(content, "\n") {
			prefix = "\n"
		}
		return fmt.Sprintf("%s%s\n## %s\n%s\n", content, prefix, heading, dataLine)
	}

	startBody := loc[1]
	level := loc[5] - loc[4] // hash 그룹 길이

	// 같은 레벨 이상의 다음 heading 시작까지가 섹션 범위다.
	nextPattern := regexp.MustCompile(fmt.Sprintf(`(^|\n)#{1,%d}[ \t]+`, level))
	endBody := len(content)
	if next := nextPattern.FindStringIndex(content[startBody:]); next != nil {
		endBody = startBody + next[0]
	}

	section := content[startBody:endBody]

	// 섹션 구분용 trailing 빈 줄보다 앞에 삽입되도록 내용과 공백을 분리한다.
	trimmed := strings.TrimRight(section, " \t\n")
	trailing := section[len(trimmed):]

	separator := ""
	if trimmed != "" {
		separator = "\n"
	}

	newSection := trimmed + separator + dataLine + trailing
	if trailing == "" && endBody != len(content) {
		newSection += "\n"
	}

	return content[:startBody] + newSection + content[endBody:]
}
