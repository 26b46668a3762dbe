// Package tags extracts the unique tag set of an Obsidian vault from YAML
// frontmatter and inline #tags in markdown files.
package tags

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// inlineTagRegex는 본문 인라인 태그다. 공백(또는 행 시작) 뒤의 #word만
// 매칭하여 URL fragment나 코드 속 #을 피한다.
var inlineTagRegex = regexp.MustCompile(`(?:^|\s)#([a-zA-Z0-9_/-]+)`)

// frontmatter는 YAML properties에서 tags 필드만 읽는다.
// 문자열 하나일 수도, 리스트일 수도 있다.
type frontmatter struct {
	Tags any `yaml:"tags"`
}

// Extract는 vault의 모든 .md 파일에서 고유 태그를 수집하여 정렬해 반환한다.
// 읽을 수 없는 파일과 깨진 frontmatter는 경고 없이 건너뛰고 나머지를 계속한다.
func Extract(vault string) ([]string, error) {
	set := make(map[string]struct{})

	err := filepath.WalkDir(vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		collectFile(path, set)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tags.Extract: %w", err)
	}

	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

func collectFile(path string, set map[string]struct{}) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return
	}
	first := strings.TrimSpace(scanner.Text())

	if first == "---" {
		var yamlLines []string
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "---" {
				break
			}
			yamlLines = append(yamlLines, line)
		}
		collectFrontmatter(strings.Join(yamlLines, "\n"), set)
	} else {
		collectInline(first, set)
	}

	for scanner.Scan() {
		collectInline(scanner.Text(), set)
	}
}

func collectFrontmatter(src string, set map[string]struct{}) {
	var fm frontmatter
	if err := yaml.Unmarshal([]byte(src), &fm); err != nil {
		return
	}
	switch v := fm.Tags.(type) {
	case string:
		for _, tag := range strings.Fields(v) {
			set[tag] = struct{}{}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				set[strings.ReplaceAll(s, " ", "-")] = struct{}{}
			}
		}
	}
}

func collectInline(line string, set map[string]struct{}) {
	for _, m := range inlineTagRegex.FindAllStringSubmatch(line, -1) {
		set[m[1]] = struct{}{}
	}
}

// Fingerprint는 캐시 무효화용 vault 지문이다. .md 파일의 경로, 크기,
// 수정 시각을 해시한다 — 내용 해시보다 훨씬 싸고 스캔 생략 판단에는 충분하다.
func Fingerprint(vault string) (string, error) {
	h := sha256.New()
	err := filepath.WalkDir(vault, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		fmt.Fprintf(h, "%s|%d|%d\n", path, info.Size(), info.ModTime().UnixNano())
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("tags.Fingerprint: %w", err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
