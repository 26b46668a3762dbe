// Package imgconv batch-converts image files with ImageMagick.
package imgconv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hbjs97/shw/internal/cmdexec"
)

// SupportedFormats는 출력 포맷 목록이다.
var SupportedFormats = []string{"png", "jpg", "webp", "avif", "gif", "tiff", "bmp"}

// Result는 파일 하나의 변환 결과다.
type Result struct {
	Source string
	Output string
	Err    error
}

// Converter는 magick CLI로 변환을 수행한다.
type Converter struct {
	Exec   cmdexec.Commander
	OutDir string // 비어있으면 원본 파일 옆에 생성
}

// ValidFormat은 포맷이 지원 목록에 있는지 확인한다.
func ValidFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Convert는 파일들을 format으로 변환한다. 개별 파일 실패는 Result에 담고
// 나머지를 계속 진행한다.
func (c *Converter) Convert(ctx context.Context, files []string, format string) ([]Result, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("imgconv.Convert: 지원하지 않는 포맷: %s", format)
	}

	results := make([]Result, 0, len(files))
	for _, src := range files {
		out := c.outputPath(src, format)
		if out == src {
			results = append(results, Result{Source: src, Output: out,
				Err: fmt.Errorf("imgconv: 원본과 출력이 같습니다")})
			continue
		}
		if _, err := c.Exec.Run(ctx, "magick", src, out); err != nil {
			results = append(results, Result{Source: src, Output: out,
				Err: fmt.Errorf("imgconv: %s 변환 실패: %w", src, err)})
			continue
		}
		results = append(results, Result{Source: src, Output: out})
	}
	return results, nil
}

func (c *Converter) outputPath(src, format string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	dir := c.OutDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base+"."+format)
}
