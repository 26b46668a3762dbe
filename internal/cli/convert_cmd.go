package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/shw/internal/imgconv"
	"github.com/spf13/cobra"
)

func (a *App) newConvertCmd() *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "convert <files...>",
		Short: "이미지 파일들을 다른 포맷으로 일괄 변환한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter := &imgconv.Converter{Exec: a.Commander, OutDir: outDir}
			results, err := converter.Convert(cmd.Context(), args, format)
			if err != nil {
				return fmt.Errorf("cli.convert: %w", err)
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "실패: %s: %v\n", r.Source, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", r.Source, r.Output)
			}
			if failed > 0 {
				return fmt.Errorf("cli.convert: %d개 파일 변환 실패", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "webp",
		fmt.Sprintf("출력 포맷 (%s)", strings.Join(imgconv.SupportedFormats, ", ")))
	cmd.Flags().StringVar(&outDir, "out", "", "출력 디렉토리 (기본값: 원본 파일 위치)")
	return cmd
}
