package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/obsidian"
	"github.com/spf13/cobra"
)

func (a *App) newObsidianCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obsidian",
		Short: "Obsidian Local REST API 연동",
	}
	cmd.AddCommand(a.newObsidianAppendCmd())
	return cmd
}

func (a *App) newObsidianAppendCmd() *cobra.Command {
	var note, heading string

	cmd := &cobra.Command{
		Use:   "append <text...>",
		Short: "노트의 heading 섹션 끝에 한 줄을 추가한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.CfgPath)
			if err != nil {
				return err
			}
			if cfg.Obsidian.APIKey == "" {
				return fmt.Errorf("cli.obsidian: api_key가 설정되지 않았습니다: %w", ErrConfig)
			}

			client := obsidian.NewClient(cfg.Obsidian.APIKey, cfg.Obsidian.Port, cfg.Obsidian.HTTPS)
			line := strings.Join(args, " ")
			if err := client.AppendUnderHeading(cmd.Context(), note, heading, line); err != nil {
				return fmt.Errorf("cli.obsidian: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "vault 루트 기준 노트 경로")
	cmd.Flags().StringVar(&heading, "heading", "", "삽입할 섹션 heading")
	_ = cmd.MarkFlagRequired("note")
	_ = cmd.MarkFlagRequired("heading")
	return cmd
}
