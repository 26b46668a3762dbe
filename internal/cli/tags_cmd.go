package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hbjs97/shw/internal/cache"
	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/tags"
	"github.com/spf13/cobra"
)

func (a *App) newTagsCmd() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "tags <vault>",
		Short: "Obsidian vault의 모든 고유 태그를 출력한다",
		Long: `vault의 .md 파일에서 YAML frontmatter와 인라인 #태그를 수집하여
정렬해 출력한다. vault가 변하지 않았으면 캐시된 결과를 쓴다.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTags(cmd, args[0], noCache)
		},
	}
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "캐시를 무시하고 다시 스캔")
	return cmd
}

func (a *App) runTags(cmd *cobra.Command, vault string, noCache bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	vault, err = filepath.Abs(vault)
	if err != nil {
		return fmt.Errorf("cli.tags: %w", err)
	}

	fingerprint, err := tags.Fingerprint(vault)
	if err != nil {
		return fmt.Errorf("cli.tags: %w", err)
	}

	c, err := cache.Load(a.CachePath)
	if err != nil {
		return fmt.Errorf("cli.tags: %w", err)
	}

	if !noCache {
		if entry, ok := c.Lookup(vault, fingerprint, cfg.CacheTTLDays); ok {
			for _, tag := range entry.Tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		}
	}

	found, err := tags.Extract(vault)
	if err != nil {
		return fmt.Errorf("cli.tags: %w", err)
	}
	for _, tag := range found {
		fmt.Fprintln(cmd.OutOrStdout(), tag)
	}

	c.Set(vault, cache.Entry{
		Tags:        found,
		ScannedAt:   time.Now().Format(time.RFC3339),
		Fingerprint: fingerprint,
	})
	if err := c.Save(a.CachePath); err != nil {
		return fmt.Errorf("cli.tags: %w", err)
	}
	return nil
}
