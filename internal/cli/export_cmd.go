package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/wrapper"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *App) newExportCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "저장된 모든 wrapper의 함수 소스를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (bash, zsh, fish)")
	return cmd
}

func (a *App) runExport(cmd *cobra.Command, shellType string) error {
	cfg, reg, err := a.loadRegistry()
	if err != nil {
		return err
	}
	if shellType == "" {
		shellType = cfg.DefaultShell
	}

	factory := &wrapper.Factory{Registry: reg}
	for _, name := range reg.Names() {
		spec, _ := reg.Lookup(name)
		fn, err := factory.Create(spec.Name, spec.Command, shellType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "경고: wrapper %s 건너뜀: %v\n", name, err)
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), fn)
	}
	return nil
}

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "저장된 wrapper 목록을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	_, reg, err := a.loadRegistry()
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "저장된 wrapper가 없습니다. shw create --save로 추가하세요.")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Command")
	for _, name := range reg.Names() {
		spec, _ := reg.Lookup(name)
		table.Append([]string{name, strings.Join(spec.Command, " ")})
	}
	table.Render()
	return nil
}

func (a *App) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "저장된 wrapper를 제거한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRemove(args[0])
		},
	}
}

func (a *App) runRemove(name string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if _, ok := cfg.Wrappers[name]; !ok {
		return fmt.Errorf("cli.remove: %q: %w", name, ErrNotFound)
	}
	delete(cfg.Wrappers, name)
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Printf("wrapper %s를 제거했습니다. 열린 셸 세션에는 함수가 남아 있을 수 있습니다.\n", name)
	return nil
}

// loadRegistry는 설정의 [wrappers]를 레지스트리로 불러온다.
// 유효하지 않은 항목은 경고 후 건너뛴다.
func (a *App) loadRegistry() (*config.Config, *wrapper.Registry, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, nil, err
	}
	reg := wrapper.NewRegistry()
	for name, command := range cfg.Wrappers {
		spec, err := wrapper.NewSpec(name, command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "경고: wrappers.%s 무시: %v\n", name, err)
			continue
		}
		reg.Install(spec)
	}
	return cfg, reg, nil
}
