// Package cli wires the shw commands: the wrapper factory surface
// (create/export/list/remove/run/init) and the workstation utilities.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// App은 모든 명령이 공유하는 의존성이다.
type App struct {
	CfgPath   string
	CachePath string
	Commander cmdexec.Commander
	Verbose   bool
}

// NewRootCmd는 shw CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	app := &App{Commander: &cmdexec.RealCommander{}}

	cmd := &cobra.Command{
		Use:          "shw",
		Short:        "셸 wrapper 팩토리와 워크스테이션 유틸리티",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if app.Verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}

	defaultCfg := filepath.Join(homeDir(), ".config", "shw", "config.toml")
	cmd.PersistentFlags().StringVar(&app.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&app.Verbose, "verbose", false, "상세 출력")
	app.CachePath = filepath.Join(homeDir(), ".config", "shw", "cache.json")

	cmd.AddCommand(
		app.newCreateCmd(),
		app.newExportCmd(),
		app.newListCmd(),
		app.newRemoveCmd(),
		app.newRunCmd(),
		app.newInitCmd(),
		app.newRaiseCmd(),
		app.newBTCmd(),
		app.newExitNodeCmd(),
		app.newTagsCmd(),
		app.newObsidianCmd(),
		app.newConvertCmd(),
		app.newSandboxCmd(),
		app.newDoctorCmd(),
		app.newSetupCmd(),
	)
	return cmd
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
