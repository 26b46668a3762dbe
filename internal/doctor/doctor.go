// Package doctor diagnoses the environment shw depends on: external tool
// binaries per feature, the config file, and the Obsidian API.
package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/obsidian"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckBinaries는 각 기능이 의존하는 외부 바이너리 존재 여부를 확인한다.
// 없는 바이너리는 해당 기능만 막으므로 warn으로 보고한다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander) []DiagResult {
	binaries := []struct {
		name    string
		args    []string
		feature string
	}{
		{"zsh", []string{"--version"}, "shw init/create"},
		{"kdotool", []string{"--version"}, "shw raise"},
		{"kstart", []string{"--version"}, "shw raise"},
		{"bluetoothctl", []string{"--version"}, "shw bt"},
		{"tailscale", []string{"version"}, "shw exitnode"},
		{"magick", []string{"-version"}, "shw convert"},
		{"docker", []string{"--version"}, "shw sandbox"},
	}

	var results []DiagResult
	for _, b := range binaries {
		out, err := cmd.Run(ctx, b.name, b.args...)
		if err != nil {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", b.name),
				Fix:     fmt.Sprintf("%s 기능을 쓰려면 설치하세요", b.feature),
			})
			continue
		}
		first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
		results = append(results, DiagResult{
			Name:    b.name,
			Status:  StatusOK,
			Message: first,
		})
	}
	return results
}

// CheckConfig는 설정 파일 존재와 권한을 확인한다.
func CheckConfig(cfgPath string) DiagResult {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: "설정 파일 없음 — wrapper 저장/유틸리티 설정 불가",
			Fix:     "shw setup 실행",
		}
	}
	if err := config.ValidateFilePermissions(cfgPath); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", cfgPath),
		}
	}
	if _, err := config.Load(cfgPath); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: cfgPath,
	}
}

// CheckObsidian은 Local REST API 연결을 확인한다. key가 없으면 skip.
func CheckObsidian(ctx context.Context, cfg config.Obsidian) DiagResult {
	if cfg.APIKey == "" {
		return DiagResult{
			Name:    "obsidian",
			Status:  StatusWarn,
			Message: "api_key 미설정 — shw obsidian 비활성",
			Fix:     "config.toml의 [obsidian]에 api_key 추가",
		}
	}
	client := obsidian.NewClient(cfg.APIKey, cfg.Port, cfg.HTTPS)
	if err := client.Ping(ctx); err != nil {
		return DiagResult{
			Name:    "obsidian",
			Status:  StatusFail,
			Message: "Local REST API 연결 실패",
			Fix:     "Obsidian과 Local REST API 플러그인이 실행 중인지 확인",
		}
	}
	return DiagResult{
		Name:    "obsidian",
		Status:  StatusOK,
		Message: fmt.Sprintf("Local REST API 연결 성공 (port %d)", cfg.Port),
	}
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, cfgPath string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckBinaries(ctx, cmd)...)
	results = append(results, CheckConfig(cfgPath))

	cfg, err := config.Load(cfgPath)
	if err == nil {
		results = append(results, CheckObsidian(ctx, cfg.Obsidian))
	}
	return results
}
