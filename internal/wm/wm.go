// Package wm implements run-or-raise window dispatch over the kdotool and
// kstart CLIs: focus an existing window matching a search, or launch the
// application when none is found.
package wm

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/hbjs97/shw/internal/shellgen"
)

// Search는 kdotool에 넘길 window 검색 조건이다.
type Search struct {
	Flag    string // 예: "--class", "--name"
	Pattern string
}

// Manager는 window 조회/활성화와 앱 실행을 수행한다.
type Manager struct {
	Exec   cmdexec.Commander
	DryRun bool
}

// ParseSearchArgs는 launch ID와 추가 인자로부터 검색 조건을 만든다.
// 인자가 없으면 launch ID 자체를 class로 검색한다. 단축키 시스템이
// 전체 검색식을 따옴표 포함 인자 하나로 전달하는 경우가 있어,
// 단일 인자는 셸 단어 분리로 한 번 더 나눠본다.
func ParseSearchArgs(launchID string, extra []string) Search {
	switch len(extra) {
	case 0:
		return Search{Flag: "--class", Pattern: launchID}
	case 1:
		parts, err := shellgen.Split(extra[0])
		if err == nil && len(parts) >= 2 {
			return Search{Flag: parts[0], Pattern: strings.Join(parts[1:], " ")}
		}
		return Search{Flag: "--class", Pattern: extra[0]}
	default:
		return Search{Flag: extra[0], Pattern: strings.Join(extra[1:], " ")}
	}
}

// FindWindows는 검색 조건에 맞는 window ID 목록을 반환한다.
func (m *Manager) FindWindows(ctx context.Context, search Search) ([]string, error) {
	out, err := m.Exec.Run(ctx, "kdotool", "search", search.Flag, search.Pattern)
	if err != nil {
		return nil, fmt.Errorf("wm.FindWindows: %w", err)
	}
	var ids []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// Activate는 window를 전면으로 가져온다.
func (m *Manager) Activate(ctx context.Context, windowID string) error {
	if windowID == "" {
		return nil
	}
	if m.DryRun {
		return nil
	}
	if _, err := m.Exec.Run(ctx, "kdotool", "windowactivate", windowID); err != nil {
		return fmt.Errorf("wm.Activate: %w", err)
	}
	return nil
}

// Launch는 앱을 detach 상태로 실행한다. 단축키에서 불리므로 stdio를
// 물려주지 않는다.
func (m *Manager) Launch(ctx context.Context, launchID string) error {
	if m.DryRun {
		return nil
	}
	if err := m.Exec.Start(ctx, "kstart", "--application", launchID); err != nil {
		return fmt.Errorf("wm.Launch: %w", err)
	}
	return nil
}

// RunOrRaise는 검색 조건에 맞는 window가 있으면 첫 번째를 활성화하고,
// 없으면 launchID의 앱을 실행한다.
func (m *Manager) RunOrRaise(ctx context.Context, launchID string, search Search) error {
	ids, err := m.FindWindows(ctx, search)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		return m.Activate(ctx, ids[0])
	}
	return m.Launch(ctx, launchID)
}
