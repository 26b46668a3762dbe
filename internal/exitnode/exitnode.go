// Package exitnode toggles the Tailscale exit-node connection. Connected →
// disconnect and restore advertising (server mode); disconnected → stop
// advertising and connect to the target (client mode).
package exitnode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hbjs97/shw/internal/cmdexec"
)

// ErrNoTarget는 연결할 exit node가 지정되지 않았을 때의 sentinel error다.
var ErrNoTarget = errors.New("exitnode: no target")

// Prefs는 tailscale debug prefs 출력에서 필요한 필드만 담는다.
type Prefs struct {
	ExitNodeID string `json:"ExitNodeID"`
}

// State는 Toggle이 수행한 전환 방향이다.
type State string

const (
	// StateServer는 exit node 연결을 끊고 다시 광고를 켠 상태다.
	StateServer State = "server"
	// StateClient는 광고를 끄고 target exit node에 연결한 상태다.
	StateClient State = "client"
)

// Toggler는 tailscale CLI 위에서 exit node 전환을 수행한다.
type Toggler struct {
	Exec cmdexec.Commander
}

// CurrentPrefs는 tailscale 설정을 조회한다.
func (t *Toggler) CurrentPrefs(ctx context.Context) (*Prefs, error) {
	out, err := t.Exec.Run(ctx, "tailscale", "debug", "prefs")
	if err != nil {
		return nil, fmt.Errorf("exitnode.CurrentPrefs: %w", err)
	}
	var prefs Prefs
	if err := json.Unmarshal(out, &prefs); err != nil {
		return nil, fmt.Errorf("exitnode.CurrentPrefs: JSON 파싱 실패: %w", err)
	}
	return &prefs, nil
}

// Toggle은 현재 상태를 보고 반대 방향으로 전환한다.
// target은 client 모드 전환 시에만 필요하다.
func (t *Toggler) Toggle(ctx context.Context, target string) (State, error) {
	prefs, err := t.CurrentPrefs(ctx)
	if err != nil {
		return "", err
	}

	if prefs.ExitNodeID != "" {
		if err := t.set(ctx, "--exit-node="); err != nil {
			return "", err
		}
		if err := t.set(ctx, "--advertise-exit-node=true"); err != nil {
			return "", err
		}
		return StateServer, nil
	}

	if target == "" {
		return "", fmt.Errorf("exitnode.Toggle: %w", ErrNoTarget)
	}
	// 라우팅 충돌 방지를 위해 광고를 먼저 끈다.
	if err := t.set(ctx, "--advertise-exit-node=false"); err != nil {
		return "", err
	}
	if err := t.set(ctx, fmt.Sprintf("--exit-node=%s", target)); err != nil {
		return "", err
	}
	return StateClient, nil
}

func (t *Toggler) set(ctx context.Context, flag string) error {
	if out, err := t.Exec.Run(ctx, "tailscale", "set", flag); err != nil {
		return fmt.Errorf("exitnode: tailscale set %s 실패: %w (%s)", flag, err, out)
	}
	return nil
}
