// Package sandbox dispatches into docker containers: exec into a running
// container, start a stopped one, or run a new one from an image.
package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/hbjs97/shw/internal/cmdexec"
)

// Docker는 docker(또는 podman) CLI 위의 run/exec dispatcher다.
type Docker struct {
	Exec    cmdexec.Commander
	Runtime string // 비어있으면 "docker"
}

func (d *Docker) runtime() string {
	if d.Runtime == "" {
		return "docker"
	}
	return d.Runtime
}

// ContainerExists는 이름의 컨테이너 존재 여부를 확인한다.
func (d *Docker) ContainerExists(ctx context.Context, name string) bool {
	_, err := d.Exec.Run(ctx, d.runtime(), "inspect", "--format", "{{.Id}}", name)
	return err == nil
}

// ContainerRunning은 컨테이너가 실행 중인지 확인한다.
func (d *Docker) ContainerRunning(ctx context.Context, name string) bool {
	out, err := d.Exec.Run(ctx, d.runtime(), "inspect", "--format", "{{.State.Running}}", name)
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// Dispatch는 컨테이너 상태에 따라 exec/start+exec/run 중 하나를 수행하고
// 그 exit code를 반환한다. command가 비어있으면 셸을 연다.
func (d *Docker) Dispatch(ctx context.Context, name, image string, command []string) (int, error) {
	if len(command) == 0 {
		command = []string{"/bin/sh"}
	}

	if d.ContainerExists(ctx, name) {
		if !d.ContainerRunning(ctx, name) {
			if out, err := d.Exec.Run(ctx, d.runtime(), "start", name); err != nil {
				return 1, fmt.Errorf("sandbox.Dispatch: start 실패: %w (%s)", err, out)
			}
		}
		args := append([]string{"exec", "-it", name}, command...)
		code, err := d.Exec.RunInteractive(ctx, d.runtime(), args...)
		if err != nil {
			return code, fmt.Errorf("sandbox.Dispatch: %w", err)
		}
		return code, nil
	}

	if image == "" {
		return 1, fmt.Errorf("sandbox.Dispatch: 컨테이너 %s가 없고 --image도 지정되지 않았습니다", name)
	}
	args := append([]string{"run", "-it", "--name", name, image}, command...)
	code, err := d.Exec.RunInteractive(ctx, d.runtime(), args...)
	if err != nil {
		return code, fmt.Errorf("sandbox.Dispatch: %w", err)
	}
	return code, nil
}
