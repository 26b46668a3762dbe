// Package bt switches a bluetooth device between hosts: disconnect it from
// every other configured host, then connect it on the target. Hosts are
// reached locally or over ssh; bluez (bluetoothctl) and macos (blueutil)
// drivers build the per-host commands.
package bt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/shw/internal/cmdexec"
	"github.com/hbjs97/shw/internal/config"
	"github.com/rs/zerolog/log"
)

// ErrUnknownDevice는 설정에 없는 장치를 지정했을 때의 sentinel error다.
var ErrUnknownDevice = errors.New("bt: unknown device")

// ErrUnknownHost는 설정에 없는 호스트를 지정했을 때의 sentinel error다.
var ErrUnknownHost = errors.New("bt: unknown host")

// Switcher는 설정된 장치/호스트 집합 위에서 전환을 수행한다.
type Switcher struct {
	Exec cmdexec.Commander
	Cfg  config.BT
}

// driverCommands는 호스트 driver별 bluetooth 제어 명령을 만든다.
func driverCommands(driver, action, mac string) []string {
	switch driver {
	case "macos":
		switch action {
		case "connect":
			return []string{"blueutil", "--connect", mac}
		case "disconnect":
			return []string{"blueutil", "--disconnect", mac}
		default:
			return []string{"blueutil", "--is-connected", mac}
		}
	default: // bluez
		return []string{"bluetoothctl", action, mac}
	}
}

// run은 호스트의 protocol에 따라 로컬 또는 ssh로 명령을 실행한다.
// bluetoothctl 출력 파싱이 locale을 타지 않도록 LC_ALL=C로 실행한다.
func (s *Switcher) run(ctx context.Context, host config.Host, command []string) (string, error) {
	if host.Protocol == "ssh" {
		remote := fmt.Sprintf("%s@%s", host.User, host.Address)
		command = append([]string{"ssh", remote, "--"}, command...)
	}
	out, err := s.Exec.RunWithEnv(ctx, map[string]string{"LC_ALL": "C"}, command[0], command[1:]...)
	if err != nil {
		return "", fmt.Errorf("bt: %s 실행 실패: %w", command[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Connect는 target 호스트에서 장치를 연결한다.
func (s *Switcher) Connect(ctx context.Context, deviceName, hostName string) error {
	device, host, err := s.resolve(deviceName, hostName)
	if err != nil {
		return err
	}
	if _, err := s.run(ctx, host, driverCommands(host.Driver, "connect", device.MAC)); err != nil {
		return fmt.Errorf("bt.Connect[%s]: %w", hostName, err)
	}
	return nil
}

// Disconnect는 호스트에서 장치 연결을 해제한다.
func (s *Switcher) Disconnect(ctx context.Context, deviceName, hostName string) error {
	device, host, err := s.resolve(deviceName, hostName)
	if err != nil {
		return err
	}
	if _, err := s.run(ctx, host, driverCommands(host.Driver, "disconnect", device.MAC)); err != nil {
		return fmt.Errorf("bt.Disconnect[%s]: %w", hostName, err)
	}
	return nil
}

// Connected는 호스트에서 장치 연결 여부를 확인한다.
func (s *Switcher) Connected(ctx context.Context, deviceName, hostName string) (bool, error) {
	device, host, err := s.resolve(deviceName, hostName)
	if err != nil {
		return false, err
	}
	out, err := s.run(ctx, host, driverCommands(host.Driver, "info", device.MAC))
	if err != nil {
		return false, fmt.Errorf("bt.Connected[%s]: %w", hostName, err)
	}
	if host.Driver == "macos" {
		return strings.TrimSpace(out) == "1", nil
	}
	return strings.Contains(out, "Connected: yes"), nil
}

// Switch는 장치를 target 호스트로 넘긴다: 다른 모든 호스트에서 best-effort로
// 연결을 해제한 뒤 target에서 연결하고 확인한다.
func (s *Switcher) Switch(ctx context.Context, deviceName, targetName string) error {
	if _, _, err := s.resolve(deviceName, targetName); err != nil {
		return err
	}
	for name := range s.Cfg.Hosts {
		if name == targetName {
			continue
		}
		if err := s.Disconnect(ctx, deviceName, name); err != nil {
			// 꺼져 있는 호스트는 건너뛴다.
			log.Debug().Str("host", name).Err(err).Msg("bt disconnect skipped")
		}
	}
	if err := s.Connect(ctx, deviceName, targetName); err != nil {
		return err
	}
	connected, err := s.Connected(ctx, deviceName, targetName)
	if err != nil {
		return err
	}
	if !connected {
		return fmt.Errorf("bt.Switch: %s가 %s에 연결되지 않았습니다", deviceName, targetName)
	}
	return nil
}

func (s *Switcher) resolve(deviceName, hostName string) (config.Device, config.Host, error) {
	device, ok := s.Cfg.Devices[deviceName]
	if !ok {
		return config.Device{}, config.Host{}, fmt.Errorf("bt: %q: %w", deviceName, ErrUnknownDevice)
	}
	host, ok := s.Cfg.Hosts[hostName]
	if !ok {
		return config.Device{}, config.Host{}, fmt.Errorf("bt: %q: %w", hostName, ErrUnknownHost)
	}
	return device, host, nil
}
