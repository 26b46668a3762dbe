// Package config loads and saves the shw TOML configuration: saved
// wrappers, bluetooth devices/hosts, exit node and Obsidian settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("config: invalid configuration")

// Config는 shw 설정 파일의 최상위 구조체다.
type Config struct {
	Version      int                 `toml:"version"`
	DefaultShell string              `toml:"default_shell"`
	CacheTTLDays int                 `toml:"cache_ttl_days"`
	Wrappers     map[string][]string `toml:"wrappers"`
	BT           BT                  `toml:"bt"`
	ExitNode     ExitNode            `toml:"exitnode"`
	Obsidian     Obsidian            `toml:"obsidian"`
}

// BT는 bluetooth 장치 전환 설정이다.
type BT struct {
	Devices  map[string]Device `toml:"devices"`
	Hosts    map[string]Host   `toml:"hosts"`
	Defaults BTDefaults        `toml:"defaults"`
}

// Device는 전환 대상 bluetooth 장치다.
type Device struct {
	MAC  string `toml:"mac"`
	Name string `toml:"name"`
}

// Host는 장치를 점유할 수 있는 머신이다.
type Host struct {
	Address  string `toml:"address"`
	User     string `toml:"user"`
	Protocol string `toml:"protocol"` // "ssh" | "local"
	Driver   string `toml:"driver"`   // "bluez" | "macos"
}

// BTDefaults는 인자 생략 시 사용할 기본 장치/대상이다.
type BTDefaults struct {
	Device string `toml:"device"`
	Target string `toml:"target"`
}

// ExitNode는 tailscale exit node 설정이다.
type ExitNode struct {
	Default string `toml:"default"`
}

// Obsidian은 Local REST API 클라이언트 설정이다.
type Obsidian struct {
	APIKey string `toml:"api_key"`
	Port   int    `toml:"port"`
	HTTPS  bool   `toml:"https"`
}

// Default는 빈 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1, Wrappers: make(map[string][]string)}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 (설정 없이도 wrapper 명령은 동작해야 함).
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %v: %w", err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 설정을 TOML로 저장한다 (0600 권한, 디렉토리 자동 생성).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.DefaultShell == "" {
		c.DefaultShell = "zsh"
	}
	if c.CacheTTLDays == 0 {
		c.CacheTTLDays = 7
	}
	if c.Wrappers == nil {
		c.Wrappers = make(map[string][]string)
	}
	if c.Obsidian.Port == 0 {
		c.Obsidian.Port = 27124
	}
}

func (c *Config) validate() error {
	for name, command := range c.Wrappers {
		if len(command) == 0 {
			return fmt.Errorf("config.Load: wrappers.%s의 command가 비어 있습니다: %w", name, ErrConfig)
		}
	}
	for name, h := range c.BT.Hosts {
		switch h.Protocol {
		case "", "ssh", "local":
		default:
			return fmt.Errorf("config.Load: bt.hosts.%s.protocol %q (ssh|local): %w", name, h.Protocol, ErrConfig)
		}
		switch h.Driver {
		case "", "bluez", "macos":
		default:
			return fmt.Errorf("config.Load: bt.hosts.%s.driver %q (bluez|macos): %w", name, h.Driver, ErrConfig)
		}
	}
	for name, d := range c.BT.Devices {
		if d.MAC == "" {
			return fmt.Errorf("config.Load: bt.devices.%s.mac 필수: %w", name, ErrConfig)
		}
	}
	return nil
}
