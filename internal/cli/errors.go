package cli

import (
	"github.com/hbjs97/shw/internal/config"
	"github.com/hbjs97/shw/internal/wrapper"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidArguments는 팩토리 사용 오류의 sentinel error다.
	ErrInvalidArguments = wrapper.ErrInvalidArguments
	// ErrNotFound는 등록되지 않은 wrapper 호출의 sentinel error다.
	ErrNotFound = wrapper.ErrNotFound
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
