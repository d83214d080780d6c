package core

import (
	"errors"
)

var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrUnsupportedAsset = errors.New("unsupported asset format")
	ErrAudioUnavailable = errors.New("audio device unavailable")
	ErrNotInitialized   = errors.New("subsystem not initialized")
	ErrUnknown          = errors.New("unknown")
)
