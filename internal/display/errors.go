package display

import "github.com/earthlume/statusled/internal/errors"

const (
	ErrOpenFailed  = errors.ErrorCode("display_open_failed")
	ErrWriteFailed = errors.ErrorCode("display_write_failed")
	ErrCloseFailed = errors.ErrorCode("display_close_failed")
	ErrUnsupported = errors.ErrorCode("display_unsupported_platform")
)
