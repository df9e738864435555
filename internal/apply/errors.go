package apply

import "go.trai.ch/zerr"

var (
	// ErrNotReady is returned when the pair is incomplete or nothing is resolved.
	ErrNotReady = zerr.New("mapping is not ready to apply")

	// ErrModeSwitch is returned when the host cannot enter or leave constraint editing mode.
	ErrModeSwitch = zerr.New("failed to switch host mode")

	// ErrApplyFailed is returned when at least one constraint could not be created.
	ErrApplyFailed = zerr.New("some constraints could not be created")
)
