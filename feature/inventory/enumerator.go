package inventory

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"deviceinfocompare/core/reconcile"

	"go.uber.org/zap"
)

// ErrUnsupportedPlatform is returned when no enumerator exists for the host OS.
var ErrUnsupportedPlatform = errors.New("live device enumeration is not supported on this platform")

// pnpScript lists present PnP devices as JSON. Console output is switched to
// UTF-8 in the same session so friendly names survive non-ASCII locales.
const pnpScript = "[Console]::OutputEncoding = [System.Text.Encoding]::UTF8; " +
	"Get-PnpDevice -PresentOnly | Select-Object Status,Class,FriendlyName,InstanceId | ConvertTo-Json"

// currentOS is swapped in tests.
var currentOS = runtime.GOOS

// Enumerator captures the live device inventory.
type Enumerator interface {
	CurrentDevices(ctx context.Context) ([]reconcile.DeviceRecord, error)
}

// EnumeratorFunc adapts a function to the Enumerator interface.
type EnumeratorFunc func(ctx context.Context) ([]reconcile.DeviceRecord, error)

// CurrentDevices calls f(ctx).
func (f EnumeratorFunc) CurrentDevices(ctx context.Context) ([]reconcile.DeviceRecord, error) {
	return f(ctx)
}

// PowerShellEnumerator enumerates devices with Get-PnpDevice.
type PowerShellEnumerator struct {
	runner  Runner
	shell   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewPowerShellEnumerator creates an enumerator that shells out through runner.
func NewPowerShellEnumerator(cfg Config, runner Runner, logger *zap.Logger) *PowerShellEnumerator {
	shell := cfg.Shell
	if shell == "" {
		shell = "powershell"
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PowerShellEnumerator{
		runner:  runner,
		shell:   shell,
		timeout: timeout,
		logger:  logger,
	}
}

// CurrentDevices runs the PnP query and parses its output.
func (e *PowerShellEnumerator) CurrentDevices(ctx context.Context) ([]reconcile.DeviceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	out, err := e.runner.Run(ctx, e.shell, "-NoProfile", "-NonInteractive", "-Command", pnpScript)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	devices, err := ParsePnpJSON(out)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Enumerated devices",
		zap.Int("count", len(devices)),
		zap.Duration("took", time.Since(start)),
	)
	return devices, nil
}

// NewEnumerator returns the enumerator for the host platform.
func NewEnumerator(cfg Config, logger *zap.Logger) (Enumerator, error) {
	switch currentOS {
	case "windows":
		return NewPowerShellEnumerator(cfg, ExecRunner{}, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, currentOS)
	}
}
