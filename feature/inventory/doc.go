// Package inventory captures the live hardware device list.
//
// On Windows it shells out to PowerShell's Get-PnpDevice and converts the
// JSON output into reconcile.DeviceRecord values. A device is considered OK
// when its Status is "OK"; every other status counts as a problem.
//
// The Runner interface isolates process execution so parsing and error
// handling can be tested without PowerShell.
//
// # Usage
//
//	enum, err := inventory.NewEnumerator(cfg.Inventory, logger)
//	if err != nil {
//	    return err // ErrUnsupportedPlatform outside Windows
//	}
//	devices, err := enum.CurrentDevices(ctx)
package inventory
