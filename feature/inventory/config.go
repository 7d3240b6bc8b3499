package inventory

// Config holds configuration for live device enumeration.
type Config struct {
	// Shell is the PowerShell executable (powershell or pwsh).
	Shell string `mapstructure:"shell" default:"powershell"`
	// TimeoutSeconds bounds a single enumeration run.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
