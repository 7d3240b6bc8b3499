package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Name is the database name, or the file name for sqlite.
	Name string `mapstructure:"name" default:"deviceinfo.db"`
	// Dir is the directory relative sqlite file names are resolved against.
	Dir string `mapstructure:"dir" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// IsSQLite reports whether the configuration targets sqlite.
func (c Config) IsSQLite() bool {
	return c.Driver == "" || c.Driver == DriverSQLite
}
