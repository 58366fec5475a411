package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names, so
// the prefix only matters for fields without one.
const EnvPrefix = "ARTTOY"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "ARTTOY_DB_DSN"
	EnvDBHost = "ARTTOY_DB_HOST"
	EnvDBUser = "ARTTOY_DB_USER"
	EnvDBName = "ARTTOY_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
