package config

const EnvPrefix = "HHH"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvAppEnv    = "HHH_APP_ENV"
	EnvPort      = "HHH_APP_PORT"
	EnvDBDSN     = "HHH_DB_DSN"
	EnvDBHost    = "HHH_DB_HOST"
	EnvDBPort    = "HHH_DB_PORT"
	EnvDBUser    = "HHH_DB_USER"
	EnvDBName    = "HHH_DB_NAME"
	EnvUseSQLite = "HHH_USE_SQLITE"
	EnvRedisURL  = "HHH_REDIS_URL"
	EnvCORS      = "HHH_CORS_ALLOWED_ORIGINS"
)

var dbPartEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
