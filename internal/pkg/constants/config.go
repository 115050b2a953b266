package constants

// viper keys
const (
	ViperKeyListenAddr  = "listen_addr"
	ViperKeyPostgresDSN = "postgres_dsn"
	ViperKeyEnvironment = "environment"
	ViperSecretKey      = "admin_secret"
)

const (
	CookieKeySecretToken = "secret_token"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)
