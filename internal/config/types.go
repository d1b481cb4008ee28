package config

// Config holds all configuration for the application.
type Config struct {
	DBName            string
	Port              string
	DefaultEventID    string
	SchemaAliasesFile string
	OverviewWorkers   int
	Slack             SlackConfig
	Turso             TursoConfig
}
type SlackConfig struct {
	SigningSecret string
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
