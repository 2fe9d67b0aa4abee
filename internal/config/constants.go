package config

const (
	envPort          = "PORT"
	envDataFile      = "DATA_FILE"
	envDataSource    = "DATA_SOURCE"
	envDataSheet     = "DATA_SHEET"
	envPreviewRows   = "PREVIEW_ROWS"
	envChatCorpus    = "CHATBOT_CORPUS"
	envSessionCookie = "SESSION_COOKIE"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotenvFile    = "DOTENV_FILE"

	defaultPort          = "4000"
	defaultDataFile      = "world_cup_results.xlsx"
	defaultDataSource    = "auto"
	defaultPreviewRows   = 5
	defaultSessionCookie = "wc_session"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "worldcup-dashboard"
	defaultDotenvFile    = ".env"
)
