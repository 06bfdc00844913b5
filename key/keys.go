// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Chain - these keys control which resolution providers run and in what order.
const (
	ProvidersOrder   = "providers.order"
	ProvidersTimeout = "providers.timeout"
	ProvidersCustom  = "providers.custom"
)

// Provider Endpoints - these keys override the fixed endpoints of the built-in adapters.
const (
	CobaltEndpoint     = "providers.cobalt.endpoint"
	InstavideoEndpoint = "providers.instavideo.endpoint"
	YtdlpEndpoint      = "providers.ytdlp.endpoint"
)

// Delivery - these keys configure how a chosen rendition is handed to the host.
const (
	DeliverApp = "deliver.app"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
