package settings

// DefaultAliasPrefix is prepended to every primary key to build its alias.
const DefaultAliasPrefix = "PUBLIC_"

// Primary key names.
const (
	KeyDisableLogs = "DISABLE_LOGS"
	KeyDebug       = "DEBUG"
	KeyLogs        = "LOGS"
	KeyLogsEnabled = "LOGS_ENABLED"
	KeyEnvironment = "APP_ENV"
)

// Production is the deployment environment value that disables default logging.
const Production = "production"

// Keys lists the key families consulted for each signal, in lookup order.
type Keys struct {
	// HardOff silences every logger without an explicit override.
	HardOff []string
	// Filter holds the primary context filter keys.
	Filter []string
	// FilterFallback is used only when no Filter key is present.
	FilterFallback []string
	// GlobalEnable turns logging on when no context filter decides.
	GlobalEnable []string
	// Environment names the deployment environment.
	Environment []string
}

// NewKeys returns the key families with aliases built from prefix.
// An empty prefix yields DefaultAliasPrefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultAliasPrefix
	}
	family := func(key string) []string {
		return []string{key, prefix + key}
	}
	return Keys{
		HardOff:        family(KeyDisableLogs),
		Filter:         family(KeyDebug),
		FilterFallback: family(KeyLogs),
		GlobalEnable:   family(KeyLogsEnabled),
		Environment:    []string{KeyEnvironment},
	}
}

// DefaultKeys returns the key families for DefaultAliasPrefix.
func DefaultKeys() Keys {
	return NewKeys(DefaultAliasPrefix)
}
