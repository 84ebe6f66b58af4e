package driven

// Well-known configuration keys.
const (
	// ConfigKeyAPIBaseURL is the content API base URL.
	ConfigKeyAPIBaseURL = "api.base_url"

	// ConfigKeyAPIToken is the stored bearer token.
	ConfigKeyAPIToken = "api.token"

	// ConfigKeyConfirmCreate controls whether the create flow asks for
	// confirmation before submitting. Edit-flow confirmation is not
	// configurable; aggregate updates always confirm.
	ConfigKeyConfirmCreate = "publish.confirm_create"
)

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
