package domain

import "go.trai.ch/zerr"

var (
	// ErrNodeInvalid is returned when a tree node was recycled or detached while it was read.
	ErrNodeInvalid = zerr.New("tree node is no longer valid")

	// ErrTreeUnavailable is returned when the tree source has no root to scan.
	ErrTreeUnavailable = zerr.New("tree root unavailable")

	// ErrTranslationFailed is returned when a provider could not translate a text.
	ErrTranslationFailed = zerr.New("translation failed")

	// ErrNoTranslation is returned when a provider has no translation for a text.
	ErrNoTranslation = zerr.New("no translation available")

	// ErrTranslatorUnavailable is returned when no translator is bound to the gateway.
	ErrTranslatorUnavailable = zerr.New("translator unavailable")

	// ErrProviderOpenFailed is returned when a translator cannot be bound to a language pair.
	ErrProviderOpenFailed = zerr.New("failed to open translator")

	// ErrUnknownProvider is returned when the configuration names an unsupported provider.
	ErrUnknownProvider = zerr.New("unknown translation provider")

	// ErrMissingAPIKey is returned when a remote provider is selected without credentials.
	ErrMissingAPIKey = zerr.New("missing API key")

	// ErrModelNotFound is returned when a language model is not installed.
	ErrModelNotFound = zerr.New("language model not found")

	// ErrModelDownloadFailed is returned when a language model cannot be downloaded.
	ErrModelDownloadFailed = zerr.New("failed to download language model")

	// ErrModelDeleteFailed is returned when a language model cannot be deleted.
	ErrModelDeleteFailed = zerr.New("failed to delete language model")

	// ErrModelParseFailed is returned when a language model file cannot be parsed.
	ErrModelParseFailed = zerr.New("failed to parse language model")

	// ErrModelStoreCreateFailed is returned when the model directory cannot be created.
	ErrModelStoreCreateFailed = zerr.New("failed to create model store directory")

	// ErrBuiltinModel is returned when attempting to delete a model that ships with glance.
	ErrBuiltinModel = zerr.New("built-in language model cannot be deleted")

	// ErrInvalidLanguage is returned when a language code is not a valid BCP 47 tag.
	ErrInvalidLanguage = zerr.New("invalid language code")

	// ErrInvalidTextSize is returned when the configured text size is not positive.
	ErrInvalidTextSize = zerr.New("text size must be positive")

	// ErrInvalidOpacity is returned when the configured opacity is outside [0, 1].
	ErrInvalidOpacity = zerr.New("opacity must be between 0 and 1")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPipelineSetting is returned when a pipeline tuning value is out of range.
	ErrInvalidPipelineSetting = zerr.New("invalid pipeline setting")

	// ErrUnsupportedVersion is returned when the config file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported config version")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find glance.yaml")

	// ErrSnapshotReadFailed is returned when a tree snapshot cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read tree snapshot")

	// ErrSnapshotParseFailed is returned when a tree snapshot cannot be parsed.
	ErrSnapshotParseFailed = zerr.New("failed to parse tree snapshot")

	// ErrDuplicateNodeID is returned when two snapshot nodes share an id.
	ErrDuplicateNodeID = zerr.New("duplicate node id")

	// ErrWatchFailed is returned when a file cannot be watched for changes.
	ErrWatchFailed = zerr.New("failed to watch file")

	// ErrSurfaceCreateFailed is returned when the rendering surface cannot be created.
	ErrSurfaceCreateFailed = zerr.New("failed to create rendering surface")

	// ErrPipelineFailed is returned when the pipeline stops with an error.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrNoSnapshot is returned when neither the command line nor the config file names a
	// tree snapshot.
	ErrNoSnapshot = zerr.New("no tree snapshot configured")

	// ErrUnknownOutputMode is returned when the output flag names an unsupported surface.
	ErrUnknownOutputMode = zerr.New("unknown output mode")

	// ErrSurfaceDestroyed is returned when a destroyed surface is created again.
	ErrSurfaceDestroyed = zerr.New("rendering surface already destroyed")
)
