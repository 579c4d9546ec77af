package lifecycle

// Names of the built-in signals. They exist on every Signals instance and are
// emitted by the framework side of the process regardless of listeners, so
// producers should consult HasListeners before building expensive payloads.
const (
	ProcessingStartedSignal  = "lifecycle.processing_started"
	ProcessingFinishedSignal = "lifecycle.processing_finished"
	PreSaveSignal            = "lifecycle.pre_save"
	PostSaveSignal           = "lifecycle.post_save"
)

// Payload keys used by the built-in signals.
const (
	CreatedKey   = "created"
	ErrKey       = "err"
	TimeStartKey = "time_start"
	ElapsedKey   = "elapsed"
)
