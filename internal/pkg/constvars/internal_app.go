package constvars

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResponseUnknown = "unknown"
)

// Process exit codes of the rips command.
const (
	ExitCodeOK             = 0
	ExitCodeFailure        = 1
	ExitCodeInvalidDataset = 2
)
