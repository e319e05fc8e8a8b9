package constants

// Directory names and paths used by textsign.
const (
	// TextsignHome is the hidden directory name where textsign stores its data.
	// This directory is created in the user's home directory.
	TextsignHome = ".textsign"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log file names and rotation defaults.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.textsign/logs/textsign.log
	CLILogFileName = "textsign.log"

	// LogMaxSizeMB is the maximum size in megabytes before the log is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global configuration file.
	// This file is located in the textsign home directory.
	GlobalConfigName = "config.yaml"

	// EnvPrefix is the prefix for environment variable overrides (TEXTSIGN_*).
	EnvPrefix = "TEXTSIGN"
)
