package domain

import "go.trai.ch/zerr"

var (
	// ErrProvisioningFailed is returned when the introspection tool cannot be downloaded or verified.
	ErrProvisioningFailed = zerr.New("failed to provision introspection tool")

	// ErrIntrospectionFailed is returned when the introspection tool exits with an error.
	ErrIntrospectionFailed = zerr.New("introspection query failed")

	// ErrIndexCorrupt is returned when the persisted index cannot be decoded.
	ErrIndexCorrupt = zerr.New("persisted index is corrupt")

	// ErrIndexNotFound is returned when no persisted index exists yet.
	ErrIndexNotFound = zerr.New("persisted index not found")

	// ErrIndexReadFailed is returned when the persisted index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read persisted index")

	// ErrIndexWriteFailed is returned when the persisted index cannot be written.
	ErrIndexWriteFailed = zerr.New("failed to write persisted index")

	// ErrIndexMarshalFailed is returned when the index cannot be serialized.
	ErrIndexMarshalFailed = zerr.New("failed to marshal index")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrHomeDirUnavailable is returned when the user's home directory cannot be determined.
	ErrHomeDirUnavailable = zerr.New("failed to determine home directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrToolDownloadFailed is returned when the tool download request fails.
	ErrToolDownloadFailed = zerr.New("failed to download introspection tool")

	// ErrToolChecksumMismatch is returned when downloaded bytes do not match the expected digest.
	ErrToolChecksumMismatch = zerr.New("introspection tool checksum mismatch")

	// ErrToolWriteFailed is returned when the tool binary cannot be written to disk.
	ErrToolWriteFailed = zerr.New("failed to write introspection tool")

	// ErrToolChmodFailed is returned when the tool binary cannot be marked executable.
	ErrToolChmodFailed = zerr.New("failed to mark introspection tool executable")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidInputPath is returned when the queried path cannot be made absolute.
	ErrInvalidInputPath = zerr.New("invalid input path")

	// ErrCleanFailed is returned when removing cached files fails.
	ErrCleanFailed = zerr.New("failed to clean cache")
)
