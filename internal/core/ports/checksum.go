package ports

// Checksummer computes content digests of files on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=checksum.go -destination=mocks/mock_checksum.go -package=mocks
type Checksummer interface {
	// Checksum streams the file at path and returns its lowercase hex SHA-256 digest.
	Checksum(path string) (string, error)
}
