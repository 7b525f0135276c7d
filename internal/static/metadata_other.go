//go:build !unix

package static

import "os"

// No stable file identifier here; size and mtime still differentiate
// validators.
func fileID(_ os.FileInfo) uint64 {
	return 0
}
