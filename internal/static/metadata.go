package static

import (
	"os"
	"time"
)

// FileMetadata is a read-only snapshot of the file attributes the cache
// validator is derived from, taken once per request.
type FileMetadata struct {
	Size    int64
	ModTime time.Time
	// ID is an inode-like identifier. It only has to be unique enough to
	// keep validators for distinct files apart; 0 on platforms where no
	// such identifier is available.
	ID    uint64
	IsDir bool
}

// Stat reads file metadata for path.
func Stat(path string) (FileMetadata, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileMetadata{}, err
	}
	return FileMetadata{
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		ID:      fileID(fi),
		IsDir:   fi.IsDir(),
	}, nil
}
