package coldkey

import (
	"errors"
	"fmt"
	"os"
)

// ReadKeyfile reads a cold-key file from disk.
func ReadKeyfile(filePath string) ([]byte, error) {
	// Check if file exists
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("file does not exist")
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, errors.New("path is a directory")
	}

	// Check that file is not empty
	if fileInfo.Size() == 0 {
		return nil, errors.New("file is empty")
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return fileData, nil
}

// UnlockFile reads filePath and unlocks it with password.
// password must be []byte for security (caller should zero it after use)
func (u *Unlocker) UnlockFile(filePath string, password []byte) (*Result, error) {
	blob, err := ReadKeyfile(filePath)
	if err != nil {
		return nil, err
	}
	defer clear(blob)

	return u.Unlock(blob, password)
}
