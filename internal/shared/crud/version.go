package crud

import (
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict means the row exists but no longer carries the version
// the caller based its change on.
var ErrVersionConflict = errors.New("crud: version conflict")

// CheckVersion compares the version sent by a client with the stored one.
// A requested version of 0 means the client sent none.
func CheckVersion(requested, stored int64) error {
	if requested > 0 && requested != stored {
		return ErrVersionConflict
	}
	return nil
}

// ResolveNoRows explains a guarded write that touched nothing: the row was
// deleted in between, or someone else bumped its version.
func ResolveNoRows(stillExists bool, err error) error {
	if err != nil {
		return err
	}
	if !stillExists {
		return gorm.ErrRecordNotFound
	}
	return ErrVersionConflict
}
