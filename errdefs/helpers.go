package errdefs

import "errors"

var ErrEmptyFolderName = errors.New("folder name is empty")
var ErrNotSingleSegment = errors.New("folder name must be a single path segment")

/*------------*/

type ErrDirectoryCreationFailure struct {
	err    error
	Folder string
}

func (e ErrDirectoryCreationFailure) Error() string {
	return "failed to create " + e.Folder + ": " + e.err.Error()
}

func (e ErrDirectoryCreationFailure) Cause() error {
	return e.err
}

func (e ErrDirectoryCreationFailure) Unwrap() error {
	return e.err
}

func DirectoryCreationFailure(err error, folder string) error {
	if err == nil || IsDirectoryCreationFailure(err) {
		return err
	}

	return ErrDirectoryCreationFailure{err, folder}
}

/*------------*/

type ErrInvalidFolderName struct {
	err    error
	Folder string
}

func (e ErrInvalidFolderName) Error() string {
	return "invalid folder name " + `"` + e.Folder + `": ` + e.err.Error()
}

func (e ErrInvalidFolderName) Cause() error {
	return e.err
}

func (e ErrInvalidFolderName) Unwrap() error {
	return e.err
}

func InvalidFolderName(err error, folder string) error {
	if err == nil || IsInvalidFolderName(err) {
		return err
	}

	return ErrInvalidFolderName{err, folder}
}
