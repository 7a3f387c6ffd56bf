package errdefs

import "errors"

func IsDirectoryCreationFailure(err error) bool {
	var target ErrDirectoryCreationFailure
	return errors.As(err, &target)
}

func IsInvalidFolderName(err error) bool {
	var target ErrInvalidFolderName
	return errors.As(err, &target)
}
