package errdefs

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryCreationFailure(t *testing.T) {
	assert.Nil(t, DirectoryCreationFailure(nil, "logs"))

	err := DirectoryCreationFailure(os.ErrPermission, "logs")
	assert.True(t, IsDirectoryCreationFailure(err))
	assert.False(t, IsInvalidFolderName(err))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "failed to create logs: permission denied", err.Error())

	// classifying twice keeps the original folder
	again := DirectoryCreationFailure(err, "other")
	assert.Equal(t, err, again)

	wrapped := fmt.Errorf("run: %w", err)
	assert.True(t, IsDirectoryCreationFailure(wrapped))
}

func TestInvalidFolderName(t *testing.T) {
	assert.Nil(t, InvalidFolderName(nil, ""))

	err := InvalidFolderName(ErrEmptyFolderName, "")
	assert.True(t, IsInvalidFolderName(err))
	assert.False(t, IsDirectoryCreationFailure(err))
	assert.ErrorIs(t, err, ErrEmptyFolderName)

	var target ErrInvalidFolderName
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "", target.Folder)
}
