package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageIncludesOperation(t *testing.T) {
	err := E("interchange.ReadFile", CodeMalformedDocument, stderrors.New("unexpected EOF"))
	assert.Equal(t, "interchange.ReadFile: unexpected EOF", err.Error())
}

func TestCodeOfWrappedError(t *testing.T) {
	err := E("dataprocessing.ParseWorkbook", CodeFileSystem, stderrors.New("permission denied"))
	wrapped := fmt.Errorf("loading batch: %w", err)

	assert.Equal(t, CodeFileSystem, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeFileSystem))
	assert.False(t, Is(wrapped, CodeMalformedDocument))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(stderrors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestEf(t *testing.T) {
	err := Ef("interchange.ReadFile", CodeUnsupportedFormat, "unsupported extension %q", ".pdf")
	assert.Equal(t, CodeUnsupportedFormat, CodeOf(err))
	assert.Contains(t, err.Error(), `unsupported extension ".pdf"`)
}
