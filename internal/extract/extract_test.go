package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFilePlainText(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"resume.txt", "resume.MD"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nGo developer"), 0o600))

		text, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe\nGo developer", text)
	}
}

func TestFromFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o600))

	_, err := FromFile(path)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".docx")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromBytesBrokenPDF(t *testing.T) {
	_, err := FromBytes("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening pdf")
}
