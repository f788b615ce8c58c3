package logging

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, GetLevel(""))
	assert.Equal(t, logrus.WarnLevel, GetLevel("loud"))
}

func TestSetup_WritesToRotatedFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.WarnLevel)
	})

	file := filepath.Join(t.TempDir(), "liftquest")
	Setup(Params{File: file, Level: "info", JSON: true})

	logrus.WithField("session", "abc").Info("session started")

	data, err := os.ReadFile(file + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session":"abc"`)
	assert.Contains(t, string(data), `"msg":"session started"`)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetup_ToStderrCopiesFileEntries(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stderr := os.Stderr
	os.Stderr = w
	t.Cleanup(func() {
		os.Stderr = stderr
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.WarnLevel)
	})

	file := filepath.Join(t.TempDir(), "liftquest.log")
	Setup(Params{File: file, ToStderr: true, Level: "warn", JSON: true})

	logrus.Warn("could not save session snapshot")
	require.NoError(t, w.Close())

	copied, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(copied), "could not save session snapshot")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "could not save session snapshot")
}
