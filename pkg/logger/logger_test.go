package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l := New()
	require.NotNil(t, l)
	assert.NotNil(t, l.info)
	assert.NotNil(t, l.warn)
	assert.NotNil(t, l.error)
}

func TestLevelsCarryPrefix(t *testing.T) {
	l := New()

	var info, warn, errBuf bytes.Buffer
	l.info.SetOutput(&info)
	l.warn.SetOutput(&warn)
	l.error.SetOutput(&errBuf)

	l.Info("serving on port %s", "8080")
	l.Warn("cache miss for %s", "feed")
	l.Error("query failed: %v", "timeout")

	assert.Contains(t, info.String(), "[INFO] ")
	assert.Contains(t, info.String(), "serving on port 8080")
	assert.Contains(t, warn.String(), "[WARN] ")
	assert.Contains(t, warn.String(), "cache miss for feed")
	assert.Contains(t, errBuf.String(), "[ERROR] ")
	assert.Contains(t, errBuf.String(), "query failed: timeout")
}
