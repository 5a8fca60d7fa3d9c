package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	l := logrus.New()
	var buf bytes.Buffer
	require.NoError(t, configureLogging(l, "debug", "json", &buf))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.WithField("target", "c1").Debug("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "c1", entry["target"])

	require.Error(t, configureLogging(l, "info", "xml", &buf))
	require.Error(t, configureLogging(l, "chatty", "text", &buf))
}
