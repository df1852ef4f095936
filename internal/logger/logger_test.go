package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFieldNames(t *testing.T) {
	log, err := New("debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.WithField("announcement_id", 3).Info("created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "created", line["message"])
	assert.Equal(t, "info", line["severity"])
	assert.Contains(t, line, "timestamp")
	assert.EqualValues(t, 3, line["announcement_id"])
}

func TestNew_Text(t *testing.T) {
	log, err := New("warn", "text")
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("loud", "json")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}
