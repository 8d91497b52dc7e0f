package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "debug", want: DEBUG},
		{input: "INFO", want: INFO},
		{input: "Warn", want: WARN},
		{input: "error", want: ERROR},
		{input: "fatal", want: FATAL},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		level, err := parseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, level)
	}
}

func TestPackageLevelOverrides(t *testing.T) {
	require.NoError(t, SetPackageLogLevels(map[string]string{
		"intel.router": "debug",
		"intel.*":      "warn",
	}))
	t.Cleanup(func() { _ = SetPackageLogLevels(map[string]string{}) })

	// Exact match wins over wildcard.
	assert.Equal(t, DEBUG, packageLevelFor("intel.router"))
	// Wildcard applies to other packages under the prefix.
	assert.Equal(t, WARN, packageLevelFor("intel.orchestrator"))
	// Unconfigured packages get no override.
	assert.Equal(t, LogLevel(-1), packageLevelFor("api"))
}

func TestSetPackageLogLevelsRejectsInvalid(t *testing.T) {
	err := SetPackageLogLevels(map[string]string{"api": "loud"})
	assert.Error(t, err)
}

func TestWithFieldImmutability(t *testing.T) {
	base := GetLogger("test")
	child := base.WithField("request_id", "abc")

	assert.Empty(t, base.fields)
	assert.Equal(t, "abc", child.fields["request_id"])

	grandchild := child.WithField("intent", "founder_lookup")
	assert.Len(t, child.fields, 1)
	assert.Len(t, grandchild.fields, 2)
}

func TestShouldLogRespectsLevel(t *testing.T) {
	logger := &Logger{level: WARN, name: "quiet"}
	assert.False(t, logger.shouldLog(DEBUG))
	assert.False(t, logger.shouldLog(INFO))
	assert.True(t, logger.shouldLog(WARN))
	assert.True(t, logger.shouldLog(ERROR))
}
