//go:build unit
// +build unit

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildConfigByEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantEncoding     string
	}{
		{name: "development", env: "development", wantLevel: zap.DebugLevel, wantDisableStack: true, wantEncoding: "console"},
		{name: "debug", env: " DEBUG ", wantLevel: zap.DebugLevel, wantCaller: true, wantEncoding: "console"},
		{name: "production", env: "production", wantLevel: zap.InfoLevel, wantDisableStack: true, wantEncoding: "json"},
		{name: "fallback", env: "unknown", wantLevel: zap.InfoLevel, wantDisableStack: true, wantEncoding: "console"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, withCaller := buildConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantEncoding, cfg.Encoding)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, "msg", cfg.EncoderConfig.MessageKey)
			require.Equal(t, "logger", cfg.EncoderConfig.NameKey)
			require.Equal(t, []string{"stdout"}, cfg.OutputPaths)
			if tc.wantCaller {
				require.Equal(t, "caller", cfg.EncoderConfig.CallerKey)
			} else {
				require.Equal(t, zapcore.OmitKey, cfg.EncoderConfig.CallerKey)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New("zimphone", "production")
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Infow("startup", "component", "logger")
	l.SafeSync()
}

func TestNopAndNilSafeSync(t *testing.T) {
	t.Parallel()

	l := Nop()
	l.Debugw("dropped", "k", "v")
	l.With("k", "v").Warnw("dropped")
	l.SafeSync()

	var nilLogger *Logger
	nilLogger.SafeSync()
}

func TestFromZapAndWith(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core))

	l.With("component", "test").Debugw("classified", "type", "mobile")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "classified", entries[0].Message)
	require.Equal(t, "test", entries[0].ContextMap()["component"])
	require.Equal(t, "mobile", entries[0].ContextMap()["type"])

	require.NotNil(t, FromZap(nil))
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stdout: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
