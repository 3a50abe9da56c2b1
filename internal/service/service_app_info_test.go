package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
)

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "release version", version: "1.4.0"},
		{name: "default version", version: config.DefaultVersion},
		{name: "prerelease with build metadata", version: "v2.0.0-rc.1+build.42"},
		{name: "missing version", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestAppInfoService_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.4.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.4.0", svc.GetAppVersion(ctx))
}

func TestAppInfoService_LogsTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	svc, err := NewAppInfoService(config.App{Version: "1.4.0"}, log)
	require.NoError(t, err)

	ctx := utils.WithTraceID(context.Background(), "trace-7")
	assert.Equal(t, "1.4.0", svc.GetAppVersion(ctx))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "trace-7", entry["trace_id"])
	assert.Equal(t, "1.4.0", entry["version"])
	assert.Equal(t, "version requested", entry["message"])
}

func TestAppInfoService_NoTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	svc, err := NewAppInfoService(config.App{Version: "1.4.0"}, log)
	require.NoError(t, err)

	svc.GetAppVersion(context.Background())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "trace_id")
}
