package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/pkg/errors"
)

func TestZerologLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug).With(ComponentKey, "model_selection")

	logger.Info("Fitting folds", CandidatesKey, 4, FoldsKey, 5)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Fitting folds", entry["message"])
	assert.Equal(t, "model_selection", entry[ComponentKey])
	assert.Equal(t, 4.0, entry[CandidatesKey])
	assert.Equal(t, 5.0, entry[FoldsKey])
}

func TestZerologLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, LevelInfo))
	assert.True(t, logger.Enabled(ctx, LevelError))
}

func TestZerologLoggerErrorStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	err := errors.NewValueError("RMSE", "empty vector")
	logger.Error("scoring failed", err, OperationKey, OperationScore)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "regexplore: RMSE: empty vector", entry[ErrorKey])
	assert.Equal(t, OperationScore, entry[OperationKey])
	assert.Contains(t, entry[StacktraceKey], "log_test.go")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLogger("debug", &buf))
	GetLogger().Debug("configured")
	assert.Contains(t, buf.String(), "configured")

	assert.Error(t, SetupLogger("loud", &buf))

	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(ModelNameKey, "Ridge", ComponentKey, "explore")
	contextLogger.Info("contextual message", OperationKey, OperationFit)

	assert.True(t, testLogger.ContainsField(ModelNameKey, "Ridge"))
	assert.True(t, testLogger.ContainsField(ComponentKey, "explore"))
	assert.True(t, testLogger.ContainsField(OperationKey, OperationFit))
	assert.Equal(t, 1, testLogger.CountMessage("contextual message"))
}

func TestTestLoggerLevel(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	assert.False(t, testLogger.ContainsMessage("this should not appear"))
	assert.True(t, testLogger.ContainsMessage("this should appear"))

	testLogger.Clear()
	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTestLoggerConcurrent(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				testLogger.Info(fmt.Sprintf("worker %d fit %d", id, j), CandidateKey, id)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 20)
	assert.Equal(t, 20, strings.Count(buffer.String(), "\n"))
}
