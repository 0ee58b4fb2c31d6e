package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestLoggerRoundTripsThroughContext(t *testing.T) {
	logger := newLogger(new(bytes.Buffer), charmlog.DebugLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("context did not return the attached logger")
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("bare context should yield the default logger")
	}
}

func TestProgressDoneLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, charmlog.InfoLevel)

	newProgress(logger).done("Serialized workspace")

	out := buf.String()
	if !strings.Contains(out, "Serialized workspace") {
		t.Errorf("log output = %q", out)
	}
}
