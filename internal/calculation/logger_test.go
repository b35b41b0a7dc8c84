package calculation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, LevelInfo)

	log.Debugf("hidden %d", 1)
	log.Infof("year %d", 2)
	log.Warnf("exhausted")
	log.Errorf("bad %s", "input")

	assert.Equal(t, "INFO  year 2\nWARN  exhausted\nERROR bad input\n", buf.String())
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	pe := NewPlanEngine()
	pe.SetLogger(nil)
	assert.IsType(t, NopLogger{}, pe.Logger)

	var buf bytes.Buffer
	pe.SetLogger(NewWriterLogger(&buf, LevelDebug))
	pe.Logger.Debugf("x")
	assert.Equal(t, "DEBUG x\n", buf.String())
}
