package bossfx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewWriterLogger("fx", LevelInfo, &out, &errOut)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), `"level":"info"`)
	assert.Contains(t, out.String(), `"module":"fx"`)
	assert.Contains(t, out.String(), `"message":"shown 2"`)
	assert.Contains(t, errOut.String(), `"level":"warn"`)
	assert.Contains(t, errOut.String(), `"message":"careful"`)
	assert.Contains(t, errOut.String(), `"level":"error"`)
	assert.Contains(t, errOut.String(), `"message":"broken"`)
	assert.NotContains(t, out.String(), "careful")
	assert.False(t, l.Enabled(LevelDebug))

	l.SetLevel(LevelDebug)
	assert.True(t, l.Enabled(LevelDebug))
	l.Debugf("now visible")
	assert.Contains(t, out.String(), `"level":"debug"`)
	assert.Contains(t, out.String(), `"message":"now visible"`)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug":  LevelDebug,
		"INFO":   LevelInfo,
		" Warn ": LevelWarn,
		"error":  LevelError,
		"":       LevelInfo,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggingModule_BadLevelFallsBackToInfo(t *testing.T) {
	var out bytes.Buffer
	app := NewAppBuilder().UseModule(LoggingModule{Level: "loud", Out: &out}).Build()

	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.Contains(t, out.String(), "using info")
	assert.True(t, app.Logger().Enabled(LevelInfo))
	assert.False(t, app.Logger().Enabled(LevelDebug))
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())
	assert.False(t, NewApp().Logger().Enabled(LevelError))

	var out bytes.Buffer
	app := NewAppBuilder().UseModule(LoggingModule{Out: &out}).Build()
	app.Logger().Infof("hello")
	assert.Contains(t, out.String(), `"message":"hello"`)
}

type bufferLogger struct {
	nopLogger
	lines []string
}

func (b *bufferLogger) Infof(format string, args ...any) { b.lines = append(b.lines, format) }

func TestApp_LoggerIsFirstInstalled(t *testing.T) {
	for i := 0; i < 20; i++ {
		var out bytes.Buffer
		other := &bufferLogger{}
		app := NewAppBuilder().UseModule(LoggingModule{Out: &out}).Build()
		app.Commands().AddResources(other)

		app.Logger().Infof("routed")
		assert.Contains(t, out.String(), `"message":"routed"`)
		assert.Empty(t, other.lines, "a later Logger resource never takes over")
	}
}
