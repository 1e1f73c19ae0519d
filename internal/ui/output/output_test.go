package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/glance/internal/ui/output"
	"go.trai.ch/glance/internal/ui/style"
)

func TestInteractive(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.Interactive(), "NO_COLOR should force Ascii profile")

	// The detected profile depends on the environment running the test.
	t.Setenv("NO_COLOR", "")
	p := output.Interactive()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestStream(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, termenv.ANSI, output.Stream())

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.Stream())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf, output.Stream)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	out := output.New(nil, output.Interactive)
	assert.NotNil(t, out)
}

func TestPaint(t *testing.T) {
	t.Run("ansi colors the text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		out := output.New(new(bytes.Buffer), output.Stream)

		painted := output.Paint(out, "Hello", style.Translated)
		assert.Contains(t, painted, "Hello")
		assert.NotEqual(t, "Hello", painted)
		assert.Contains(t, painted, "\x1b[")
	})

	t.Run("ascii leaves the text alone", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		out := output.New(new(bytes.Buffer), output.Stream)

		assert.Equal(t, "Hello", output.Paint(out, "Hello", style.Translated))
		assert.Equal(t, "Hello", output.Dim(out, "Hello"))
	})
}

func TestDim(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	out := output.New(new(bytes.Buffer), output.Stream)

	dimmed := output.Dim(out, "Hello")
	assert.Contains(t, dimmed, "Hello")
	assert.Contains(t, dimmed, "\x1b[2m")
}
