package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/ui/output"
)

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile())
}

func TestNew_WritesPlainTextWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := output.New(buf)
	styled := out.String("hello").Foreground(termenv.RGBColor("#FF0000"))
	_, err := out.WriteString(styled.String())

	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
