package planar_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/girih/planar"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := planar.Logger()
	assert.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	planar.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { planar.SetLogger(nil) })

	m := cross()
	_ = m.Verify()
	assert.Contains(t, buf.String(), "planar: map verification failed")

	buf.Reset()
	m.Cleanse(planar.SplitCrossings, 0)
	assert.Contains(t, buf.String(), "planar: cleanse converged")

	planar.SetLogger(nil)
	buf.Reset()
	_ = cross().Verify()
	assert.Empty(t, buf.String())
}
