package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	require.NoError(t, setup(&buf, "warn", "json"))

	log.Info().Msg("hidden")
	log.Warn().Str("inn", "1234567890").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"inn":"1234567890"`)
	require.Contains(t, out, `"message":"shown"`)
}

func TestSetup_BadLevel(t *testing.T) {
	require.Error(t, setup(&bytes.Buffer{}, "loud", "json"))
}
