package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/uniliner/SecurityParser/internal/config"
	"github.com/uniliner/SecurityParser/internal/i18n"
)

func TestCreateCommand(t *testing.T) {
	trans, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	command := NewCommand().CreateCommand(trans, &cfg.Config{})

	assert.Equal(t, "config", command.Name)

	names := make([]string, 0, len(command.Commands))
	for _, sub := range command.Commands {
		names = append(names, sub.Name)
	}
	assert.Equal(t, []string{"init", "show", "set-api-key", "set-token", "set-lang"}, names)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "(not set)", maskSecret(""))
	assert.Equal(t, "********", maskSecret("short"))
	assert.Equal(t, "ghp_...wxyz", maskSecret("ghp_1234567890wxyz"))
}
