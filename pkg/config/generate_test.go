// pkg/config/generate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test generated config content

package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# ezlink configuration"))
	for _, section := range []string{"[link]", "[merge]", "[logging]", "[opener]", "[output]"} {
		assert.Contains(t, content, "\n"+section+"\n")
	}
	assert.Contains(t, content, "# default_type = ")
	assert.Contains(t, content, "# assume_yes = false")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line not commented: %q", line)
	}
}

func TestGenerateConfigContent_UncommentedParses(t *testing.T) {
	content, err := GenerateConfigContent()
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		lines = append(lines, line)
	}

	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(strings.Join(lines, "\n"))}, toml.Parser()))
	assert.Equal(t, "auto", k.String("link.default_type"))
	assert.Equal(t, int64(5), k.Int64("logging.max_size_mb"))
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# comment\n[link]\ndefault_type = 'auto'\n\n"
	want := "# comment\n[link]\n# default_type = 'auto'\n\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}
