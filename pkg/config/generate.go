package config

import (
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# ezlink configuration
# Uncomment and change the values you want to override.
# Location: $XDG_CONFIG_HOME/ezlink/config.toml (or set EZLINK_CONFIG)

`

// GenerateConfigContent renders the defaults as a TOML file with every value
// commented out
func GenerateConfigContent() (string, error) {
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return "", err
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [link], [merge]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
