package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatChoiceUsage(t *testing.T) {
	testCases := []struct {
		name           string
		defaultChoice  string
		choices        []string
		description    string
		expectedOutput string
	}{
		{
			name:           "DefaultFirstChoice",
			defaultChoice:  "structured",
			choices:        []string{"structured", "console"},
			description:    "Log format.",
			expectedOutput: "`<STRUCTURED|console>` Log format.",
		},
		{
			name:           "DefaultLaterChoice",
			defaultChoice:  "warn",
			choices:        []string{"debug", "info", "warn", "error"},
			description:    "Log level.",
			expectedOutput: "`<debug|info|WARN|error>` Log level.",
		},
		{
			name:           "EmptyDescription",
			defaultChoice:  "alpha",
			choices:        []string{"alpha", "beta"},
			expectedOutput: "`<ALPHA|beta>`",
		},
		{
			name:           "DuplicatesAndWhitespaceIgnored",
			defaultChoice:  "beta",
			choices:        []string{" beta ", "beta", "alpha", "", "ALPHA"},
			description:    "Select between options.",
			expectedOutput: "`<BETA|alpha>` Select between options.",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expectedOutput, FormatChoiceUsage(testCase.defaultChoice, testCase.choices, testCase.description))
		})
	}
}
