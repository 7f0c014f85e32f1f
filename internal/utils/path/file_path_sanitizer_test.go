package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/authmigrate/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/migrator"

func TestFilePathSanitizerSanitize(testInstance *testing.T) {
	testCases := []struct {
		name          string
		inputPaths    []string
		expectedPaths []string
	}{
		{
			name:          "keeps_blank_and_padded_entries",
			inputPaths:    []string{"", " a.ts", "b.ts", "   "},
			expectedPaths: []string{"", " a.ts", "b.ts", "   "},
		},
		{
			name:          "preserves_order_and_duplicates",
			inputPaths:    []string{"b.ts", "a.ts", "b.ts"},
			expectedPaths: []string{"b.ts", "a.ts", "b.ts"},
		},
		{
			name:          "expands_home_shortcut",
			inputPaths:    []string{"~/project/src/App.tsx", "~"},
			expectedPaths: []string{filepath.Join(testHomeDirectoryConstant, "project/src/App.tsx"), testHomeDirectoryConstant},
		},
		{
			name:          "leaves_named_user_shortcut",
			inputPaths:    []string{"~other/src/App.tsx"},
			expectedPaths: []string{"~other/src/App.tsx"},
		},
		{
			name:          "empty_input",
			inputPaths:    nil,
			expectedPaths: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
				return testHomeDirectoryConstant, nil
			})
			sanitizer := pathutils.NewFilePathSanitizerWithExpander(expander)
			require.Equal(testInstance, testCase.expectedPaths, sanitizer.Sanitize(testCase.inputPaths))
		})
	}
}

func TestHomeExpanderLeavesPathWhenLookupFails(testInstance *testing.T) {
	expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", errors.New("no home")
	})
	require.Equal(testInstance, "~/src/App.tsx", expander.Expand("~/src/App.tsx"))
}
