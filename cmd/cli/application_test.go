package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/authmigrate/cmd/cli"
	"github.com/temirov/authmigrate/internal/migrate"
)

const (
	testConfigurationFileNameConstant    = "config.yaml"
	testConfigurationTemplateConstant    = "common:\n  log_level: %s\nmigration:\n  files:\n%s"
	testConfigurationFileEntryConstant   = "    - %s\n"
	testSourceContentConstant            = "import { useAuth } from '@/context/AuthContext';\nconst { user } = useAuth();"
	testMigratedContentConstant          = "import { useAuth } from '@/hooks/useRobustAuth';\nconst { user } = useRobustAuth();"
	testFilesEnvironmentVariableConstant = "AUTHMIGRATE_MIGRATION_FILES"
	testColorDisabledArgumentConstant    = "--color=no"
)

type embeddedConfigurationFixture struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
	Migration migrate.CommandConfiguration `yaml:"migration"`
}

func writeConfigurationFile(t *testing.T, directory string, logLevel string, files []string) string {
	t.Helper()
	var entries strings.Builder
	for _, file := range files {
		entries.WriteString(fmt.Sprintf(testConfigurationFileEntryConstant, file))
	}
	configurationPath := filepath.Join(directory, testConfigurationFileNameConstant)
	content := fmt.Sprintf(testConfigurationTemplateConstant, logLevel, entries.String())
	require.NoError(t, os.WriteFile(configurationPath, []byte(content), 0o600))
	return configurationPath
}

func writeSourceFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(testSourceContentConstant), 0o644))
	return path
}

func TestApplicationRunsConfiguredMigration(t *testing.T) {
	testCases := []struct {
		name           string
		arguments      func(configurationPath string) []string
		logLevel       string
		expectError    bool
		expectMigrated bool
	}{
		{
			name: "ConfigurationFileDrivesFileList",
			arguments: func(configurationPath string) []string {
				return []string{"--config", configurationPath, testColorDisabledArgumentConstant}
			},
			logLevel:       "warn",
			expectMigrated: true,
		},
		{
			name: "ColorToggleAcceptsSeparateValue",
			arguments: func(configurationPath string) []string {
				return []string{"--color", "no", "--config", configurationPath}
			},
			logLevel:       "error",
			expectMigrated: true,
		},
		{
			name: "InvalidConfiguredLogLevelFails",
			arguments: func(configurationPath string) []string {
				return []string{"--config", configurationPath, testColorDisabledArgumentConstant}
			},
			logLevel:    "verbose",
			expectError: true,
		},
		{
			name: "LogLevelFlagOverridesConfiguration",
			arguments: func(configurationPath string) []string {
				return []string{"--config", configurationPath, "--log-level", "error", testColorDisabledArgumentConstant}
			},
			logLevel:       "verbose",
			expectMigrated: true,
		},
		{
			name: "UnsupportedLogFormatFails",
			arguments: func(configurationPath string) []string {
				return []string{"--config", configurationPath, "--log-format", "xml", testColorDisabledArgumentConstant}
			},
			logLevel:    "warn",
			expectError: true,
		},
		{
			name: "PositionalArgumentsRejected",
			arguments: func(configurationPath string) []string {
				return []string{"--config", configurationPath, testColorDisabledArgumentConstant, "src/extra.ts"}
			},
			logLevel:    "warn",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			temporaryDirectory := t.TempDir()
			sourcePath := writeSourceFile(t, filepath.Join(temporaryDirectory, "src", "hooks", "useStepAI.ts"))
			missingPath := filepath.Join(temporaryDirectory, "src", "hooks", "useDataAudit.ts")
			configurationPath := writeConfigurationFile(t, temporaryDirectory, testCase.logLevel, []string{sourcePath, missingPath})

			application := cli.NewApplication()
			outputBuffer := &bytes.Buffer{}
			application.SetOutput(outputBuffer)
			application.SetArguments(testCase.arguments(configurationPath))

			executionError := application.Execute()
			if testCase.expectError {
				require.Error(t, executionError)
				content, readError := os.ReadFile(sourcePath)
				require.NoError(t, readError)
				require.Equal(t, testSourceContentConstant, string(content))
				return
			}
			require.NoError(t, executionError)

			content, readError := os.ReadFile(sourcePath)
			require.NoError(t, readError)
			if testCase.expectMigrated {
				require.Equal(t, testMigratedContentConstant, string(content))
			}

			require.Equal(t,
				"Starting bulk migration from useAuth to useRobustAuth...\n"+
					"✓ Migrated: "+sourcePath+"\n"+
					"! Not found: "+missingPath+"\n"+
					"\nMigration complete: 1/2 files migrated\n",
				outputBuffer.String(),
			)
		})
	}
}

func TestApplicationEnvironmentOverridesFileList(t *testing.T) {
	temporaryDirectory := t.TempDir()
	firstPath := writeSourceFile(t, filepath.Join(temporaryDirectory, "first.tsx"))
	secondPath := writeSourceFile(t, filepath.Join(temporaryDirectory, "second.tsx"))
	configurationPath := writeConfigurationFile(t, temporaryDirectory, "warn", []string{filepath.Join(temporaryDirectory, "unused.tsx")})

	t.Setenv(testFilesEnvironmentVariableConstant, firstPath+","+secondPath)

	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	application.SetOutput(outputBuffer)
	application.SetArguments([]string{"--config", configurationPath, testColorDisabledArgumentConstant})

	require.NoError(t, application.Execute())
	require.Contains(t, outputBuffer.String(), "Migration complete: 2/2 files migrated")

	for _, path := range []string{firstPath, secondPath} {
		content, readError := os.ReadFile(path)
		require.NoError(t, readError)
		require.Equal(t, testMigratedContentConstant, string(content))
	}
}

func TestApplicationReportsUnreadableConfiguration(t *testing.T) {
	configurationPath := filepath.Join(t.TempDir(), testConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte("migration: [\n"), 0o600))

	application := cli.NewApplication()
	application.SetOutput(&bytes.Buffer{})
	application.SetArguments([]string{"--config", configurationPath})

	require.Error(t, application.Execute())
}

func TestEmbeddedDefaultConfigurationMatchesDefaults(t *testing.T) {
	content, configurationType := cli.EmbeddedDefaultConfiguration()
	require.Equal(t, "yaml", configurationType)

	var fixture embeddedConfigurationFixture
	require.NoError(t, yaml.Unmarshal(content, &fixture))

	require.Equal(t, "warn", fixture.Common.LogLevel)
	require.Equal(t, "structured", fixture.Common.LogFormat)
	require.Equal(t, migrate.DefaultCommandConfiguration(), fixture.Migration)
	require.Len(t, fixture.Migration.Files, 38)
}
