package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestAddToggleFlagParsesValues(t *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		defaultValue    bool
		expectedValue   bool
		expectedChanged bool
	}{
		{name: "DefaultFalse", arguments: []string{}, expectedValue: false, expectedChanged: false},
		{name: "DefaultTrue", arguments: []string{}, defaultValue: true, expectedValue: true, expectedChanged: false},
		{name: "ImplicitTrue", arguments: []string{"--toggle"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitYes", arguments: []string{"--toggle", "yes"}, expectedValue: true, expectedChanged: true},
		{name: "ExplicitNoUppercase", arguments: []string{"--toggle", "NO"}, defaultValue: true, expectedValue: false, expectedChanged: true},
		{name: "ExplicitAssignment", arguments: []string{"--toggle=off"}, defaultValue: true, expectedValue: false, expectedChanged: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			command := &cobra.Command{}

			var toggleValue bool
			AddToggleFlag(command.Flags(), &toggleValue, "toggle", testCase.defaultValue, "Toggle flag")

			normalizedArguments := NormalizeToggleArguments(command.Flags(), testCase.arguments)
			require.NoError(t, command.ParseFlags(normalizedArguments))
			require.Equal(t, testCase.expectedValue, toggleValue)

			flag := command.Flags().Lookup("toggle")
			require.NotNil(t, flag)
			require.Equal(t, testCase.expectedChanged, flag.Changed)
		})
	}
}

func TestAddToggleFlagRejectsInvalidValues(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "toggle", false, "Toggle flag")

	require.Error(t, command.ParseFlags([]string{"--toggle=maybe"}))
	require.False(t, toggleValue)
}

func TestNormalizeToggleArgumentsLeavesOtherArguments(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "toggle", false, "Toggle flag")
	command.Flags().String("config", "", "Configuration path")

	normalizedArguments := NormalizeToggleArguments(command.Flags(), []string{"--config", "yes", "--toggle", "positional", "--", "--toggle", "no"})
	require.Equal(t, []string{"--config", "yes", "--toggle", "positional", "--", "--toggle", "no"}, normalizedArguments)
}

func TestAddToggleFlagUsageListsChoices(t *testing.T) {
	command := &cobra.Command{}

	var toggleValue bool
	AddToggleFlag(command.Flags(), &toggleValue, "toggle", true, "Toggle flag")

	require.Equal(t, "`<YES|no>` Toggle flag", command.Flags().Lookup("toggle").Usage)
}
