package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValue  = "true"
	toggleFalseCanonicalValue = "false"
	toggleTypeName            = "toggle"
	toggleParseErrorTemplate  = "invalid toggle value %q"
	longFlagPrefix            = "--"
	flagValueSeparator        = "="
	argumentsTerminator       = "--"
)

var (
	toggleTrueLiterals  = []string{"true", "yes", "on", "1", "t", "y"}
	toggleFalseLiterals = []string{"false", "no", "off", "0", "f", "n"}
	toggleChoices       = []string{"yes", "no"}
)

// AddToggleFlag registers a boolean flag that accepts yes/no style values and defaults to true when given bare.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	defaultChoice := toggleChoices[1]
	if defaultValue {
		defaultChoice = toggleChoices[0]
	}

	flagSet.Var(newToggleValue(defaultValue, target), name, FormatChoiceUsage(defaultChoice, toggleChoices, usage))
	flagSet.Lookup(name).NoOptDefVal = toggleTrueCanonicalValue
}

// NormalizeToggleArguments joins "--flag value" into "--flag=value" for toggle flags registered on flagSet,
// so that the value is not mistaken for a positional argument.
func NormalizeToggleArguments(flagSet *pflag.FlagSet, arguments []string) []string {
	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		current := arguments[index]
		if current == argumentsTerminator {
			return append(normalized, arguments[index:]...)
		}

		if isBareToggle(flagSet, current) && index+1 < len(arguments) {
			if _, parseError := parseToggleValue(arguments[index+1]); parseError == nil {
				normalized = append(normalized, current+flagValueSeparator+arguments[index+1])
				index++
				continue
			}
		}

		normalized = append(normalized, current)
	}
	return normalized
}

func isBareToggle(flagSet *pflag.FlagSet, argument string) bool {
	if flagSet == nil || !strings.HasPrefix(argument, longFlagPrefix) || strings.Contains(argument, flagValueSeparator) {
		return false
	}
	flag := flagSet.Lookup(strings.TrimPrefix(argument, longFlagPrefix))
	if flag == nil {
		return false
	}
	_, isToggle := flag.Value.(*toggleValue)
	return isToggle
}

type toggleValue struct {
	currentValue bool
	target       *bool
}

func newToggleValue(defaultValue bool, target *bool) *toggleValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleValue{currentValue: defaultValue, target: target}
}

func (value *toggleValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}
	return nil
}

func (value *toggleValue) String() string {
	if value != nil && value.currentValue {
		return toggleTrueCanonicalValue
	}
	return toggleFalseCanonicalValue
}

func (value *toggleValue) Type() string {
	return toggleTypeName
}

func parseToggleValue(rawValue string) (bool, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, literal := range toggleTrueLiterals {
		if normalizedValue == literal {
			return true, nil
		}
	}
	for _, literal := range toggleFalseLiterals {
		if normalizedValue == literal {
			return false, nil
		}
	}
	return false, fmt.Errorf(toggleParseErrorTemplate, rawValue)
}
