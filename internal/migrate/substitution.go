package migrate

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	substitutionCompileErrorTemplateConstant = "invalid substitution %q: %w"
	substitutionUnnamedTemplateConstant      = "rule-%d"
	substitutionsMissingMessageConstant      = "at least one substitution is required"
)

// ErrNoSubstitutions indicates a migrator was configured without any rule.
var ErrNoSubstitutions = errors.New(substitutionsMissingMessageConstant)

// Substitution is a compiled find/replace rule.
type Substitution struct {
	name        string
	expression  *regexp.Regexp
	replacement string
	literal     bool
}

// RuleReplacement records how many times a rule matched in one file.
type RuleReplacement struct {
	Rule  string
	Count int
}

// CompileSubstitutions compiles configured rules preserving their order.
func CompileSubstitutions(configurations []SubstitutionConfiguration) ([]Substitution, error) {
	if len(configurations) == 0 {
		return nil, ErrNoSubstitutions
	}

	substitutions := make([]Substitution, 0, len(configurations))
	for ruleIndex, configuration := range configurations {
		ruleName := configuration.Name
		if len(ruleName) == 0 {
			ruleName = fmt.Sprintf(substitutionUnnamedTemplateConstant, ruleIndex+1)
		}

		pattern := configuration.Pattern
		if configuration.Literal {
			pattern = regexp.QuoteMeta(pattern)
		}

		expression, compileError := regexp.Compile(pattern)
		if compileError != nil {
			return nil, fmt.Errorf(substitutionCompileErrorTemplateConstant, ruleName, compileError)
		}

		substitutions = append(substitutions, Substitution{
			name:        ruleName,
			expression:  expression,
			replacement: configuration.Replacement,
			literal:     configuration.Literal,
		})
	}

	return substitutions, nil
}

// Name returns the rule name used in logs.
func (substitution Substitution) Name() string {
	return substitution.name
}

// Apply replaces every non-overlapping match in content and reports the match count.
func (substitution Substitution) Apply(content string) (string, int) {
	matchCount := len(substitution.expression.FindAllStringIndex(content, -1))
	if matchCount == 0 {
		return content, 0
	}
	if substitution.literal {
		return substitution.expression.ReplaceAllLiteralString(content, substitution.replacement), matchCount
	}
	return substitution.expression.ReplaceAllString(content, substitution.replacement), matchCount
}

// ApplySubstitutions runs each rule over the output of the previous one.
func ApplySubstitutions(substitutions []Substitution, content string) (string, []RuleReplacement) {
	replacements := make([]RuleReplacement, 0, len(substitutions))
	for _, substitution := range substitutions {
		var matchCount int
		content, matchCount = substitution.Apply(content)
		replacements = append(replacements, RuleReplacement{Rule: substitution.name, Count: matchCount})
	}
	return content, replacements
}
