package migrate

import (
	"strings"

	pathutils "github.com/temirov/authmigrate/internal/utils/path"
)

const (
	filesConfigurationKeyConstant         = "files"
	substitutionsConfigurationKeyConstant = "substitutions"
	configurationKeySeparatorConstant     = "."
)

var migrationConfigurationPathSanitizer = pathutils.NewFilePathSanitizer()

// SubstitutionConfiguration describes one find/replace rule.
//
// When Literal is false, Pattern is an RE2 expression and Replacement may reference captures as ${1}.
type SubstitutionConfiguration struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Pattern     string `mapstructure:"pattern" yaml:"pattern"`
	Replacement string `mapstructure:"replacement" yaml:"replacement"`
	Literal     bool   `mapstructure:"literal" yaml:"literal"`
}

// CommandConfiguration captures persisted configuration for the migration.
type CommandConfiguration struct {
	Files         []string                    `mapstructure:"files" yaml:"files"`
	Substitutions []SubstitutionConfiguration `mapstructure:"substitutions" yaml:"substitutions"`
}

// DefaultSubstitutions returns the two rules of the useAuth to useRobustAuth migration.
func DefaultSubstitutions() []SubstitutionConfiguration {
	return []SubstitutionConfiguration{
		{
			Name:        "import-path",
			Pattern:     `import \{ (.+) \} from '@/context/AuthContext';`,
			Replacement: `import { ${1} } from '@/hooks/useRobustAuth';`,
		},
		{
			Name:        "hook-call",
			Pattern:     "useAuth()",
			Replacement: "useRobustAuth()",
			Literal:     true,
		},
	}
}

// DefaultFiles returns the files that still referenced useAuth when the migration was written.
func DefaultFiles() []string {
	return []string{
		"src/components/cultural/MaturityCalculatorSimplified.tsx",
		"src/components/cultural/SimpleCulturalMaturityCalculator.tsx",
		"src/components/dashboard/AgentTasksPanel.tsx",
		"src/components/dashboard/MasterCoordinatorPanel.tsx",
		"src/components/dashboard/ModernFloatingAgentChat.tsx",
		"src/components/dashboard/MyMissionsDashboard.tsx",
		"src/components/dashboard/RobustPremiumDashboard.tsx",
		"src/components/dashboard/TaskManager.tsx",
		"src/components/master-coordinator/BusinessProfileDialog.tsx",
		"src/components/master-coordinator/MasterCoordinatorCommandCenter.tsx",
		"src/components/profile/DeliverablesCenter.tsx",
		"src/components/shop/IntelligentShopCreationWizard.tsx",
		"src/components/tasks/IntelligentTaskInterface.tsx",
		"src/components/tasks/QuestionCollector.tsx",
		"src/hooks/use-ai-agent-with-tasks.ts",
		"src/hooks/use-ai-agent.ts",
		"src/hooks/useAIAssistant.ts",
		"src/hooks/useAIRecommendations.ts",
		"src/hooks/useAgentConversations.ts",
		"src/hooks/useAgentDeliverables.ts",
		"src/hooks/useAgentStats.ts",
		"src/hooks/useArtisanTaskGeneration.ts",
		"src/hooks/useDataAudit.ts",
		"src/hooks/useDataRecovery.ts",
		"src/hooks/useOnboardingValidation.ts",
		"src/hooks/useOptimizedUserData.ts",
		"src/hooks/useProfileSync.ts",
		"src/hooks/useProgressRecovery.ts",
		"src/hooks/useProgressiveTaskGeneration.ts",
		"src/hooks/useRealtimeAgents.ts",
		"src/hooks/useRecommendedTasks.ts",
		"src/hooks/useSecureDataAccess.ts",
		"src/hooks/useSessionMonitor.ts",
		"src/hooks/useSessionSync.ts",
		"src/hooks/useStepAI.ts",
		"src/hooks/useTaskEvolution.ts",
		"src/hooks/useTaskTitleCleanup.ts",
		"src/hooks/useUserActivity.ts",
	}
}

// DefaultCommandConfiguration returns baseline configuration values for the migration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Files:         DefaultFiles(),
		Substitutions: DefaultSubstitutions(),
	}
}

// DefaultConfigurationValues exposes the defaults as Viper keys beneath prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()

	substitutionValues := make([]map[string]any, 0, len(defaults.Substitutions))
	for _, substitution := range defaults.Substitutions {
		substitutionValues = append(substitutionValues, map[string]any{
			"name":        substitution.Name,
			"pattern":     substitution.Pattern,
			"replacement": substitution.Replacement,
			"literal":     substitution.Literal,
		})
	}

	return map[string]any{
		joinConfigurationKey(prefix, filesConfigurationKeyConstant):         defaults.Files,
		joinConfigurationKey(prefix, substitutionsConfigurationKeyConstant): substitutionValues,
	}
}

// Sanitize normalizes file paths and falls back to the default rules when none are configured.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		Files:         migrationConfigurationPathSanitizer.Sanitize(configuration.Files),
		Substitutions: make([]SubstitutionConfiguration, 0, len(configuration.Substitutions)),
	}

	for _, substitution := range configuration.Substitutions {
		substitution.Name = strings.TrimSpace(substitution.Name)
		if len(substitution.Pattern) == 0 {
			continue
		}
		sanitized.Substitutions = append(sanitized.Substitutions, substitution)
	}

	if len(sanitized.Substitutions) == 0 {
		sanitized.Substitutions = DefaultSubstitutions()
	}

	return sanitized
}

func joinConfigurationKey(prefix string, key string) string {
	trimmedPrefix := strings.TrimSpace(prefix)
	if len(trimmedPrefix) == 0 {
		return key
	}
	return trimmedPrefix + configurationKeySeparatorConstant + key
}
