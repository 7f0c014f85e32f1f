package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/authmigrate/internal/utils"
)

const (
	commandUseConstant                        = "migrate"
	commandShortDescriptionConstant           = "Rewrite useAuth references to useRobustAuth"
	commandLongDescriptionConstant            = "migrate rewrites the AuthContext import and every useAuth() call to useRobustAuth() in each configured file, in place, reporting one status line per file and a final tally. Per-file failures never change the exit status."
	substitutionsCompileErrorTemplateConstant = "unable to prepare substitutions: %w"
	serviceCreationErrorTemplateConstant      = "unable to construct migration service: %w"
	logMessageMigrationStartingConstant       = "Starting migration"
	logFieldFileCountConstant                 = "file_count"
	logFieldRulesConstant                     = "rules"
	logFieldConfigurationFileConstant         = "config_file"
	logFieldLogLevelConstant                  = "log_level"
)

// ServiceProvider constructs a migration executor from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (MigrationExecutor, error)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the migrate Cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	ColorOutputProvider   func() bool
	FileSystem            FileSystem
	ServiceProvider       ServiceProvider
}

// Build constructs the migrate command. It accepts no positional arguments.
func (builder *CommandBuilder) Build() *cobra.Command {
	return &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runMigration,
	}
}

func (builder *CommandBuilder) runMigration(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	substitutions, compileError := CompileSubstitutions(configuration.Substitutions)
	if compileError != nil {
		return fmt.Errorf(substitutionsCompileErrorTemplateConstant, compileError)
	}

	logger := builder.resolveLogger()

	service, serviceError := builder.resolveService(ServiceDependencies{
		Logger:        logger,
		FileSystem:    builder.FileSystem,
		Reporter:      NewConsoleReporter(command.OutOrStdout(), builder.colorOutputEnabled()),
		Substitutions: substitutions,
	})
	if serviceError != nil {
		return fmt.Errorf(serviceCreationErrorTemplateConstant, serviceError)
	}

	ruleNames := make([]string, 0, len(substitutions))
	for _, substitution := range substitutions {
		ruleNames = append(ruleNames, substitution.Name())
	}

	contextAccessor := utils.NewCommandContextAccessor()
	configurationFilePath, _ := contextAccessor.ConfigurationFilePath(command.Context())
	logLevel, _ := contextAccessor.LogLevel(command.Context())
	logger.Debug(
		logMessageMigrationStartingConstant,
		zap.Int(logFieldFileCountConstant, len(configuration.Files)),
		zap.Strings(logFieldRulesConstant, ruleNames),
		zap.String(logFieldConfigurationFileConstant, configurationFilePath),
		zap.String(logFieldLogLevelConstant, logLevel),
	)

	service.Run(command.Context(), configuration.Files)

	return nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if logger := builder.LoggerProvider(); logger != nil {
		return logger
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (MigrationExecutor, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().Sanitize()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) colorOutputEnabled() bool {
	if builder.ColorOutputProvider == nil {
		return false
	}
	return builder.ColorOutputProvider()
}
