package migrate

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	readFileErrorTemplateConstant     = "unable to read file: %w"
	decodeFileErrorTemplateConstant   = "unable to decode file: %w"
	writeFileErrorTemplateConstant    = "unable to write file: %w"
	invalidEncodingMessageConstant    = "content is not valid UTF-8"
	reporterMissingMessageConstant    = "migration reporter not configured"
	logMessageFileMigratedConstant    = "File migrated"
	logMessageFileFailedConstant      = "File migration failed"
	logMessageFileMissingConstant     = "File not found; skipping"
	logMessageRuleAppliedConstant     = "Substitution applied"
	logMessageRunCompletedConstant    = "Migration run completed"
	logFieldFilePathConstant          = "file"
	logFieldRuleConstant              = "rule"
	logFieldReplacementCountConstant  = "replacements"
	logFieldMigratedCountConstant     = "migrated"
	logFieldTotalCountConstant        = "total"
	logFieldMissingCountConstant      = "not_found"
	logFieldFailedCountConstant       = "failed"
	fileStatusMigratedStringConstant  = "migrated"
	fileStatusFailedStringConstant    = "error"
	fileStatusNotFoundStringConstant  = "not_found"
	logFieldReplacementsTotalConstant = "total_replacements"
	serviceErrorPrefixConstant        = "migration service"
)

// ErrInvalidEncoding reports file content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New(invalidEncodingMessageConstant)

// FileStatus is the outcome of processing one path.
type FileStatus string

// Supported file statuses.
const (
	FileStatusMigrated FileStatus = FileStatus(fileStatusMigratedStringConstant)
	FileStatusFailed   FileStatus = FileStatus(fileStatusFailedStringConstant)
	FileStatusNotFound FileStatus = FileStatus(fileStatusNotFoundStringConstant)
)

// FileOutcome describes what happened to one path.
type FileOutcome struct {
	Path         string
	Status       FileStatus
	Replacements []RuleReplacement
	Error        error
}

// Summary aggregates a run. Total counts every listed path, including missing ones.
type Summary struct {
	Migrated int
	Total    int
	Outcomes []FileOutcome
}

// Count returns how many outcomes carry the given status.
func (summary Summary) Count(status FileStatus) int {
	count := 0
	for _, outcome := range summary.Outcomes {
		if outcome.Status == status {
			count++
		}
	}
	return count
}

// Reporter renders run progress for a human.
type Reporter interface {
	ReportStarted(total int)
	ReportOutcome(outcome FileOutcome)
	ReportSummary(summary Summary)
}

// MigrationExecutor runs a migration over a list of paths.
type MigrationExecutor interface {
	Run(executionContext context.Context, paths []string) Summary
}

// ServiceDependencies enumerates collaborators required by the migration service.
type ServiceDependencies struct {
	Logger        *zap.Logger
	FileSystem    FileSystem
	Reporter      Reporter
	Substitutions []Substitution
}

// Service migrates files in place, sequentially.
type Service struct {
	logger        *zap.Logger
	fileSystem    FileSystem
	reporter      Reporter
	substitutions []Substitution
}

// NewService constructs a Service. A nil logger becomes a no-op logger and a nil file system uses the OS.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Reporter == nil {
		return nil, fmt.Errorf("%s: %s", serviceErrorPrefixConstant, reporterMissingMessageConstant)
	}
	if len(dependencies.Substitutions) == 0 {
		return nil, fmt.Errorf("%s: %w", serviceErrorPrefixConstant, ErrNoSubstitutions)
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}

	return &Service{
		logger:        logger,
		fileSystem:    fileSystem,
		reporter:      dependencies.Reporter,
		substitutions: append([]Substitution(nil), dependencies.Substitutions...),
	}, nil
}

// Run processes paths in order. A path that cannot be stat'ed is reported as not found and never
// opened; every other path is migrated. Failures are reported and never stop the run.
func (service *Service) Run(executionContext context.Context, paths []string) Summary {
	summary := Summary{Total: len(paths), Outcomes: make([]FileOutcome, 0, len(paths))}
	service.reporter.ReportStarted(summary.Total)

	for _, path := range paths {
		var outcome FileOutcome
		if _, statError := service.fileSystem.Stat(path); statError != nil {
			service.logger.Debug(logMessageFileMissingConstant, zap.String(logFieldFilePathConstant, path), zap.Error(statError))
			outcome = FileOutcome{Path: path, Status: FileStatusNotFound}
		} else {
			outcome = service.migrateFile(executionContext, path)
		}

		if outcome.Status == FileStatusMigrated {
			summary.Migrated++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
		service.reporter.ReportOutcome(outcome)
	}

	service.logger.Info(
		logMessageRunCompletedConstant,
		zap.Int(logFieldMigratedCountConstant, summary.Migrated),
		zap.Int(logFieldTotalCountConstant, summary.Total),
		zap.Int(logFieldFailedCountConstant, summary.Count(FileStatusFailed)),
		zap.Int(logFieldMissingCountConstant, summary.Count(FileStatusNotFound)),
	)
	service.reporter.ReportSummary(summary)

	return summary
}

// Migrate rewrites one existing file and reports whether it succeeded. Callers check existence first.
func (service *Service) Migrate(executionContext context.Context, path string) bool {
	return service.migrateFile(executionContext, path).Status == FileStatusMigrated
}

func (service *Service) migrateFile(_ context.Context, path string) FileOutcome {
	content, readError := service.fileSystem.ReadFile(path)
	if readError != nil {
		return service.failure(path, fmt.Errorf(readFileErrorTemplateConstant, readError))
	}

	if !utf8.Valid(content) {
		return service.failure(path, fmt.Errorf(decodeFileErrorTemplateConstant, ErrInvalidEncoding))
	}

	updatedContent, replacements := ApplySubstitutions(service.substitutions, string(content))

	if writeError := service.fileSystem.OverwriteFile(path, []byte(updatedContent)); writeError != nil {
		return service.failure(path, fmt.Errorf(writeFileErrorTemplateConstant, writeError))
	}

	totalReplacements := 0
	for _, replacement := range replacements {
		totalReplacements += replacement.Count
		service.logger.Debug(
			logMessageRuleAppliedConstant,
			zap.String(logFieldFilePathConstant, path),
			zap.String(logFieldRuleConstant, replacement.Rule),
			zap.Int(logFieldReplacementCountConstant, replacement.Count),
		)
	}

	service.logger.Info(
		logMessageFileMigratedConstant,
		zap.String(logFieldFilePathConstant, path),
		zap.Int(logFieldReplacementsTotalConstant, totalReplacements),
	)

	return FileOutcome{Path: path, Status: FileStatusMigrated, Replacements: replacements}
}

func (service *Service) failure(path string, failure error) FileOutcome {
	service.logger.Warn(
		logMessageFileFailedConstant,
		zap.String(logFieldFilePathConstant, path),
		zap.Error(failure),
	)
	return FileOutcome{Path: path, Status: FileStatusFailed, Error: failure}
}
