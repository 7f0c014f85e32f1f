package migrate

import (
	"io"

	"github.com/fatih/color"

	"github.com/temirov/authmigrate/internal/utils"
)

const (
	startedMessageConstant        = "Starting bulk migration from useAuth to useRobustAuth...\n"
	migratedLineTemplateConstant  = "✓ Migrated: %s\n"
	failureDetailTemplateConstant = "Error migrating %s: %v\n"
	failedLineTemplateConstant    = "✗ Error: %s\n"
	notFoundLineTemplateConstant  = "! Not found: %s\n"
	summaryLineTemplateConstant   = "\nMigration complete: %d/%d files migrated\n"
	unknownFailureMessageConstant = "unknown error"
)

// ConsoleReporter prints one status line per file and a final tally.
type ConsoleReporter struct {
	writer       io.Writer
	successColor *color.Color
	failureColor *color.Color
	warningColor *color.Color
	summaryColor *color.Color
}

// NewConsoleReporter builds a reporter writing to writer. Colors are emitted only when colorEnabled is true.
func NewConsoleReporter(writer io.Writer, colorEnabled bool) *ConsoleReporter {
	reporter := &ConsoleReporter{
		writer:       utils.NewFlushingWriter(writer),
		successColor: color.New(color.FgGreen),
		failureColor: color.New(color.FgRed),
		warningColor: color.New(color.FgYellow),
		summaryColor: color.New(color.Bold),
	}

	for _, lineColor := range []*color.Color{reporter.successColor, reporter.failureColor, reporter.warningColor, reporter.summaryColor} {
		if colorEnabled {
			lineColor.EnableColor()
		} else {
			lineColor.DisableColor()
		}
	}

	return reporter
}

// ReportStarted prints the banner.
func (reporter *ConsoleReporter) ReportStarted(int) {
	reporter.summaryColor.Fprint(reporter.writer, startedMessageConstant)
}

// ReportOutcome prints the status line for one file. Failures are preceded by the underlying error.
func (reporter *ConsoleReporter) ReportOutcome(outcome FileOutcome) {
	switch outcome.Status {
	case FileStatusMigrated:
		reporter.successColor.Fprintf(reporter.writer, migratedLineTemplateConstant, outcome.Path)
	case FileStatusNotFound:
		reporter.warningColor.Fprintf(reporter.writer, notFoundLineTemplateConstant, outcome.Path)
	default:
		var failureMessage any = unknownFailureMessageConstant
		if outcome.Error != nil {
			failureMessage = outcome.Error
		}
		reporter.failureColor.Fprintf(reporter.writer, failureDetailTemplateConstant, outcome.Path, failureMessage)
		reporter.failureColor.Fprintf(reporter.writer, failedLineTemplateConstant, outcome.Path)
	}
}

// ReportSummary prints "Migration complete: migrated/total files migrated".
func (reporter *ConsoleReporter) ReportSummary(summary Summary) {
	reporter.summaryColor.Fprintf(reporter.writer, summaryLineTemplateConstant, summary.Migrated, summary.Total)
}
