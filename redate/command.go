// Package redate implements the command that replaces the YYYY-MM-DD prefix of
// every entry in a directory with one fixed date.
package redate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kxue43/redate/renamer"
	"github.com/kxue43/redate/report"
)

type (
	Cmd struct {
		out     io.Writer
		Dir     string        `name:"dir" short:"d" default:"_posts" env:"REDATE_DIR" help:"Directory whose entries are renamed."`
		Date    string        `name:"date" default:"2022-04-02" env:"REDATE_DATE" help:"Date that replaces the YYYY-MM-DD prefix."`
		Report  report.Format `name:"report" enum:"text,yaml,none" default:"text" env:"REDATE_REPORT" help:"Format of the listings printed before and after renaming."`
		Verbose bool          `name:"verbose" short:"v" help:"Log every rename."`

		Version kong.VersionFlag `name:"version" help:"Show version information and quit."`
	}
)

func (c *Cmd) config() renamer.Config {
	return renamer.Config{WorkingDirectory: c.Dir, ReplacementDate: c.Date}
}

// Non-nil returned error wraps [renamer.ErrInvalidConfig].
func (c *Cmd) AfterApply() error {
	return c.config().Validate()
}

// Run renames the entries of c.Dir and reports listings to stdout.
// Non-nil returned error wraps one of the renamer sentinel errors or comes from writing the report.
func (c *Cmd) Run(logger *zap.Logger) error {
	if c.out == nil {
		c.out = os.Stdout
	}

	r, err := renamer.FromConfig(c.config(), logger)
	if err != nil {
		return err
	}

	printer := report.NewPrinter(c.out, c.Report)

	result, runErr := r.Run()
	if errors.Is(runErr, renamer.ErrDirectoryAccess) {
		return runErr
	}

	if err = printer.Listing("before", r.Dir(), result.Entries); err != nil {
		return err
	}

	if err = printer.Renames(result.Renamed); err != nil {
		return err
	}

	if runErr != nil {
		return runErr
	}

	after, err := renamer.List(r.Dir())
	if err != nil {
		return err
	}

	return printer.Listing("after", r.Dir(), after)
}

// NewLogger returns the console logger used by the command line.
func NewLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()

	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.TimeKey = ""
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Named("redate"), nil
}
