// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/aoc/internal/config"
	"github.com/temirov/aoc/internal/days"
	"github.com/temirov/aoc/internal/filesystem"
	"github.com/temirov/aoc/internal/inputs"
	"github.com/temirov/aoc/internal/output"
	"github.com/temirov/aoc/internal/services/clipboard"
	"github.com/temirov/aoc/internal/types"
	"github.com/temirov/aoc/internal/utils"
)

const (
	dayFlagName      = "day"
	partFlagName     = "part"
	inputFlagName    = "input"
	variantFlagName  = "variant"
	formatFlagName   = "format"
	copyFlagName     = "copy"
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	versionFlagName  = "version"
	globalFlagName   = "global"
	forceFlagName    = "force"

	dayFlagShorthand   = "d"
	partFlagShorthand  = "p"
	inputFlagShorthand = "i"

	versionTemplate      = "aoc version: %s\n"
	rootUse              = "aoc"
	rootShortDescription = "Advent of Code 2022 solvers"
	rootLongDescription  = `aoc solves Advent of Code 2022 puzzles.
Each day has two parts; inputs are read from inputs/<day>/<part>/<variant>.txt
unless --input names a file. Use --format to select raw, json, or xml output.`

	solveUse              = "solve"
	solveAlias            = "s"
	solveShortDescription = "solve one part of one day (" + solveAlias + ")"
	solveUsageExample     = `  # Solve day 7 part 1 against the bundled example
  aoc solve --day 7 --part 1

  # Solve day 8 part 2 against a downloaded input and copy the answer
  aoc solve -d 8 -p 2 --input ~/aoc/8.txt --copy`

	allUse              = "all"
	allShortDescription = "solve every part of every registered day"
	allUsageExample     = `  # Print every example answer as JSON
  aoc all --format json`

	treeUse              = "tree"
	treeAlias            = "t"
	treeShortDescription = "render the directory tree replayed from a day 7 transcript (" + treeAlias + ")"
	treeUsageExample     = `  # Show the example file system with aggregate sizes
  aoc tree

  # Render a real transcript as XML
  aoc tree --input transcript.txt --format xml`

	daysUse              = "days"
	daysShortDescription = "list registered days"
	initUse              = "init"
	initShortDescription = "write a default configuration file"
	configUse            = "config"
	configShortDesc      = "print the effective configuration as YAML"

	dayFlagDescription      = "puzzle day"
	partFlagDescription     = "puzzle part (1 or 2)"
	inputFlagDescription    = "read input from this file instead of the inputs directory"
	variantFlagDescription  = "input variant to load (example or input)"
	formatFlagDescription   = "output format (raw, json, xml)"
	copyFlagDescription     = "copy the rendered answer to the clipboard"
	configFlagDescription   = "path to a configuration file"
	logLevelFlagDescription = "log level (debug, info, warn, error)"
	versionFlagDescription  = "display application version"
	globalFlagDescription   = "write the configuration to the global directory"
	forceFlagDescription    = "overwrite an existing configuration file"

	treeDay  = 7
	treePart = days.PartOne

	invalidFormatMessage        = "invalid format value '%s'"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	loadConfigurationFormat     = "load configuration: %w"
	rebuildLoggerFormat         = "configure logger: %w"
	writeOutputFormat           = "write output: %w"
	initializedMessageFormat    = "configuration written to %s\n"
	clipboardWarningMessage     = "failed to copy answer to clipboard"
)

// application carries the state shared by every subcommand.
type application struct {
	logger        *zap.Logger
	copier        clipboard.Copier
	stdout        io.Writer
	configPath    string
	logLevel      string
	configuration config.ApplicationConfiguration
	workingDir    string
}

// Execute runs the aoc application.
func Execute(logger *zap.Logger) error {
	app := &application{
		logger: logger,
		copier: clipboard.NewService(),
		stdout: os.Stdout,
	}
	rootCommand := app.createRootCommand()
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func (app *application) createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(app.stdout, versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
			return app.loadConfiguration()
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.configPath, configFlagName, "", configFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.logLevel, logLevelFlagName, "", logLevelFlagDescription)
	rootCommand.AddCommand(
		app.createSolveCommand(),
		app.createAllCommand(),
		app.createTreeCommand(),
		app.createDaysCommand(),
		app.createInitCommand(),
		app.createConfigCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// loadConfiguration merges configuration files and applies the log level.
func (app *application) loadConfiguration() error {
	if app.workingDir == "" {
		workingDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		app.workingDir = workingDirectory
	}
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: app.workingDir,
		ExplicitFilePath: app.configPath,
	})
	if loadError != nil {
		return fmt.Errorf(loadConfigurationFormat, loadError)
	}
	app.configuration = loaded

	level := app.logLevel
	if level == "" {
		level = loaded.Logging.Level
	}
	if level != "" {
		rebuilt, rebuildError := utils.NewApplicationLogger(level)
		if rebuildError != nil {
			return fmt.Errorf(rebuildLoggerFormat, rebuildError)
		}
		app.logger = rebuilt
	}
	return nil
}

// renderOptions stores flags shared by commands that print answers.
type renderOptions struct {
	format      string
	copyEnabled bool
}

func addRenderFlags(command *cobra.Command, options *renderOptions) {
	command.Flags().StringVar(&options.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	registerBooleanFlag(command.Flags(), &options.copyEnabled, copyFlagName, false, copyFlagDescription)
}

// resolve applies configuration defaults to flags the user did not set.
func (options renderOptions) resolve(command *cobra.Command, configuration config.OutputConfiguration) (renderOptions, error) {
	resolved := options
	if !command.Flags().Changed(formatFlagName) && configuration.Format != "" {
		resolved.format = configuration.Format
	}
	resolved.format = strings.ToLower(resolved.format)
	if !output.IsSupportedFormat(resolved.format) {
		return renderOptions{}, fmt.Errorf(invalidFormatMessage, resolved.format)
	}
	if !command.Flags().Changed(copyFlagName) {
		resolved.copyEnabled = configuration.CopyEnabled()
	}
	return resolved, nil
}

func (app *application) inputLoader(command *cobra.Command, variant string) inputs.Loader {
	if !command.Flags().Changed(variantFlagName) && app.configuration.Inputs.Variant != "" {
		variant = app.configuration.Inputs.Variant
	}
	return inputs.NewLoader(app.configuration.Inputs.Directory, variant)
}

func (app *application) registry() *days.Registry {
	directories := app.configuration.Directories
	defaults := days.DefaultOptions()
	return days.NewRegistry(days.Options{
		SmallDirectoryLimit: config.Int64Or(directories.SmallLimit, defaults.SmallDirectoryLimit),
		DiskCapacity:        config.Int64Or(directories.Capacity, defaults.DiskCapacity),
		RequiredFreeSpace:   config.Int64Or(directories.RequiredFree, defaults.RequiredFreeSpace),
	})
}

// createSolveCommand returns the solve subcommand.
func (app *application) createSolveCommand() *cobra.Command {
	var day int
	var part int
	var inputPath string
	var variant string
	var rendering renderOptions

	solveCommand := &cobra.Command{
		Use:     solveUse,
		Aliases: []string{solveAlias},
		Short:   solveShortDescription,
		Example: solveUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolved, resolveError := rendering.resolve(command, app.configuration.Output)
			if resolveError != nil {
				return resolveError
			}
			registry := app.registry()
			dayDefinition, lookupError := registry.Lookup(day)
			if lookupError != nil {
				return lookupError
			}
			if _, partError := dayDefinition.Part(part); partError != nil {
				return partError
			}
			input, loadError := app.inputLoader(command, variant).Load(day, part, inputPath)
			if loadError != nil {
				return loadError
			}
			answer, solveError := app.solve(registry, dayDefinition, part, input)
			if solveError != nil {
				return solveError
			}
			return app.emitAnswers(resolved, []types.Answer{answer})
		},
	}
	solveCommand.Flags().IntVarP(&day, dayFlagName, dayFlagShorthand, 0, dayFlagDescription)
	solveCommand.Flags().IntVarP(&part, partFlagName, partFlagShorthand, 0, partFlagDescription)
	solveCommand.Flags().StringVarP(&inputPath, inputFlagName, inputFlagShorthand, "", inputFlagDescription)
	solveCommand.Flags().StringVar(&variant, variantFlagName, types.VariantExample, variantFlagDescription)
	_ = solveCommand.MarkFlagRequired(dayFlagName)
	_ = solveCommand.MarkFlagRequired(partFlagName)
	addRenderFlags(solveCommand, &rendering)
	return solveCommand
}

// createAllCommand returns the all subcommand.
func (app *application) createAllCommand() *cobra.Command {
	var variant string
	var rendering renderOptions

	allCommand := &cobra.Command{
		Use:     allUse,
		Short:   allShortDescription,
		Example: allUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			resolved, resolveError := rendering.resolve(command, app.configuration.Output)
			if resolveError != nil {
				return resolveError
			}
			answers, solveError := app.solveAll(command.Context(), app.registry(), app.inputLoader(command, variant))
			if solveError != nil {
				return solveError
			}
			return app.emitAnswers(resolved, answers)
		},
	}
	allCommand.Flags().StringVar(&variant, variantFlagName, types.VariantExample, variantFlagDescription)
	addRenderFlags(allCommand, &rendering)
	return allCommand
}

// solveAll runs every part of every day concurrently and returns answers in
// day/part order. The first failure cancels the remaining work.
func (app *application) solveAll(ctx context.Context, registry *days.Registry, loader inputs.Loader) ([]types.Answer, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	registered := registry.Days()
	answers := make([]types.Answer, len(registered)*2)
	group, groupCtx := errgroup.WithContext(ctx)
	for dayIndex, day := range registered {
		for part := days.PartOne; part <= days.PartTwo; part++ {
			slot := dayIndex*2 + part - 1
			group.Go(func() error {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}
				input, loadError := loader.Load(day.Number, part, "")
				if loadError != nil {
					return loadError
				}
				answer, solveError := app.solve(registry, day, part, input)
				if solveError != nil {
					return solveError
				}
				answers[slot] = answer
				return nil
			})
		}
	}
	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return answers, nil
}

func (app *application) solve(registry *days.Registry, day days.Day, part int, input string) (types.Answer, error) {
	started := time.Now()
	value, solveError := registry.Solve(day.Number, part, input)
	if solveError != nil {
		return types.Answer{}, solveError
	}
	app.logger.Debug("solved",
		zap.Int("day", day.Number),
		zap.Int("part", part),
		zap.Duration("elapsed", time.Since(started)),
	)
	return types.Answer{Day: day.Number, Part: part, Title: day.Title, Value: value}, nil
}

// emitAnswers prints the rendered answers and optionally copies them.
func (app *application) emitAnswers(options renderOptions, answers []types.Answer) error {
	rendered, renderError := output.RenderAnswers(options.format, answers)
	if renderError != nil {
		return renderError
	}
	if _, writeError := io.WriteString(app.stdout, rendered); writeError != nil {
		return fmt.Errorf(writeOutputFormat, writeError)
	}
	if options.copyEnabled && app.copier != nil {
		if copyError := app.copier.Copy(rendered); copyError != nil {
			app.logger.Warn(clipboardWarningMessage, zap.Error(copyError))
		}
	}
	return nil
}

// resolveFormat returns the --format value, or the configured format when the
// flag was not set.
func (app *application) resolveFormat(command *cobra.Command, flagValue string) (string, error) {
	format := flagValue
	if !command.Flags().Changed(formatFlagName) && app.configuration.Output.Format != "" {
		format = app.configuration.Output.Format
	}
	format = strings.ToLower(format)
	if !output.IsSupportedFormat(format) {
		return "", fmt.Errorf(invalidFormatMessage, format)
	}
	return format, nil
}

// createTreeCommand returns the tree subcommand.
func (app *application) createTreeCommand() *cobra.Command {
	var inputPath string
	var variant string
	var outputFormat string

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Example: treeUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			format, formatError := app.resolveFormat(command, outputFormat)
			if formatError != nil {
				return formatError
			}
			transcript, loadError := app.inputLoader(command, variant).Load(treeDay, treePart, inputPath)
			if loadError != nil {
				return loadError
			}
			fileSystem, buildError := filesystem.FromTranscript(transcript)
			if buildError != nil {
				return buildError
			}
			root, treeError := fileSystem.Tree()
			if treeError != nil {
				return treeError
			}
			rendered, renderError := output.RenderTree(format, root)
			if renderError != nil {
				return renderError
			}
			if _, writeError := io.WriteString(app.stdout, rendered); writeError != nil {
				return fmt.Errorf(writeOutputFormat, writeError)
			}
			return nil
		},
	}
	treeCommand.Flags().StringVarP(&inputPath, inputFlagName, inputFlagShorthand, "", inputFlagDescription)
	treeCommand.Flags().StringVar(&variant, variantFlagName, types.VariantExample, variantFlagDescription)
	treeCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	return treeCommand
}

// createDaysCommand returns the days subcommand.
func (app *application) createDaysCommand() *cobra.Command {
	var outputFormat string

	daysCommand := &cobra.Command{
		Use:   daysUse,
		Short: daysShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			format, formatError := app.resolveFormat(command, outputFormat)
			if formatError != nil {
				return formatError
			}
			var summaries []types.DaySummary
			for _, day := range app.registry().Days() {
				summaries = append(summaries, types.DaySummary{Number: day.Number, Title: day.Title})
			}
			rendered, renderError := output.RenderDays(format, summaries)
			if renderError != nil {
				return renderError
			}
			_, writeError := io.WriteString(app.stdout, rendered)
			return writeError
		},
	}
	daysCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatRaw, formatFlagDescription)
	return daysCommand
}

// createInitCommand returns the init subcommand.
func (app *application) createInitCommand() *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			destination, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: app.workingDir,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(app.stdout, initializedMessageFormat, destination)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &global, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// createConfigCommand returns the config subcommand.
func (app *application) createConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   configUse,
		Short: configShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			rendered, renderError := app.configuration.RenderYAML()
			if renderError != nil {
				return renderError
			}
			_, writeError := io.WriteString(app.stdout, rendered)
			return writeError
		},
	}
}
