package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/alnah/go-rst2htmldeco"
	"github.com/alnah/go-rst2htmldeco/internal/assets"
	"github.com/alnah/go-rst2htmldeco/internal/config"
	"github.com/alnah/go-rst2htmldeco/internal/hints"
)

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, paths, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.verbose, flags.quiet)
	if env.AdjustProcs != nil {
		env.AdjustProcs(logger)
	}

	warnUnknownEnvVars(env, logger)
	settings := loadEnvSettings(env, logger)

	if err := render(ctx, flags, paths, settings, env, logger); err != nil {
		printError(env.Stderr, err, configName(flags, settings))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// render loads the site config, merges the command line over it and
// publishes the page.
func render(ctx context.Context, flags *cliFlags, paths []string, settings envSettings, env *Environment, logger *slog.Logger) error {
	cfg := config.DefaultConfig()
	if name := configName(flags, settings); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "config", name)
	}

	job, err := buildJob(flags, paths, cfg)
	if err != nil {
		return err
	}

	resolver, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	if resolver.HasCustomLoader() {
		logger.Debug("using custom templates", "path", cfg.Assets.BasePath)
	}

	frags := rst2htmldeco.NewFragments(cfg.Layout(),
		rst2htmldeco.WithTemplateLoader(resolver),
		rst2htmldeco.WithClock(env.Now),
		rst2htmldeco.WithDefaultURLPrefix(cfg.Render.URLPrefix),
	)

	command := cfg.Render.Command
	if settings.Renderer != "" {
		command = settings.Renderer
	}
	pub := rst2htmldeco.NewDocutilsPublisher(command)
	pub.Stdin = env.Stdin
	pub.Stdout = env.Stdout
	pub.Stderr = env.Stderr
	if env.Runner != nil {
		pub.Runner = env.Runner
	}

	if (job.Source == "" || job.Source == "-") && env.IsTerminal != nil && env.IsTerminal() {
		logger.Warn("reading reStructuredText from the terminal, end input with Ctrl-D")
	}

	svc := rst2htmldeco.New(frags,
		rst2htmldeco.WithPublisher(pub),
		rst2htmldeco.WithLogger(logger),
		rst2htmldeco.WithTimeout(settings.Timeout),
	)
	logger.Debug("rendering", "source", job.Source, "dest", job.Dest, "command", command, "stylesheet", job.Stylesheet)
	return svc.MakeHTML(ctx, job)
}

// configName returns --config, falling back to RST2HTMLDECO_CONFIG.
func configName(flags *cliFlags, settings envSettings) string {
	if flags.config != "" {
		return flags.config
	}
	return settings.ConfigPath
}

// buildJob merges the command line over the config's render defaults.
func buildJob(flags *cliFlags, paths []string, cfg *config.Config) (rst2htmldeco.Job, error) {
	embed, link := cfg.Render.EmbedStylesheet, cfg.Render.LinkStylesheet
	if flags.embed != "" || flags.link != "" {
		embed, link = flags.embed, flags.link
	}
	stylesheet, err := rst2htmldeco.ParseStylesheet(embed, link)
	if err != nil {
		return rst2htmldeco.Job{}, err
	}

	codeStyle := cfg.Render.CodeStyle
	if flags.codeStyle != "" {
		codeStyle = flags.codeStyle
	}

	job := rst2htmldeco.Job{
		Stylesheet: stylesheet,
		URLPrefix:  flags.urlPrefix,
		CodeStyle:  codeStyle,
	}
	if len(paths) > 0 {
		job.Source = paths[0]
	}
	if len(paths) > 1 {
		job.Dest = paths[1]
	}
	return job, nil
}

// printError writes err with a hint when one applies.
func printError(w io.Writer, err error, configName string) {
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(config.SearchPaths(configName))
	case errors.Is(err, rst2htmldeco.ErrStylesheetConflict), errors.Is(err, config.ErrStylesheetConflict),
		errors.Is(err, rst2htmldeco.ErrEmbedURL):
		hint = hints.ForStylesheetConflict()
	case errors.Is(err, rst2htmldeco.ErrUnknownCodeStyle):
		hint = hints.ForCodeStyle(rst2htmldeco.CodeStyles())
	case errors.Is(err, rst2htmldeco.ErrWriteOutput):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, rst2htmldeco.ErrRender):
		hint = hints.ForRenderFailure()
	}
	fmt.Fprintf(w, "error: %v%s\n", err, hint)
}
