package main

import (
	"context"
	"fmt"
	"time"
)

// runMain executes the CLI and returns the process exit code.
// args excludes the program name.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "mdprint %s\n", Version)
		return ExitSuccess
	}

	code, err := runConvert(ctx, positional, flags, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s%s\n", err, configHint(err, flags.common.config), hintFor(err, nil))
		return exitCodeFor(err)
	}
	return code
}

// runConvert resolves settings and inputs, converts every file, and reports
// the results. A returned error means nothing was converted; its exit code
// comes from exitCodeFor.
func runConvert(ctx context.Context, positional []string, flags *cliFlags, env *Environment) (int, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Environ(), env.Stderr)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName)
	if err != nil {
		return 0, err
	}
	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("environment: %w", err)
	}

	s, err := mergeSettings(flags, cfg)
	if err != nil {
		return 0, err
	}

	inputs, err := expandInputs(append(append([]string{}, flags.inputs...), positional...))
	if err != nil {
		return 0, err
	}
	files, err := planOutputs(inputs, flags.output, s.outputDir)
	if err != nil {
		return 0, err
	}

	css, err := s.readCSS()
	if err != nil {
		return 0, err
	}

	conv, err := env.NewConverter(s.converterOptions()...)
	if err != nil {
		return 0, err
	}
	defer func() { _ = conv.Close() }()

	workers := resolvePoolSize(s.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d, files: %d\n", workers, len(files))
	}

	start := env.Now()
	results := convertBatch(ctx, conv, files, workers, &batchParams{
		marginPx: s.marginPx,
		css:      css,
		html:     s.html,
		htmlOnly: s.htmlOnly,
	})
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	return printResults(results, s, flags.common.quiet, flags.common.verbose, env), nil
}
