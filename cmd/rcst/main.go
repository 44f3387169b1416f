// Command rcst parses, minifies, and reformats source files through the
// rcst lossless concrete syntax tree.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gosyntax/rcst/syntax"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "rcst",
		Short: "rcst command line utility",
		Long:  `Parse, minify, and reformat source through a lossless concrete syntax tree`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			quiet, _ := cmd.Flags().GetBool("quiet")
			level := slog.LevelWarn
			switch {
			case debug:
				level = slog.LevelDebug
			case quiet:
				level = slog.LevelError
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	cmdRoot.AddCommand(cmdRun())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		log.Fatal(err)
	}
}

// cmdRun implements the parse/minify/format driver: read a file or
// stdin, parse it, optionally reshape the trivia, print the result.
func cmdRun() *cobra.Command {
	var configFile string
	var pass string
	var output string
	var assumeFilename string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&configFile, "config-file", "c", "", "load configuration from file")
		cmd.Flags().StringVar(&pass, "pass", "", "override the configured pass (none|minify|format)")
		cmd.Flags().StringVarP(&output, "output", "o", "", "override the configured output path (- for stdout)")
		cmd.Flags().StringVar(&assumeFilename, "assume-filename", "", "filename to blame parse errors on when reading stdin")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "run [path]",
		Short:        "parse a file (or stdin) and print it back through the configured pass",
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if pass != "" {
				cfg.Pass = syntax.Pass(pass)
			}
			if output != "" {
				cfg.Output = output
			}
			if assumeFilename != "" {
				cfg.AssumeFilename = assumeFilename
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			src, name, err := readSource(args, cfg)
			if err != nil {
				return fmt.Errorf("read source: %w", err)
			}

			file, err := syntax.TryParse(src, syntax.WithLogger(slog.Default()))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			switch cfg.Pass {
			case syntax.PassMinify:
				syntax.Minify(&file, syntax.WithLogger(slog.Default()))
			case syntax.PassFormat:
				syntax.FormatWithStyleGuide(&file, syntax.WithLogger(slog.Default()))
			case syntax.PassNone:
				// print the tree exactly as parsed
			}

			return writeOutput(cfg.Output, file)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("rcst: version 0.1.0")
			return nil
		},
	}
	return cmd
}

func loadConfig(path string) (syntax.Config, error) {
	if path == "" {
		return syntax.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return syntax.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return syntax.LoadConfig(f)
}

// readSource returns the bytes to parse (from args[0], or stdin when no
// path is given) and the name to attribute parse errors to.
func readSource(args []string, cfg syntax.Config) (src, name string, err error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", err
		}
		return string(b), args[0], nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(b), cfg.AssumeFilename, nil
}

func writeOutput(dest string, file syntax.File) error {
	var out io.Writer = os.Stdout
	if dest != "" && dest != "-" {
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}
	var b strings.Builder
	file.Print(&b)
	_, err := io.WriteString(out, b.String())
	return err
}
