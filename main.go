package main

import (
	"fmt"
	"os"

	"github.com/sergev/lox/config"
	"github.com/sergev/lox/interp"
	"github.com/sergev/lox/lang"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	debugAST bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "lox [file]",
	Short: "Lox interpreter",
	Long: `lox runs Lox programs.

With a file argument the whole script is executed. Without one, an
interactive session starts; each line is run as its own statement and
variable bindings persist for the whole session.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVar(&debugAST, "debug-ast", false, "print each declaration's tree before running it")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	setColorEnabled(opts.Color)

	in := interp.New(os.Stdout)
	in.SetDebugAST(opts.DebugAST)

	if len(args) > 0 {
		return in.RunFile(args[0])
	}
	runREPL(in, opts)
	return nil
}

// loadOptions resolves the effective settings: defaults, then the
// config file, then command-line flags.
func loadOptions() (config.Options, error) {
	opts := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return config.Options{}, err
		}
		opts = loaded
	}
	if debugAST {
		opts.DebugAST = true
	}
	if noColor {
		opts.Color = false
	}
	return opts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		if _, ok := lang.AsState(err); ok {
			os.Exit(65)
		}
		os.Exit(1)
	}
}
