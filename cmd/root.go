package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/risp/lisp"
	"github.com/bmatsuo/risp/parser"
	"github.com/bmatsuo/risp/repl"
	"github.com/spf13/cobra"
)

var (
	maxDepth int
	trace    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "risp",
	Short: "A minimal lisp reader and evaluator",
	Long: `risp reads lisp expressions, evaluates them using a small namespace of
builtin functions and prints the results.  Without a subcommand risp starts an
interactive session.`,
	Args: cobra.NoArgs,
	Run:  replCmd.Run,
}

// Execute adds all child commands to the root command and runs it.  This is
// called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRuntime() *lisp.Runtime {
	return lisp.NewRuntime(
		lisp.WithReader(parser.NewReader(maxDepth)),
		lisp.WithTrace(trace),
	)
}

// exitError prints the error chain of err to stderr and terminates the
// process with a failure status.
func exitError(err error) {
	repl.WriteErrorChain(os.Stderr, err)
	os.Exit(1)
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0,
		"Maximum nesting depth of parsed expressions (0 uses the default)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false,
		"Write each evaluated expression and its result to stderr")
	addReplFlags(rootCmd)
}
