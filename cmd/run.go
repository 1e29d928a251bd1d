package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/risp/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		names, exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		rt := newRuntime()
		for i := range exprs {
			v, err := rt.LoadString(names[i], exprs[i])
			if err != nil {
				exitError(err)
			}
			if runPrint {
				fmt.Println(v)
			}
		}
	},
}

func runReadExpressions(args []string) ([]string, []string, error) {
	names := make([]string, len(args))
	exprs := make([]string, len(args))
	if runExpression {
		for i := range args {
			names[i] = fmt.Sprintf("expr%d", i+1)
			exprs[i] = args[i]
		}
		return names, exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, lisp.Wrapf(err, "error reading %s", path)
		}
		names[i] = path
		exprs[i] = string(b)
	}
	return names, exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
