package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatsuo/risp/repl"
	"github.com/spf13/cobra"
)

const historyFile = ".risp_history.txt"

var (
	replHistory   string
	replEditor    string
	replKeepGoing bool
	replPrompt    string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session which evaluates one line of input at a time.
By default the first parse or evaluation error ends the session with a failure
status.  End of input (ctrl-d) ends the session successfully and an interrupt
(ctrl-c) ends it with a failure status.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		lines, err := newLineReader()
		if err != nil {
			exitError(err)
		}
		policy := repl.Fatal
		if replKeepGoing {
			policy = repl.KeepGoing
		}
		session := repl.NewSession(newRuntime(), lines,
			repl.WithPolicy(policy),
			repl.WithPrompt(replPrompt))
		err = session.Run()
		if cerr := lines.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
		}
		if err != nil {
			exitError(err)
		}
	},
}

func newLineReader() (repl.LineReader, error) {
	history := replHistory
	if history == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			history = filepath.Join(home, historyFile)
		}
	}
	switch replEditor {
	case "liner":
		return repl.NewLinerReader(history), nil
	case "readline":
		return repl.NewReadlineReader(history)
	default:
		return nil, fmt.Errorf("unknown line editor: %q", replEditor)
	}
}

func addReplFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&replHistory, "history", "",
		"History file (default ~/"+historyFile+")")
	cmd.Flags().StringVar(&replEditor, "editor", "liner",
		"Line editor used to read input (liner or readline)")
	cmd.Flags().BoolVarP(&replKeepGoing, "keep-going", "k", false,
		"Print errors and continue instead of ending the session")
	cmd.Flags().StringVar(&replPrompt, "prompt", "risp",
		"Prompt shown before each line of input")
}

func init() {
	rootCmd.AddCommand(replCmd)
	addReplFlags(replCmd)
}
