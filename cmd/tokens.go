package cmd

import (
	"fmt"

	"github.com/bmatsuo/risp/parser/lexer"
	"github.com/spf13/cobra"
)

// tokensCmd represents the tokens command
var tokensCmd = &cobra.Command{
	Use:   "tokens EXPR...",
	Short: "Print the tokens of lisp expressions",
	Long:  `Print the token stream the lexer produces for each argument, one token per line.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for i, src := range args {
			for _, tok := range lexer.Tokenize(fmt.Sprintf("expr%d", i+1), src) {
				fmt.Printf("%s\t%s\n", tok.Source, tok)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
