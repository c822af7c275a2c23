package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/skolem/skolem/src/lang"
)

const (
	historyFile = ".skolem_history"
	replPrompt  = "λ> "
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively abstract inputs",
	Long:  `Repl reads one input per line, abstracts it and prints the analysis. Ctrl+D or :quit exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func runRepl() {
	fmt.Printf("skolem %s\nCtrl+D or :quit exits.\n", Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(replPrompt)
		if err != nil {
			fmt.Println()
			return
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case input == ":quit":
			return
		}

		result := lang.Abstract(input, lang.Kind(inputKind))
		fmt.Printf("%s  [%s]\n", result.Notation, result.Kind)
		if result.CurriedForm != result.Notation {
			fmt.Printf("curried: %s\n", result.CurriedForm)
		}
		if result.BetaReduced != "" {
			fmt.Printf("reduced: %s\n", result.BetaReduced)
		}
		if result.TypeSignature != "" {
			fmt.Printf("type:    %s\n", result.TypeSignature)
		}
		ln.AppendHistory(input)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
