package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skolem/skolem/src/lang"
)

// abstractCmd represents the abstract command
var abstractCmd = &cobra.Command{
	Use:   "abstract [input]",
	Short: "Abstract an input into a lambda calculus term",
	Long: `Abstract classifies the input, parses it into a lambda calculus term
and prints the canonical notation, curried form, beta-reduced form,
approximate type signature and variable analysis.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 && inputFile == "" {
			return errors.New("requires an input string or --file")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}
		if limit := viper.GetInt("max-input-bytes"); limit > 0 && len(input) > limit {
			return fmt.Errorf("input is %d bytes, limit is %d", len(input), limit)
		}

		result := lang.Abstract(input, lang.Kind(inputKind))
		log.Infof("abstracted %q as %s", result.Input, result.Kind)

		if jsonOutput {
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		printResult(result)
		return nil
	},
}

var (
	inputFile  string
	jsonOutput bool
)

func readInput(args []string) (string, error) {
	if inputFile != "" {
		src, err := os.ReadFile(inputFile)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(src), "\n"), nil
	}
	return strings.Join(args, " "), nil
}

func printResult(r lang.Result) {
	fmt.Printf("input:      %s\n", r.Input)
	fmt.Printf("kind:       %s\n", r.Kind)
	fmt.Printf("notation:   %s\n", r.Notation)
	fmt.Printf("curried:    %s\n", r.CurriedForm)
	if r.BetaReduced != "" {
		fmt.Printf("reduced:    %s\n", r.BetaReduced)
	}
	if r.TypeSignature != "" {
		fmt.Printf("type:       %s\n", r.TypeSignature)
	}
	fmt.Printf("complexity: %d\n", r.Complexity)
	fmt.Printf("variables:  %s\n", strings.Join(r.Variables, ", "))
	fmt.Printf("free:       %s\n", strings.Join(r.FreeVariables, ", "))
}

func init() {
	rootCmd.AddCommand(abstractCmd)
	abstractCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read the input from a file")
	abstractCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full result record as JSON")
}
