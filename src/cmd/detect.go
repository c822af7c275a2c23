package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skolem/skolem/src/lang"
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [input]",
	Short: "Print the detected input kind",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires an input string")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(lang.Classify(strings.Join(args, " ")))
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
