package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/sigpress/internal/compress/languages"
)

// languagesCmd represents the languages command
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their file extensions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range languages.Default().Profiles() {
			fmt.Printf("%-12s %s\n", p.ID, strings.Join(p.Extensions, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
