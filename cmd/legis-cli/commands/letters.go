package commands

import (
	"fmt"
	"strings"

	"mainelegis/lib/scrapers/mainehouse"
	"mainelegis/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lettersCmd)
}

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Lists the pagination letters currently on the roster site.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := mainehouse.NewClient(mainehouse.ClientOptions{})
		if err != nil {
			serviceutil.Fatal("failed to initialize client", err)
		}

		letters, err := client.Letters(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch pagination letters", err)
		}

		fmt.Println(strings.Join(letters, " "))
	},
}
