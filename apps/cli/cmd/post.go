package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post <url>",
	Short: "Issue a POST request",
	Long: `Issue a POST request and print the response body.

Examples:
  reqwrap post https://api.example.com/users -d '{"name":"ada"}' -H "Content-Type: application/json"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodPost, args[0])
	},
}

func init() {
	addRequestFlags(postCmd, true)
}
