package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Issue a GET request",
	Long: `Issue a GET request and print the response body.

Examples:
  reqwrap get https://api.example.com/users
  reqwrap get /users --base-url https://api.example.com
  reqwrap get https://api.example.com/users -q "0.name"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodGet, args[0])
	},
}

func init() {
	addRequestFlags(getCmd, false)
}
