package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <url>",
	Short: "Issue a PUT request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodPut, args[0])
	},
}

func init() {
	addRequestFlags(putCmd, true)
}
