package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <url>",
	Short: "Issue a DELETE request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodDelete, args[0])
	},
}

func init() {
	addRequestFlags(deleteCmd, false)
}
