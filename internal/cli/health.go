package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the game server is up and has words loaded",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			if result.Status != "ok" {
				return fmt.Errorf("server is %s", result.Status)
			}
			if result.WordCount == 0 {
				return fmt.Errorf("server has no words loaded")
			}
			return nil
		},
	}
}
