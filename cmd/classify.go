package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE...",
		Short: "Check and classify local MRI images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(out, "%s: error: %v\n", path, err)
					failed++
					continue
				}

				d, err := env.app.DiagnosisService.Diagnose(cmd.Context(), data)
				switch {
				case err != nil:
					fmt.Fprintf(out, "%s: error: %v\n", path, err)
					failed++
				case !d.Accepted:
					fmt.Fprintf(out, "%s: rejected (%s)\n", path, d.Rejection)
				default:
					fmt.Fprintf(out, "%s: %s\n", path, d.Label)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
