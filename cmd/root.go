package main

import (
	"github.com/spf13/cobra"

	"tumorvision/internal/content"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tumorvision",
		Short: content.AppName + " brain MRI tumor classifier",
		Long: content.AppName + ` classifies brain MRI scans as glioma, meningioma or pituitary tumor,
or no tumor, after a plausibility check that the upload looks like an MRI slice.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newClassifyCmd())
	return root
}
