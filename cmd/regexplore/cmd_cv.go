package main

import (
	"github.com/spf13/cobra"

	"github.com/yoo-eun00/Aiffel-quest-rs-jsh/explore"
)

func newCVCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "cv",
		Short: "Mean 5-fold cross-validated score of every model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := loadTraining(st.cfg)
			if err != nil {
				return err
			}
			descs, err := descriptors(st.cfg)
			if err != nil {
				return err
			}
			return explore.ReportCVScores(cmd.OutOrStdout(), descs, data.X, data.y)
		},
	}
}
