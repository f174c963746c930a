package cmd

import (
	"errors"
	"fmt"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Show a session's report, building it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Report building never touches the LLM, so no provider here.
		svc := interview.NewService(st.Interviews(), nil, nil)

		report, err := svc.Report(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, interview.ErrNoScorableQuestions) {
				return fmt.Errorf("session %s has no evaluated answers to report on", args[0])
			}
			return err
		}
		printReport(report)
		return nil
	},
}
