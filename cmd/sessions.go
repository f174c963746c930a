package cmd

import (
	"fmt"
	"strings"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.Interviews().ListSessions(cmd.Context())
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Create one with: mockmate new")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-11s  %-9s  %s\n",
			"ID", "Started", "Status", "Level", "Mode")
		fmt.Println(strings.Repeat("─", 100))
		for _, s := range sessions {
			fmt.Printf("%-36s  %-19s  %-11s  %-9s  %s\n",
				s.ID,
				s.StartedAt.Local().Format("2006-01-02 15:04:05"),
				s.Status,
				s.Config.Difficulty,
				describeMode(s.Config),
			)
		}
		return nil
	},
}

var abandonCmd = &cobra.Command{
	Use:   "abandon <session-id>",
	Short: "Abandon a session without a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := st.Interviews().EndSession(cmd.Context(), args[0], interview.StatusAbandoned)
		if err != nil {
			return err
		}
		fmt.Printf("Session %s is %s.\n", sess.ID, sess.Status)
		return nil
	},
}
