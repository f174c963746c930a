package cmd

import (
	"fmt"
	"strings"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/ui"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new interview session",
	Long: "Creates a session in one of three modes: --role for a target role,\n" +
		"--topics for an explicit topic list, or --resume for a previously\n" +
		"imported resume. Exactly one of --questions or --minutes sets when\n" +
		"the interview ends.",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		resumeID, _ := cmd.Flags().GetString("resume")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		questions, _ := cmd.Flags().GetInt("questions")
		minutes, _ := cmd.Flags().GetInt("minutes")
		allowRepeats, _ := cmd.Flags().GetBool("allow-repeats")
		focusWeak, _ := cmd.Flags().GetBool("focus-weak")

		if !cmd.Flags().Changed("difficulty") && fileConfig.Interview.DefaultDifficulty != "" {
			difficulty = fileConfig.Interview.DefaultDifficulty
		}
		if questions == 0 && minutes == 0 && fileConfig.Interview.DefaultQuestions > 0 {
			questions = fileConfig.Interview.DefaultQuestions
		}

		cfg := interview.SessionConfig{
			Role:           role,
			Topics:         topics,
			ResumeID:       resumeID,
			Difficulty:     interview.Difficulty(difficulty),
			NumQuestions:   questions,
			TimeLimitMins:  minutes,
			NoRepeats:      !allowRepeats,
			FocusWeakAreas: focusWeak,
		}
		switch {
		case role != "":
			cfg.Mode = interview.ModeRole
		case len(topics) > 0:
			cfg.Mode = interview.ModeTopics
		case resumeID != "":
			cfg.Mode = interview.ModeResume
		default:
			return fmt.Errorf("one of --role, --topics, or --resume is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		// Session creation never touches the LLM, so no provider here.
		svc := interview.NewService(st.Interviews(), nil, nil)
		sess, err := svc.StartSession(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		fmt.Println(ui.Title.Render("Session created"))
		fmt.Printf("%s %s\n", ui.Label.Render("ID:"), sess.ID)
		fmt.Printf("%s %s\n", ui.Label.Render("Mode:"), describeMode(sess.Config))
		fmt.Printf("%s %s\n", ui.Label.Render("Difficulty:"), sess.Config.Difficulty)
		fmt.Printf("%s %s\n", ui.Label.Render("Ends after:"), describeLimit(sess.Config))
		fmt.Println()
		fmt.Println(ui.Hint.Render("Start it with: mockmate run " + sess.ID))
		return nil
	},
}

func init() {
	newCmd.Flags().String("role", "", "Target role, e.g. \"Backend Engineer\"")
	newCmd.Flags().StringSlice("topics", nil, "Comma-separated interview topics")
	newCmd.Flags().String("resume", "", "Resume ID from 'mockmate resume import'")
	newCmd.Flags().String("difficulty", "medium", "Question difficulty: easy, medium, or hard")
	newCmd.Flags().Int("questions", 0, "End after this many answered questions")
	newCmd.Flags().Int("minutes", 0, "End after this many minutes")
	newCmd.Flags().Bool("allow-repeats", false, "Allow questions similar to earlier sessions")
	newCmd.Flags().Bool("focus-weak", false, "Steer questions toward topics you are scoring low on")
}

func describeMode(cfg interview.SessionConfig) string {
	switch cfg.Mode {
	case interview.ModeRole:
		return "role (" + cfg.Role + ")"
	case interview.ModeTopics:
		return "topics (" + strings.Join(cfg.Topics, ", ") + ")"
	case interview.ModeResume:
		return "resume (" + cfg.ResumeID + ")"
	default:
		return string(cfg.Mode)
	}
}

func describeLimit(cfg interview.SessionConfig) string {
	if cfg.NumQuestions > 0 {
		return fmt.Sprintf("%d questions", cfg.NumQuestions)
	}
	return fmt.Sprintf("%d minutes", cfg.TimeLimitMins)
}
