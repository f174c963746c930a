package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mockmate/mockmate/internal/llm"
	"github.com/mockmate/mockmate/internal/resume"
	"github.com/mockmate/mockmate/internal/ui"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage imported resumes",
}

var resumeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a resume text file and extract a candidate profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read resume: %w", err)
		}
		rawText := string(data)
		if err := resume.Validate(rawText); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.LLMCalls())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		profiler := resume.New(provider, resume.DefaultConfig())
		profile, rawProfile, err := profiler.Extract(ctx, rawText)
		if err != nil {
			return fmt.Errorf("extract profile: %w", err)
		}

		id, err := st.Interviews().CreateResume(ctx, rawText, rawProfile)
		if err != nil {
			return err
		}

		fmt.Println(ui.Title.Render("Resume imported"))
		fmt.Printf("%s %s\n", ui.Label.Render("ID:"), id)
		if profile.Name != nil {
			fmt.Printf("%s %s\n", ui.Label.Render("Candidate:"), *profile.Name)
		}
		if len(profile.TargetRoles) > 0 {
			fmt.Printf("%s %s\n", ui.Label.Render("Target roles:"), strings.Join(profile.TargetRoles, ", "))
		}
		if len(profile.FocusTopics) > 0 {
			fmt.Printf("%s %s\n", ui.Label.Render("Focus topics:"), strings.Join(profile.FocusTopics, ", "))
		}
		fmt.Println()
		fmt.Println(ui.Hint.Render("Interview against it with: mockmate new --resume " + id + " --questions 5"))
		return nil
	},
}

func init() {
	resumeCmd.AddCommand(resumeImportCmd)
}
