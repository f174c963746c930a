package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mockmate/mockmate/internal/evaluation"
	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/ui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <session-id>",
	Short: "Run an interview session interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := buildService(ctx, st)
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		var opts interview.AdvanceOptions
		dupRetries := 0

		for {
			sess, err := svc.Session(ctx, sessionID)
			if err != nil {
				return err
			}
			if sess.Status.Terminal() {
				break
			}
			if sess.Expired(time.Now()) {
				fmt.Println()
				fmt.Println(ui.Subtitle.Render("Time is up."))
				break
			}

			turn, err := svc.AdvanceTurn(ctx, sessionID, opts)
			opts = interview.AdvanceOptions{}
			if err != nil {
				if errors.Is(err, interview.ErrDuplicateQuestion) && dupRetries < 2 {
					dupRetries++
					fmt.Println(ui.Hint.Render("Could not come up with a fresh question; trying again..."))
					continue
				}
				return err
			}
			if turn.Done {
				break
			}

			printQuestion(turn)

			answerText := readAnswer(reader)
			if answerText == "" {
				fmt.Println(ui.Hint.Render("Session paused. Resume anytime with: mockmate run " + sessionID))
				return nil
			}

			answer, err := svc.RecordAnswer(ctx, sessionID, turn.Question.ID, answerText)
			if err != nil {
				return err
			}
			printEvaluation(answer.Evaluation)

			// Low evaluator confidence means the score may not reflect
			// real understanding; offer to probe before moving on.
			if answer.Evaluation.Confidence == evaluation.ConfidenceLow && !turn.Question.IsFollowUp {
				if confirm(reader, "Probe deeper with a follow-up?") {
					opts.FollowUpTo = turn.Question.ID
				}
			}
		}

		fmt.Println()
		report, err := svc.Report(ctx, sessionID)
		if err != nil {
			if errors.Is(err, interview.ErrNoScorableQuestions) {
				fmt.Println(ui.Subtitle.Render("No answers were recorded, so there is nothing to report."))
				return nil
			}
			return err
		}
		printReport(report)
		return nil
	},
}

func printQuestion(turn *interview.Turn) {
	q := turn.Question

	fmt.Println()
	header := fmt.Sprintf("Question %d of %d", turn.Number, turn.Total)
	if q.IsFollowUp {
		header = fmt.Sprintf("Follow-up to question %d", turn.Number)
	}
	fmt.Println(ui.Title.Render(header) + "  " + ui.Subtitle.Render("["+q.Topic+"]"))
	fmt.Println(ui.QuestionCard.Render(q.Text))
	fmt.Println(ui.Hint.Render("Type your answer; finish with an empty line. An empty answer pauses the session."))
}

// readAnswer reads lines until a blank line, returning the joined text.
func readAnswer(reader *bufio.Reader) string {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" || err != nil {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func confirm(reader *bufio.Reader, prompt string) bool {
	fmt.Print(ui.Body.Render(prompt+" [y/N] "))
	line, _ := reader.ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printEvaluation(eval *interview.Evaluation) {
	fmt.Println()
	fmt.Printf("%s %s  %s\n", ui.Label.Render("Score:"), ui.Score(eval.Score), ui.Subtitle.Render("confidence: "+string(eval.Confidence)))
	for _, s := range eval.Strengths {
		fmt.Println(ui.Body.Render("  + " + s))
	}
	for _, m := range eval.MissingPoints {
		fmt.Println(ui.Subtitle.Render("  - " + m))
	}
	if eval.Feedback != "" {
		fmt.Println(ui.Body.Render(eval.Feedback))
	}
}

func printReport(r *interview.Report) {
	fmt.Println(ui.Title.Render("Interview Report"))
	fmt.Printf("%s %.1f/10\n", ui.Label.Render("Overall:"), r.OverallScore)

	fmt.Println()
	fmt.Println(ui.Label.Render("By topic (weakest first):"))
	for _, ts := range r.TopicScores {
		fmt.Printf("  %-24s %.1f/10 (%d questions)\n", ts.Topic, ts.AvgScore, ts.QuestionCount)
	}

	if len(r.Strengths) > 0 {
		fmt.Println()
		fmt.Println(ui.Label.Render("Strengths:"))
		for _, s := range r.Strengths {
			fmt.Println(ui.Body.Render("  + " + s))
		}
	}
	if len(r.Weaknesses) > 0 {
		fmt.Println()
		fmt.Println(ui.Label.Render("Gaps:"))
		for _, w := range r.Weaknesses {
			fmt.Println(ui.Subtitle.Render("  - " + w))
		}
	}

	fmt.Println()
	fmt.Println(ui.Label.Render("Next steps:"))
	for _, tip := range r.ImprovementTips {
		fmt.Println(ui.Body.Render("  * " + tip))
	}
}
