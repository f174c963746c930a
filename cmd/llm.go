package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mockmate/mockmate/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		calls, err := st.LLMCalls().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query calls: %w", err)
		}
		if len(calls) == 0 {
			fmt.Println("No LLM calls recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, c := range calls {
			if purpose != "" && c.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !c.Success {
				ok = "✗"
			}
			model := c.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				c.ID,
				c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				c.Purpose,
				model,
				c.InputTokens,
				c.OutputTokens,
				c.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := st.LLMCalls().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get call: %w", err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", c.ID)
		fmt.Printf("Time:      %s\n", c.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", c.Provider)
		fmt.Printf("Model:     %s\n", c.Model)
		fmt.Printf("Purpose:   %s\n", c.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", c.InputTokens, c.OutputTokens)
		fmt.Printf("Latency:   %dms\n", c.LatencyMs)
		fmt.Printf("Success:   %v\n", c.Success)
		if c.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", c.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		if c.RequestBody != "" {
			fmt.Println(c.RequestBody)
		} else {
			fmt.Println("(not captured)")
		}

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		if c.ResponseBody != "" {
			fmt.Println(c.ResponseBody)
		} else {
			fmt.Println("(not captured)")
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		calls, err := st.LLMCalls().Recent(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("query calls: %w", err)
		}
		if len(calls) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		printUsageByPurpose(calls)
		printCostByModel(calls)
		return nil
	},
}

type usageAgg struct {
	calls        int
	inputTokens  int
	outputTokens int
	latencySumMs int64
}

func printUsageByPurpose(calls []*llm.LLMCall) {
	byPurpose := map[string]*usageAgg{}
	var order []string
	for _, c := range calls {
		a := byPurpose[c.Purpose]
		if a == nil {
			a = &usageAgg{}
			byPurpose[c.Purpose] = a
			order = append(order, c.Purpose)
		}
		a.calls++
		a.inputTokens += c.InputTokens
		a.outputTokens += c.OutputTokens
		a.latencySumMs += c.LatencyMs
	}
	sort.Strings(order)

	fmt.Println("Usage by Purpose")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Println(strings.Repeat("─", 72))

	var totalCalls, totalIn, totalOut int
	for _, purpose := range order {
		a := byPurpose[purpose]
		total := a.inputTokens + a.outputTokens
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
			purpose, a.calls, a.inputTokens, a.outputTokens, total, a.latencySumMs/int64(a.calls))
		totalCalls += a.calls
		totalIn += a.inputTokens
		totalOut += a.outputTokens
	}

	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
		"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)
}

func printCostByModel(calls []*llm.LLMCall) {
	byModel := map[string]*usageAgg{}
	var order []string
	for _, c := range calls {
		a := byModel[c.Model]
		if a == nil {
			a = &usageAgg{}
			byModel[c.Model] = a
			order = append(order, c.Model)
		}
		a.calls++
		a.inputTokens += c.InputTokens
		a.outputTokens += c.OutputTokens
	}
	sort.Strings(order)

	fmt.Println()
	fmt.Println("Estimated Cost by Model")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-36s  %6s  %10s  %10s\n", "Model", "Calls", "Tokens", "Cost")
	fmt.Println(strings.Repeat("─", 72))

	var totalCost float64
	for _, model := range order {
		a := byModel[model]
		cost := "n/a"
		if mc := llm.LookupCost(model); mc != nil {
			c := mc.Cost(a.inputTokens, a.outputTokens)
			totalCost += c
			cost = fmt.Sprintf("$%.4f", c)
		}
		fmt.Printf("%-36s  %6d  %10d  %10s\n",
			model, a.calls, a.inputTokens+a.outputTokens, cost)
	}

	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-36s  %6s  %10s  %10s\n", "TOTAL", "", "", fmt.Sprintf("$%.4f", totalCost))
}

func init() {
	llmListCmd.Flags().Int("limit", 50, "Maximum number of calls to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (question-gen, answer-eval, resume-profile)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
