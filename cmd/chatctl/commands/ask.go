package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"customer-support-agent/internal/model"
)

var (
	askUserID string
	askJSON   bool
	askTrace  bool
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Run one message through the support pipeline",
	Example: `  chatctl ask "Where's my order ORD12345?"
  chatctl ask --trace "I was charged twice"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askUserID, "user", "cli", "Customer identifier")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the full stage results as JSON")
	askCmd.Flags().BoolVar(&askTrace, "trace", false, "Print per-stage timings")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, _, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	pc, err := a.Pipeline.Process(ctx, model.Request{
		Text:     strings.Join(args, " "),
		UserID:   askUserID,
		Metadata: map[string]string{"channel": "cli"},
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if askJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(pc)
	}

	fmt.Fprintln(out, pc.Reply())
	fmt.Fprintf(out, "\nintent=%s category=%s sentiment=%s urgency=%s escalate=%t\n",
		pc.Intent.Value, pc.Category.Value, pc.Sentiment.Value.Sentiment, pc.Sentiment.Value.Urgency,
		pc.Escalation.Value.ShouldEscalate)

	if askTrace {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STAGE\tDURATION\tDEGRADED\tERROR")
		for _, t := range pc.Trace {
			fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", t.Stage, t.Duration, t.Degraded, t.Error)
		}
		return w.Flush()
	}
	return nil
}
