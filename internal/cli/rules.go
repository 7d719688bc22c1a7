package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpeirce/logipair/internal/generate"
	"github.com/mpeirce/logipair/internal/rules"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the supported inference rules and their fallacies",
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tFALLACY\tCATEGORY\tSENTENCES")
	for _, name := range rules.AllRuleNames() {
		rule, err := rules.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", rule.Name, rule.FallacyName, rule.Category, rule.SentenceCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nPresets: %v\n", generate.PresetNames())
	return nil
}
