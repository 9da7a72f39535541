package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/normalize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "explain [text]",
		Short: "Show which rule tagged each token",
		Run:   runExplain,
	}

	RootCmd.AddCommand(cmd)
}

func runExplain(cmd *cobra.Command, args []string) {
	texts, err := readMessages(cmd, args)
	if err != nil {
		exitErr("read input", err)
	}

	tg, err := loadTagger()
	if err != nil {
		exitErr("load keywords", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	for n, text := range texts {
		if n > 0 {
			fmt.Fprintln(w)
		}
		clean, ok := normalize.Normalize(text)
		if !ok {
			fmt.Fprintln(w, "(no usable text)")
			continue
		}

		tokens := normalize.Tokens(clean)
		fmt.Fprintln(w, "#\tTOKEN\tTAG\tRULE")
		for i, p := range tg.Label(tokens) {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, p.Token, p.Tag, tg.Rule(tokens, i))
		}
	}
}
