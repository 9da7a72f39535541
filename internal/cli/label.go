package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/corpus"
	"github.com/rcliao/amharic-ner/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "label [text]",
		Short: "Label text and print CoNLL lines",
		Long: "Normalize and label text from the args, or one message per stdin line. " +
			"Output is one \"token TAG\" line per token with a blank line after each message.",
		Run: runLabel,
	}

	cmd.Flags().Bool("json", false, "Print token/tag pairs as JSON instead of CoNLL")
	cmd.Flags().IntP("workers", "w", 0, "Labeling workers (default: number of CPUs)")

	RootCmd.AddCommand(cmd)
}

func runLabel(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")
	workers, _ := cmd.Flags().GetInt("workers")

	texts, err := readMessages(cmd, args)
	if err != nil {
		exitErr("read input", err)
	}

	tg, err := loadTagger()
	if err != nil {
		exitErr("load keywords", err)
	}

	log := newLogger()
	defer log.Close()

	p := pipeline.New(tg, pipeline.WithLogger(log), pipeline.WithWorkers(workers))
	records, sum, err := p.LabelTexts(cmd.Context(), texts)
	if err != nil {
		exitErr("label", err)
	}
	if sum.Skipped > 0 {
		log.Warn("skipped messages with no usable text", "skipped", sum.Skipped)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		b, _ := json.MarshalIndent(records, "", "  ")
		fmt.Fprintln(out, string(b))
		return
	}

	cw := corpus.NewWriter(out)
	for _, r := range records {
		if err := cw.Write(r.Pairs); err != nil {
			exitErr("write", err)
		}
	}
	if err := cw.Flush(); err != nil {
		exitErr("write", err)
	}
}
