package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the labeled corpus in CoNLL format",
		Long: "Normalize any raw stored messages, label every normalized message and write " +
			"the corpus to --output. Messages with no usable text are left out.",
		Run: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (required)")
	cmd.Flags().StringP("channel", "c", "", "Only this channel")
	cmd.Flags().IntP("limit", "l", 0, "Max messages (0 = all)")
	cmd.Flags().IntP("workers", "w", 0, "Labeling workers (default: number of CPUs)")

	cmd.MarkFlagRequired("output")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	output, _ := cmd.Flags().GetString("output")
	channel, _ := cmd.Flags().GetString("channel")
	limit, _ := cmd.Flags().GetInt("limit")
	workers, _ := cmd.Flags().GetInt("workers")

	tg, err := loadTagger()
	if err != nil {
		exitErr("load keywords", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	log := newLogger()
	defer log.Close()

	p := pipeline.New(tg, pipeline.WithLogger(log), pipeline.WithWorkers(workers))
	sum, err := p.Export(cmd.Context(), s, pipeline.ExportParams{
		Path:    output,
		Channel: channel,
		Limit:   limit,
	})
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.Marshal(struct {
		OK   bool   `json:"ok"`
		Path string `json:"path"`
		pipeline.Summary
	}{true, output, sum})
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
