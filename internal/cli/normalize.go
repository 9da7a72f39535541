package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/normalize"
	"github.com/rcliao/amharic-ner/internal/pipeline"
)

func init() {
	cmd := &cobra.Command{
		Use:   "normalize [text]",
		Short: "Normalize text, or every raw stored message",
		Long: "Strip everything but Ethiopic letters, digits and '/' and collapse whitespace. " +
			"Text comes from the args or one message per stdin line; messages with nothing " +
			"usable print an empty line. With --stored, raw messages in the database are " +
			"normalized in place instead.",
		Run: runNormalize,
	}

	cmd.Flags().Bool("stored", false, "Normalize raw messages in the database")
	cmd.Flags().StringP("channel", "c", "", "Only this channel (with --stored)")

	RootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) {
	stored, _ := cmd.Flags().GetBool("stored")
	if stored {
		runNormalizeStored(cmd)
		return
	}

	texts, err := readMessages(cmd, args)
	if err != nil {
		exitErr("read input", err)
	}

	out := cmd.OutOrStdout()
	for _, text := range texts {
		clean, _ := normalize.Normalize(text)
		fmt.Fprintln(out, clean)
	}
}

func runNormalizeStored(cmd *cobra.Command) {
	channel, _ := cmd.Flags().GetString("channel")

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

	res, err := pipeline.New(tg, pipeline.WithLogger(log)).NormalizeStored(cmd.Context(), s, channel)
	if err != nil {
		exitErr("normalize", err)
	}

	b, _ := json.Marshal(res)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
