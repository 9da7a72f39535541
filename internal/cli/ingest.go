package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/ingest"
	"github.com/rcliao/amharic-ner/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest [file]",
		Short: "Store raw messages from a CSV or text file",
		Long: "Store raw messages for later normalization and export. CSV files are read from the " +
			"--column column; any other file (or stdin) is read one message per line. " +
			"Messages already stored for the channel are skipped.",
		Args: cobra.MaximumNArgs(1),
		Run:  runIngest,
	}

	cmd.Flags().StringP("channel", "c", "", "Channel the messages came from")
	cmd.Flags().String("column", ingest.DefaultColumn, "CSV column holding the message text")

	RootCmd.AddCommand(cmd)
}

func runIngest(cmd *cobra.Command, args []string) {
	channel, _ := cmd.Flags().GetString("channel")
	column, _ := cmd.Flags().GetString("column")

	var texts []string
	var err error
	if len(args) == 1 {
		texts, err = ingest.ReadFile(args[0], column)
	} else {
		texts, err = ingest.ReadLines(os.Stdin)
	}
	if err != nil {
		exitErr("read messages", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	inserted, err := s.Add(cmd.Context(), store.AddParams{Channel: channel, Texts: texts})
	if err != nil {
		exitErr("ingest", err)
	}

	log := newLogger()
	defer log.Close()
	log.Info("ingested messages", "channel", channel, "read", len(texts), "inserted", inserted)

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"read":%d,"inserted":%d}`+"\n", len(texts), inserted)
}
