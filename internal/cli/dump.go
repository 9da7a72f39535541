package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump stored messages as JSON",
		Long:  "Dump every stored message as JSON, for backup or for import into another database.",
		Run:   runDump,
	}

	cmd.Flags().StringP("channel", "c", "", "Only this channel")

	RootCmd.AddCommand(cmd)
}

func runDump(cmd *cobra.Command, args []string) {
	channel, _ := cmd.Flags().GetString("channel")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	messages, err := s.ExportAll(cmd.Context(), channel)
	if err != nil {
		exitErr("dump", err)
	}

	b, _ := json.MarshalIndent(messages, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
