package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete stored messages",
		Run:   runRm,
	}

	cmd.Flags().StringP("channel", "c", "", "Delete messages from this channel")
	cmd.Flags().Bool("all", false, "Delete every message (irreversible)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	channel, _ := cmd.Flags().GetString("channel")
	all, _ := cmd.Flags().GetBool("all")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Rm(cmd.Context(), store.RmParams{Channel: channel, All: all})
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"deleted":%d}`+"\n", n)
}
