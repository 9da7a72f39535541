package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored messages",
		Run:   runList,
	}

	cmd.Flags().StringP("channel", "c", "", "Filter by channel")
	cmd.Flags().StringP("status", "s", "", "Filter by status (raw, normalized, empty)")
	cmd.Flags().IntP("limit", "l", 20, "Max results (0 = all)")
	cmd.Flags().Bool("text-only", false, "Only output message text, one per line")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	channel, _ := cmd.Flags().GetString("channel")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	textOnly, _ := cmd.Flags().GetBool("text-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	messages, err := s.List(cmd.Context(), store.ListParams{
		Channel: channel,
		Status:  status,
		Limit:   limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	out := cmd.OutOrStdout()
	if textOnly {
		for _, m := range messages {
			fmt.Fprintln(out, m.Text)
		}
		return
	}

	if len(messages) == 0 {
		fmt.Fprintln(out, "[]")
		return
	}
	b, _ := json.MarshalIndent(messages, "", "  ")
	fmt.Fprintln(out, string(b))
}
