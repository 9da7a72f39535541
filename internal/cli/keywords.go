package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/amharic-ner/internal/keywords"
)

func init() {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Print the active keyword lists",
		Long:  "Print the keyword lists in effect (built-in or from --keywords) as TOML or YAML, e.g. to seed a keyword file.",
		Run:   runKeywords,
	}

	cmd.Flags().StringP("format", "f", string(keywords.TOML), "Output format (toml, yaml)")

	RootCmd.AddCommand(cmd)
}

func runKeywords(cmd *cobra.Command, args []string) {
	format, _ := cmd.Flags().GetString("format")

	kw, err := loadKeywords()
	if err != nil {
		exitErr("load keywords", err)
	}

	b, err := keywords.Marshal(kw, keywords.Format(format))
	if err != nil {
		exitErr("marshal", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
}
