package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presstools/core/catalog"
	"github.com/presstools/core/logging"
	"github.com/presstools/core/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New(logging.NewLogger("registry"))
			catalog.RegisterAll(reg)

			opts := GetOptions(cmd)
			if opts.JSONOutput {
				data, err := json.MarshalIndent(reg.Names(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			for _, name := range reg.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
