package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the standard income and expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCategories(cmd.OutOrStdout())
		},
	}
}

func printCategories(w io.Writer) error {
	for _, kind := range []model.Kind{model.KindIncome, model.KindExpense} {
		if _, err := fmt.Fprintf(w, "%s: %s\n", kind, strings.Join(model.Categories(kind), ", ")); err != nil {
			return err
		}
	}
	return nil
}
