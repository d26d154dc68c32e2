package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"belshop/domain"
	"belshop/query"
)

func registerWishlistCommands() {
	var wCategory, wSearch, wSort, wOutput string
	wishlistCmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := categoryFilter(wCategory)
			if err != nil {
				return err
			}
			sortOpt, err := query.ParseSortOption(wSort)
			if err != nil {
				return err
			}
			products := query.WishlistView(
				catalogStore.GetWishlistProducts(),
				catalogStore.WishlistItems(),
				query.WishlistFilter{Category: cat, Search: wSearch, Sort: sortOpt},
			)
			if wOutput == "json" {
				printJSON(products)
				return nil
			}
			for _, p := range products {
				it, _ := catalogStore.WishlistItemFor(p.ID)
				fmt.Printf("%s | %s | %.2f | %s | %s\n",
					p.ID, p.Name, p.LowestPrice(), it.Priority, it.Notes)
			}
			return nil
		},
	}
	wishlistCmd.Flags().StringVar(&wCategory, "category", "", "category filter")
	wishlistCmd.Flags().StringVar(&wSearch, "search", "", "search filter")
	wishlistCmd.Flags().StringVar(&wSort, "sort", "", "sort: dateAdded|priceAsc|priceDesc|name|priority")
	wishlistCmd.Flags().StringVar(&wOutput, "output", "", "output format")

	var addNotes, addPriority string
	wishlistAddCmd := &cobra.Command{
		Use:   "add <productID>",
		Short: "Add a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prio, err := domain.ParsePriority(addPriority)
			if err != nil {
				return err
			}
			if err := warnPersistence(catalogStore.AddToWishlist(args[0], addNotes, prio)); err != nil {
				return err
			}
			slog.Info("added to wishlist", "product_id", args[0])
			return nil
		},
	}
	wishlistAddCmd.Flags().StringVar(&addNotes, "notes", "", "notes")
	wishlistAddCmd.Flags().StringVar(&addPriority, "priority", "", "priority: high|medium|low")
	wishlistCmd.AddCommand(wishlistAddCmd)

	wishlistRemoveCmd := &cobra.Command{
		Use:   "remove <productID>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := warnPersistence(catalogStore.RemoveFromWishlist(args[0])); err != nil {
				return err
			}
			slog.Info("removed from wishlist", "product_id", args[0])
			return nil
		},
	}
	wishlistCmd.AddCommand(wishlistRemoveCmd)

	var updNotes, updPriority string
	wishlistUpdateCmd := &cobra.Command{
		Use:   "update <productID>",
		Short: "Update a wishlist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, ok := catalogStore.WishlistItemFor(args[0])
			if !ok {
				fmt.Fprintln(os.Stderr, "not on wishlist:", args[0])
				return nil
			}
			if cmd.Flags().Changed("notes") {
				it.Notes = updNotes
			}
			if cmd.Flags().Changed("priority") {
				prio, err := domain.ParsePriority(updPriority)
				if err != nil {
					return err
				}
				it.Priority = prio
			}
			if err := warnPersistence(catalogStore.UpdateWishlistItem(it)); err != nil {
				return err
			}
			printJSON(it)
			return nil
		},
	}
	wishlistUpdateCmd.Flags().StringVar(&updNotes, "notes", "", "notes")
	wishlistUpdateCmd.Flags().StringVar(&updPriority, "priority", "", "priority: high|medium|low")
	wishlistCmd.AddCommand(wishlistUpdateCmd)

	rootCmd.AddCommand(wishlistCmd)
}
