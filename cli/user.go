package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"belshop/domain"
)

func registerUserCommands() {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the local profile",
	}

	var cUsername, cEmail string
	var cFavorites []string
	userCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cUsername == "" {
				return errors.New("username required")
			}
			favorites := make([]domain.Category, 0, len(cFavorites))
			for _, f := range cFavorites {
				cat, err := domain.ParseCategory(f)
				if err != nil {
					return err
				}
				favorites = append(favorites, cat)
			}
			u, err := profileStore.CreateUser(cUsername, cEmail, favorites)
			if err := warnPersistence(err); err != nil {
				return err
			}
			slog.Info("user created", "user_id", u.ID)
			printJSON(u)
			return nil
		},
	}
	userCreateCmd.Flags().StringVar(&cUsername, "username", "", "username")
	userCreateCmd.Flags().StringVar(&cEmail, "email", "", "email")
	userCreateCmd.Flags().StringSliceVar(&cFavorites, "favorites", nil, "favorite categories")
	userCmd.AddCommand(userCreateCmd)

	userShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := profileStore.CurrentUser()
			if !ok {
				fmt.Fprintln(os.Stderr, "no user; run: user create")
				return nil
			}
			printJSON(u)
			return nil
		},
	}
	userCmd.AddCommand(userShowCmd)

	var pCurrency, pLanguage string
	var pDarkMode bool
	var pMaxShipping float64
	var pRetailers []string
	userPrefsCmd := &cobra.Command{
		Use:   "set-prefs",
		Short: "Update preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := profileStore.CurrentUser()
			if !ok {
				fmt.Fprintln(os.Stderr, "no user; run: user create")
				return nil
			}
			prefs := u.Preferences
			if cmd.Flags().Changed("currency") {
				prefs.Currency = pCurrency
			}
			if cmd.Flags().Changed("language") {
				prefs.Language = pLanguage
			}
			if cmd.Flags().Changed("dark-mode") {
				prefs.DarkModeEnabled = pDarkMode
			}
			if cmd.Flags().Changed("max-shipping") {
				prefs.MaxShippingCost = &pMaxShipping
			}
			if cmd.Flags().Changed("retailers") {
				prefs.PreferredRetailers = pRetailers
			}
			if err := warnPersistence(profileStore.UpdatePreferences(prefs)); err != nil {
				return err
			}
			printJSON(prefs)
			return nil
		},
	}
	userPrefsCmd.Flags().StringVar(&pCurrency, "currency", "", "currency code")
	userPrefsCmd.Flags().StringVar(&pLanguage, "language", "", "language code")
	userPrefsCmd.Flags().BoolVar(&pDarkMode, "dark-mode", false, "dark mode")
	userPrefsCmd.Flags().Float64Var(&pMaxShipping, "max-shipping", 0, "max shipping cost")
	userPrefsCmd.Flags().StringSliceVar(&pRetailers, "retailers", nil, "preferred retailers")
	userCmd.AddCommand(userPrefsCmd)

	var nDeals, nPriceDrops, nWishlist, nDigest bool
	userNotifyCmd := &cobra.Command{
		Use:   "set-notifications",
		Short: "Update notification toggles",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := profileStore.CurrentUser()
			if !ok {
				fmt.Fprintln(os.Stderr, "no user; run: user create")
				return nil
			}
			n := u.NotificationSettings
			if cmd.Flags().Changed("deals") {
				n.DealAlertsEnabled = nDeals
			}
			if cmd.Flags().Changed("price-drops") {
				n.PriceDropAlertsEnabled = nPriceDrops
			}
			if cmd.Flags().Changed("wishlist") {
				n.WishlistUpdatesEnabled = nWishlist
			}
			if cmd.Flags().Changed("digest") {
				n.WeeklyDigestEnabled = nDigest
			}
			if err := warnPersistence(profileStore.UpdateNotificationSettings(n)); err != nil {
				return err
			}
			printJSON(n)
			return nil
		},
	}
	userNotifyCmd.Flags().BoolVar(&nDeals, "deals", true, "deal alerts")
	userNotifyCmd.Flags().BoolVar(&nPriceDrops, "price-drops", true, "price drop alerts")
	userNotifyCmd.Flags().BoolVar(&nWishlist, "wishlist", true, "wishlist updates")
	userNotifyCmd.Flags().BoolVar(&nDigest, "digest", false, "weekly digest")
	userCmd.AddCommand(userNotifyCmd)

	favCmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite categories",
	}
	favAddCmd := &cobra.Command{
		Use:   "add <category>",
		Short: "Add a favorite category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			return warnPersistence(profileStore.AddFavoriteCategory(cat))
		},
	}
	favRemoveCmd := &cobra.Command{
		Use:   "remove <category>",
		Short: "Remove a favorite category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := domain.ParseCategory(args[0])
			if err != nil {
				return err
			}
			return warnPersistence(profileStore.RemoveFavoriteCategory(cat))
		},
	}
	favCmd.AddCommand(favAddCmd, favRemoveCmd)
	userCmd.AddCommand(favCmd)

	userLogoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return warnPersistence(profileStore.Logout())
		},
	}
	userCmd.AddCommand(userLogoutCmd)

	rootCmd.AddCommand(userCmd)

	var resetForce bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Log out and restore the seeded catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resetForce {
				fmt.Print("Reset account and catalog? (y/N): ")
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := warnPersistence(profileStore.ResetAccount(catalogStore)); err != nil {
				return err
			}
			fmt.Println("reset done")
			return nil
		},
	}
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
