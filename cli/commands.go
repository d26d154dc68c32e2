// Package cli provides the Cobra-based CLI for belshop.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"belshop/domain"
	"belshop/query"
	"belshop/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "belshop",
		Short: "Multi-retailer price comparison and wishlist manager",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject stores
			if catalogStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			kv, err := store.NewKV(
				viper.GetString("store"),
				viper.GetString("data-file"),
			)
			if err != nil {
				return err
			}
			catalogStore = store.NewCatalogStore(kv, slog.Default())
			profileStore = store.NewProfileStore(kv, slog.Default())
			return nil
		},
	}

	catalogStore *store.CatalogStore
	profileStore *store.ProfileStore
)

// warnPersistence downgrades persistence failures to a logged warning; the
// in-memory mutation has already been applied.
func warnPersistence(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsPersistenceError(err) {
		slog.Warn("state kept in memory only", "error", err)
		return nil
	}
	return err
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printProducts(products []domain.Product, output string) {
	if output == "json" {
		printJSON(products)
		return
	}
	for _, p := range products {
		fmt.Printf("%s | %s | %s | %.2f-%.2f | %.1f (%d reviews)\n",
			p.ID, p.Name, p.Category, p.LowestPrice(), p.HighestPrice(),
			p.AverageRating, p.ReviewCount)
	}
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("belshop> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "file", "store backend: memory|file")
	rootCmd.PersistentFlags().String("data-file", "data/belshop.json", "data file path")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("data-file", rootCmd.PersistentFlags().Lookup("data-file"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("BELSHOP")
	viper.AutomaticEnv()

	// list
	var lCategory, lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var products []domain.Product
			if lCategory != "" {
				cat, err := domain.ParseCategory(lCategory)
				if err != nil {
					return err
				}
				products = catalogStore.GetProducts(cat)
			} else {
				products = catalogStore.ListProducts()
			}
			printProducts(products, lOutput)
			return nil
		},
	}
	listCmd.Flags().StringVar(&lCategory, "category", "", "category filter")
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalogStore.GetProduct(args[0])
			if err != nil {
				if domain.IsNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			printJSON(p)
			for _, k := range p.SpecificationKeys() {
				fmt.Printf("%s: %s\n", k, p.Specifications[k])
			}
			return nil
		},
	}
	rootCmd.AddCommand(getCmd)

	// search
	var sOutput string
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name or description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) == 1 {
				q = args[0]
			}
			printProducts(catalogStore.SearchProducts(q), sOutput)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&sOutput, "output", "", "output format")
	rootCmd.AddCommand(searchCmd)

	// add
	var (
		aName, aDescription, aCategory, aRetailer string
		aPrice, aShipping                         float64
		aRating                                   float64
		aReviews, aDelivery, aDealDiscount        int
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if aName == "" {
				return errors.New("name required")
			}
			cat, err := domain.ParseCategory(aCategory)
			if err != nil {
				return err
			}
			p := domain.Product{
				ID:             uuid.NewString(),
				Name:           aName,
				Description:    aDescription,
				Category:       cat,
				AverageRating:  aRating,
				ReviewCount:    aReviews,
				Specifications: map[string]string{},
			}
			if aRetailer != "" {
				rp := domain.NewRetailerPrice(uuid.NewString(), aRetailer, aPrice)
				rp.ShippingCost = aShipping
				rp.DeliveryDays = aDelivery
				p.Prices = []domain.RetailerPrice{rp}
			}
			if cmd.Flags().Changed("deal-discount") {
				p.IsDeal = true
				p.DealDiscount = &aDealDiscount
			}
			if err := warnPersistence(catalogStore.AddProduct(p)); err != nil {
				slog.Error("add failed", "product_id", p.ID, "error", err)
				return err
			}
			slog.Info("product added", "product_id", p.ID)
			printJSON(p)
			return nil
		},
	}
	addCmd.Flags().StringVar(&aName, "name", "", "name")
	addCmd.Flags().StringVar(&aDescription, "description", "", "description")
	addCmd.Flags().StringVar(&aCategory, "category", "other", "category")
	addCmd.Flags().Float64Var(&aRating, "rating", 0, "average rating")
	addCmd.Flags().IntVar(&aReviews, "reviews", 0, "review count")
	addCmd.Flags().StringVar(&aRetailer, "retailer", "", "initial retailer name")
	addCmd.Flags().Float64Var(&aPrice, "price", 0, "initial retailer price")
	addCmd.Flags().Float64Var(&aShipping, "shipping", 0, "initial retailer shipping cost")
	addCmd.Flags().IntVar(&aDelivery, "delivery", 3, "initial retailer delivery days")
	addCmd.Flags().IntVar(&aDealDiscount, "deal-discount", 0, "deal discount percent")
	rootCmd.AddCommand(addCmd)

	// update
	var uName, uDescription, uCategory string
	var uRating float64
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			p, err := catalogStore.GetProduct(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = uName
			}
			if cmd.Flags().Changed("description") {
				p.Description = uDescription
			}
			if cmd.Flags().Changed("category") {
				cat, err := domain.ParseCategory(uCategory)
				if err != nil {
					return err
				}
				p.Category = cat
			}
			if cmd.Flags().Changed("rating") {
				p.AverageRating = uRating
			}

			if err := warnPersistence(catalogStore.UpdateProduct(p)); err != nil {
				slog.Error("update failed", "product_id", id, "error", err)
				return err
			}
			slog.Info("product updated", "product_id", id)
			printJSON(p)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&uName, "name", "", "name")
	updateCmd.Flags().StringVar(&uDescription, "description", "", "description")
	updateCmd.Flags().StringVar(&uCategory, "category", "", "category")
	updateCmd.Flags().Float64Var(&uRating, "rating", 0, "average rating")
	rootCmd.AddCommand(updateCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := warnPersistence(catalogStore.DeleteProduct(args[0])); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	registerDealCommands()
	registerWishlistCommands()
	registerUserCommands()
	registerTransferCommands()
}

func categoryFilter(name string) (*domain.Category, error) {
	if name == "" {
		return nil, nil
	}
	cat, err := domain.ParseCategory(name)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// compare lives with the deal commands; both render derived price views.
func registerDealCommands() {
	var dCategory, dSearch, dOutput string
	dealsCmd := &cobra.Command{
		Use:   "deals",
		Short: "List active deals by discount",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := categoryFilter(dCategory)
			if err != nil {
				return err
			}
			now := timeNow()
			deals := query.Deals(catalogStore.ListProducts(), now, query.DealFilter{
				Category: cat,
				Search:   dSearch,
			})
			if dOutput == "json" {
				printJSON(deals)
				return nil
			}
			for _, p := range deals {
				badge := ""
				if p.DealExpiryDate != nil {
					badge = " | " + query.TimeRemaining(now, *p.DealExpiryDate)
				}
				fmt.Printf("%s | %s | -%d%%%s\n", p.ID, p.Name, discountOf(p), badge)
			}
			return nil
		},
	}
	dealsCmd.Flags().StringVar(&dCategory, "category", "", "category filter")
	dealsCmd.Flags().StringVar(&dSearch, "search", "", "search filter")
	dealsCmd.Flags().StringVar(&dOutput, "output", "", "output format")

	expiringCmd := &cobra.Command{
		Use:   "expiring",
		Short: "List deals expiring within three days",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := timeNow()
			for _, p := range query.ExpiringSoon(catalogStore.ListProducts(), now) {
				fmt.Printf("%s | %s | %s\n", p.ID, p.Name,
					query.TimeRemaining(now, *p.DealExpiryDate))
			}
			return nil
		},
	}
	dealsCmd.AddCommand(expiringCmd)
	rootCmd.AddCommand(dealsCmd)

	compareCmd := &cobra.Command{
		Use:   "compare <productID>",
		Short: "Compare retailer prices for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := catalogStore.GetProduct(args[0])
			if err != nil {
				return err
			}
			c := query.ComparePrices(p)
			if !c.HasOffers {
				fmt.Println("no offers")
				return nil
			}
			for _, rp := range c.Sorted {
				marker := "  "
				if query.IsBestPrice(p, rp) {
					marker = "* "
				}
				fmt.Printf("%s%s | %.2f + %.2f = %.2f %s | %+.2f | %s | %d days\n",
					marker, rp.RetailerName, rp.Price, rp.ShippingCost,
					rp.TotalPrice(), rp.Currency, query.PriceDifference(p, rp),
					rp.Availability, rp.DeliveryDays)
			}
			fmt.Printf("selected: %s (%.2f total)\n",
				c.Selected.RetailerName, c.Selected.TotalPrice())
			return nil
		},
	}
	rootCmd.AddCommand(compareCmd)
}

func discountOf(p domain.Product) int {
	if p.DealDiscount == nil {
		return 0
	}
	return *p.DealDiscount
}

func Execute() error {
	return rootCmd.Execute()
}
