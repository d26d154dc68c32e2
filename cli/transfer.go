package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"belshop/domain"
	"belshop/query"
)

func registerTransferCommands() {
	// import
	var importFile string
	importCmd := &cobra.Command{
		Use:   "import --file <file>",
		Short: "Import products from JSON or NDJSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if importFile == "" {
				return errors.New("--file required")
			}

			b, err := os.ReadFile(importFile)
			if err != nil {
				return err
			}

			btrim := bytes.TrimSpace(b)
			if len(btrim) == 0 {
				return errors.New("empty file")
			}

			var products []domain.Product

			// JSON array
			if btrim[0] == '[' {
				if err := json.Unmarshal(btrim, &products); err != nil {
					return err
				}
			} else {
				// NDJSON or single JSON object
				scanner := bufio.NewScanner(bytes.NewReader(btrim))
				for scanner.Scan() {
					line := bytes.TrimSpace(scanner.Bytes())
					if len(line) == 0 {
						continue
					}
					var p domain.Product
					if err := json.Unmarshal(line, &p); err != nil {
						return err
					}
					products = append(products, p)
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			imported := 0
			for _, p := range products {
				if err := warnPersistence(catalogStore.AddProduct(p)); err != nil {
					slog.Error("import rejected", "product", p.Name, "error", err)
					return err
				}
				imported++
			}
			slog.Info("import finished", "count", imported)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFile, "file", "", "input file")
	rootCmd.AddCommand(importCmd)

	// export
	var exportFile, exportCategory, exportFormat string
	exportCmd := &cobra.Command{
		Use:   "export --file <file>",
		Short: "Export the catalog to JSON or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exportFile == "" {
				return errors.New("--file required")
			}
			var products []domain.Product
			if exportCategory != "" {
				cat, err := domain.ParseCategory(exportCategory)
				if err != nil {
					return err
				}
				products = catalogStore.GetProducts(cat)
			} else {
				products = catalogStore.ListProducts()
			}
			switch exportFormat {
			case "", "json":
				b, _ := json.MarshalIndent(products, "", "  ")
				return os.WriteFile(exportFile, b, 0o644)
			case "xlsx":
				return exportXLSX(exportFile, products)
			default:
				return fmt.Errorf("unknown export format: %s", exportFormat)
			}
		},
	}
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output file")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "category")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "format: json|xlsx")
	rootCmd.AddCommand(exportCmd)
}

// exportXLSX writes one row per retailer offer, flagging each product's best
// retailer, so the sheet doubles as a price-comparison table.
func exportXLSX(path string, products []domain.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{
		"Product", "Category", "Retailer", "Price", "Shipping",
		"Total", "Availability", "Delivery days", "Best price",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, p := range products {
		for _, rp := range query.ComparePrices(p).Sorted {
			best := ""
			if query.IsBestPrice(p, rp) {
				best = "yes"
			}
			values := []interface{}{
				p.Name, string(p.Category), rp.RetailerName, rp.Price,
				rp.ShippingCost, rp.TotalPrice(), string(rp.Availability),
				rp.DeliveryDays, best,
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return f.SaveAs(path)
}
