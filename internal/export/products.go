// Package export renders catalog data as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"silktouch/internal/models"

	"github.com/tealeg/xlsx"
)

// ContentTypeXLSX is the MIME type of the workbook written by WriteProducts.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var productHeaders = []string{
	"ID", "Name", "Description", "Price", "Category", "Subcategory", "Brand",
	"Sizes", "Colors", "Stock", "Featured", "Rating", "Tags", "Images", "CreatedAt",
}

// WriteProducts writes a single-sheet workbook with one row per product.
func WriteProducts(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range productHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.Subcategory)
		row.AddCell().SetValue(p.Brand)
		row.AddCell().SetValue(strings.Join(p.Sizes, ","))
		row.AddCell().SetValue(strings.Join(p.Colors, ","))
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetBool(p.Featured)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(strings.Join(p.Tags, ","))
		row.AddCell().SetValue(strings.Join(p.Images, ","))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
