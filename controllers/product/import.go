package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/therafiali/woocommerce-storefront/models"
	"github.com/therafiali/woocommerce-storefront/wc"
)

// ImportProductsFromExcel creates one catalog product per sheet row through
// the remote API. Expected columns: Name, RegularPrice, Description,
// ShortDescription, StockStatus.
// POST /admin/products/import
func ImportProductsFromExcel(client *wc.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, skippedCount := 0, 0
		var failures []string

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			name := get(0)
			regularPrice := get(1)

			if name == "" {
				skippedCount++
				continue
			}
			if _, err := strconv.ParseFloat(regularPrice, 64); err != nil {
				skippedCount++
				continue
			}

			draft := models.ProductDraft{
				Name:             name,
				RegularPrice:     regularPrice,
				Description:      get(2),
				ShortDescription: get(3),
				StockStatus:      get(4),
			}

			if _, err := client.CreateProduct(draft); err != nil {
				failures = append(failures, name+": "+err.Error())
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"skipped_count": skippedCount,
			"failures":      failures,
		})
	}
}
