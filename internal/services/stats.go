package services

import (
	"fmt"
	"time"

	"github.com/harentsoaR/stayvista-api/internal/models"
)

var saleDateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// BuildSalesReport sums the sales and builds the chart series
// [["Day","Sales"], ["<day>/<month>", price], ...] in input order.
func BuildSalesReport(sales []models.Sale) models.SalesReport {
	report := models.SalesReport{
		TotalBookings: len(sales),
		ChartData:     [][]interface{}{{"Day", "Sales"}},
	}
	for _, sale := range sales {
		report.TotalPrice += sale.Price
		report.ChartData = append(report.ChartData, []interface{}{chartLabel(sale.Date), sale.Price})
	}
	return report
}

func chartLabel(date string) string {
	for _, layout := range saleDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
		}
	}
	return date
}
