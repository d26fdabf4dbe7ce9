// Package output provides utilities for formatting and displaying mortgage quotes.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var header = []string{"Mortgage", "Price", "Down Payment", "Rate", "Years", "Schedule", "Payment", "Per Year", "Notes"}

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []quote.Quote) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, result := range results {
		req := result.Request
		row := []string{
			result.Name,
			p.Sprintf("$%.2f", req.PropertyPrice),
			p.Sprintf("$%.2f", req.DownPayment),
			p.Sprintf("%.3f%%", req.InterestRatePercent),
			strconv.Itoa(req.AmortizationPeriodYears),
			req.PaySchedule,
		}
		if result.OK() {
			row = append(row, p.Sprintf("$%.2f", result.Payment), p.Sprintf("$%.2f", result.AnnualPayments), "")
		} else {
			row = append(row, "-", "-", result.Err.Error())
		}
		table.Append(row)
	}

	table.Render()
}

// CsvFormat writes comma-separated values.
func CsvFormat(w io.Writer, results []quote.Quote) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, result := range results {
		req := result.Request
		record := []string{
			result.Name,
			formatFloat(req.PropertyPrice),
			formatFloat(req.DownPayment),
			formatFloat(req.InterestRatePercent),
			strconv.Itoa(req.AmortizationPeriodYears),
			req.PaySchedule,
		}
		if result.OK() {
			record = append(record, fmt.Sprintf("%.2f", result.Payment), fmt.Sprintf("%.2f", result.AnnualPayments), "")
		} else {
			record = append(record, "", "", result.Err.Error())
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record for %s: %w", result.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
