// Package export renders the order log and the finance report as CSV and
// XLSX files. It only reads what the report use case returns.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"checkmaster/internal/domain/entities"
	"checkmaster/internal/domain/report"

	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	FinanceSheet = "Financeiro"
	OrdersSheet  = "Vistorias"

	dateLayout = "02/01/2006"
)

var (
	financeHeader = []string{"Cliente", "Total", "Vistorias", "Ultima Atividade"}
	ordersHeader  = []string{"Data", "Placa", "Checklist", "Cliente", "Valor"}
)

// FinanceCSV writes one line per client.
func FinanceCSV(w io.Writer, summaries []report.ClientSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(financeHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{
			s.ClientName,
			s.Total.StringFixed(2),
			strconv.Itoa(s.Count),
			formatDate(s.LastDate),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// OrdersCSV writes one line per order in log order.
func OrdersCSV(w io.Writer, orders []entities.ServiceOrder) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ordersHeader); err != nil {
		return err
	}
	for _, o := range orders {
		if err := cw.Write([]string{
			formatDate(o.Date),
			o.Vehicle.Placa,
			o.TemplateName,
			o.ClientName,
			o.TotalValue.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FinanceXLSX writes a workbook with the per-client summary and the orders
// behind it on a second sheet.
func FinanceXLSX(w io.Writer, summaries []report.ClientSummary, orders []entities.ServiceOrder) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FinanceSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(OrdersSheet); err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := writeRow(f, FinanceSheet, 1, toRow(financeHeader)); err != nil {
		return err
	}
	for i, s := range summaries {
		row := []any{s.ClientName, s.Total.InexactFloat64(), s.Count, formatDate(s.LastDate)}
		if err := writeRow(f, FinanceSheet, i+2, row); err != nil {
			return err
		}
	}
	if len(summaries) > 0 {
		if err := f.SetCellStyle(FinanceSheet, "B2", fmt.Sprintf("B%d", len(summaries)+1), money); err != nil {
			return err
		}
	}

	if err := writeRow(f, OrdersSheet, 1, toRow(ordersHeader)); err != nil {
		return err
	}
	for i, o := range orders {
		row := []any{formatDate(o.Date), o.Vehicle.Placa, o.TemplateName, o.ClientName, o.TotalValue.InexactFloat64()}
		if err := writeRow(f, OrdersSheet, i+2, row); err != nil {
			return err
		}
	}
	if len(orders) > 0 {
		if err := f.SetCellStyle(OrdersSheet, "E2", fmt.Sprintf("E%d", len(orders)+1), money); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// Filename names a download after the report and the day it was taken.
func Filename(kind, ext string, now time.Time) string {
	return fmt.Sprintf("%s_CheckMaster_%s.%s", kind, now.UTC().Format(time.DateOnly), ext)
}

func writeRow(f *excelize.File, sheet string, rowNo int, row []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &row)
}

func toRow(header []string) []any {
	out := make([]any, len(header))
	for i, h := range header {
		out[i] = h
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
