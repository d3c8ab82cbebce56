package report

import (
	"FinanceTracker/internal/entity"
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

const csvDateLayout = "2006-01-02"

// WriteCSV writes one row per transaction in collection order under a localized
// header. Transaction dates are printed as calendar days in loc; due dates are
// already calendar days. Fields are quoted per RFC 4180 and records end with CRLF.
// Carriage returns inside a field are written verbatim.
func WriteCSV(w io.Writer, txs []entity.Transaction, table *CategoryTable, locale entity.Locale, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	bw := bufio.NewWriter(w)

	header := []string{
		entity.Translate(locale, entity.MsgCSVID),
		entity.Translate(locale, entity.MsgCSVDescription),
		entity.Translate(locale, entity.MsgCSVAmount),
		entity.Translate(locale, entity.MsgCSVDate),
		entity.Translate(locale, entity.MsgCSVType),
		entity.Translate(locale, entity.MsgCSVCategory),
		entity.Translate(locale, entity.MsgCSVIsRecurring),
		entity.Translate(locale, entity.MsgCSVDueDate),
	}
	if err := writeRecord(bw, header); err != nil {
		return err
	}

	for _, tx := range txs {
		recurring := "No"
		dueDate := ""
		if tx.Recurrence != nil {
			recurring = "Yes"
			dueDate = tx.Recurrence.DueDate.UTC().Format(csvDateLayout)
		}

		row := []string{
			tx.ID,
			tx.Description,
			strconv.FormatFloat(tx.Amount, 'f', -1, 64),
			tx.Date.In(loc).Format(csvDateLayout),
			string(tx.Type),
			table.Resolve(tx.Category).Name,
			recurring,
			dueDate,
		}
		if err := writeRecord(bw, row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeRecord(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(escapeCell(field)); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

func escapeCell(field string) string {
	if !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
