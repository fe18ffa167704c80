// Package export renders bookings as an xlsx workbook for the admin schedule download.
package export

import (
	"fmt"
	"io"

	"airwave/internal/domains/booking/engine"
	"airwave/internal/domains/booking/model"
	"airwave/shared/constant"
	"airwave/shared/timezone"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName      = "Bookings"
	defaultSheet   = "Sheet1"
	maxSheetLength = 31
)

var Header = []string{
	"ID", "Station", "Host", "Title", "Start", "End", "Duration (h)", "Status", "Rejection reason",
}

// StationNames resolves station ids to display names. Unknown ids are written as-is.
type StationNames map[string]string

func (n StationNames) name(id string) string {
	if name, ok := n[id]; ok && name != constant.Empty {
		return name
	}

	return id
}

// Write renders bookings into a single-sheet workbook and writes it to w.
func Write(w io.Writer, bookings []model.Booking, stations StationNames) (err error) {
	file := excelize.NewFile()
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err = file.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err = writeRow(file, 1, toCells(Header)); err != nil {
		return err
	}

	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(Header), 1)
		_ = file.SetCellStyle(SheetName, "A1", last, style)
	}

	for i, b := range bookings {
		if err = writeRow(file, i+2, row(b, stations)); err != nil {
			return err
		}
	}

	if err = file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func row(b model.Booking, stations StationNames) []any {
	reason := constant.Empty
	if b.RejectionReason != nil {
		reason = *b.RejectionReason
	}

	return []any{
		b.ID,
		stations.name(b.StationID),
		b.HostName,
		b.Title,
		timezone.Format(b.StartTime, "2006-01-02 15:04"),
		timezone.Format(b.EndTime, "2006-01-02 15:04"),
		b.EndTime.Sub(b.StartTime).Hours(),
		string(engine.StatusOf(b)),
		reason,
	}
}

func writeRow(file *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}

	if err = file.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}

	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}

	return cells
}
