package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const exportSheet = "Attendance"

// Export menyusun laporan xlsx seluruh record kehadiran untuk admin.
func (s *service) Export(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Employee", "Shift ID", "Check In", "Check Out", "Status", "Approved", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.ID,
			s.displayName(ctx, row.UserID),
			row.ShiftID,
			row.CheckInTime.Format(time.RFC3339),
			formatOptionalTime(row.CheckOutTime),
			row.Status,
			row.Approved,
			formatOptionalText(row.Notes),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	s.logger.Info("attendance export generated", zap.Int("rows", len(rows)))
	return buf.Bytes(), nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatOptionalText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportFilename memberi nama file laporan berdasarkan tanggal pembuatan.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("attendance-%s.xlsx", now.Format("2006-01-02"))
}
