package biodata

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Biodata"

// XLSXRenderer renders the document as a spreadsheet, one row per
// render item, identity fields first.
type XLSXRenderer struct{}

// Render streams rows into an XLSX workbook.
func (r XLSXRenderer) Render(ctx context.Context, doc Document, w io.Writer, opts RenderOptions) (RenderStats, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	sheetName := opts.XLSX.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	defaultSheet := file.GetSheetName(0)
	if defaultSheet != sheetName {
		file.SetSheetName(defaultSheet, sheetName)
	}

	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		return RenderStats{}, err
	}

	headerID, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return RenderStats{}, err
	}

	rowIndex := 1
	setRow := func(cells []interface{}) error {
		if err := stream.SetRow(fmt.Sprintf("A%d", rowIndex), cells); err != nil {
			return err
		}
		rowIndex++
		return nil
	}

	headers := []interface{}{
		excelize.Cell{StyleID: headerID, Value: "Field"},
		excelize.Cell{StyleID: headerID, Value: "Value"},
		excelize.Cell{StyleID: headerID, Value: "Section"},
	}
	if err := setRow(headers); err != nil {
		return RenderStats{}, err
	}

	identity := []struct{ field, value string }{
		{"Name", doc.Header.Name},
		{"Date of Birth", doc.Header.DateOfBirth},
		{"Place of Birth", doc.Header.PlaceOfBirth},
	}
	for _, id := range identity {
		if id.value == "" {
			continue
		}
		row := []interface{}{
			excelize.Cell{Value: id.field},
			excelize.Cell{Value: id.value},
			excelize.Cell{Value: SectionDisplayName(SectionPersonal)},
		}
		if err := setRow(row); err != nil {
			return RenderStats{}, err
		}
	}

	stats := RenderStats{}
	for _, item := range doc.Items {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		row := []interface{}{
			excelize.Cell{Value: item.Field},
			excelize.Cell{Value: item.Value},
			excelize.Cell{Value: SectionDisplayName(item.Section)},
		}
		if err := setRow(row); err != nil {
			return stats, err
		}
		stats.Items++
	}

	if err := stream.Flush(); err != nil {
		return stats, err
	}

	cw := &countingWriter{w: w}
	if _, err := file.WriteTo(cw); err != nil {
		return stats, err
	}
	stats.Bytes = cw.count
	return stats, nil
}
