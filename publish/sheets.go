package publish

import (
	"bytes"
	"context"
	"encoding/csv"

	"google.golang.org/api/sheets/v4"

	"github.com/qaforge/qaforge/errors"
	"github.com/qaforge/qaforge/logger"
)

// clearRange covers everything a generated table can occupy
const clearRange = "Sheet1!A1:Z10000"

// parseTable converts delimited text into the row matrix the values
// API expects.
func parseTable(csvData []byte) ([][]interface{}, error) {
	records, err := csv.NewReader(bytes.NewReader(csvData)).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse table data")
	}
	values := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		values[i] = row
	}
	return values, nil
}

// headerFormatRequests styles the first row (dark background, white
// bold text), freezes it, and auto-sizes the columns.
func headerFormatRequests(sheetID int64, columns int64) []*sheets.Request {
	return []*sheets.Request{
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:       sheetID,
					StartRowIndex: 0,
					EndRowIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						BackgroundColor: &sheets.Color{Red: 0.2, Green: 0.2, Blue: 0.2},
						TextFormat: &sheets.TextFormat{
							ForegroundColor: &sheets.Color{Red: 1.0, Green: 1.0, Blue: 1.0},
							Bold:            true,
						},
					},
				},
				Fields: "userEnteredFormat(backgroundColor,textFormat)",
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId:        sheetID,
					GridProperties: &sheets.GridProperties{FrozenRowCount: 1},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
		{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   columns,
				},
			},
		},
	}
}

// PublishTable creates a Google Sheet titled title from delimited text.
// The flow is create, share, write values, then format the header row.
func (p *Publisher) PublishTable(ctx context.Context, title string, csvData []byte) Result {
	if !p.Available() {
		return unavailable(title)
	}

	values, err := parseTable(csvData)
	if err != nil {
		return failed(title, err)
	}

	sheet, err := p.sheetsSvc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Context(ctx).Do()
	if err != nil {
		return failed(title, errors.Wrap(err, "failed to create spreadsheet"))
	}
	sheetID := sheet.SpreadsheetId

	if err := p.share(ctx, sheetID); err != nil {
		return failed(title, errors.Wrapf(err, "failed to share spreadsheet %s", sheetID))
	}

	_, err = p.sheetsSvc.Spreadsheets.Values.Update(sheetID, "Sheet1!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return failed(title, errors.Wrapf(err, "failed to write values to spreadsheet %s", sheetID))
	}

	columns := int64(0)
	if len(values) > 0 {
		columns = int64(len(values[0]))
	}
	_, err = p.sheetsSvc.Spreadsheets.BatchUpdate(sheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: headerFormatRequests(0, columns),
	}).Context(ctx).Do()
	if err != nil {
		return failed(title, errors.Wrapf(err, "failed to format spreadsheet %s", sheetID))
	}

	logger.Infow("Spreadsheet published", "id", sheetID, "title", title, "rows", len(values))
	return Result{
		Status: StatusSuccess,
		ID:     sheetID,
		URL:    "https://docs.google.com/spreadsheets/d/" + sheetID + "/edit",
		Title:  title,
	}
}

// UpdateSheet clears an existing spreadsheet and repopulates it from
// delimited text, reapplying the header formatting.
func (p *Publisher) UpdateSheet(ctx context.Context, spreadsheetID string, csvData []byte) Result {
	if !p.Available() {
		return unavailable(spreadsheetID)
	}

	values, err := parseTable(csvData)
	if err != nil {
		return failed(spreadsheetID, err)
	}

	sheet, err := p.sheetsSvc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return failed(spreadsheetID, errors.Wrapf(err, "failed to fetch spreadsheet %s", spreadsheetID))
	}
	if len(sheet.Sheets) == 0 {
		return failed(spreadsheetID, errors.Newf("spreadsheet %s has no sheets", spreadsheetID))
	}
	gridID := sheet.Sheets[0].Properties.SheetId

	_, err = p.sheetsSvc.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return failed(spreadsheetID, errors.Wrapf(err, "failed to clear spreadsheet %s", spreadsheetID))
	}

	_, err = p.sheetsSvc.Spreadsheets.Values.Update(spreadsheetID, "Sheet1!A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return failed(spreadsheetID, errors.Wrapf(err, "failed to write values to spreadsheet %s", spreadsheetID))
	}

	columns := int64(0)
	if len(values) > 0 {
		columns = int64(len(values[0]))
	}
	_, err = p.sheetsSvc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: headerFormatRequests(gridID, columns),
	}).Context(ctx).Do()
	if err != nil {
		return failed(spreadsheetID, errors.Wrapf(err, "failed to format spreadsheet %s", spreadsheetID))
	}

	logger.Infow("Spreadsheet updated", "id", spreadsheetID, "rows", len(values))
	return Result{
		Status: StatusSuccess,
		ID:     spreadsheetID,
		URL:    "https://docs.google.com/spreadsheets/d/" + spreadsheetID + "/edit",
		Title:  sheet.Properties.Title,
	}
}
