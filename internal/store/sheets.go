package store

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const sheetRange = "Sheet1"

// Sheets persists postings to the first worksheet of a Google spreadsheet,
// authenticated with a service-account credential bundle.
type Sheets struct {
	service       *sheets.Service
	spreadsheetID string
}

func NewSheets(ctx context.Context, spreadsheetID string, credentialsJSON []byte) (*Sheets, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &Sheets{service: service, spreadsheetID: spreadsheetID}, nil
}

// ReadAll fetches the full sheet and maps each data row by the header row.
// An empty sheet, or one holding only a header, reads as zero rows.
func (s *Sheets) ReadAll(ctx context.Context) ([]Row, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", s.spreadsheetID, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		header = append(header, fmt.Sprint(cell))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		row := make(Row, len(header))
		for i, cell := range cells {
			if i >= len(header) {
				break
			}
			row[header[i]] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Sheets) AppendRow(ctx context.Context, values []string) error {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, sheetRange, &sheets.ValueRange{
		Values: [][]interface{}{cells},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", s.spreadsheetID, err)
	}
	return nil
}
