package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/barnanst-collab/nba-game-openers-tracker/internal/domain/opener"
)

// OpenerSink appends opener rows to a Google Sheets tab. The sheet is
// schema-less: the first row is the header in opener.Columns order and every
// later row is one record. Column A below the header is the game-id keyspace.
type OpenerSink struct {
	service       *sheets.Service
	spreadsheetID string
	tab           string
}

func NewOpenerSink(ctx context.Context, spreadsheetID, credentialsFile, tab string) (*OpenerSink, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	if strings.TrimSpace(tab) == "" {
		tab = "Sheet1"
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("build sheets service: %w", err)
	}

	return &OpenerSink{
		service:       service,
		spreadsheetID: spreadsheetID,
		tab:           tab,
	}, nil
}

func (s *OpenerSink) ListKnownIDs(ctx context.Context) (map[string]struct{}, error) {
	readRange := fmt.Sprintf("%s!A2:A", s.tab)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read game-id column: %w", err)
	}

	out := make(map[string]struct{}, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		id, ok := row[0].(string)
		if !ok {
			continue
		}
		if id = strings.TrimSpace(id); id != "" {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

func (s *OpenerSink) Append(ctx context.Context, records []opener.Record) error {
	if len(records) == 0 {
		return nil
	}

	values := make([][]interface{}, 0, len(records)+1)
	hasHeader, err := s.hasHeader(ctx)
	if err != nil {
		return err
	}
	if !hasHeader {
		values = append(values, toRow(opener.Columns()))
	}
	for _, record := range records {
		values = append(values, toRow(record.Row()))
	}

	body := &sheets.ValueRange{Values: values}
	_, err = s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, fmt.Sprintf("%s!A1", s.tab), body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %d opener rows: %w", len(records), err)
	}
	return nil
}

func (s *OpenerSink) hasHeader(ctx context.Context) (bool, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, fmt.Sprintf("%s!A1:A1", s.tab)).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("read header row: %w", err)
	}
	return len(resp.Values) > 0 && len(resp.Values[0]) > 0, nil
}

func toRow(fields []string) []interface{} {
	out := make([]interface{}, len(fields))
	for i, field := range fields {
		out[i] = field
	}
	return out
}
