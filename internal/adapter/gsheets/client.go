// Package gsheets reads vocabulary tables from Google Sheets and writes the
// vocabulary to a new spreadsheet.
package gsheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/heartmarshall/vocabtrainer/internal/adapter/excel"
	"github.com/heartmarshall/vocabtrainer/internal/domain"
)

const spreadsheetMime = "application/vnd.google-apps.spreadsheet"

// Scopes are the OAuth scopes the service account needs: spreadsheet
// contents, plus Drive to find spreadsheets by name and share new ones.
var Scopes = []string{sheets.SpreadsheetsScope, drive.DriveScope}

// Client talks to the Sheets and Drive APIs.
type Client struct {
	sheets *sheets.Service
	drive  *drive.Service
}

// New creates a client from the given options. Both services share them.
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	sh, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	dr, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive client: %w", err)
	}
	return &Client{sheets: sh, drive: dr}, nil
}

// NewFromCredentials creates a client authenticated with a service account
// key file.
func NewFromCredentials(ctx context.Context, credentialsFile string) (*Client, error) {
	return New(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(Scopes...))
}

// ReadSpreadsheet returns every sheet of the spreadsheet with the given name
// in spreadsheet order. Blank cells become missing cells and blank rows are
// dropped, as for workbooks.
func (c *Client) ReadSpreadsheet(ctx context.Context, name string) ([]excel.Sheet, error) {
	id, err := c.findByName(ctx, name)
	if err != nil {
		return nil, err
	}

	ss, err := c.sheets.Spreadsheets.Get(id).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet %q: %w", name, err)
	}
	titles := make([]string, 0, len(ss.Sheets))
	ranges := make([]string, 0, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties == nil {
			continue
		}
		titles = append(titles, sh.Properties.Title)
		ranges = append(ranges, quoteSheet(sh.Properties.Title))
	}
	if len(ranges) == 0 {
		return nil, nil
	}

	res, err := c.sheets.Spreadsheets.Values.BatchGet(id).
		Ranges(ranges...).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read values of %q: %w", name, err)
	}

	out := make([]excel.Sheet, len(titles))
	for i, title := range titles {
		var values [][]any
		if i < len(res.ValueRanges) {
			values = res.ValueRanges[i].Values
		}
		out[i] = excel.Sheet{Name: title, Table: domain.TableFromStrings(cellTexts(values)).DropBlankRows()}
	}
	return out, nil
}

// Share grants a user access to a written spreadsheet. Role is "reader",
// "writer" or "owner".
type Share struct {
	Email string
	Role  string
}

// Created identifies a new spreadsheet.
type Created struct {
	ID  string
	URL string
}

// WriteWords creates a spreadsheet titled title with one sheet holding the
// words in the excel.ExportRows layout, then shares it when share.Email is set.
func (c *Client) WriteWords(ctx context.Context, title, sheet string, words []domain.Word, share Share) (*Created, error) {
	ss, err := c.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
		Sheets:     []*sheets.Sheet{{Properties: &sheets.SheetProperties{Title: sheet}}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("create spreadsheet %q: %w", title, err)
	}

	if rows := excel.ExportRows(words); len(rows) > 0 {
		rng := fmt.Sprintf("%s!A1:G%d", quoteSheet(sheet), len(rows))
		_, err := c.sheets.Spreadsheets.Values.Update(ss.SpreadsheetId, rng, &sheets.ValueRange{Values: rows}).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("write words to %q: %w", title, err)
		}
	}

	if share.Email != "" {
		role := share.Role
		if role == "" {
			role = "writer"
		}
		call := c.drive.Permissions.Create(ss.SpreadsheetId, &drive.Permission{
			Type:         "user",
			Role:         role,
			EmailAddress: share.Email,
		}).Context(ctx)
		if role == "owner" {
			call = call.TransferOwnership(true)
		}
		if _, err := call.Do(); err != nil {
			return nil, fmt.Errorf("share %q with %s: %w", title, share.Email, err)
		}
	}

	return &Created{ID: ss.SpreadsheetId, URL: ss.SpreadsheetUrl}, nil
}

func (c *Client) findByName(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false", escapeQuery(name), spreadsheetMime)
	res, err := c.drive.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("find spreadsheet %q: %w", name, err)
	}
	if len(res.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q: %w", name, domain.ErrNotFound)
	}
	return res.Files[0].Id, nil
}

func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// quoteSheet turns a sheet title into an A1 range covering the whole sheet.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func cellTexts(values [][]any) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = cellText(v)
		}
	}
	return rows
}

// cellText renders an unformatted value. Numbers keep their shortest form so
// that row numbers read back as "1" and are dropped by the numeric filter.
func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
