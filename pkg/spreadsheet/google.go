package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrSpreadsheetNotFound is returned when no spreadsheet matches the configured name.
var ErrSpreadsheetNotFound = errors.New("spreadsheet not found")

const spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// NewHTTPClient builds an OAuth2 client from service-account JSON credentials.
func NewHTTPClient(ctx context.Context, credentialsJSON string) (*http.Client, error) {
	if credentialsJSON == "" {
		return nil, fmt.Errorf("google credentials cannot be empty")
	}
	conf, err := google.JWTConfigFromJSON([]byte(credentialsJSON), sheets.SpreadsheetsScope, drive.DriveMetadataReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	return conf.Client(ctx), nil
}

// NewServices creates the Sheets and Drive services sharing one authorised client.
func NewServices(ctx context.Context, client *http.Client) (*sheets.Service, *drive.Service, error) {
	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return sheetsSvc, driveSvc, nil
}

// ResolveSpreadsheetID returns id when set, otherwise looks the spreadsheet up by name
// among the files shared with the service account.
func ResolveSpreadsheetID(ctx context.Context, driveSvc *drive.Service, id, name string) (string, error) {
	if id != "" {
		return id, nil
	}
	q := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`), spreadsheetMimeType)
	list, err := driveSvc.Files.List().Q(q).Fields("files(id, name)").PageSize(2).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to search spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: %q", ErrSpreadsheetNotFound, name)
	}
	if len(list.Files) > 1 {
		log.Printf("Warning: %d spreadsheets named %q, using %s\n", len(list.Files), name, list.Files[0].Id)
	}
	return list.Files[0].Id, nil
}
