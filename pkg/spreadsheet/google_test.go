package spreadsheet_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/attendance_bot/pkg/spreadsheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func newDrive(t *testing.T, files []*drive.File, gotQuery *string) *drive.Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(drive.FileList{Files: files})
	}))
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(), option.WithHTTPClient(srv.Client()), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return svc
}

func TestResolveSpreadsheetID_PrefersExplicitID(t *testing.T) {
	id, err := spreadsheet.ResolveSpreadsheetID(context.Background(), nil, "abc", "SulakBotDB")
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
}

func TestResolveSpreadsheetID_ByName(t *testing.T) {
	var q string
	svc := newDrive(t, []*drive.File{{Id: "file-1", Name: "SulakBotDB"}}, &q)

	id, err := spreadsheet.ResolveSpreadsheetID(context.Background(), svc, "", "SulakBotDB")
	require.NoError(t, err)
	assert.Equal(t, "file-1", id)
	assert.Contains(t, q, "name = 'SulakBotDB'")
	assert.Contains(t, q, "trashed = false")
}

func TestResolveSpreadsheetID_NotFound(t *testing.T) {
	var q string
	svc := newDrive(t, nil, &q)

	_, err := spreadsheet.ResolveSpreadsheetID(context.Background(), svc, "", "Missing")
	assert.ErrorIs(t, err, spreadsheet.ErrSpreadsheetNotFound)
}

func TestNewHTTPClient_RejectsEmpty(t *testing.T) {
	_, err := spreadsheet.NewHTTPClient(context.Background(), "")
	assert.Error(t, err)
}
