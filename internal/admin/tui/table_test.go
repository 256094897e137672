package tui

import (
	"errors"
	"testing"

	"github.com/mascotas/mascotas-admin/internal/petapi"
)

func TestBuildRows(t *testing.T) {
	tests := []struct {
		name     string
		pets     []petapi.Pet
		wantRows int
		check    func(t *testing.T, rows [][]string)
	}{
		{
			name:     "empty",
			pets:     nil,
			wantRows: 1,
			check: func(t *testing.T, rows [][]string) {
				if rows[0][1] != EmptyListText {
					t.Errorf("placeholder = %q", rows[0][1])
				}
			},
		},
		{
			name:     "records",
			pets:     samplePets(),
			wantRows: 2,
			check: func(t *testing.T, rows [][]string) {
				if rows[0][0] != "1" || rows[0][1] != "Luna" || rows[0][5] != "Calle 1" {
					t.Errorf("row 0 = %v", rows[0])
				}
				if rows[0][7] != NoPhotoText || rows[1][7] != "yes" {
					t.Errorf("photo markers = %q, %q", rows[0][7], rows[1][7])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := BuildRows(tt.pets)
			if len(rows) != tt.wantRows {
				t.Fatalf("len = %d, want %d", len(rows), tt.wantRows)
			}
			plain := make([][]string, len(rows))
			for i, r := range rows {
				if len(r) != len(listColumns) {
					t.Fatalf("row %d has %d cells, want %d", i, len(r), len(listColumns))
				}
				plain[i] = r
			}
			tt.check(t, plain)
		})
	}
}

func TestListViewStates(t *testing.T) {
	lv := NewListView()
	if lv.Status != ListLoading {
		t.Fatalf("Status = %v, want loading", lv.Status)
	}
	if rows := lv.Table.Rows(); len(rows) != 1 || rows[0][1] != LoadingListText {
		t.Errorf("loading rows = %v", rows)
	}
	if _, ok := lv.SelectedID(); ok {
		t.Error("loading row is not selectable")
	}

	lv.RenderList(samplePets())
	if id, ok := lv.SelectedID(); !ok || id != 1 {
		t.Errorf("SelectedID() = %d, %v", id, ok)
	}

	lv.Table.SetCursor(1)
	lv.RenderList(samplePets()[:1])
	if id, ok := lv.SelectedID(); !ok || id != 1 {
		t.Errorf("cursor should be clamped after shrinking, got %d, %v", id, ok)
	}

	lv.RenderError(errors.New("boom"))
	if lv.Status != ListFailed || lv.Err == nil {
		t.Errorf("Status = %v Err = %v", lv.Status, lv.Err)
	}
	if _, ok := lv.SelectedID(); ok {
		t.Error("error row is not selectable")
	}
}
