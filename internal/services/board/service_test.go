package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/database"
	"github.com/thenoetrevino/quadro/internal/models"
	"github.com/thenoetrevino/quadro/internal/testutil"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(database.NewRepository(testutil.SetupTestDB(t)), nil)
}

func scenarioRequest() CreateBoardRequest {
	return CreateBoardRequest{
		Name:           "Scenario",
		InitialColumn:  "Backlog",
		PendingColumns: []string{"Doing", "Review"},
		FinalColumn:    "Done",
		CancelColumn:   "Cancelled",
	}
}

func TestCreateBoard_Layout(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, scenarioRequest())
	require.NoError(t, err)
	require.Len(t, board.Columns, 5)

	want := []struct {
		name string
		kind models.ColumnKind
	}{
		{"Backlog", models.ColumnKindInitial},
		{"Doing", models.ColumnKindPending},
		{"Review", models.ColumnKindPending},
		{"Done", models.ColumnKindFinal},
		{"Cancelled", models.ColumnKindCancel},
	}
	for i, column := range board.Columns {
		assert.Equal(t, want[i].name, column.Name)
		assert.Equal(t, want[i].kind, column.Kind)
		assert.Equal(t, i, column.Order)
		assert.NotZero(t, column.ID)
	}

	loaded, err := svc.GetBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Scenario", loaded.Name)
	assert.NoError(t, loaded.ColumnsInfo().Validate())
}

func TestCreateBoard_NoPendingColumns(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	req := scenarioRequest()
	req.PendingColumns = nil

	board, err := svc.CreateBoard(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, models.ColumnKindFinal, board.Columns[1].Kind)
	assert.Equal(t, 1, board.Columns[1].Order)
}

func TestCreateBoard_Validation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	tests := []struct {
		name    string
		modify  func(*CreateBoardRequest)
		wantErr error
	}{
		{"empty name", func(r *CreateBoardRequest) { r.Name = " " }, ErrEmptyName},
		{"name too long", func(r *CreateBoardRequest) { r.Name = strings.Repeat("b", MaxNameLength+1) }, ErrNameTooLong},
		{"empty initial", func(r *CreateBoardRequest) { r.InitialColumn = "" }, ErrEmptyColumnName},
		{"empty pending", func(r *CreateBoardRequest) { r.PendingColumns = []string{"Doing", ""} }, ErrEmptyColumnName},
		{"empty final", func(r *CreateBoardRequest) { r.FinalColumn = "" }, ErrEmptyColumnName},
		{"empty cancel", func(r *CreateBoardRequest) { r.CancelColumn = "" }, ErrEmptyColumnName},
		{"column name too long", func(r *CreateBoardRequest) { r.FinalColumn = strings.Repeat("c", MaxNameLength+1) }, ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := scenarioRequest()
			tt.modify(&req)

			_, err := svc.CreateBoard(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	boards, err := svc.ListBoards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestListBoards(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateBoard(ctx, scenarioRequest())
	require.NoError(t, err)
	req := scenarioRequest()
	req.Name = "Second"
	second, err := svc.CreateBoard(ctx, req)
	require.NoError(t, err)

	boards, err := svc.ListBoards(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, first.ID, boards[0].ID)
	assert.Equal(t, second.ID, boards[1].ID)
	assert.Len(t, boards[1].Columns, 5)
}

func TestDeleteBoard(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)
	ctx := context.Background()

	board, err := svc.CreateBoard(ctx, scenarioRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBoard(ctx, board.ID))

	_, err = svc.GetBoard(ctx, board.ID)
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
	assert.ErrorIs(t, svc.DeleteBoard(ctx, board.ID), models.ErrBoardNotFound)
	assert.ErrorIs(t, svc.DeleteBoard(ctx, 0), ErrInvalidBoardID)
}

func TestGetBoardDetailAndColumnDetail(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	board := testutil.CreateTestBoard(t, db, "Detail")
	backlog := board.Columns[0].ID
	first := testutil.CreateTestCard(t, db, backlog, "first")
	testutil.CreateTestCard(t, db, backlog, "second")

	detail, err := svc.GetBoardDetail(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail", detail.Name)
	require.Len(t, detail.Columns, 4)
	assert.Equal(t, 2, detail.Columns[0].CardsAmount)
	assert.Equal(t, 0, detail.Columns[1].CardsAmount)

	column, err := svc.GetColumnDetail(ctx, board.ID, backlog)
	require.NoError(t, err)
	assert.Equal(t, "Backlog", column.Name)
	assert.Equal(t, models.ColumnKindInitial, column.Kind)
	require.Len(t, column.Cards, 2)
	assert.Equal(t, first, column.Cards[0].ID)
	assert.Equal(t, "first", column.Cards[0].Title)
}

func TestGetColumnDetail_WrongBoard(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	board := testutil.CreateTestBoard(t, db, "One")
	other := testutil.CreateTestBoard(t, db, "Two")

	_, err := svc.GetColumnDetail(ctx, board.ID, other.Columns[0].ID)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)

	_, err = svc.GetColumnDetail(ctx, board.ID, 999)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}

func TestColumnsInfo(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db), nil)
	ctx := context.Background()

	board := testutil.CreateTestBoard(t, db, "Info")

	columns, err := svc.ColumnsInfo(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, columns, 4)

	cancel, err := columns.CancelColumn()
	require.NoError(t, err)
	assert.Equal(t, board.Columns[3].ID, cancel.ID)
	assert.True(t, columns.IsFinal(board.Columns[2].ID))

	_, err = svc.ColumnsInfo(ctx, 999)
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}
