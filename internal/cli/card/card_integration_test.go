package card

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/testutil"
	clitest "github.com/thenoetrevino/quadro/internal/testutil/cli"
)

func TestCreateCard_Positive(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")

	t.Run("lands in the INITIAL column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Write docs",
			"--description", "Cover every command",
			"--board", strconv.Itoa(b.ID),
			"--quiet",
		})
		require.NoError(t, err)

		cardID, err := strconv.Atoi(strings.TrimSpace(output))
		require.NoError(t, err)
		assert.Equal(t, b.Columns[0].ID, testutil.CardColumnID(t, db, cardID))
	})

	t.Run("board from environment", func(t *testing.T) {
		t.Setenv(cli.BoardEnvVar, strconv.Itoa(b.ID))

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Fix login",
			"--description", "500 on submit",
			"--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		card := result["card"].(map[string]interface{})
		assert.Equal(t, "Fix login", card["title"])
		assert.Equal(t, float64(b.ID), card["board_id"])
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := CreateCmd()
		cmd.SetIn(strings.NewReader("# Notes\n\n- first\n"))

		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{
			"--title", "Release notes",
			"--description", "-",
			"--board", strconv.Itoa(b.ID),
			"--quiet",
		})
		require.NoError(t, err)

		var description string
		require.NoError(t, db.QueryRowContext(context.Background(),
			"SELECT description FROM cards WHERE id = ?", strings.TrimSpace(output)).Scan(&description))
		assert.Equal(t, "# Notes\n\n- first", description)
	})
}

func TestCreateCard_Negative(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")

	t.Run("no board selected", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Orphan",
			"--description", "No board",
			"--quiet",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("unknown board", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Lost",
			"--description", "Board 999",
			"--board", "999",
			"--quiet",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("empty title", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", " ",
			"--description", "Something",
			"--board", strconv.Itoa(b.ID),
			"--json",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Equal(t, false, testutil.ParseJSON(t, output)["success"])
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Something",
			"--description", "",
			"--board", strconv.Itoa(b.ID),
			"--quiet",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestCardLifecycle(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")
	backlog, doing, done := b.Columns[0], b.Columns[1], b.Columns[2]
	cardID := clitest.CreateTestCard(t, db, backlog.ID, "Ship it")
	id := strconv.Itoa(cardID)

	output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{id, "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, "Doing", result["card"].(map[string]interface{})["column_name"])
	assert.Equal(t, doing.ID, testutil.CardColumnID(t, db, cardID))

	_, err = clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "Waiting on review", "--quiet"})
	require.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{id, "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitState, cli.ExitCode(err))
	assert.Equal(t, doing.ID, testutil.CardColumnID(t, db, cardID), "blocked card must stay put")

	_, err = clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "Again", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitState, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, UnblockCmd(), []string{id, "--reason", "Reviewed", "--quiet"})
	require.NoError(t, err)

	_, err = clitest.ExecuteCLICommand(t, app, UnblockCmd(), []string{id, "--reason", "Twice", "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitState, cli.ExitCode(err))

	output, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{id})
	require.NoError(t, err)
	assert.Contains(t, output, "moved")
	assert.Equal(t, done.ID, testutil.CardColumnID(t, db, cardID))

	_, err = clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{id, "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitState, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, app, CancelCmd(), []string{id, "--quiet"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitState, cli.ExitCode(err))
	assert.Equal(t, done.ID, testutil.CardColumnID(t, db, cardID))

	output, err = clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{id, "--json"})
	require.NoError(t, err)
	card := testutil.ParseJSON(t, output)["card"].(map[string]interface{})
	assert.Equal(t, float64(1), card["blocks_amount"])
	assert.Equal(t, false, card["blocked"])

	events := card["events"].([]interface{})
	require.Len(t, events, 2)
	assert.Equal(t, "BLOCK", events[0].(map[string]interface{})["kind"])
	assert.Equal(t, "UNBLOCK", events[1].(map[string]interface{})["kind"])
}

func TestCancelCard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")
	cancelled := b.Columns[3]

	t.Run("blocked card keeps its block", func(t *testing.T) {
		cardID := clitest.CreateTestCard(t, db, b.Columns[0].ID, "Drop me")
		id := strconv.Itoa(cardID)

		_, err := clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "Stuck", "--quiet"})
		require.NoError(t, err)

		output, err := clitest.ExecuteCLICommand(t, app, CancelCmd(), []string{id, "--json"})
		require.NoError(t, err)

		card := testutil.ParseJSON(t, output)["card"].(map[string]interface{})
		assert.Equal(t, "CANCEL", card["column_kind"])
		assert.Equal(t, true, card["blocked"])
		assert.Equal(t, "Stuck", card["block_reason"])
		assert.Equal(t, cancelled.ID, testutil.CardColumnID(t, db, cardID))
	})

	t.Run("cancelled card cannot be cancelled again", func(t *testing.T) {
		cardID := clitest.CreateTestCard(t, db, b.Columns[0].ID, "Once")
		id := strconv.Itoa(cardID)

		_, err := clitest.ExecuteCLICommand(t, app, CancelCmd(), []string{id, "--quiet"})
		require.NoError(t, err)

		_, err = clitest.ExecuteCLICommand(t, app, CancelCmd(), []string{id, "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitState, cli.ExitCode(err))
	})
}

func TestTransitions_Negative(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")
	other := clitest.CreateTestBoard(t, db, "Other")
	cardID := clitest.CreateTestCard(t, db, b.Columns[0].ID, "Mine")
	id := strconv.Itoa(cardID)

	t.Run("unknown card", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"999", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, "CARD_NOT_FOUND", result["error"].(map[string]interface{})["code"])
	})

	t.Run("invalid card id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{"abc", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("card on another board", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, MoveCmd(), []string{
			id, "--board", strconv.Itoa(other.ID), "--quiet",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
		assert.Equal(t, b.Columns[0].ID, testutil.CardColumnID(t, db, cardID))
	})

	t.Run("blank block reason", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "  ", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})

	t.Run("blank reason is rejected before the card lookup", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UnblockCmd(), []string{"999", "--reason", "", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestShowCard(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")
	cardID := clitest.CreateTestCard(t, db, b.Columns[0].ID, "Write docs")
	id := strconv.Itoa(cardID)

	_, err := clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "Needs input", "--quiet"})
	require.NoError(t, err)

	t.Run("human", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{id})
		require.NoError(t, err)
		assert.Contains(t, output, "Write docs")
		assert.Contains(t, output, "BLOCKED")
		assert.Contains(t, output, "Needs input")
		assert.Contains(t, output, "Backlog")
		assert.Contains(t, output, "History")
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{id, "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, id, strings.TrimSpace(output))
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"999", "--quiet"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestBlockCard_StoresTrimmedReason(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	b := clitest.CreateTestBoard(t, db, "Roadmap")
	cardID := clitest.CreateTestCard(t, db, b.Columns[0].ID, "Write docs")
	id := strconv.Itoa(cardID)

	output, err := clitest.ExecuteCLICommand(t, app, BlockCmd(), []string{id, "--reason", "  waiting on keys  ", "--json"})
	require.NoError(t, err)
	card := testutil.ParseJSON(t, output)["card"].(map[string]interface{})
	assert.Equal(t, "waiting on keys", card["block_reason"])

	var stored string
	require.NoError(t, db.QueryRowContext(context.Background(),
		"SELECT block_reason FROM cards WHERE id = ?", cardID).Scan(&stored))
	assert.Equal(t, "waiting on keys", stored)
}
