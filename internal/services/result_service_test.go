package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultService_SaveAndForUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	results := NewResultService(db)
	require.NoError(t, users.SeedIfEmpty())

	identity, err := users.Authenticate("asistan01", "Asistan!2345")
	require.NoError(t, err)

	require.NoError(t, results.Save(identity, 60, "Q1:D | Q2:Y | Q3:D | Q4:Y | Q5:D"))
	require.NoError(t, results.Save(identity, 100, "Q1:D | Q2:D | Q3:D | Q4:D | Q5:D"))

	mine, err := results.ForUser(identity.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	// Newest first.
	assert.Equal(t, 100, mine[0].Score)
	assert.Equal(t, 60, mine[1].Score)
	assert.Equal(t, identity.ID, mine[0].UserID)
	assert.Equal(t, "Q1:D | Q2:D | Q3:D | Q4:D | Q5:D", mine[0].Details)

	// Another account's results stay invisible.
	other, err := users.Authenticate("asistan02", "Asistan!2345")
	require.NoError(t, err)
	theirs, err := results.ForUser(other.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestResultService_ListAll(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	results := NewResultService(db)
	require.NoError(t, users.SeedIfEmpty())

	first, err := users.Authenticate("asistan01", "Asistan!2345")
	require.NoError(t, err)
	second, err := users.Authenticate("asistan02", "Asistan!2345")
	require.NoError(t, err)

	require.NoError(t, results.Save(first, 40, "Q1:D | Q2:D | Q3:Y | Q4:Y | Q5:Y"))
	require.NoError(t, results.Save(second, 80, "Q1:D | Q2:D | Q3:D | Q4:D | Q5:Y"))

	all, err := results.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)

	// Newest first, joined with the owning username.
	assert.Equal(t, "asistan02", all[0].Username)
	assert.Equal(t, 80, all[0].Score)
	assert.Equal(t, "asistan01", all[1].Username)
	assert.Equal(t, 40, all[1].Score)
}

func TestResultService_ExportCSV(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	results := NewResultService(db)
	require.NoError(t, users.SeedIfEmpty())

	identity, err := users.Authenticate("asistan01", "Asistan!2345")
	require.NoError(t, err)
	require.NoError(t, results.Save(identity, 20, "Q1:D | Q2:Y | Q3:Y | Q4:Y | Q5:Y"))
	require.NoError(t, results.Save(identity, 100, "Q1:D | Q2:D | Q3:D | Q4:D | Q5:D"))

	out, err := results.ExportCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "taken_at,username,score,details", lines[0])

	// One line per stored result, newest first.
	assert.Contains(t, lines[1], ",asistan01,100,Q1:D | Q2:D | Q3:D | Q4:D | Q5:D")
	assert.Contains(t, lines[2], ",asistan01,20,Q1:D | Q2:Y | Q3:Y | Q4:Y | Q5:Y")
}

func TestResultService_ExportCSV_Empty(t *testing.T) {
	db := newTestDB(t)
	results := NewResultService(db)

	out, err := results.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "taken_at,username,score,details\n", string(out))
}

func TestResultService_ScoreMatchesDetails(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	results := NewResultService(db)
	require.NoError(t, users.SeedIfEmpty())

	identity, err := users.Authenticate("asistan03", "Asistan!2345")
	require.NoError(t, err)

	details := "Q1:D | Q2:Y | Q3:D | Q4:D | Q5:Y"
	require.NoError(t, results.Save(identity, 60, details))

	mine, err := results.ForUser(identity.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	// The stored score stays consistent with the stored details.
	correct := strings.Count(mine[0].Details, ":D")
	assert.Equal(t, correct*20, mine[0].Score, fmt.Sprintf("details %q", mine[0].Details))
}
