package database

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error        { return errors.New("disk gone") }

func TestRepository_EmptyStoreLoadsEmptyCollections(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	employees, err := repo.LoadEmployees()
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)

	logs, err := repo.LoadLogs()
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestRepository_RoundTrip(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	in := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	employees := []Employee{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Ana"}, {ID: 3, Name: "Marko"}}
	logs := []WorkLog{
		{EmployeeID: 1, EmployeeName: "Ana", CheckIn: in, CheckOut: &out},
		{EmployeeID: 3, EmployeeName: "Marko", CheckIn: in.Add(time.Minute)},
	}

	require.NoError(t, repo.SaveEmployees(employees))
	require.NoError(t, repo.SaveLogs(logs))

	gotEmployees, err := repo.LoadEmployees()
	require.NoError(t, err)
	assert.Equal(t, employees, gotEmployees)

	gotLogs, err := repo.LoadLogs()
	require.NoError(t, err)
	require.Len(t, gotLogs, 2)
	for i := range logs {
		assert.Equal(t, logs[i].EmployeeID, gotLogs[i].EmployeeID)
		assert.Equal(t, logs[i].EmployeeName, gotLogs[i].EmployeeName)
		assert.True(t, logs[i].CheckIn.Equal(gotLogs[i].CheckIn))
	}
	require.NotNil(t, gotLogs[0].CheckOut)
	assert.True(t, out.Equal(*gotLogs[0].CheckOut))
	assert.Nil(t, gotLogs[1].CheckOut)
}

func TestRepository_KeysAreIndependent(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.SaveEmployees([]Employee{{ID: 1, Name: "Ana"}}))

	_, ok, err := db.Get(LogsKey)
	require.NoError(t, err)
	assert.False(t, ok, "saving employees must not touch the log key")

	raw, ok, err := db.Get(EmployeesKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1,"name":"Ana"}]`, raw)
}

func TestRepository_OpenSessionEncodesNullCheckOut(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	in := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveLogs([]WorkLog{{EmployeeID: 1, EmployeeName: "Ana", CheckIn: in}}))

	raw, _, err := db.Get(LogsKey)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"employeeId":1,"employeeName":"Ana","checkIn":"2026-10-18T08:00:00Z","checkOut":null}]`,
		raw)
}

func TestRepository_ReadsBrowserEncodedData(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Set(LogsKey,
		`[{"employeeId":1,"employeeName":"Ana","checkIn":"2026-10-18T08:00:00.000Z","checkOut":"2026-10-18T16:30:00.000Z"}]`))

	logs, err := NewRepository(db).LoadLogs()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Ana", logs[0].EmployeeName)
	require.NotNil(t, logs[0].CheckOut)
	assert.Equal(t, 16, logs[0].CheckOut.Hour())
}

func TestRepository_CorruptBlobDegradesToEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Set(EmployeesKey, "{not json"))
	require.NoError(t, db.Set(LogsKey, "null"))

	repo := NewRepository(db)

	employees, err := repo.LoadEmployees()
	require.NoError(t, err)
	assert.Empty(t, employees)

	logs, err := repo.LoadLogs()
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestRepository_StoreErrorsAreReturned(t *testing.T) {
	repo := NewRepository(failingStore{})

	_, err := repo.LoadEmployees()
	assert.ErrorContains(t, err, "failed to read employees")

	err = repo.SaveLogs(nil)
	assert.ErrorContains(t, err, "failed to write employeeLogs")
}
