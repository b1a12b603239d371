package tracker

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hourlogger/database"
)

var (
	t1 = time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	t2 = time.Date(2026, 10, 18, 16, 30, 0, 0, time.UTC)
)

func TestDeriveStatus(t *testing.T) {
	out := t2
	logs := []database.WorkLog{
		{EmployeeID: 1, CheckIn: t1, CheckOut: &out},
		{EmployeeID: 2, CheckIn: t1},
	}

	assert.Equal(t, StatusClosed, DeriveStatus(1, logs))
	assert.Equal(t, StatusOpen, DeriveStatus(2, logs))
	assert.Equal(t, StatusClosed, DeriveStatus(3, logs))
	assert.Equal(t, StatusClosed, DeriveStatus(1, nil))
}

func TestCheckIn_AppendsEntryWithCopiedName(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}}

	logs, err := CheckIn(1, roster, nil, t1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, database.WorkLog{EmployeeID: 1, EmployeeName: "Ana", CheckIn: t1}, logs[0])

	// Переименование в списке не меняет историю
	roster[0].Name = "Ana Marija"
	assert.Equal(t, "Ana", logs[0].EmployeeName)
}

func TestCheckIn_DoesNotMutateInput(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Marko"}}
	in := make([]database.WorkLog, 1, 10)
	in[0] = database.WorkLog{EmployeeID: 2, EmployeeName: "Marko", CheckIn: t1}

	out, err := CheckIn(1, roster, in, t2)
	require.NoError(t, err)
	assert.Len(t, in, 1)
	assert.Len(t, out, 2)

	// Общий backing array не должен протекать в следующий append
	_ = append(in, database.WorkLog{EmployeeID: 99})
	assert.Equal(t, 1, out[1].EmployeeID)
}

func TestCheckIn_StoresUTC(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}}
	local := time.Date(2026, 10, 18, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	logs, err := CheckIn(1, roster, nil, local)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, logs[0].CheckIn.Location())
	assert.True(t, logs[0].CheckIn.Equal(local))
}

func TestCheckIn_AlreadyOpen(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}}
	logs, err := CheckIn(1, roster, nil, t1)
	require.NoError(t, err)

	again, err := CheckIn(1, roster, logs, t2)
	require.ErrorIs(t, err, ErrAlreadyOpen)
	assert.Equal(t, logs, again)
}

func TestCheckIn_UnknownEmployee(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}}

	logs, err := CheckIn(5, roster, nil, t1)
	require.ErrorIs(t, err, ErrUnknownEmployee)
	assert.Empty(t, logs)
}

func TestCheckIn_AlreadyOpenCheckedBeforeRoster(t *testing.T) {
	// Открытая сессия сотрудника, которого нет в списке, всё равно блокирует вход
	logs := []database.WorkLog{{EmployeeID: 7, EmployeeName: "Ghost", CheckIn: t1}}

	_, err := CheckIn(7, nil, logs, t2)
	assert.ErrorIs(t, err, ErrAlreadyOpen)
}

func TestCheckOut_ClosesOpenSession(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}}
	logs, err := CheckIn(1, roster, nil, t1)
	require.NoError(t, err)

	closed, err := CheckOut(1, logs, t2)
	require.NoError(t, err)
	require.NotNil(t, closed[0].CheckOut)
	assert.Equal(t, t2, *closed[0].CheckOut)
	assert.Nil(t, logs[0].CheckOut, "input must not be mutated")
	assert.Equal(t, StatusClosed, DeriveStatus(1, closed))
}

func TestCheckOut_NotOpen(t *testing.T) {
	_, err := CheckOut(1, nil, t1)
	require.ErrorIs(t, err, ErrNotOpen)

	out := t2
	logs := []database.WorkLog{{EmployeeID: 1, CheckIn: t1, CheckOut: &out}}
	same, err := CheckOut(1, logs, t2)
	require.ErrorIs(t, err, ErrNotOpen)
	assert.Equal(t, logs, same)
}

func TestCheckOut_ClampsToCheckIn(t *testing.T) {
	logs := []database.WorkLog{{EmployeeID: 1, CheckIn: t2}}

	closed, err := CheckOut(1, logs, t1)
	require.NoError(t, err)
	assert.Equal(t, t2, *closed[0].CheckOut)
}

func TestCheckOut_ClosesOnlyFirstOpenEntry(t *testing.T) {
	logs := []database.WorkLog{
		{EmployeeID: 2, CheckIn: t1},
		{EmployeeID: 1, CheckIn: t1},
		{EmployeeID: 1, CheckIn: t1.Add(time.Hour)},
	}

	closed, err := CheckOut(1, logs, t2)
	require.NoError(t, err)
	assert.Nil(t, closed[0].CheckOut)
	assert.NotNil(t, closed[1].CheckOut)
	assert.Nil(t, closed[2].CheckOut)
	assert.Equal(t, StatusOpen, DeriveStatus(1, closed))
}

func TestLoggedIn(t *testing.T) {
	out := t2
	logs := []database.WorkLog{
		{EmployeeID: 1, CheckIn: t1, CheckOut: &out},
		{EmployeeID: 2, CheckIn: t1},
		{EmployeeID: 3, CheckIn: t1},
	}

	assert.Equal(t, map[int]bool{2: true, 3: true}, LoggedIn(logs))
}

// Для любой последовательности входов и выходов у сотрудника не больше одной открытой сессии
func TestSessionInvariant_RandomSequences(t *testing.T) {
	roster := []database.Employee{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Marko"}, {ID: 3, Name: "Jelena"}}
	rng := rand.New(rand.NewSource(42))
	now := t1

	var logs []database.WorkLog
	for step := 0; step < 500; step++ {
		id := rng.Intn(len(roster)+1) + 1 // иногда несуществующий сотрудник
		now = now.Add(time.Duration(rng.Intn(3600)) * time.Second)

		before := DeriveStatus(id, logs)
		var err error
		if rng.Intn(2) == 0 {
			var next []database.WorkLog
			next, err = CheckIn(id, roster, logs, now)
			switch {
			case before == StatusOpen:
				require.ErrorIs(t, err, ErrAlreadyOpen)
			case id > len(roster):
				require.ErrorIs(t, err, ErrUnknownEmployee)
			default:
				require.NoError(t, err)
			}
			logs = next
		} else {
			var next []database.WorkLog
			next, err = CheckOut(id, logs, now)
			if before == StatusClosed {
				require.True(t, errors.Is(err, ErrNotOpen))
			} else {
				require.NoError(t, err)
			}
			logs = next
		}

		open := map[int]int{}
		for _, l := range logs {
			if l.IsOpen() {
				open[l.EmployeeID]++
			} else {
				require.False(t, l.CheckOut.Before(l.CheckIn), "step %d: checkOut before checkIn", step)
			}
		}
		for emp, n := range open {
			require.LessOrEqual(t, n, 1, "step %d: employee %d has %d open sessions", step, emp, n)
		}
	}
}
