package state

import (
	"sync"
	"testing"

	"github.com/patrickwarner/northpole/internal/board"
	"github.com/patrickwarner/northpole/internal/milk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Milk(t *testing.T) {
	app := New(2024, []byte("secret"))
	assert.Equal(t, milk.Capacity, app.MilkLevel())

	for i := 0; i < milk.Capacity; i++ {
		ok, level := app.WithdrawMilk()
		require.True(t, ok)
		assert.Equal(t, milk.Capacity-1-i, level)
	}
	ok, level := app.WithdrawMilk()
	assert.False(t, ok)
	assert.Zero(t, level)

	changed, level := app.RefillMilk()
	assert.True(t, changed)
	assert.Equal(t, 1, level)

	assert.Equal(t, milk.Capacity, app.ForceRefillMilk())
	assert.Equal(t, milk.Capacity, app.MilkLevel())

	changed, _ = app.RefillMilk()
	assert.False(t, changed)
}

func TestApp_ConcurrentWithdrawals(t *testing.T) {
	app := New(2024, nil)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		served int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := app.WithdrawMilk(); ok {
				mu.Lock()
				served++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, milk.Capacity, served)
	assert.Zero(t, app.MilkLevel())
}

func TestApp_PlaceItem(t *testing.T) {
	app := New(2024, nil)

	b, outcome, err := app.PlaceItem("milk", 2)
	require.NoError(t, err)
	assert.Empty(t, outcome)
	assert.Equal(t, board.Milk, b.Grid[board.Size-1][1])
	assert.Equal(t, b, app.Board())

	before := app.Board()
	_, _, err = app.PlaceItem("milk", 7)
	assert.ErrorIs(t, err, board.ErrInvalidColumn)
	assert.Equal(t, before, app.Board())
}

func TestApp_BoardSnapshotIsACopy(t *testing.T) {
	app := New(2024, nil)
	snap := app.Board()
	snap.Grid[0][0] = board.Cookie
	assert.Equal(t, board.New(), app.Board())
}

func TestApp_ResetReseedsRandomSource(t *testing.T) {
	app := New(2024, nil)
	first := app.RandomBoard()
	second := app.RandomBoard()

	for _, col := range []int{1, 2, 2, 3} {
		_, _, err := app.PlaceItem("cookie", col)
		require.NoError(t, err)
	}

	empty := app.ResetBoard()
	assert.Equal(t, board.New(), empty)
	assert.Equal(t, board.New(), app.Board())

	assert.Equal(t, first, app.RandomBoard())
	assert.Equal(t, second, app.RandomBoard())

	fresh := New(2024, nil)
	assert.Equal(t, first, fresh.RandomBoard())
}

func TestApp_RandomBoardLeavesSharedBoard(t *testing.T) {
	app := New(2024, nil)
	_ = app.RandomBoard()
	assert.Equal(t, board.New(), app.Board())
}

func TestApp_Secret(t *testing.T) {
	key := []byte("secret")
	app := New(2024, key)
	key[0] = 'X'

	got := app.Secret()
	assert.Equal(t, []byte("secret"), got)

	got[0] = 'Y'
	assert.Equal(t, []byte("secret"), app.Secret())
}

func TestApp_ConcurrentMixedAccess(t *testing.T) {
	app := New(2024, []byte("k"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(4)
		go func() { defer wg.Done(); app.WithdrawMilk() }()
		go func() { defer wg.Done(); app.RefillMilk() }()
		go func(col int) { defer wg.Done(); _, _, _ = app.PlaceItem("milk", col) }(i%board.Size + 1)
		go func() { defer wg.Done(); app.RandomBoard(); app.ResetBoard() }()
	}
	wg.Wait()

	level := app.MilkLevel()
	assert.GreaterOrEqual(t, level, 0)
	assert.LessOrEqual(t, level, milk.Capacity)
}

func TestApp_ObserveMilkLevelSeesEveryChangeInOrder(t *testing.T) {
	app := New(2024, nil)

	var levels []int
	app.ObserveMilkLevel(func(level int) { levels = append(levels, level) })

	app.WithdrawMilk()
	app.WithdrawMilk()
	app.RefillMilk()
	app.ForceRefillMilk()
	app.RefillMilk() // full, no change

	assert.Equal(t, []int{5, 4, 3, 4, 5}, levels)
}

func TestApp_ObserveMilkLevelUnderConcurrency(t *testing.T) {
	app := New(2024, nil)
	for i := 0; i < milk.Capacity; i++ {
		app.WithdrawMilk()
	}

	var last int
	app.ObserveMilkLevel(func(level int) { last = level })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			app.WithdrawMilk()
		}()
		go func() {
			defer wg.Done()
			app.RefillMilk()
		}()
	}
	wg.Wait()

	// Observer calls run under the bucket lock, so the last observed value
	// is the final level.
	assert.Equal(t, app.MilkLevel(), last)
}
