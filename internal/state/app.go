// Package state holds the process wide application state shared by every
// request handler and the background milk refiller.
//
// Each piece of state sits behind its own mutex so unrelated operations never
// wait on each other: a board reset does not block a milk withdrawal and the
// refiller only ever takes the bucket lock.
package state

import (
	"math/rand"
	"sync"

	"github.com/patrickwarner/northpole/internal/board"
	"github.com/patrickwarner/northpole/internal/milk"
)

// App owns the milk bucket, the game board, the board random source and the
// gift signing secret.
type App struct {
	bucketMu sync.Mutex
	bucket   milk.Bucket
	onLevel  func(level int)

	boardMu sync.Mutex
	board   board.Board

	rngMu sync.Mutex
	rng   *rand.Rand
	seed  int64

	secretMu sync.Mutex
	secret   []byte
}

// New returns a full bucket, an empty board and a random source seeded with
// seed. The secret is copied.
func New(seed int64, secret []byte) *App {
	return &App{
		bucket: milk.NewBucket(),
		board:  board.New(),
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		secret: append([]byte(nil), secret...),
	}
}

// ObserveMilkLevel registers fn to receive the bucket level after every
// change, starting with the current level. fn runs with the bucket lock held,
// so observers see levels in the order they happened and must not call back
// into the bucket.
func (a *App) ObserveMilkLevel(fn func(level int)) {
	a.bucketMu.Lock()
	defer a.bucketMu.Unlock()
	a.onLevel = fn
	a.publishLevel()
}

// publishLevel must be called with bucketMu held.
func (a *App) publishLevel() {
	if a.onLevel != nil {
		a.onLevel(a.bucket.Level())
	}
}

// WithdrawMilk takes one unit of milk. It reports false when the bucket is
// empty. The level after the attempt is returned as well.
func (a *App) WithdrawMilk() (ok bool, level int) {
	a.bucketMu.Lock()
	defer a.bucketMu.Unlock()
	ok = a.bucket.Withdraw()
	if ok {
		a.publishLevel()
	}
	return ok, a.bucket.Level()
}

// RefillMilk adds one unit unless the bucket is full. It reports whether the
// level changed and the level after the refill.
func (a *App) RefillMilk() (changed bool, level int) {
	a.bucketMu.Lock()
	defer a.bucketMu.Unlock()
	changed = a.bucket.Refill()
	if changed {
		a.publishLevel()
	}
	return changed, a.bucket.Level()
}

// ForceRefillMilk fills the bucket and returns the new level.
func (a *App) ForceRefillMilk() int {
	a.bucketMu.Lock()
	defer a.bucketMu.Unlock()
	a.bucket.ForceRefill()
	a.publishLevel()
	return a.bucket.Level()
}

// MilkLevel returns the current bucket level.
func (a *App) MilkLevel() int {
	a.bucketMu.Lock()
	defer a.bucketMu.Unlock()
	return a.bucket.Level()
}

// Board returns a snapshot of the shared board.
func (a *App) Board() board.Board {
	a.boardMu.Lock()
	defer a.boardMu.Unlock()
	return a.board
}

// PlaceItem drops a tile on the shared board. The board after the attempt is
// returned even when the placement fails, together with the outcome text of
// a move that ended the game.
func (a *App) PlaceItem(team string, column int) (board.Board, string, error) {
	a.boardMu.Lock()
	defer a.boardMu.Unlock()
	outcome, err := a.board.Place(team, column)
	return a.board, outcome, err
}

// ResetBoard empties the shared board and reseeds the random source with the
// initial seed, so the next random board matches the first one served after
// startup.
func (a *App) ResetBoard() board.Board {
	a.boardMu.Lock()
	defer a.boardMu.Unlock()
	a.board.Reset()

	a.rngMu.Lock()
	a.rng.Seed(a.seed)
	a.rngMu.Unlock()

	return a.board
}

// RandomBoard builds a random board from the shared random source. The shared
// board is not touched.
func (a *App) RandomBoard() board.Board {
	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return board.NewRandom(a.rng)
}

// Secret returns a copy of the gift signing secret.
func (a *App) Secret() []byte {
	a.secretMu.Lock()
	defer a.secretMu.Unlock()
	return append([]byte(nil), a.secret...)
}
