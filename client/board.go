package client

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// MatchEvaluator is the server call the board makes when the player asks for
// two face-up cards to be judged. *Client satisfies it.
type MatchEvaluator interface {
	UpdateGame(ctx context.Context, card1ID, card2ID uint) (UpdateGameResult, error)
}

type BoardState int

const (
	Idle BoardState = iota
	OneSelected
	TwoSelected
)

// ErrNotReady is returned by Evaluate when fewer than two cards are face-up
// or a mismatch flip-back is still pending.
var ErrNotReady = errors.New("two face-up cards required")

// Board is the browser-local half of a round: which cards are face-up, which
// pairs are locked as matched, and the running totals. Every mutation that
// touches the score goes through the server via the evaluator; a failed call
// leaves the selection face-up so the player can retry.
type Board struct {
	mu          sync.Mutex
	evaluator   MatchEvaluator
	cards       []Card
	faceUp      []uint // selection order, at most two
	matched     map[uint]bool
	pairs       [][2]uint
	score       int
	attempts    int
	pendingFlip bool
	flipDelay   time.Duration
}

// NewBoard deals a shuffled board over the given catalog cards.
func NewBoard(evaluator MatchEvaluator, cards []Card) *Board {
	return &Board{
		evaluator: evaluator,
		cards:     Shuffle(cards),
		matched:   make(map[uint]bool),
		flipDelay: time.Second,
	}
}

// SetFlipDelay overrides how long a mismatched pair stays visible.
func (b *Board) SetFlipDelay(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flipDelay = d
}

// Shuffle returns a Fisher-Yates shuffled copy of cards.
func Shuffle(cards []Card) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Select flips a face-down card up, or toggles a face-up card back down.
// Reports whether the selection changed anything: matched cards, a third
// selection, and clicks during a pending flip-back are all ignored.
func (b *Board) Select(cardID uint) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.matched[cardID] || b.pendingFlip {
		return false
	}

	for i, id := range b.faceUp {
		if id == cardID {
			b.faceUp = append(b.faceUp[:i], b.faceUp[i+1:]...)
			return true
		}
	}

	if len(b.faceUp) >= 2 {
		return false
	}

	if !b.hasCard(cardID) {
		return false
	}
	b.faceUp = append(b.faceUp, cardID)
	return true
}

// Evaluate sends the current two-card selection to the server. On a match
// both cards lock as matched; on a mismatch they flip back after the
// configured delay. On a network failure the selection is left face-up and
// no counters move.
func (b *Board) Evaluate(ctx context.Context) (bool, error) {
	b.mu.Lock()
	if len(b.faceUp) != 2 || b.pendingFlip {
		b.mu.Unlock()
		return false, ErrNotReady
	}
	card1, card2 := b.faceUp[0], b.faceUp[1]
	b.mu.Unlock()

	res, err := b.evaluator.UpdateGame(ctx, card1, card2)
	if err != nil {
		return false, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.attempts++
	b.score = res.Score
	if res.IsMatch {
		b.matched[card1] = true
		b.matched[card2] = true
		b.pairs = append(b.pairs, [2]uint{card1, card2})
		b.faceUp = b.faceUp[:0]
	} else {
		b.pendingFlip = true
		time.AfterFunc(b.flipDelay, b.flipBack)
	}
	return res.IsMatch, nil
}

func (b *Board) flipBack() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.faceUp = b.faceUp[:0]
	b.pendingFlip = false
}

// State derives the selection state from how many cards are face-up.
func (b *Board) State() BoardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch len(b.faceUp) {
	case 1:
		return OneSelected
	case 2:
		return TwoSelected
	default:
		return Idle
	}
}

// Complete reports whether every card on the board is matched.
func (b *Board) Complete() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cards) > 0 && len(b.matched) == len(b.cards)
}

func (b *Board) Score() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score
}

func (b *Board) Attempts() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.attempts
}

func (b *Board) IsFaceUp(cardID uint) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.matched[cardID] {
		return true
	}
	for _, id := range b.faceUp {
		if id == cardID {
			return true
		}
	}
	return false
}

func (b *Board) IsMatched(cardID uint) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.matched[cardID]
}

// Cards returns the dealt order.
func (b *Board) Cards() []Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// MatchedPairs returns resolved pairs in the order they were matched.
func (b *Board) MatchedPairs() [][2]uint {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([][2]uint, len(b.pairs))
	copy(out, b.pairs)
	return out
}

func (b *Board) hasCard(cardID uint) bool {
	for _, c := range b.cards {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// StartRound fetches the mode's cards, opens a server round, and deals a
// fresh board.
func (c *Client) StartRound(ctx context.Context, gameModeID uint) (*Board, error) {
	cards, err := c.CardsByGameMode(ctx, gameModeID)
	if err != nil {
		return nil, err
	}
	if err := c.StartGame(ctx); err != nil {
		return nil, err
	}
	return NewBoard(c, cards), nil
}

// FinishReport tallies the end-of-round summary flow: every matched pair is
// saved to the collection independently, and successes/failures are reported
// in aggregate.
type FinishReport struct {
	Summary RoundSummary
	Saved   int
	Failed  int
	Errors  []string
}

// FinishRound optionally saves the board's matched pairs to the collection,
// then closes the server round. Individual save failures don't abort the
// flow; they are tallied into the report.
func (c *Client) FinishRound(ctx context.Context, b *Board, gameModeID uint, savePairs bool) (*FinishReport, error) {
	rep := &FinishReport{}

	if savePairs {
		for _, p := range b.MatchedPairs() {
			if _, err := c.AddToCollection(ctx, p[0], p[1], gameModeID); err != nil {
				rep.Failed++
				rep.Errors = append(rep.Errors, err.Error())
				continue
			}
			rep.Saved++
		}
	}

	sum, err := c.FinishGame(ctx)
	if err != nil {
		return rep, err
	}
	rep.Summary = *sum
	return rep, nil
}
