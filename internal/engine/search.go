package engine

import "github.com/arcanox/chesscore/internal/board"

// Search score constants. MateScore must comfortably exceed any possible
// material-plus-PST evaluation so mate scores always sort above ordinary
// ones; Infinity is the alpha-beta window's starting bound.
const (
	Infinity     = 1000000
	MateScore    = 1000000
	DefaultDepth = 4
)

// Settings controls the search. The zero value is not usable; callers
// should start from DefaultSettings and override fields as needed.
type Settings struct {
	Depth     int
	MoveOrder bool
}

// DefaultSettings returns depth 4 with move ordering on.
func DefaultSettings() Settings {
	return Settings{Depth: DefaultDepth, MoveOrder: true}
}

// Searcher runs an alpha-beta negamax search with capture-only quiescence
// over a *board.Game, mutating it with MakeMove/UnmakeMove as it recurses
// and always restoring it to its original state before returning.
type Searcher struct {
	game     *board.Game
	settings Settings

	BestMove      board.Move
	NodesSearched uint64
}

// NewSearcher creates a searcher bound to g with the given settings.
func NewSearcher(g *board.Game, settings Settings) *Searcher {
	return &Searcher{game: g, settings: settings}
}

// Start runs the search to s.settings.Depth and returns the best move found
// along with its score from the side-to-move's perspective. Returns
// board.NoMove if the side to move has no legal moves.
func (s *Searcher) Start() (board.Move, int) {
	s.BestMove = board.NoMove
	s.NodesSearched = 0
	score := s.search(0, s.settings.Depth, -Infinity, Infinity)
	return s.BestMove, score
}

// search implements the negamax core: at depth_left == 0 it hands off to
// quiescence; otherwise it enumerates legal moves, orders them if enabled,
// and recurses with a negated, swapped alpha-beta window.
func (s *Searcher) search(ply, depthLeft int, alpha, beta int) int {
	if depthLeft == 0 {
		return s.quiesce(alpha, beta)
	}

	var moves board.MoveList
	board.GenerateLegalMoves(s.game, &moves)

	if moves.Len() == 0 {
		if s.game.InCheck(s.game.SideToMove) {
			return -MateScore + ply
		}
		return 0
	}

	if ply == 0 {
		s.BestMove = moves.Get(0)
	}

	if s.settings.MoveOrder {
		orderMoves(s.game, &moves)
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		s.game.MakeMove(m)
		score := -s.search(ply+1, depthLeft-1, -beta, -alpha)
		s.game.UnmakeMove()
		s.NodesSearched++

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			if ply == 0 {
				s.BestMove = m
			}
		}
	}

	return alpha
}

// quiesce extends the search along capture sequences only, to avoid
// misjudging a position where the side to move stands to win or lose
// material on the very next ply (the horizon effect).
func (s *Searcher) quiesce(alpha, beta int) int {
	standPat := Evaluate(s.game)
	s.NodesSearched++
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var moves board.MoveList
	board.GenerateLegalMoves(s.game, &moves)
	if s.settings.MoveOrder {
		orderMoves(s.game, &moves)
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !m.Kind().IsCapture() {
			continue
		}
		s.game.MakeMove(m)
		score := -s.quiesce(-beta, -alpha)
		s.game.UnmakeMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// BestMove runs a search at the default depth and returns only the best
// move, for callers that don't need the score.
func BestMove(g *board.Game) board.Move {
	s := NewSearcher(g, DefaultSettings())
	m, _ := s.Start()
	return m
}
