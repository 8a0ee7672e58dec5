// meta/meta.go
package meta

// MaxExpansions is the default number of successor generations allowed per ply.
const MaxExpansions = 15

// MinimaxBranching is the branching factor minimax agents assume when
// deriving their horizon from the budget.
const MinimaxBranching = 8

// AlphaBetaBranching is the branching factor alpha-beta agents assume.
const AlphaBetaBranching = 4

// MaxPlies caps a game; 0 plays until a win or a draw.
const MaxPlies = 0

// RandomSeed seeds random agents that are not given one.
const RandomSeed = 1

// ReportDir is where tournament reports are written.
const ReportDir = "reports"
