package metrics

// Recorder receives metrics while games are played.
type Recorder interface {
	RecordMove(MoveMetric)
	RecordGame(GameMetric)
}

// Records keeps every metric in memory, keyed by game ID.
type Records struct {
	Games []GameMetric
	Moves map[string][]MoveMetric
	open  []MoveMetric
}

func NewRecords() *Records {
	return &Records{Moves: map[string][]MoveMetric{}}
}

func (r *Records) RecordMove(m MoveMetric) {
	r.open = append(r.open, m)
}

// RecordGame closes the game: moves recorded since the previous game belong to it.
func (r *Records) RecordGame(g GameMetric) {
	r.Games = append(r.Games, g)
	r.Moves[g.ID] = r.open
	r.open = nil
}

type tee []Recorder

// Tee forwards every metric to each recorder in turn.
func Tee(recorders ...Recorder) Recorder {
	return tee(recorders)
}

func (t tee) RecordMove(m MoveMetric) {
	for _, r := range t {
		r.RecordMove(m)
	}
}

func (t tee) RecordGame(g GameMetric) {
	for _, r := range t {
		r.RecordGame(g)
	}
}

type dummyRecorder struct{}

func NewDummyRecorder() Recorder {
	return dummyRecorder{}
}

func (dummyRecorder) RecordMove(MoveMetric) {}
func (dummyRecorder) RecordGame(GameMetric) {}
