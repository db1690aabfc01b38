package component

// DeathCause names what ended a round.
type DeathCause string

const (
	CauseNone       DeathCause = ""
	CauseWall       DeathCause = "wall"
	CauseObstacle   DeathCause = "obstacle"
	CauseSelf       DeathCause = "self"
	CausePoison     DeathCause = "poison"
	CauseStarvation DeathCause = "starvation"
)

// Scene names a pending scene transition requested during play.
type Scene string

const (
	SceneNone Scene = ""
	SceneMenu Scene = "menu"
	SceneQuit Scene = "quit"
)

// GameState holds the global round flags. It lives outside the registry and
// persists across rounds; Reset clears it in place.
type GameState struct {
	Paused      bool
	GameOver    bool
	DeathReason DeathCause
	NextScene   Scene
}

// Reset clears every flag for a new round.
func (s *GameState) Reset() { *s = GameState{} }

// Score holds the current and best score. High survives round resets.
type Score struct {
	Current int
	High    int
}
