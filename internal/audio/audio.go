package audio

// Sound names a sound effect.
type Sound uint8

const (
	SoundAte Sound = iota
	SoundSpeedUp
	SoundDeath
	SoundPoison
	SoundHighScore
	SoundStart
)

// Player plays sound effects. Play must not block the game loop.
type Player interface {
	Play(s Sound)
	Close()
}

// Nop is a Player that stays silent. It is used when audio is disabled or
// no output device is available.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Close()     {}
