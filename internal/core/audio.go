package core

// SoundID identifies a one-shot sound effect.
type SoundID int

const (
	SoundClear SoundID = iota // Short arpeggio when the goal is reached
)

// MusicID identifies a looped background track.
type MusicID int

const (
	MusicMaze MusicID = iota // Slow minor loop while a maze is on screen
)

// Audio is the sound collaborator a game triggers. Implementations must not
// block the caller; playback happens elsewhere.
type Audio interface {
	PlaySoundOnce(id SoundID)
	PlayMusicLooped(id MusicID)
	StopMusic()
}

// NopAudio discards every request. Used when sound is muted or unavailable.
type NopAudio struct{}

func (NopAudio) PlaySoundOnce(SoundID)   {}
func (NopAudio) PlayMusicLooped(MusicID) {}
func (NopAudio) StopMusic()              {}
