package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// SoundID names one of the synthesized effects.
type SoundID int

const (
	SoundClick SoundID = iota
	SoundCorrect
	SoundWrong
	SoundSuper
	SoundGameOver
	soundCount
)

// AudioManager plays synthesized sound effects and a looping background
// melody. No audio assets ship with the game; every sound is generated as
// PCM at startup. All methods are safe on a nil manager, so audio failures
// never break gameplay.
type AudioManager struct {
	context  *audio.Context
	settings *SettingsManager

	sounds [soundCount][]byte
	music  *audio.Player
}

// NewAudioManager builds the effect table and starts the background
// melody. settings may be nil, in which case defaults apply.
func NewAudioManager(settings *SettingsManager) *AudioManager {
	am := &AudioManager{
		context:  audio.NewContext(sampleRate),
		settings: settings,
	}

	am.sounds[SoundClick] = synthTone(880, 0.08, 6)
	am.sounds[SoundCorrect] = synthChord([]float64{523.25, 659.25, 783.99}, 0.25, 4)
	am.sounds[SoundWrong] = synthTone(196, 0.3, 5)
	am.sounds[SoundSuper] = synthChord([]float64{523.25, 659.25, 783.99, 1046.5}, 0.45, 3)
	am.sounds[SoundGameOver] = synthChord([]float64{392, 311.13, 261.63}, 0.6, 3)

	am.startMusic()
	return am
}

// Play plays the given effect at the configured sound volume. Disabled
// sound or a nil manager plays nothing.
func (am *AudioManager) Play(id SoundID) {
	if am == nil || id < 0 || id >= soundCount {
		return
	}
	if am.settings != nil && !am.settings.Get().SoundEnabled {
		return
	}

	player := am.context.NewPlayerFromBytes(am.sounds[id])
	vol := 0.8
	if am.settings != nil {
		vol = am.settings.Get().SoundVolume
	}
	player.SetVolume(vol)
	player.Play()
}

// SyncMusic applies the current music settings. Call after toggling music
// or changing its volume.
func (am *AudioManager) SyncMusic() {
	if am == nil || am.music == nil {
		return
	}
	enabled := true
	vol := 0.7
	if am.settings != nil {
		enabled = am.settings.Get().MusicEnabled
		vol = am.settings.Get().MusicVolume
	}
	am.music.SetVolume(vol)
	if enabled && !am.music.IsPlaying() {
		am.music.Play()
	}
	if !enabled && am.music.IsPlaying() {
		am.music.Pause()
	}
}

func (am *AudioManager) startMusic() {
	melody := synthMelody()
	loop := audio.NewInfiniteLoop(bytes.NewReader(melody), int64(len(melody)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] failed to create music player: %v", err)
		return
	}
	am.music = player
	am.SyncMusic()
}

// synthTone renders a sine tone with exponential decay as 16-bit stereo
// PCM. freq is in Hz, duration in seconds, decay the per-second falloff.
func synthTone(freq, duration, decay float64) []byte {
	return synthChord([]float64{freq}, duration, decay)
}

// synthChord renders a sum of sine tones with exponential decay.
func synthChord(freqs []float64, duration, decay float64) []byte {
	n := int(duration * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := math.Exp(-decay * t)
		var sum float64
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		v := int16(sum / float64(len(freqs)) * env * 0.3 * math.MaxInt16)
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

// synthMelody renders a short pentatonic phrase used as the looping
// background track.
func synthMelody() []byte {
	notes := []float64{261.63, 293.66, 329.63, 392.00, 440.00, 392.00, 329.63, 293.66}
	var out []byte
	for _, f := range notes {
		out = append(out, synthTone(f, 0.5, 2)...)
	}
	return out
}
