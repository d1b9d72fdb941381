package termview

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/moon-and-sun/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipLength = 40 * time.Millisecond
)

// blipPitch is the tone played when a team's token captures a cell.
var blipPitch = map[game.Team]float64{
	game.TeamMoon: 440,
	game.TeamSun:  880,
}

// Blipper plays a short sine tone per capture through the system speaker.
type Blipper struct {
	tones map[game.Team]*beep.Buffer
}

// NewBlipper opens the speaker and renders one tone per team. Callers should
// treat an error as "run without sound".
func NewBlipper() (*Blipper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	b := &Blipper{tones: make(map[game.Team]*beep.Buffer, len(blipPitch))}
	for team, freq := range blipPitch {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			speaker.Close()
			return nil, fmt.Errorf("tone %g Hz: %w", freq, err)
		}
		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(beep.Take(sampleRate.N(blipLength), sine))
		b.tones[team] = buf
	}
	return b, nil
}

// Capture plays team's tone without blocking.
func (b *Blipper) Capture(team game.Team) {
	buf, ok := b.tones[team]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close releases the speaker.
func (b *Blipper) Close() {
	speaker.Close()
}
