package audio

import (
	"encoding/binary"
	"sync"

	"github.com/gopxl/beep"
)

// maxRenderSamples bounds Render for streamers that never end.
const maxRenderSamples = 5 * 44100

// Render drains s into interleaved stereo 16-bit little-endian PCM, the
// format ebiten's audio players read.
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	total := 0
	for total < maxRenderSamples {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = appendSample(out, buf[i][0])
			out = appendSample(out, buf[i][1])
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func appendSample(out []byte, v float64) []byte {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return binary.LittleEndian.AppendUint16(out, uint16(int16(v*32767)))
}

// Cache keeps rendered PCM for effects and bass notes so each is
// synthesized once.
type Cache struct {
	mu     sync.RWMutex
	rate   beep.SampleRate
	volume float64
	store  map[string][]byte
}

func NewCache(rate beep.SampleRate, volume float64) *Cache {
	return &Cache{rate: rate, volume: volume, store: make(map[string][]byte)}
}

// Effect returns the PCM for e, or nil for an unknown effect.
func (c *Cache) Effect(e Effect) []byte {
	return c.get("fx:"+string(e), func() beep.Streamer {
		return NewEffect(e, c.rate, c.volume)
	})
}

// Note returns the PCM for one bass note.
func (c *Cache) Note(freq float64) []byte {
	return c.get("note:"+formatFreq(freq), func() beep.Streamer {
		return NewBassNote(freq, c.rate, c.volume)
	})
}

func (c *Cache) get(key string, build func() beep.Streamer) []byte {
	c.mu.RLock()
	if pcm, ok := c.store[key]; ok {
		c.mu.RUnlock()
		return pcm
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if pcm, ok := c.store[key]; ok {
		return pcm
	}
	pcm := Render(build())
	c.store[key] = pcm
	return pcm
}
