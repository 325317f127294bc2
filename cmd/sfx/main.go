// Command sfx writes every synthesized effect and the bassline to WAV files
// so they can be auditioned outside the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/milk9111/forestsurvivor/audio"
)

func writeWAV(path string, s beep.Streamer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sfx: create %s: %w", path, err)
	}
	format := beep.Format{SampleRate: audio.SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, s, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("sfx: encode %s: %w", path, err)
	}
	return f.Close()
}

func main() {
	out := flag.String("out", "sfx", "output directory")
	volume := flag.Float64("volume", 1, "master volume in [0, 1]")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		log.Fatal(err)
	}

	for _, e := range audio.Effects() {
		path := filepath.Join(*out, string(e)+".wav")
		if err := writeWAV(path, audio.NewEffect(e, audio.SampleRate, *volume)); err != nil {
			log.Fatal(err)
		}
		log.Printf("sfx: wrote %s", path)
	}

	// One pass of the loop, one note every 250ms.
	step := audio.SampleRate.N(audio.MusicStep)
	notes := make([]beep.Streamer, 0, len(audio.Bassline))
	for _, f := range audio.Bassline {
		notes = append(notes, beep.Take(step, beep.Seq(audio.NewBassNote(f, audio.SampleRate, *volume), beep.Silence(-1))))
	}
	path := filepath.Join(*out, "bassline.wav")
	if err := writeWAV(path, beep.Seq(notes...)); err != nil {
		log.Fatal(err)
	}
	log.Printf("sfx: wrote %s", path)
}
