// Package speech holds the speech engines used by the bot: synthesis of
// replies and recognition of recorded clips.
package speech

import (
	"context"
	"log"
	"sync"

	"lingobot/internal/ports/output"
)

// Utterance is synthesized speech ready to be played.
type Utterance struct {
	Text   string
	Locale string
	Audio  []byte
}

// Sink plays synthesized audio somewhere (a chat channel, a speaker).
type Sink interface {
	Play(ctx context.Context, u Utterance) error
}

var _ output.Speaker = (*Voice)(nil)

// Voice owns a single current utterance: Speak cancels whatever is still
// being synthesized or delivered before starting the new one.
type Voice struct {
	synth output.Synthesizer
	sink  Sink

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewVoice(synth output.Synthesizer, sink Sink) *Voice {
	return &Voice{synth: synth, sink: sink}
}

// Speak starts reading text in the background. The utterance outlives ctx's
// cancellation but keeps its values.
func (v *Voice) Speak(ctx context.Context, text, locale string) {
	uctx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.cancel = cancel
	v.wg.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.wg.Done()
		defer cancel()

		audio, err := v.synth.Synthesize(uctx, text, locale)
		if err != nil {
			if uctx.Err() == nil {
				log.Printf("⚠️ Erreur de synthèse vocale (%s): %v", locale, err)
			}
			return
		}
		if uctx.Err() != nil {
			return
		}
		if err := v.sink.Play(uctx, Utterance{Text: text, Locale: locale, Audio: audio}); err != nil && uctx.Err() == nil {
			log.Printf("⚠️ Erreur lors de la lecture audio: %v", err)
		}
	}()
}

// Stop cancels the current utterance, if any.
func (v *Voice) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Wait blocks until every started utterance has finished or been cancelled.
func (v *Voice) Wait() {
	v.wg.Wait()
}
