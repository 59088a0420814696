package stretch

import "log"

// TimeStretcher resamples an interleaved multi-channel buffer at a
// tempo ratio, easing smoothly between tempos over wall-clock time for
// DJ-style pause/resume effects (spec.md §4.14).
type TimeStretcher struct {
	channels   int
	sampleRate int

	tempo       float64
	targetTempo float64

	transitionStartTime  float64
	transitionDuration   float64
	transitionStartTempo float64
	isTransitioning      bool

	clock Clock
}

// New creates a TimeStretcher. chunkSize is accepted for API
// compatibility with the reference constructor but unused.
func New(sampleRate, channels, chunkSize int) *TimeStretcher {
	return NewWithClock(sampleRate, channels, chunkSize, NewSystemClock())
}

// NewWithClock creates a TimeStretcher with an injected Clock, for
// deterministic tests (spec.md §9).
func NewWithClock(sampleRate, channels, chunkSize int, clock Clock) *TimeStretcher {
	log.Printf("TimeStretcher created: %dHz, %dch", sampleRate, channels)
	return &TimeStretcher{
		channels:             channels,
		sampleRate:           sampleRate,
		tempo:                1.0,
		targetTempo:          1.0,
		transitionStartTempo: 1.0,
		clock:                clock,
	}
}

func clampTempo(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 2 {
		return 2
	}
	return t
}

// SetTempo sets the tempo directly, clamped to [0, 2], cancelling any
// in-progress transition.
func (s *TimeStretcher) SetTempo(tempo float64) {
	s.tempo = clampTempo(tempo)
	s.targetTempo = s.tempo
	s.isTransitioning = false
}

// GetTempo returns the current tempo.
func (s *TimeStretcher) GetTempo() float64 {
	return s.tempo
}

// BeginTransition starts a smooth ease-in-out transition to
// targetTempo over durationSeconds.
func (s *TimeStretcher) BeginTransition(targetTempo, durationSeconds float64) {
	clamped := clampTempo(targetTempo)

	s.transitionStartTempo = s.tempo
	s.targetTempo = clamped
	s.transitionDuration = durationSeconds
	s.transitionStartTime = s.clock.NowMillis()
	s.isTransitioning = true

	log.Printf("Transition: %.2f -> %.2f over %.2fs", s.transitionStartTempo, clamped, durationSeconds)
}

// BeginPauseTransition eases the tempo down to 0 over durationSeconds.
func (s *TimeStretcher) BeginPauseTransition(durationSeconds float64) {
	s.BeginTransition(0, durationSeconds)
}

// BeginResumeTransition eases the tempo up to 1 over durationSeconds.
func (s *TimeStretcher) BeginResumeTransition(durationSeconds float64) {
	s.BeginTransition(1, durationSeconds)
}

// IsTransitioning reports whether a transition is in progress.
func (s *TimeStretcher) IsTransitioning() bool {
	return s.isTransitioning
}

// IsStopped reports whether the tempo is effectively zero.
func (s *TimeStretcher) IsStopped() bool {
	return s.tempo < 0.001
}

// GetLatency always returns 0 for this implementation.
func (s *TimeStretcher) GetLatency() int {
	return 0
}

// GetChannels returns the channel count.
func (s *TimeStretcher) GetChannels() int {
	return s.channels
}

// GetSampleRate returns the configured sample rate.
func (s *TimeStretcher) GetSampleRate() int {
	return s.sampleRate
}

// updateTransition advances the eased tempo based on elapsed wall-clock
// time, snapping to the target once progress reaches 1.
func (s *TimeStretcher) updateTransition() {
	if !s.isTransitioning {
		return
	}

	elapsedSeconds := (s.clock.NowMillis() - s.transitionStartTime) / 1000.0
	var progress float64
	if s.transitionDuration > 0 {
		progress = elapsedSeconds / s.transitionDuration
	} else {
		progress = 1
	}

	if progress >= 1 {
		s.tempo = s.targetTempo
		s.isTransitioning = false
		log.Printf("Transition complete: %.2f", s.tempo)
		return
	}

	var eased float64
	if progress < 0.5 {
		eased = 2 * progress * progress
	} else {
		eased = 1 - ((-2*progress + 2) * (-2*progress + 2) / 2)
	}
	s.tempo = lerp(s.transitionStartTempo, s.targetTempo, eased)
}

// Process resamples input (num_frames interleaved frames across
// s.channels) at the current tempo, advancing any in-progress
// transition first. If the tempo is effectively zero, returns a
// zero buffer the same length as input.
func (s *TimeStretcher) Process(input []float32, numFrames int) []float32 {
	s.updateTransition()

	if s.tempo < 0.001 {
		return make([]float32, len(input))
	}

	ratio := 1.0 / s.tempo
	outputFrames := int(float64(numFrames) / ratio)
	output := make([]float32, outputFrames*s.channels)

	for ch := 0; ch < s.channels; ch++ {
		for i := 0; i < outputFrames; i++ {
			srcPos := float64(i) * ratio
			srcIdx := int(srcPos)
			frac := srcPos - float64(srcIdx)

			if srcIdx+1 < numFrames {
				s1 := sampleAt(input, srcIdx, ch, s.channels)
				s2 := sampleAt(input, srcIdx+1, ch, s.channels)
				output[i*s.channels+ch] = lerp32(s1, s2, float32(frac))
			} else if srcIdx < numFrames {
				output[i*s.channels+ch] = sampleAt(input, srcIdx, ch, s.channels)
			}
		}
	}

	return output
}

// ProcessWithSilence returns silence if the stretcher is stopped,
// otherwise behaves exactly like Process.
func (s *TimeStretcher) ProcessWithSilence(input []float32, numFrames int) []float32 {
	if s.IsStopped() {
		return make([]float32, len(input))
	}
	return s.Process(input, numFrames)
}

// Flush always returns an empty slice; this implementation has no
// internal buffering to drain.
func (s *TimeStretcher) Flush() []float32 {
	return []float32{}
}

// Reset restores default state (tempo 1.0, no transition).
func (s *TimeStretcher) Reset() {
	s.tempo = 1.0
	s.targetTempo = 1.0
	s.isTransitioning = false
	log.Print("TimeStretcher reset")
}

// Stop snaps the tempo to 0 and clears any in-progress transition.
func (s *TimeStretcher) Stop() {
	s.tempo = 0
	s.targetTempo = 0
	s.isTransitioning = false
}

// sampleAt reads the sample for frame idx, channel ch, out of an
// interleaved buffer; a missing/short input is treated as zero.
func sampleAt(input []float32, idx, ch, channels int) float32 {
	pos := idx*channels + ch
	if pos < 0 || pos >= len(input) {
		return 0
	}
	return input[pos]
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
