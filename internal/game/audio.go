package game

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies a sound effect.
type SoundKind int

const (
	SoundJump SoundKind = iota
	SoundLand
	SoundRecycle
)

func (k SoundKind) String() string {
	switch k {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundRecycle:
		return "recycle"
	}
	return "unknown"
}

// AudioSystem plays procedural effects and the corridor hum.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}

	mu          sync.Mutex
	sfxVolume   float64
	musicVolume float64
	hum         oto.Player

	// Effects are generated once per kind.
	cache map[SoundKind][]byte
}

// InitAudio opens the output device. The context becomes usable once ready
// closes; sounds requested before that are dropped.
func InitAudio(sfxVolume, musicVolume float64) (*AudioSystem, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioSystem{
		ctx:         ctx,
		ready:       ready,
		sfxVolume:   clampF(sfxVolume, 0, 1),
		musicVolume: clampF(musicVolume, 0, 1),
		cache:       make(map[SoundKind][]byte),
	}, nil
}

func (a *AudioSystem) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play starts a one-shot effect. Safe to call on a nil system.
func (a *AudioSystem) Play(kind SoundKind) {
	if !a.isReady() {
		return
	}
	a.mu.Lock()
	samples, ok := a.cache[kind]
	if !ok {
		samples = generateSound(kind)
		a.cache[kind] = samples
	}
	vol := a.sfxVolume
	a.mu.Unlock()
	if len(samples) == 0 || vol <= 0 {
		return
	}
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartHum loops the ambience until Close. Calling it again restarts it.
func (a *AudioSystem) StartHum() {
	if !a.isReady() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hum != nil {
		a.hum.Close()
	}
	p := a.ctx.NewPlayer(&humReader{seed: uint64(time.Now().UnixNano())})
	p.SetVolume(a.musicVolume)
	p.Play()
	a.hum = p
}

func (a *AudioSystem) SetSFXVolume(vol float64) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.sfxVolume = clampF(vol, 0, 1)
	a.mu.Unlock()
}

func (a *AudioSystem) SetMusicVolume(vol float64) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.musicVolume = clampF(vol, 0, 1)
	if a.hum != nil {
		a.hum.SetVolume(a.musicVolume)
	}
}

func (a *AudioSystem) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.hum != nil {
		a.hum.Close()
		a.hum = nil
	}
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundJump:
		return genJump()
	case SoundLand:
		return genLand()
	case SoundRecycle:
		return genRecycle()
	}
	return nil
}

// genJump: short rising FM chirp.
func genJump() []byte {
	n := int(0.14 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		freq := 260 + 420*p*p
		s := fm(t, freq, 2.0, 2.2*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLand: low thump with a little scuffed noise.
func genLand() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thump := math.Sin(2*math.Pi*(95-45*p)*t) * math.Exp(-p*14) * 0.6
		lp = lp*0.8 + lcg(&seed)*0.2
		scuff := lp * math.Exp(-p*20) * 0.35
		putStereoF32(buf, i, softSat(thump+scuff))
	}
	return buf
}

// genRecycle: faint descending two-note door chime.
func genRecycle() []byte {
	notes := []float64{659.25, 523.25} // E5 C5
	step := int(0.11 * SampleRate)
	total := len(notes)*step + int(0.2*SampleRate)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := ni * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.05, 0.4)
			mix[start+j] += fm(t, freq, 3.5, 3.0*env) * env * 0.22
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// humReader streams an endless fluorescent-light hum: 60 Hz mains with
// harmonics, slow beating and a trace of filtered noise.
type humReader struct {
	n    int
	seed uint64
	lp   float64
}

func (h *humReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	for i := 0; i < samples; i++ {
		t := float64(h.n) / SampleRate
		beat := 0.85 + 0.15*math.Sin(2*math.Pi*0.23*t)
		s := math.Sin(2*math.Pi*60*t)*0.5 +
			math.Sin(2*math.Pi*120*t+0.3)*0.3*beat +
			math.Sin(2*math.Pi*180*t+1.1)*0.12
		h.lp = h.lp*0.97 + lcg(&h.seed)*0.03
		putStereoF32(p, i, softSat((s+h.lp*0.4)*0.5))
		h.n++
	}
	return samples * 8, nil
}
