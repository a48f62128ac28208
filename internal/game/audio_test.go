package game

import (
	"encoding/binary"
	"math"
	"testing"

	"corridor/internal/config"
)

func framesIn(buf []byte) []float32 {
	out := make([]float32, 0, len(buf)/4)
	for i := 0; i+4 <= len(buf); i += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
	}
	return out
}

func TestGeneratedSoundsInRange(t *testing.T) {
	for _, kind := range []SoundKind{SoundJump, SoundLand, SoundRecycle} {
		buf := generateSound(kind)
		if len(buf) == 0 || len(buf)%8 != 0 {
			t.Fatalf("%v: %d bytes", kind, len(buf))
		}
		peak := 0.0
		for _, s := range framesIn(buf) {
			v := math.Abs(float64(s))
			if math.IsNaN(v) || v > 1 {
				t.Fatalf("%v: sample %v out of range", kind, s)
			}
			peak = math.Max(peak, v)
		}
		if peak < 0.05 {
			t.Errorf("%v: silent (peak %v)", kind, peak)
		}
	}
	if generateSound(SoundKind(99)) != nil {
		t.Error("unknown kind produced samples")
	}
}

func TestHumReaderFillsBuffer(t *testing.T) {
	h := &humReader{seed: 1}
	p := make([]byte, 8*1024+3)
	n, err := h.Read(p)
	if err != nil || n != 8*1024 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if h.n != 1024 {
		t.Errorf("advanced %d frames", h.n)
	}
	for _, s := range framesIn(p[:n]) {
		if math.Abs(float64(s)) > 1 {
			t.Fatalf("sample %v out of range", s)
		}
	}
}

func TestNilAudioIsSafe(t *testing.T) {
	var a *AudioSystem
	a.Play(SoundJump)
	a.StartHum()
	a.SetSFXVolume(1)
	a.SetMusicVolume(1)
	a.Close()
}

func TestApplyVolumeMuteToggle(t *testing.T) {
	cfg := config.Default().Audio
	a := &AudioSystem{sfxVolume: cfg.SFXVolume, musicVolume: cfg.MusicVolume}

	applyVolume(a, cfg, true)
	if a.sfxVolume != 0 || a.musicVolume != 0 {
		t.Fatalf("muted volumes = %v, %v", a.sfxVolume, a.musicVolume)
	}
	applyVolume(a, cfg, false)
	if a.sfxVolume != cfg.SFXVolume || a.musicVolume != cfg.MusicVolume {
		t.Errorf("restored volumes = %v, %v, want %v, %v", a.sfxVolume, a.musicVolume, cfg.SFXVolume, cfg.MusicVolume)
	}

	a.SetSFXVolume(3)
	a.SetMusicVolume(-1)
	if a.sfxVolume != 1 || a.musicVolume != 0 {
		t.Errorf("clamped volumes = %v, %v", a.sfxVolume, a.musicVolume)
	}
	applyVolume(nil, cfg, true)
}
