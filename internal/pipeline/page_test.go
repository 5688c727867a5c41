package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"github.com/mateusribeiro/certidao-ocr/internal/common"
	"github.com/mateusribeiro/certidao-ocr/internal/ocr"
	"github.com/mateusribeiro/certidao-ocr/internal/progress"
)

type fakeEngine struct {
	text      string
	err       error
	fractions []float64
}

func (f *fakeEngine) Recognize(_ context.Context, _, _ string, onProgress ocr.ProgressFunc) (string, error) {
	for _, fr := range f.fractions {
		onProgress(ocr.StatusRecognizing, fr)
	}
	return f.text, f.err
}

type recordedEvent struct {
	ChannelID string
	Event     string
	Payload   any
}

type fakeSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (s *fakeSink) Publish(_ context.Context, channelID, event string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{ChannelID: channelID, Event: event, Payload: payload})
}

func (s *fakeSink) progressValues(t *testing.T) []int {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []int
	for _, ev := range s.events {
		pe, ok := ev.Payload.(progress.Event)
		if !ok {
			t.Fatalf("unexpected payload %T", ev.Payload)
		}
		out = append(out, pe.Progress)
	}
	return out
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan-1.jpg")
	if err := os.WriteFile(path, []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPageProcessSuccess(t *testing.T) {
	img := writeTempImage(t)
	sink := &fakeSink{}
	engine := &fakeEngine{text: "Nome: Ana\r\n\r\n\r\nCPF: 1", fractions: []float64{0, 0.5, 1}}
	p := NewPageProcessor(engine, sink, "por", nil)

	text, err := p.Process(context.Background(), img, "chan-1")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if text != "Nome: Ana\n\nCPF: 1" {
		t.Fatalf("text = %q", text)
	}

	got := sink.progressValues(t)
	want := []int{0, 50, 100, 100} // throttled stream plus the terminal event
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("progress = %v, want %v", got, want)
	}

	if _, err := os.Stat(img); !os.IsNotExist(err) {
		t.Fatalf("image not cleaned up: %v", err)
	}
}

func TestPageProcessFailureStillCleansUp(t *testing.T) {
	img := writeTempImage(t)
	sink := &fakeSink{}
	engine := &fakeEngine{err: errors.New("tesseract: boom")}
	p := NewPageProcessor(engine, sink, "por", nil)

	_, err := p.Process(context.Background(), img, "chan-1")
	if err == nil {
		t.Fatal("expected error")
	}
	kind, ok := common.KindOf(err)
	if !ok || kind != common.KindOCRError {
		t.Fatalf("kind = %v (ok=%v), want %s", kind, ok, common.KindOCRError)
	}

	got := sink.progressValues(t)
	if !reflect.DeepEqual(got, []int{100}) {
		t.Fatalf("progress = %v, want terminal [100]", got)
	}

	if _, err := os.Stat(img); !os.IsNotExist(err) {
		t.Fatalf("image not cleaned up: %v", err)
	}
}

func TestPageProcessEventsCarryImageName(t *testing.T) {
	img := writeTempImage(t)
	sink := &fakeSink{}
	engine := &fakeEngine{text: "x", fractions: []float64{1}}
	p := NewPageProcessor(engine, sink, "por", nil)

	if _, err := p.Process(context.Background(), img, "chan-9"); err != nil {
		t.Fatalf("process: %v", err)
	}

	for _, ev := range sink.events {
		if ev.ChannelID != "chan-9" {
			t.Fatalf("channel = %s, want chan-9", ev.ChannelID)
		}
		if ev.Event != "ocrProgress" {
			t.Fatalf("event = %s, want ocrProgress", ev.Event)
		}
		pe := ev.Payload.(progress.Event)
		if pe.Image != "scan-1.jpg" {
			t.Fatalf("image = %s, want scan-1.jpg", pe.Image)
		}
	}
}
