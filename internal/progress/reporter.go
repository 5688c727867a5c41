// Package progress throttles raw OCR progress streams into coarse,
// monotonic per-page events.
package progress

import "math"

// Event is one throttled progress notification for a single page image.
type Event struct {
	Image    string `json:"image"`
	Progress int    `json:"progress"`
}

// PublishFunc delivers an emitted event. It must not block.
type PublishFunc func(Event)

// Reporter collapses a noisy, high-frequency 0..1 progress stream into at
// most 11 events (0, 10, ..., 100) per image. Emitted values are strictly
// increasing, so out-of-order micro-fluctuations from the engine can never
// re-emit an earlier value. One Reporter serves exactly one image; state is
// never shared across pages.
type Reporter struct {
	image       string
	lastEmitted int
	publish     PublishFunc
}

// NewReporter returns a Reporter for one image. lastEmitted starts below zero
// so that a 0% observation is emittable.
func NewReporter(image string, publish PublishFunc) *Reporter {
	return &Reporter{image: image, lastEmitted: -10, publish: publish}
}

// Observe filters one raw progress fraction in [0,1]. It emits at most one
// event: the floored percent, iff it is a multiple of 10 above the watermark.
// Purely an in-memory filter; it never blocks, buffers, or retries.
func (r *Reporter) Observe(fraction float64) {
	// the epsilon guards tenths that are not exactly representable in
	// binary (0.3*100 floors to 29 without it)
	pct := int(math.Floor(fraction*100 + 1e-9))
	if pct < 0 || pct > 100 {
		return
	}
	if pct%10 != 0 || pct <= r.lastEmitted {
		return
	}
	r.lastEmitted = pct
	if r.publish != nil {
		r.publish(Event{Image: r.image, Progress: pct})
	}
}
