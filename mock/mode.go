package mock

import "github.com/fwojciec/birdtab"

var _ birdtab.ModeDetector = (*ModeDetector)(nil)

// ModeDetector is a mock implementation of birdtab.ModeDetector.
type ModeDetector struct {
	DetectFn func(html string) birdtab.Mode
}

func (d *ModeDetector) Detect(html string) birdtab.Mode {
	return d.DetectFn(html)
}
