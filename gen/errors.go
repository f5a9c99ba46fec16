package gen

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("bit depth not supported by the generator")
	ErrInvalidWaveform     = errors.New("unknown waveform kind")
	ErrInvalidAmplitude    = errors.New("amplitude fraction must be in (0, 1]")
)
