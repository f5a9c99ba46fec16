package wav

import "errors"

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrInvalidArgument  = errors.New("value outside the legal set")
	ErrInvalidBlockSize = errors.New("data length is not a multiple of the sample block size")
	ErrDataTooLarge     = errors.New("data exceeds the WAV size limit of 4 GiB")
	ErrMissingTarget    = errors.New("no target path bound")
	ErrFinalize         = errors.New("header finalize failed")
)
