package mode

import (
	"errors"

	"github.com/cipherlab/aes128/aes"
)

var ErrInvalidPadding = errors.New("invalid padding")

// Pad appends a PKCS7 trailer bringing buf to a multiple of the block size.
// Between 1 and 16 bytes are always appended; an exact multiple gains a full
// extra block, so the trailer is always unambiguous.
func Pad(buf []byte) []byte {
	n := aes.BlockSize - len(buf)%aes.BlockSize
	out := make([]byte, len(buf)+n)
	copy(out, buf)
	for i := len(buf); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

// Unpad strips a PKCS7 trailer. It fails closed: a buffer that is empty, not
// a block multiple, or whose trailing n bytes do not all equal n is rejected
// with ErrInvalidPadding rather than passed through.
func Unpad(buf []byte) ([]byte, error) {
	if len(buf) == 0 || len(buf)%aes.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(buf[len(buf)-1])
	if n < 1 || n > aes.BlockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range buf[len(buf)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return buf[:len(buf)-n], nil
}
