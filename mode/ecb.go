// Package mode wraps the block cipher core for arbitrary-length messages:
// PKCS7 padding plus independent per-block chaining. Every block is
// processed under the same key schedule with no inter-block dependency, so
// equal plaintext blocks yield equal ciphertext blocks.
package mode

import (
	"fmt"

	"github.com/floatdrop/lru"

	"github.com/cipherlab/aes128/aes"
	"github.com/cipherlab/aes128/types"
	"github.com/cipherlab/aes128/utils"
)

const logPrefix = "mode"

// Cipher processes messages block by block. The zero value runs serially
// with no schedule cache and is ready to use.
type Cipher struct {
	// Routines is the number of worker goroutines used per call. 0 and 1
	// run on the calling goroutine; negative values choose a count from
	// NumCPU. Block independence makes the fan-out safe: the schedule is
	// shared read-only and each worker writes only its own block.
	Routines int

	cache *lru.LRU[types.Key, aes.KeySchedule]
}

func NewCipher() *Cipher {
	return &Cipher{}
}

// NewCachedCipher returns a Cipher that keeps up to capacity expanded key
// schedules in an LRU. Schedules are immutable, so cached entries are safe
// to share between calls and goroutines.
func NewCachedCipher(capacity int) *Cipher {
	return &Cipher{
		cache: lru.New[types.Key, aes.KeySchedule](capacity),
	}
}

func (c *Cipher) schedule(key []byte) (*aes.KeySchedule, error) {
	if c.cache == nil {
		return aes.ExpandKey(key)
	}

	if len(key) != aes.KeySize {
		return nil, aes.ErrInvalidKeyLength
	}

	k := types.KeyFromBytes(key)
	if ks := c.cache.Get(k); ks != nil {
		utils.Debugf(logPrefix, "schedule cache hit")
		return ks, nil
	}

	ks, err := aes.ExpandKey(key)
	if err != nil {
		return nil, err
	}
	c.cache.Set(k, *ks)
	return ks, nil
}

// Encrypt pads plaintext with PKCS7 and encrypts each block independently
// under key. The result is always a positive multiple of the block size.
func (c *Cipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	ks, err := c.schedule(key)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}

	padded := Pad(plaintext)
	out := make([]byte, len(padded))
	blocks := len(padded) / aes.BlockSize
	utils.Debugf(logPrefix, "encrypting %d block(s)", blocks)

	if err = c.eachBlock(blocks, func(i int) error {
		return ks.EncryptBlock(out[i*aes.BlockSize:(i+1)*aes.BlockSize], padded[i*aes.BlockSize:(i+1)*aes.BlockSize])
	}); err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	return out, nil
}

// Decrypt decrypts each block independently under key, then strips the
// PKCS7 trailer. A malformed trailer is rejected with ErrInvalidPadding.
func (c *Cipher) Decrypt(ciphertext, key []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("decrypt: %w", aes.ErrInvalidBlockLength)
	}

	ks, err := c.schedule(key)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	out := make([]byte, len(ciphertext))
	blocks := len(ciphertext) / aes.BlockSize
	utils.Debugf(logPrefix, "decrypting %d block(s)", blocks)

	if err = c.eachBlock(blocks, func(i int) error {
		return ks.DecryptBlock(out[i*aes.BlockSize:(i+1)*aes.BlockSize], ciphertext[i*aes.BlockSize:(i+1)*aes.BlockSize])
	}); err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	plaintext, err := Unpad(out)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

func (c *Cipher) eachBlock(blocks int, do func(i int) error) error {
	if c.Routines == 0 || c.Routines == 1 || blocks == 1 {
		for i := 0; i < blocks; i++ {
			if err := do(i); err != nil {
				return err
			}
		}
		return nil
	}
	return utils.SplitWork(c.Routines, uint64(blocks), func(workIndex uint64, _ int) error {
		return do(int(workIndex))
	})
}

// Encrypt pads and encrypts plaintext under key, serially, with no schedule
// cache.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	return (&Cipher{}).Encrypt(plaintext, key)
}

// Decrypt decrypts ciphertext under key and strips the padding, serially,
// with no schedule cache.
func Decrypt(ciphertext, key []byte) ([]byte, error) {
	return (&Cipher{}).Decrypt(ciphertext, key)
}
