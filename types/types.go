package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// BlockSize is the AES block size in bytes. AES-128 also uses 16-byte keys,
// so Key shares the size.
const BlockSize = 16

// Block is a single 16-byte cipher block.
//
//nolint:recvcheck
type Block [BlockSize]byte

// Key is a 16-byte AES-128 cipher key.
//
//nolint:recvcheck
type Key [BlockSize]byte

var ZeroBlock Block

func (b Block) MarshalJSON() ([]byte, error) {
	var buf [BlockSize*2 + 2]byte
	buf[0] = '"'
	buf[BlockSize*2+1] = '"'
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}

	if len(buf) != BlockSize*2+2 {
		return errors.New("wrong block size")
	}

	if _, err := fasthex.Decode(b[:], buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

func (k Key) MarshalJSON() ([]byte, error) {
	return Block(k).MarshalJSON()
}

func (k *Key) UnmarshalJSON(buf []byte) error {
	return (*Block)(k).UnmarshalJSON(buf)
}

func (k Key) String() string {
	return fasthex.EncodeToString(k[:])
}

func MustBytes16FromString[T ~[16]byte](s string) T {
	if b, err := Bytes16FromString[T](s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func Bytes16FromString[T ~[16]byte](s string) (T, error) {
	var b T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return b, err
	} else {
		if len(buf) != BlockSize {
			return b, errors.New("wrong size")
		}
		copy(b[:], buf)
		return b, nil
	}
}

func MustBlockFromString(s string) Block {
	return MustBytes16FromString[Block](s)
}

func BlockFromString(s string) (Block, error) {
	return Bytes16FromString[Block](s)
}

func MustKeyFromString(s string) Key {
	return MustBytes16FromString[Key](s)
}

func KeyFromString(s string) (Key, error) {
	return Bytes16FromString[Key](s)
}

func BlockFromBytes(buf []byte) (b Block) {
	if len(buf) != BlockSize {
		return
	}
	copy(b[:], buf)
	return
}

func KeyFromBytes(buf []byte) (k Key) {
	if len(buf) != BlockSize {
		return
	}
	copy(k[:], buf)
	return
}
