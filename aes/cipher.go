package aes

import "errors"

var ErrInvalidBlockLength = errors.New("invalid block length")

// Stage identifies one step of the round pipeline for trace callbacks.
type Stage int

const (
	StageInitial Stage = iota
	StageSubBytes
	StageShiftRows
	StageMixColumns
	StageAddRoundKey
	StageInvSubBytes
	StageInvShiftRows
	StageInvMixColumns
)

func (s Stage) String() string {
	switch s {
	case StageInitial:
		return "Initial"
	case StageSubBytes:
		return "SubBytes"
	case StageShiftRows:
		return "ShiftRows"
	case StageMixColumns:
		return "MixColumns"
	case StageAddRoundKey:
		return "AddRoundKey"
	case StageInvSubBytes:
		return "InvSubBytes"
	case StageInvShiftRows:
		return "InvShiftRows"
	case StageInvMixColumns:
		return "InvMixColumns"
	default:
		return "Unknown"
	}
}

// Tracer observes the working State after each pipeline stage. The State is
// passed by value; callbacks cannot perturb the computation. Formatting is
// entirely the caller's concern.
type Tracer func(stage Stage, round int, s State)

// EncryptBlock encrypts one 16-byte block from src into dst using the
// expanded schedule. dst and src may overlap.
func (ks *KeySchedule) EncryptBlock(dst, src []byte) error {
	return ks.EncryptBlockTrace(dst, src, nil)
}

// EncryptBlockTrace is EncryptBlock with a trace callback invoked after
// every stage. trace may be nil.
func (ks *KeySchedule) EncryptBlockTrace(dst, src []byte, trace Tracer) error {
	if len(src) != BlockSize || len(dst) != BlockSize {
		return ErrInvalidBlockLength
	}

	s := StateFromBlock(src)
	if trace != nil {
		trace(StageInitial, 0, s)
	}

	s = addRoundKey(s, &ks[0])
	if trace != nil {
		trace(StageAddRoundKey, 0, s)
	}

	for round := 1; round < Rounds; round++ {
		s = subBytes(s)
		if trace != nil {
			trace(StageSubBytes, round, s)
		}
		s = shiftRows(s)
		if trace != nil {
			trace(StageShiftRows, round, s)
		}
		s = mixColumns(s)
		if trace != nil {
			trace(StageMixColumns, round, s)
		}
		s = addRoundKey(s, &ks[round])
		if trace != nil {
			trace(StageAddRoundKey, round, s)
		}
	}

	// Final round skips MixColumns
	s = subBytes(s)
	if trace != nil {
		trace(StageSubBytes, Rounds, s)
	}
	s = shiftRows(s)
	if trace != nil {
		trace(StageShiftRows, Rounds, s)
	}
	s = addRoundKey(s, &ks[Rounds])
	if trace != nil {
		trace(StageAddRoundKey, Rounds, s)
	}

	s.PutBytes(dst)
	return nil
}

// DecryptBlock decrypts one 16-byte block from src into dst using the
// expanded schedule. dst and src may overlap.
func (ks *KeySchedule) DecryptBlock(dst, src []byte) error {
	return ks.DecryptBlockTrace(dst, src, nil)
}

// DecryptBlockTrace runs the inverse pipeline, consuming round keys from 10
// down to 0. trace may be nil.
func (ks *KeySchedule) DecryptBlockTrace(dst, src []byte, trace Tracer) error {
	if len(src) != BlockSize || len(dst) != BlockSize {
		return ErrInvalidBlockLength
	}

	s := StateFromBlock(src)
	if trace != nil {
		trace(StageInitial, Rounds, s)
	}

	s = addRoundKey(s, &ks[Rounds])
	if trace != nil {
		trace(StageAddRoundKey, Rounds, s)
	}

	for round := Rounds - 1; round >= 1; round-- {
		s = invShiftRows(s)
		if trace != nil {
			trace(StageInvShiftRows, round, s)
		}
		s = invSubBytes(s)
		if trace != nil {
			trace(StageInvSubBytes, round, s)
		}
		s = addRoundKey(s, &ks[round])
		if trace != nil {
			trace(StageAddRoundKey, round, s)
		}
		s = invMixColumns(s)
		if trace != nil {
			trace(StageInvMixColumns, round, s)
		}
	}

	// Final inverse round skips InvMixColumns
	s = invShiftRows(s)
	if trace != nil {
		trace(StageInvShiftRows, 0, s)
	}
	s = invSubBytes(s)
	if trace != nil {
		trace(StageInvSubBytes, 0, s)
	}
	s = addRoundKey(s, &ks[0])
	if trace != nil {
		trace(StageAddRoundKey, 0, s)
	}

	s.PutBytes(dst)
	return nil
}

// EncryptBlock encrypts a single 16-byte block under a 16-byte key,
// expanding the schedule for this one call.
func EncryptBlock(plaintext, key []byte) ([]byte, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, BlockSize)
	if err = ks.EncryptBlock(dst, plaintext); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecryptBlock decrypts a single 16-byte block under a 16-byte key,
// expanding the schedule for this one call.
func DecryptBlock(ciphertext, key []byte) ([]byte, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, BlockSize)
	if err = ks.DecryptBlock(dst, ciphertext); err != nil {
		return nil, err
	}
	return dst, nil
}
