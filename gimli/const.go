// Package gimli implements the Gimli permutation and the sponge hash and
// duplex AEAD schemes built on it.
//
// The permutation operates on a 384-bit state viewed as twelve 32-bit
// words; the sponge and duplex constructions view the same storage as
// 48 bytes. Byte i aliases byte (i mod 4) of word (i / 4) in
// little-endian order — see State.
package gimli

// Rounds is the number of Gimli rounds, counted down from Rounds to 1.
const Rounds = 24

// roundConstantBase is OR'd with the round counter on rounds where
// round mod 4 == 0.
const roundConstantBase = 0x9e377900

// StateBytes is the size of the Gimli state in bytes (384 bits).
const StateBytes = 48

// StateWords is the size of the Gimli state in 32-bit words.
const StateWords = 12

// RateBytes is the number of state bytes exposed to absorb/squeeze and
// duplex operations. Bytes RateBytes..StateBytes-1 are the capacity and
// are only ever touched by the permutation.
const RateBytes = 16

// hashDomainByte is XOR'd into the state byte just past the final
// (possibly empty) short block during sponge padding.
const hashDomainByte = 0x1f

// hashFinalByte is XOR'd into the last rate byte during sponge padding.
const hashFinalByte = 0x80

// aeadDomainByte is XOR'd into byte r and byte 47 of the state at every
// AEAD domain-separation boundary (end of AD, end of message).
const aeadDomainByte = 0x01

// KeySize is the AEAD key length in bytes.
const KeySize = 32

// NonceSize is the AEAD nonce length in bytes.
const NonceSize = 16

// TagSize is the AEAD authentication tag length in bytes.
const TagSize = 16
