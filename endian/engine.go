// Package endian provides byte order utilities for the summary-file codec.
//
// The package combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine interface so both read and append
// operations are available through one value.
//
// The summary format is big-endian for every numeric field with a single
// documented exception: DOUB elements are little-endian. Decoders therefore
// hold both engines; GetBigEndianEngine covers INTE/REAL/LOGI and the frame
// markers, GetLittleEndianEngine covers DOUB payloads.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// GetBigEndianEngine returns the big-endian engine, the default byte order
// of the summary format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine, used only for
// DOUB elements.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
