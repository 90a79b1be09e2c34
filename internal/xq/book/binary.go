package book

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// binaryMagic tags the on-disk binary book format: "XQBK" followed by a
// format version byte.
var binaryMagic = [5]byte{'X', 'Q', 'B', 'K', 1}

// maxMoveStringLen bounds a single record's move string, guarding against a
// corrupt length prefix driving an unreasonable allocation.
const maxMoveStringLen = 16

// NewBookFromBinary reads the sorted-tuple binary opening-book format: a
// 5-byte magic/version header, then records of
// {zob uint64, zobLock uint64, weight int32, moveLen uint8, move []byte}
// in big-endian byte order. This format (and its file-level storage layout)
// is not part of the core query contract -- only an optional on-disk
// representation behind the same Book interface NewBookFromLines produces.
func NewBookFromBinary(r io.Reader) (Book, error) {
	br := bufio.NewReader(r)

	var magic [5]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, fmt.Errorf("reading book header: %w", err)
	}
	if magic != binaryMagic {
		return nil, fmt.Errorf("unrecognized book file header %x", magic)
	}

	var entries []Entry
	for {
		var fixed struct {
			Zob, ZobLock uint64
			Weight       int32
			MoveLen      uint8
		}
		if err := binary.Read(br, binary.BigEndian, &fixed); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("reading book record: %w", err)
		}
		if int(fixed.MoveLen) > maxMoveStringLen {
			return nil, fmt.Errorf("book record move length %d exceeds maximum %d", fixed.MoveLen, maxMoveStringLen)
		}
		move := make([]byte, fixed.MoveLen)
		if _, err := io.ReadFull(br, move); err != nil {
			return nil, fmt.Errorf("reading book record move string: %w", err)
		}
		entries = append(entries, Entry{
			Zob:        fixed.Zob,
			ZobLock:    fixed.ZobLock,
			MoveString: string(move),
			Weight:     int(fixed.Weight),
		})
	}
	return newSortedBook(entries), nil
}

// WriteBinary serializes entries to w in the NewBookFromBinary format.
func WriteBinary(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(binaryMagic[:]); err != nil {
		return fmt.Errorf("writing book header: %w", err)
	}
	for _, e := range entries {
		if len(e.MoveString) > maxMoveStringLen {
			return fmt.Errorf("move string %q exceeds maximum length %d", e.MoveString, maxMoveStringLen)
		}
		fixed := struct {
			Zob, ZobLock uint64
			Weight       int32
			MoveLen      uint8
		}{e.Zob, e.ZobLock, int32(e.Weight), uint8(len(e.MoveString))}
		if err := binary.Write(bw, binary.BigEndian, fixed); err != nil {
			return fmt.Errorf("writing book record: %w", err)
		}
		if _, err := bw.WriteString(e.MoveString); err != nil {
			return fmt.Errorf("writing book record move string: %w", err)
		}
	}
	return bw.Flush()
}
