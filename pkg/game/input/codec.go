package input

import (
	"encoding/binary"
	"fmt"
)

func putIVec(buf []byte, x, y int32) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint32(tmp[0:4], uint32(x))
	binary.LittleEndian.PutUint32(tmp[4:8], uint32(y))
	return append(buf, tmp[:]...)
}

func getIVec(buf []byte) (x, y int32, rest []byte) {
	x = int32(binary.LittleEndian.Uint32(buf[0:4]))
	y = int32(binary.LittleEndian.Uint32(buf[4:8]))
	return x, y, buf[8:]
}

func putUint16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func putEntityIDsU8Count(buf []byte, ids []uint16) []byte {
	buf = append(buf, uint8(len(ids)))
	for _, id := range ids {
		buf = putUint16(buf, id)
	}
	return buf
}

func putEntityIDsU16Count(buf []byte, ids []uint16) []byte {
	buf = putUint16(buf, uint16(len(ids)))
	for _, id := range ids {
		buf = putUint16(buf, id)
	}
	return buf
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Encode appends the wire representation of in to buf and returns the
// extended slice, per spec.md §6's per-variant layout table.
func Encode(buf []byte, in Input) []byte {
	buf = append(buf, byte(in.Type))

	switch {
	case in.Type.IsMoveVariant():
		buf = append(buf, boolToByte(in.Shift))
		buf = putIVec(buf, in.TargetCell.X, in.TargetCell.Y)
		buf = putUint16(buf, in.TargetID)
		buf = putEntityIDsU8Count(buf, in.EntityIDs)

	case in.Type.IsStopVariant():
		buf = putEntityIDsU8Count(buf, in.EntityIDs)

	case in.Type == TypeBuild:
		buf = append(buf, boolToByte(in.Shift), in.BuildingType)
		buf = putIVec(buf, in.TargetCell.X, in.TargetCell.Y)
		buf = putEntityIDsU16Count(buf, in.EntityIDs)

	case in.Type == TypeBuildCancel:
		buf = putUint16(buf, in.BuildingID)

	case in.Type == TypeBuildingEnqueue:
		buf = putUint16(buf, in.BuildingID)
		buf = append(buf, in.ItemType)
		buf = putUint32(buf, in.ItemValue)

	case in.Type == TypeBuildingDequeue:
		buf = putUint16(buf, in.BuildingID)
		buf = putUint32(buf, in.DequeueIndex)

	case in.Type == TypeUnload:
		buf = putEntityIDsU16Count(buf, in.EntityIDs)

	case in.Type == TypeSingleUnload:
		buf = putUint16(buf, in.UnitID)

	case in.Type == TypeRally:
		buf = putIVec(buf, in.RallyPoint.X, in.RallyPoint.Y)
		buf = putEntityIDsU16Count(buf, in.EntityIDs)

	case in.Type == TypeExplode:
		buf = putEntityIDsU16Count(buf, in.EntityIDs)

	case in.Type == TypeChat:
		msg := in.Message
		if len(msg) > 255 {
			msg = msg[:255]
		}
		buf = append(buf, uint8(len(msg)))
		buf = append(buf, msg...)
	}

	return buf
}

// Decode reads one Input from the front of buf, returning it along with the
// unconsumed remainder.
func Decode(buf []byte) (Input, []byte, error) {
	if len(buf) < 1 {
		return Input{}, nil, fmt.Errorf("input: empty buffer")
	}
	in := Input{Type: Type(buf[0])}
	rest := buf[1:]

	switch {
	case in.Type.IsMoveVariant():
		if len(rest) < 1+8+2+1 {
			return Input{}, nil, fmt.Errorf("input: truncated move body")
		}
		in.Shift = rest[0] != 0
		rest = rest[1:]
		in.TargetCell.X, in.TargetCell.Y, rest = getIVec(rest)
		in.TargetID = binary.LittleEndian.Uint16(rest[0:2])
		rest = rest[2:]
		n := int(rest[0])
		rest = rest[1:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated move entity ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type.IsStopVariant():
		if len(rest) < 1 {
			return Input{}, nil, fmt.Errorf("input: truncated stop body")
		}
		n := int(rest[0])
		rest = rest[1:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated stop entity ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type == TypeBuild:
		if len(rest) < 1+1+8+2 {
			return Input{}, nil, fmt.Errorf("input: truncated build body")
		}
		in.Shift = rest[0] != 0
		in.BuildingType = rest[1]
		rest = rest[2:]
		in.TargetCell.X, in.TargetCell.Y, rest = getIVec(rest)
		n := int(binary.LittleEndian.Uint16(rest[0:2]))
		rest = rest[2:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated build entity ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type == TypeBuildCancel:
		if len(rest) < 2 {
			return Input{}, nil, fmt.Errorf("input: truncated build_cancel body")
		}
		in.BuildingID = binary.LittleEndian.Uint16(rest[0:2])
		rest = rest[2:]

	case in.Type == TypeBuildingEnqueue:
		if len(rest) < 2+1+4 {
			return Input{}, nil, fmt.Errorf("input: truncated building_enqueue body")
		}
		in.BuildingID = binary.LittleEndian.Uint16(rest[0:2])
		in.ItemType = rest[2]
		in.ItemValue = binary.LittleEndian.Uint32(rest[3:7])
		rest = rest[7:]

	case in.Type == TypeBuildingDequeue:
		if len(rest) < 2+4 {
			return Input{}, nil, fmt.Errorf("input: truncated building_dequeue body")
		}
		in.BuildingID = binary.LittleEndian.Uint16(rest[0:2])
		in.DequeueIndex = binary.LittleEndian.Uint32(rest[2:6])
		rest = rest[6:]

	case in.Type == TypeUnload:
		if len(rest) < 2 {
			return Input{}, nil, fmt.Errorf("input: truncated unload body")
		}
		n := int(binary.LittleEndian.Uint16(rest[0:2]))
		rest = rest[2:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated unload entity ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type == TypeSingleUnload:
		if len(rest) < 2 {
			return Input{}, nil, fmt.Errorf("input: truncated single_unload body")
		}
		in.UnitID = binary.LittleEndian.Uint16(rest[0:2])
		rest = rest[2:]

	case in.Type == TypeRally:
		if len(rest) < 8+2 {
			return Input{}, nil, fmt.Errorf("input: truncated rally body")
		}
		in.RallyPoint.X, in.RallyPoint.Y, rest = getIVec(rest)
		n := int(binary.LittleEndian.Uint16(rest[0:2]))
		rest = rest[2:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated rally building ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type == TypeExplode:
		if len(rest) < 2 {
			return Input{}, nil, fmt.Errorf("input: truncated explode body")
		}
		n := int(binary.LittleEndian.Uint16(rest[0:2]))
		rest = rest[2:]
		if len(rest) < n*2 {
			return Input{}, nil, fmt.Errorf("input: truncated explode entity ids")
		}
		in.EntityIDs = make([]uint16, n)
		for i := 0; i < n; i++ {
			in.EntityIDs[i] = binary.LittleEndian.Uint16(rest[i*2 : i*2+2])
		}
		rest = rest[n*2:]

	case in.Type == TypeChat:
		if len(rest) < 1 {
			return Input{}, nil, fmt.Errorf("input: truncated chat body")
		}
		n := int(rest[0])
		rest = rest[1:]
		if len(rest) < n {
			return Input{}, nil, fmt.Errorf("input: truncated chat message")
		}
		in.Message = string(rest[:n])
		rest = rest[n:]
	}

	return in, rest, nil
}
