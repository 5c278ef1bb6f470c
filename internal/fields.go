package internal

import (
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
)

// FieldHasher hashes an ordered list of heterogeneous fields.
//
// Each field is serialized on its own and the results are concatenated
// with no separator or length prefix:
//   - integers are written as base-10 ASCII ("12" for 12)
//   - []byte and string values are written as-is
//
// The concatenation is deliberately unframed; ("1", "23") and ("12", "3")
// hash identically. Callers keep every call site's field order fixed so
// digests stay stable.
//
// A FieldHasher is not safe for concurrent use.
type FieldHasher struct {
	h       hash.Hash
	scratch [20]byte // fits the longest uint64 in base 10
}

// NewFieldHasher wraps h. The state is reset before every sum.
func NewFieldHasher(h hash.Hash) *FieldHasher {
	return &FieldHasher{h: h}
}

// Size returns the block width in bytes.
func (f *FieldHasher) Size() int {
	return f.h.Size()
}

// Sum hashes fields and returns a newly allocated digest.
func (f *FieldHasher) Sum(fields ...interface{}) []byte {
	return f.SumTo(nil, fields...)
}

// SumTo hashes fields and appends the digest to dst[:0].
//
// dst may alias one of the fields: every field is absorbed before dst
// is written.
func (f *FieldHasher) SumTo(dst []byte, fields ...interface{}) []byte {
	f.h.Reset()
	for _, field := range fields {
		f.write(field)
	}
	return f.h.Sum(dst[:0])
}

// SumHex is Sum encoded as lowercase hex.
func (f *FieldHasher) SumHex(fields ...interface{}) string {
	return hex.EncodeToString(f.Sum(fields...))
}

func (f *FieldHasher) write(field interface{}) {
	switch v := field.(type) {
	case []byte:
		f.h.Write(v)
	case string:
		f.h.Write([]byte(v))
	case uint64:
		f.h.Write(strconv.AppendUint(f.scratch[:0], v, 10))
	case uint32:
		f.h.Write(strconv.AppendUint(f.scratch[:0], uint64(v), 10))
	case uint:
		f.h.Write(strconv.AppendUint(f.scratch[:0], uint64(v), 10))
	case int64:
		f.h.Write(strconv.AppendInt(f.scratch[:0], v, 10))
	case int32:
		f.h.Write(strconv.AppendInt(f.scratch[:0], int64(v), 10))
	case int:
		f.h.Write(strconv.AppendInt(f.scratch[:0], int64(v), 10))
	default:
		panic(fmt.Sprintf("internal: unsupported field type %T", field))
	}
}
