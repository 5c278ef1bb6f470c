package balloon

import (
	"hash"
	"strings"

	"github.com/opd-ai/go-balloon/internal"
)

// Primitive is the compression function Balloon is built on. Any
// deterministic, collision-resistant, fixed-width hash works; the block
// width is New().Size().
type Primitive struct {
	// Name identifies the primitive in vector files and on the command line.
	Name string

	// New returns a fresh hash state.
	New func() hash.Hash
}

// Built-in primitives.
var (
	SHA256     = Primitive{Name: "sha256", New: internal.NewSHA256}
	SHA512     = Primitive{Name: "sha512", New: internal.NewSHA512}
	Blake2b256 = Primitive{Name: "blake2b-256", New: internal.NewBlake2b256}
	SHA3_256   = Primitive{Name: "sha3-256", New: internal.NewSHA3_256}
)

var primitives = []Primitive{SHA256, SHA512, Blake2b256, SHA3_256}

// Size returns the primitive's output width in bytes.
func (p Primitive) Size() int {
	if p.New == nil {
		return 0
	}
	return p.New().Size()
}

// String returns the primitive's name.
func (p Primitive) String() string {
	if p.Name == "" {
		return "unnamed"
	}
	return p.Name
}

// PrimitiveByName returns the built-in primitive with the given name.
// Matching is case-insensitive. An empty name selects SHA256.
func PrimitiveByName(name string) (Primitive, bool) {
	if name == "" {
		return SHA256, true
	}
	for _, p := range primitives {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Primitive{}, false
}

// PrimitiveNames lists the built-in primitive names.
func PrimitiveNames() []string {
	names := make([]string, len(primitives))
	for i, p := range primitives {
		names[i] = p.Name
	}
	return names
}
