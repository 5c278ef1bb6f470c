package balloon

import (
	"fmt"
)

// fieldHasher is the domain-separated hash the stages run on. It is an
// interface so tests can observe every call.
type fieldHasher interface {
	SumTo(dst []byte, fields ...interface{}) []byte
	SumHex(fields ...interface{}) string
	Size() int
}

// state is one Balloon computation: the buffer and the call counter.
// It is owned by a single goroutine from seed to extract.
type state struct {
	h     fieldHasher
	width int
	slab  []byte   // backing memory for every block
	buf   [][]byte // buf[i] aliases slab; grows to spaceCost during expand
	cnt   uint64
}

func newState(h fieldHasher, spaceCost uint64) *state {
	width := h.Size()
	return &state{
		h:     h,
		width: width,
		slab:  allocateBuffer(spaceCost, width),
		buf:   make([][]byte, 0, spaceCost),
	}
}

// block returns the slab region for buffer slot i, capped so that
// appending a digest fills it in place.
func (st *state) block(i uint64) []byte {
	off := i * uint64(st.width)
	end := off + uint64(st.width)
	return st.slab[off:end:end]
}

// release wipes the buffer. The state must not be used afterwards.
func (st *state) release() {
	releaseBuffer(st.slab)
	st.slab = nil
	st.buf = nil
}

// seed sets buffer[0] = H(0, password, salt) and starts the counter at 1.
func (st *state) seed(password, salt []byte) {
	st.buf = append(st.buf[:0], st.h.SumTo(st.block(0), uint64(0), password, salt))
	st.cnt = 1
	traceBytes("seed", st.buf[0])
}

// extract returns a copy of the last block.
func (st *state) extract() ([]byte, error) {
	if len(st.buf) == 0 {
		return nil, fmt.Errorf("balloon: extract from empty buffer: %w", ErrInvalidParameter)
	}
	digest := append([]byte(nil), st.buf[len(st.buf)-1]...)
	traceBytes("digest", digest)
	return digest, nil
}

// run computes one Balloon digest: seed, expand, mix, extract.
func run(h fieldHasher, c *Config, password, salt []byte) ([]byte, error) {
	if c.SpaceCost < 1 || c.TimeCost < 1 {
		return nil, fmt.Errorf("balloon: space cost %d, time cost %d: %w",
			c.SpaceCost, c.TimeCost, ErrInvalidParameter)
	}

	traceSeparator(fmt.Sprintf("balloon s=%d t=%d delta=%d %s",
		c.SpaceCost, c.TimeCost, c.Delta, c.CounterMode))

	st := newState(h, c.SpaceCost)
	defer st.release()

	st.seed(password, salt)
	st.expand(c.SpaceCost)

	if c.CounterMode == CounterPerStage {
		st.cnt = 1
	}

	if err := st.mix(salt, c.TimeCost, c.Delta); err != nil {
		return nil, err
	}

	return st.extract()
}
