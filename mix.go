package balloon

import (
	"fmt"

	"github.com/opd-ai/go-balloon/internal"
)

// mix performs timeCost passes over the buffer in place.
//
// For each pass t and each slot s in increasing order:
//
//	buffer[s] = H(counter, prev, buffer[s])            prev wraps to the last slot at s == 0
//	repeat delta times (i = 0..delta-1):
//	    n = Hhex(counter, salt, t, s, i) mod spaceCost
//	    buffer[s] = H(counter, buffer[s], buffer[n])
//
// The counter is incremented after every hash call, including the index
// derivation. Blocks are overwritten immediately, so later neighbor reads
// in the same pass see the updated values; the access pattern therefore
// depends on data produced earlier in the pass.
func (st *state) mix(salt []byte, timeCost, delta uint64) error {
	spaceCost := uint64(len(st.buf))
	last := spaceCost - 1

	for t := uint64(0); t < timeCost; t++ {
		for s := uint64(0); s < spaceCost; s++ {
			prev := last
			if s > 0 {
				prev = s - 1
			}

			st.buf[s] = st.h.SumTo(st.buf[s], st.cnt, st.buf[prev], st.buf[s])
			st.cnt++

			for i := uint64(0); i < delta; i++ {
				n, err := internal.ModReduce(st.h.SumHex(st.cnt, salt, t, s, i), spaceCost)
				if err != nil {
					return fmt.Errorf("balloon: neighbor index t=%d s=%d i=%d: %w", t, s, i, err)
				}
				st.cnt++

				st.buf[s] = st.h.SumTo(st.buf[s], st.cnt, st.buf[s], st.buf[n])
				st.cnt++
			}
		}

		traceBytes(fmt.Sprintf("pass %d tail", t), st.buf[last])
	}

	traceUint64("counter after mix", st.cnt)
	return nil
}
