package balloon

// expand fills buffer[1:spaceCost] as a hash chain from the seed block:
//
//	buffer[s] = H(counter, buffer[s-1])
//
// with the counter incremented after every call. The buffer must hold
// exactly the seed block on entry.
func (st *state) expand(spaceCost uint64) {
	for s := uint64(1); s < spaceCost; s++ {
		st.buf = append(st.buf, st.h.SumTo(st.block(s), st.cnt, st.buf[s-1]))
		st.cnt++
	}

	traceUint64("counter after expand", st.cnt)
	traceBytes("expanded tail", st.buf[len(st.buf)-1])
}
