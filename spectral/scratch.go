package spectral

import "sync"

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// splitParts unpacks a complex spectrum into pooled re/im slices for the
// vecmath kernels. The caller returns buf via putScratch when done; re and
// im must not be retained past that point.
func splitParts(in []complex128) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * len(in)
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	re = buf.data[:len(in)]
	im = buf.data[len(in):need]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}
