package engine

// mixAccumulate sums src into dst. A NEON-accelerated path would batch
// four frames at a time; until one is wired up this falls back to the
// scalar loop, same as the portable build.
func mixAccumulate(dst, src []Frame) {
	for i := range dst {
		dst[i].L += src[i].L
		dst[i].R += src[i].R
	}
}
