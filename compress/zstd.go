package compress

// ZstdCompressor provides Zstandard compression, the default for rotated log
// backups: best ratio of the built-in codecs at a compression speed that
// comfortably keeps up with rotation.
//
// Two implementations exist behind build tags. The default is the pure-Go
// klauspost/compress encoder; building with -tags zstdcgo swaps in the
// libzstd binding (valyala/gozstd) for environments where cgo is acceptable
// and throughput matters.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
