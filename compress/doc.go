// Package compress provides the compression codecs applied to rotated log
// backups: Zstandard (best ratio, the default), S2 (fastest) and LZ4 block
// compression, plus a no-op passthrough.
//
// Codecs operate on whole payloads in memory, sized for log files up to the
// rotation threshold. All built-in codecs are safe for concurrent use; they
// pool their encoder state internally.
//
//	codec, err := compress.GetCodec(compress.TypeZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(fileBytes)
//
// The Zstd codec has a cgo-backed variant behind the zstdcgo build tag.
package compress
