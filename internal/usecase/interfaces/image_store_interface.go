package interfaces

// IImageStore abstracts where invoice photos live.
//
// Save normalizes an upload (decode, bound, re-encode) and returns the
// public path the catalog serves it from. Overwrite writes
// already-compressed bytes verbatim under a known filename. Remove takes
// the public path Save returned; removing a missing file is not an error.
type IImageStore interface {
	Save(filename string, data []byte) (string, error)
	Overwrite(filename string, data []byte) (string, error)
	Remove(publicPath string) error
}
