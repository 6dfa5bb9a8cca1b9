//go:build cgo

package lint

func newDefaultSampleParser() SampleParser {
	return NewTreeSitterSampleParser()
}
