package config

type TSOptions struct {
	Parse bool
}

type SourceMap uint8

const (
	SourceMapNone SourceMap = iota
	SourceMapInline
	SourceMapExternalWithoutComment
)

type Loader uint8

const (
	LoaderNone Loader = iota
	LoaderJS
	LoaderTS
)

func (loader Loader) IsTypeScript() bool {
	return loader == LoaderTS
}

type Options struct {
	TS TSOptions
}
