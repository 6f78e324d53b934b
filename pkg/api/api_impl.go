package api

import (
	"encoding/base64"
	"strings"

	"github.com/nyanrus/decs/internal/config"
	"github.com/nyanrus/decs/internal/helpers"
	"github.com/nyanrus/decs/internal/js_parser"
	"github.com/nyanrus/decs/internal/js_printer"
	"github.com/nyanrus/decs/internal/logger"
	"github.com/nyanrus/decs/internal/sourcemap"
)

func validateSourceMap(value SourceMap) config.SourceMap {
	switch value {
	case SourceMapNone:
		return config.SourceMapNone
	case SourceMapInline:
		return config.SourceMapInline
	case SourceMapExternal:
		return config.SourceMapExternalWithoutComment
	default:
		panic("Invalid source map")
	}
}

func validateLoader(value Loader) config.Loader {
	switch value {
	case LoaderNone:
		return config.LoaderNone
	case LoaderJS:
		return config.LoaderJS
	case LoaderTS:
		return config.LoaderTS
	default:
		panic("Invalid loader")
	}
}

func validateColor(value StderrColor) logger.StderrColor {
	switch value {
	case ColorIfTerminal:
		return logger.ColorIfTerminal
	case ColorNever:
		return logger.ColorNever
	case ColorAlways:
		return logger.ColorAlways
	default:
		panic("Invalid color")
	}
}

func validateLogLevel(value LogLevel) logger.LogLevel {
	switch value {
	case LogLevelInfo:
		return logger.LevelInfo
	case LogLevelWarning:
		return logger.LevelWarning
	case LogLevelError:
		return logger.LevelError
	default:
		panic("Invalid log level")
	}
}

func messagesOfKind(kind logger.MsgKind, msgs []logger.Msg) []Message {
	var filtered []Message
	for _, msg := range msgs {
		if msg.Kind == kind {
			var location *Location

			if msg.Location != nil {
				location = &Location{
					File:     msg.Location.File,
					Line:     msg.Location.Line,
					Column:   msg.Location.Column,
					Length:   msg.Location.Length,
					LineText: msg.Location.LineText,
				}
			}

			filtered = append(filtered, Message{
				Text:     msg.Text,
				Location: location,
			})
		}
	}
	return filtered
}

// identityMappings maps each line of the output onto the start of the same
// line of the original file. It's used when the output is the original input
// text returned unchanged.
func identityMappings(contents string) []byte {
	mappings := []byte("AAAA")
	for i := 0; i < len(contents); i++ {
		switch contents[i] {
		case '\n':
			mappings = append(mappings, ";AACA"...)

		case '\r':
			if i+1 < len(contents) && contents[i+1] == '\n' {
				i++
			}
			mappings = append(mappings, ";AACA"...)

		case 0xE2:
			// U+2028 and U+2029 are line terminators too. They take three
			// bytes each in UTF-8.
			if i+2 < len(contents) && contents[i+1] == 0x80 &&
				(contents[i+2] == 0xA8 || contents[i+2] == 0xA9) {
				i += 2
				mappings = append(mappings, ";AACA"...)
			}
		}
	}
	return mappings
}

func sourceMapJSON(sourcefile string, input string, mappings []byte) []byte {
	j := helpers.Joiner{}
	j.AddString("{\n  \"version\": 3")
	j.AddString(",\n  \"sources\": [")
	j.AddBytes(helpers.QuoteForJSON(sourcefile, false))
	j.AddString("]")
	j.AddString(",\n  \"sourcesContent\": [")
	j.AddBytes(helpers.QuoteForJSON(input, false))
	j.AddString("]")
	j.AddString(",\n  \"mappings\": \"")
	j.AddBytes(mappings)
	j.AddString("\",\n  \"names\": []\n}\n")
	return j.Done()
}

func appendInlineSourceMap(js []byte, sourceMap []byte) []byte {
	// Printed output always ends in a newline but passthrough text may not
	if len(js) > 0 && js[len(js)-1] != '\n' {
		js = append(js, '\n')
	}
	js = append(js, "//# sourceMappingURL=data:application/json;base64,"...)
	js = append(js, base64.StdEncoding.EncodeToString(sourceMap)...)
	js = append(js, '\n')
	return js
}

func passthrough(input string, sourcefile string, sourceMap config.SourceMap) (js []byte, jsSourceMap []byte) {
	js = []byte(input)
	switch sourceMap {
	case config.SourceMapInline:
		js = appendInlineSourceMap(js, sourceMapJSON(sourcefile, input, identityMappings(input)))
	case config.SourceMapExternalWithoutComment:
		jsSourceMap = sourceMapJSON(sourcefile, input, identityMappings(input))
	}
	return
}

func transformImpl(input string, options TransformOptions) TransformResult {
	// Convert and validate the options
	loader := validateLoader(options.Loader)
	sourceMap := validateSourceMap(options.Sourcemap)
	logOptions := logger.StderrOptions{
		IncludeSource: true,
		ErrorLimit:    options.ErrorLimit,
	}
	if options.LogLevel != LogLevelSilent {
		logOptions.Color = validateColor(options.Color)
		logOptions.LogLevel = validateLogLevel(options.LogLevel)
	}
	sourcefile := options.Sourcefile
	if sourcefile == "" {
		sourcefile = "<stdin>"
	}

	// A file without a single "@" byte cannot contain a decorator, so the
	// input is returned without being parsed at all
	if strings.IndexByte(input, '@') < 0 {
		js, jsSourceMap := passthrough(input, sourcefile, sourceMap)
		return TransformResult{JS: js, JSSourceMap: jsSourceMap}
	}

	// Parse the file. The API is silent by default and hands the messages
	// back on the result instead of printing them to stderr.
	log := logger.NewDeferLog()
	if options.LogLevel != LogLevelSilent {
		log = logger.NewStderrLog(logOptions)
	}
	source := logger.Source{
		Index:      0,
		PrettyPath: sourcefile,
		Contents:   input,
	}
	tree, ok := js_parser.Parse(log, source, js_parser.OptionsFromConfig(&config.Options{
		TS: config.TSOptions{Parse: loader.IsTypeScript()},
	}))

	// Stop now if there were errors
	msgs := log.Done()
	errors := messagesOfKind(logger.Error, msgs)
	warnings := messagesOfKind(logger.Warning, msgs)
	if !ok || len(errors) > 0 {
		return TransformResult{
			Errors:   errors,
			Warnings: warnings,
		}
	}

	// When no class was rewritten the original text is already the output
	if tree.LoweredClassCount == 0 {
		js, jsSourceMap := passthrough(input, sourcefile, sourceMap)
		return TransformResult{
			Warnings:    warnings,
			JS:          js,
			JSSourceMap: jsSourceMap,
		}
	}

	// Print the rewritten file with the decorator runtime in front
	printOptions := js_printer.Options{InjectRuntime: true}
	if sourceMap != config.SourceMapNone {
		printOptions.AddSourceMappings = true
		printOptions.LineOffsetTables = sourcemap.GenerateLineOffsetTables(input, tree.ApproximateLineCount)
	}
	result := js_printer.Print(tree, printOptions)

	js := result.JS
	var jsSourceMap []byte
	switch sourceMap {
	case config.SourceMapInline:
		js = appendInlineSourceMap(js, sourceMapJSON(sourcefile, input, result.SourceMapChunk.Buffer))
	case config.SourceMapExternalWithoutComment:
		jsSourceMap = sourceMapJSON(sourcefile, input, result.SourceMapChunk.Buffer)
	}

	return TransformResult{
		Warnings:    warnings,
		JS:          js,
		JSSourceMap: jsSourceMap,
	}
}
