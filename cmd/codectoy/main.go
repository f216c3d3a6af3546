// Command codectoy is a small CLI wrapper around the Huffman and
// Reed-Solomon codecs in this module.
//
// Usage:
//
//	codectoy <codec> <action> [flags] <input>
//
// codec:   huffman, rs
// action:  encode, decode
//
// Flags:
//
//	--output-format  hex, text, or auto (default: hex for encode, auto for decode)
//	--parity         RS parity byte count (default from config profile)
//	--block-size     block size for multi-block RS operations
//	--config         path to a YAML config profile
//	--verbose        enable debug logging
//	--version        print version and exit
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"codectoy/freqmap"
	"codectoy/huffman"
	clog "codectoy/log"
	"codectoy/rs"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0"
var version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := clog.New(level).Module("codectoy")

	data, err := parseInput(cfg.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logger.Debug("parsed input", "bytes", len(data))

	var out []byte
	var summary map[string]interface{}
	switch cfg.Codec {
	case "huffman":
		out, summary, err = runHuffman(cfg, data, logger)
	case "rs":
		out, summary, err = runRS(cfg, data, logger)
	default:
		err = fmt.Errorf("codectoy: unknown codec %q (want huffman or rs)", cfg.Codec)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		return 1
	}

	rendered, err := formatOutput(out, cfg.OutputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// The run summary goes to stderr, as plain text via the formatter
	// stack, so it never interleaves with the payload on stdout.
	summary["output_bytes"] = len(out)
	msg := fmt.Sprintf("%s %s complete", cfg.Codec, cfg.Action)
	if err := clog.PrintSummary(os.Stderr, &clog.TextFormatter{}, clog.INFO, msg, summary); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	fmt.Println(rendered)
	return 0
}

func runHuffman(cfg cliConfig, data []byte, logger *clog.Logger) ([]byte, map[string]interface{}, error) {
	switch cfg.Action {
	case "encode":
		freq := freqmap.New()
		freq.Consume(data)
		probabilities := freq.Build()
		symbols := make([]byte, 0, len(probabilities))
		probs := make([]float64, 0, len(probabilities))
		for sym, p := range probabilities {
			symbols = append(symbols, sym)
			probs = append(probs, p)
		}
		codeSet := huffman.BuildOptimalCodes(symbols, probs)
		table := codeSet.Table()
		logger.Debug("built code table", "symbols", len(table), "mean_code_length", codeSet.MeanCodeLength())

		payload, err := huffman.Encode(table, data)
		if err != nil {
			return nil, nil, err
		}

		var buf bytes.Buffer
		meanLen := uint16(codeSet.MeanCodeLength() + 0.5)
		if err := huffman.WriteArchive(&buf, table, meanLen, uint64(len(data)), payload); err != nil {
			return nil, nil, err
		}
		summary := map[string]interface{}{
			"input_bytes":   len(data),
			"symbols":       len(table),
			"mean_bits":     codeSet.MeanCodeLength(),
			"archive_bytes": buf.Len(),
		}
		return buf.Bytes(), summary, nil

	case "decode":
		table, _, originalSize, payload, err := huffman.ReadArchive(bytes.NewReader(data))
		if err != nil {
			return nil, nil, err
		}
		decoded, err := huffman.Decode(table, payload, originalSize)
		if err != nil {
			return nil, nil, err
		}
		summary := map[string]interface{}{"symbols": len(table)}
		return decoded, summary, nil

	default:
		return nil, nil, fmt.Errorf("codectoy: unknown action %q (want encode or decode)", cfg.Action)
	}
}

func runRS(cfg cliConfig, data []byte, logger *clog.Logger) ([]byte, map[string]interface{}, error) {
	codec := rs.NewCodec(cfg.Parity)
	logger.Debug("rs codec ready", "parity", codec.Parity())

	switch cfg.Action {
	case "encode":
		if len(data)+cfg.Parity <= 255 {
			out := codec.Encode(data)
			summary := map[string]interface{}{"parity": cfg.Parity, "blocks": 1}
			return out, summary, nil
		}
		out, err := codec.EncodeBlocks(data, cfg.BlockSize)
		if err != nil {
			return nil, nil, err
		}
		blocks := (len(data) + cfg.BlockSize - 1) / cfg.BlockSize
		summary := map[string]interface{}{"parity": cfg.Parity, "blocks": blocks}
		return out, summary, nil

	case "decode":
		if len(data) <= 255 {
			out, err := codec.Decode(data)
			if err != nil {
				return nil, nil, err
			}
			corrected := 0
			if !bytes.Equal(out, data[cfg.Parity:]) {
				corrected = 1
			}
			summary := map[string]interface{}{"parity": cfg.Parity, "blocks": 1, "corrected": corrected}
			return out, summary, nil
		}
		n := cfg.BlockSize + cfg.Parity
		out, err := codec.DecodeBlocks(data, n)
		if err != nil {
			return nil, nil, err
		}
		blocks := len(data) / n
		summary := map[string]interface{}{"parity": cfg.Parity, "blocks": blocks}
		return out, summary, nil

	default:
		return nil, nil, fmt.Errorf("codectoy: unknown action %q (want encode or decode)", cfg.Action)
	}
}

// describeError renders an error chain on one line, prefixed with
// "codectoy:". The text is err's own message, so context added by wrapping
// comes first and the root cause last, e.g. "codectoy: block 2 of 3: rs: ...".
func describeError(err error) string {
	return fmt.Sprintf("codectoy: %v", err)
}
