// Package report renders word-square results as a text listing or as
// structured JSON/YAML records.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordsquare/square"
)

// Records converts squares to structured records, numbered from 1.
func Records(squares []square.Square) []Record {
	out := make([]Record, len(squares))
	for i, sq := range squares {
		chars := sq.Characters()
		out[i] = Record{
			Index:            i + 1,
			Square:           append([]string(nil), sq...),
			SquareCharacters: chars,
			SquareLength:     len(chars),
		}
	}

	return out
}

// WriteText writes "Square N:" followed by its rows and a blank line for each
// square, or NoSquaresMessage when squares is empty.
func WriteText(w io.Writer, squares []square.Square) error {
	bw := bufio.NewWriter(w)
	if len(squares) == 0 {
		fmt.Fprintln(bw, NoSquaresMessage)

		return bw.Flush()
	}

	for i, sq := range squares {
		fmt.Fprintf(bw, "Square %d:\n", i+1)
		for _, row := range sq {
			fmt.Fprintln(bw, row)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteJSON writes the records as a JSON array indented by four spaces.
// An empty result is written as [].
func WriteJSON(w io.Writer, squares []square.Square) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(Records(squares)); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}

// WriteYAML writes the records as a YAML sequence.
func WriteYAML(w io.Writer, squares []square.Square) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(squares)); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return nil
}

// Write dispatches to the writer for format.
func Write(w io.Writer, format Format, squares []square.Square) error {
	switch format {
	case FormatText:
		return WriteText(w, squares)
	case FormatJSON:
		return WriteJSON(w, squares)
	case FormatYAML:
		return WriteYAML(w, squares)
	default:
		return fmt.Errorf("%w %s", ErrUnknownFormat, format)
	}
}

// WriteFile creates (or truncates) path and writes squares in format.
func WriteFile(path string, format Format, squares []square.Square) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	return Write(f, format, squares)
}
