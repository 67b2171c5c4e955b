package glove

import (
	"bufio"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/tokenvec/glove/corpus"
)

// Persisted artifact layout: the corpus is a gob blob, opaque to the
// rest of the package; the co-occurrence matrix, word vectors, and
// biases are raw little-endian float64 cells in row-major order, with
// no header. Shapes come from the corpus, so the corpus must be
// loaded first and every other payload is size-checked against it
// before a single cell is read.

const cellSize = 8 // bytes per float64 cell

func saveCorpus(path string, c *corpus.Corpus) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glove: saving corpus: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := gob.NewEncoder(w).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("glove: encoding corpus: %w", err)
	}
	return closeWritten(f, w, "corpus")
}

// closeWritten flushes the buffered writer and closes the file,
// surfacing either failure. A full disk often only shows up at flush
// or close time, so write paths must not discard these errors.
func closeWritten(f *os.File, w *bufio.Writer, artifact string) error {
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("glove: writing %s: %w", artifact, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("glove: writing %s: %w", artifact, err)
	}
	return nil
}

func loadCorpus(path string) (*corpus.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glove: loading corpus: %w", err)
	}
	defer f.Close()

	var c corpus.Corpus
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(&c); err != nil {
		return nil, fmt.Errorf("glove: decoding corpus: %w", err)
	}
	return &c, nil
}

func saveMatrix(path string, m *CooccurrenceMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glove: saving co-occurrence matrix: %w", err)
	}

	w := bufio.NewWriter(f)
	row := make([]float64, m.Size())
	for i := 0; i < m.Size(); i++ {
		m.denseRow(i, row)
		if err := binary.Write(w, binary.LittleEndian, row); err != nil {
			f.Close()
			return fmt.Errorf("glove: writing co-occurrence row %d: %w", i, err)
		}
	}
	return closeWritten(f, w, "co-occurrence matrix")
}

func loadMatrix(path string, size int) (*CooccurrenceMatrix, error) {
	f, err := openChecked(path, "co-occurrence matrix", int64(size)*int64(size)*cellSize)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := NewCooccurrenceMatrix(size)
	r := bufio.NewReader(f)
	row := make([]float64, size)
	for i := 0; i < size; i++ {
		if err := binary.Read(r, binary.LittleEndian, row); err != nil {
			return nil, fmt.Errorf("glove: reading co-occurrence row %d: %w", i, err)
		}
		m.setRow(i, row)
	}
	return m, nil
}

func saveVectors(path string, s *VectorSpace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glove: saving word vectors: %w", err)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < s.Size(); i++ {
		if err := binary.Write(w, binary.LittleEndian, s.Vector(i)); err != nil {
			f.Close()
			return fmt.Errorf("glove: writing vector row %d: %w", i, err)
		}
	}
	return closeWritten(f, w, "word vectors")
}

func loadVectors(path string, s *VectorSpace) error {
	f, err := openChecked(path, "word vectors", int64(s.Size())*int64(s.Dims())*cellSize)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for i := 0; i < s.Size(); i++ {
		if err := binary.Read(r, binary.LittleEndian, s.Vector(i)); err != nil {
			return fmt.Errorf("glove: reading vector row %d: %w", i, err)
		}
	}
	return nil
}

func saveBiases(path string, s *VectorSpace) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glove: saving biases: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, s.biases); err != nil {
		f.Close()
		return fmt.Errorf("glove: writing biases: %w", err)
	}
	return closeWritten(f, w, "biases")
}

func loadBiases(path string, s *VectorSpace) error {
	f, err := openChecked(path, "biases", int64(s.Size())*cellSize)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, s.biases); err != nil {
		return fmt.Errorf("glove: reading biases: %w", err)
	}
	return nil
}

// openChecked opens a raw cell payload and verifies its size against
// the shape implied by the vocabulary before any read happens. A
// mismatch is a data-integrity failure, never a truncation.
func openChecked(path, artifact string, want int64) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glove: loading %s: %w", artifact, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("glove: loading %s: %w", artifact, err)
	}
	if info.Size() != want {
		f.Close()
		return nil, &IntegrityError{Artifact: artifact, Want: want, Got: info.Size()}
	}
	return f, nil
}
