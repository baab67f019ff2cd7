package clusters

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// CsvImporter loads a numeric training set from a CSV file.
type CsvImporter struct {
}

func NewCsvImporter() *CsvImporter {
	return &CsvImporter{}
}

// Import reads columns start through end (inclusive) of every record. Records
// with a non-numeric value in that range, such as a header, are skipped.
func (i *CsvImporter) Import(file string, start, end int) ([][]float64, error) {
	if start < 0 || end < 0 || start > end {
		return [][]float64{}, ErrInvalidRange
	}

	f, err := os.Open(file)
	if err != nil {
		return [][]float64{}, err
	}

	defer f.Close()

	return i.Read(f, start, end)
}

// Read is Import for an already opened stream.
func (i *CsvImporter) Read(in io.Reader, start, end int) ([][]float64, error) {
	if start < 0 || end < 0 || start > end {
		return [][]float64{}, ErrInvalidRange
	}

	var (
		d = make([][]float64, 0)
		r = csv.NewReader(bufio.NewReader(in))
		s = end - start + 1
		g []float64
	)

	r.FieldsPerRecord = -1

Main:
	for {
		record, err := r.Read()

		if err == io.EOF {
			break
		} else if err != nil {
			return [][]float64{}, err
		}

		if end >= len(record) {
			return [][]float64{}, ErrInvalidRange
		}

		g = make([]float64, 0, s)

		for j := start; j <= end; j++ {
			f, err := strconv.ParseFloat(record[j], 64)
			if err == nil {
				g = append(g, f)
			} else {
				continue Main
			}
		}

		d = append(d, g)
	}

	return d, nil
}
