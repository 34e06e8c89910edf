package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/tripartition/pkg/util"
)

const csrRecordLines = 5

// ReadCSRRecords decodes consecutive five-line records. a trailing incomplete record is ignored.
func ReadCSRRecords(r io.Reader) ([]*CSRRecord, error) {
	br := bufio.NewReader(r)
	records := make([]*CSRRecord, 0)
	lineNo := 0

	for {
		lines := make([]string, 0, csrRecordLines)
		for len(lines) < csrRecordLines {
			line, err := util.ReadLine(br)
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}

		record, err := parseCSRRecord(lines, lineNo)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(records)+1, err)
		}
		records = append(records, record)
		lineNo += csrRecordLines
	}
}

func parseCSRRecord(lines []string, firstLine int) (*CSRRecord, error) {
	record := &CSRRecord{}
	fields := make([][]int, csrRecordLines)
	for i, line := range lines {
		vals, err := parseInts(util.Fields(line), firstLine+i+1)
		if err != nil {
			return nil, err
		}
		fields[i] = vals
	}

	if len(fields[0]) > 0 {
		record.MaxNodes = fields[0][0]
	}
	record.ColIndices = fields[1]
	record.RowPtr = fields[2]
	record.Groups = fields[3]
	record.GroupPointers = fields[4]
	return record, nil
}

// ReadCSRFile reads a csr graph file, files ending in .bz2 are bzip2 decompressed.
func ReadCSRFile(filename string) ([]*CSRRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if isBzip2(filename) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	return ReadCSRRecords(r)
}

func WriteCSRRecords(w io.Writer, records []*CSRRecord) error {
	bw := bufio.NewWriter(w)
	for _, record := range records {
		fmt.Fprintf(bw, "%d\n", record.MaxNodes)
		writeInts(bw, record.ColIndices)
		writeInts(bw, record.RowPtr)
		writeInts(bw, record.Groups)
		writeInts(bw, record.GroupPointers)
	}
	return bw.Flush()
}

// WriteCSRFile writes records to filename, bzip2 compressed when filename ends in .bz2.
func WriteCSRFile(filename string, records []*CSRRecord) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !isBzip2(filename) {
		return WriteCSRRecords(f, records)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := WriteCSRRecords(bz, records); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func writeInts(w *bufio.Writer, vals []int) {
	for i, val := range vals {
		w.WriteString(strconv.Itoa(val))
		if i < len(vals)-1 {
			w.WriteByte(' ')
		}
	}
	w.WriteByte('\n')
}

func isBzip2(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".bz2")
}
