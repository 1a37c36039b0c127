package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNoHeader is returned when the source has no header row.
var ErrNoHeader = errors.New("dataset has no header row")

// fetchTimeout bounds the one-time dataset fetch.
const fetchTimeout = 15 * time.Second

// column names expected in the header row.
const (
	colSetID       = "set_id"
	colQuestionID  = "question_id"
	colDomain      = "domain"
	colObjective   = "objective"
	colDifficulty  = "difficulty"
	colType        = "type"
	colQuestion    = "question"
	colCorrect     = "correct"
	colExplanation = "explanation"
	colImageURL    = "image_url"
	colTags        = "tags"
)

var optionColumns = []string{"option_a", "option_b", "option_c", "option_d", "option_e", "option_f"}

// Load reads the question dataset from a filesystem path or an http(s) URL.
// Rows without question text are dropped; short rows are padded with empty
// fields. The fetch happens once at startup and is not retried here.
func Load(ctx context.Context, source string) ([]Record, error) {
	var body io.ReadCloser
	if isURL(source) {
		resp, err := fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		body = resp
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		body = f
	}
	defer body.Close()

	records, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", source, err)
	}
	return records, nil
}

// Parse decodes CSV question rows from r.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // malformed rows are handled best-effort

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colQuestion]; !ok {
		return nil, fmt.Errorf("%w: %q column missing", ErrNoHeader, colQuestion)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		rec := fromRow(row, index)
		if strings.TrimSpace(rec.Question) == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// fromRow maps a CSV row into a Record. Columns past the end of a short row
// read as empty strings.
func fromRow(row []string, index map[string]int) Record {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	rec := Record{
		SetID:       field(colSetID),
		QuestionID:  field(colQuestionID),
		Domain:      field(colDomain),
		Objective:   field(colObjective),
		Difficulty:  field(colDifficulty),
		Type:        field(colType),
		Question:    field(colQuestion),
		Correct:     field(colCorrect),
		Explanation: field(colExplanation),
		ImageURL:    field(colImageURL),
		Tags:        field(colTags),
	}
	for i, name := range optionColumns {
		rec.Options[i] = field(name)
	}
	return rec
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := &http.Client{Timeout: fetchTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build dataset request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}
