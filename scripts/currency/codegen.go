// Command codegen generates the ISO 4217 table of the money package
// from currency_data.csv.
package main

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"text/template"
)

const (
	dir      = "scripts/currency"
	output   = "currency_data.go"
	maxScale = 18
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale int
}

func main() {
	currs, err := load(filepath.Join(dir, "currency_data.csv"))
	if err != nil {
		log.Fatalf("loading currencies: %v", err)
	}
	src, err := render(filepath.Join(dir, "currency_data.tmpl"), currs)
	if err != nil {
		log.Fatalf("rendering %v: %v", output, err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil { //nolint:gosec
		log.Fatalf("writing %v: %v", output, err)
	}
}

// load reads the records "Name,Code,Num,Scale" and returns them ordered
// by alphabetic code.
func load(name string) ([]currency, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 4
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%v: no header", name)
	}

	currs := make([]currency, 0, len(recs)-1)
	codes := make(map[string]bool, len(recs))
	nums := make(map[string]bool, len(recs))
	for i, rec := range recs[1:] {
		c, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%v:%v: %w", name, i+2, err)
		}
		if codes[c.Code] || nums[c.Num] {
			return nil, fmt.Errorf("%v:%v: duplicate currency %v/%v", name, i+2, c.Code, c.Num)
		}
		codes[c.Code], nums[c.Num] = true, true
		currs = append(currs, c)
	}
	slices.SortFunc(currs, func(a, b currency) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return currs, nil
}

func parseRecord(rec []string) (currency, error) {
	c := currency{Name: rec[0], Code: rec[1], Num: rec[2]}
	if !isDigits(c.Num) {
		return currency{}, fmt.Errorf("numeric code %q", c.Num)
	}
	if !isLetters(c.Code) {
		return currency{}, fmt.Errorf("alphabetic code %q", c.Code)
	}
	scale, err := strconv.Atoi(rec[3])
	if err != nil || scale < 0 || scale > maxScale {
		return currency{}, fmt.Errorf("scale %q of %v", rec[3], c.Code)
	}
	c.Scale = scale
	return c, nil
}

func isDigits(s string) bool {
	return isCode(s, '0', '9')
}

func isLetters(s string) bool {
	return isCode(s, 'A', 'Z')
}

// isCode returns true if s consists of 3 bytes within [lo, hi].
func isCode(s string, lo, hi byte) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < lo || s[i] > hi {
			return false
		}
	}
	return true
}

func render(name string, currs []currency) ([]byte, error) {
	tmpl, err := template.ParseFiles(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, currs); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
