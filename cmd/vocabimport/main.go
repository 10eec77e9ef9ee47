// vocabimport converts an Excel or CSV vocabulary sheet into the words.json
// file the game loads at startup.
//
// Expected columns: word, meaning, pronunciation, examples (semicolon
// separated). Ids are assigned sequentially in row order.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	models "wordhero/internal/models"
	util "wordhero/internal/util"
)

func main() {
	var (
		inPath     = flag.String("in", "", "input .xlsx or .csv file")
		outPath    = flag.String("out", "data/words.json", "output words.json path")
		sheetName  = flag.String("sheet", "Sheet1", "worksheet name for Excel input")
		skipHeader = flag.Bool("skip-header", true, "skip the first row")
	)
	flag.Parse()

	if *inPath == "" {
		util.LogFatal("Missing -in file")
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(*inPath), ".csv") {
		rows, err = readCSVRows(*inPath)
	} else {
		rows, err = readExcelRows(*inPath, *sheetName)
	}
	if err != nil {
		util.LogFatal("Failed to read %s: %v", *inPath, err)
	}

	words, errs := buildWords(rows, *skipHeader)
	for _, e := range errs {
		util.LogWarn("%s", e)
	}
	if len(words) == 0 {
		util.LogFatal("No valid word rows found in %s", *inPath)
	}

	data, err := json.MarshalIndent(models.WordList{Words: words}, "", "  ")
	if err != nil {
		util.LogFatal("Failed to encode word list: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		util.LogFatal("Failed to create output directory: %v", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		util.LogFatal("Failed to write %s: %v", *outPath, err)
	}

	util.LogInfo("Imported %d words to %s (%d rows skipped)", len(words), *outPath, len(errs))
}

func readExcelRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(sheet)
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
	return rows, nil
}

func buildWords(rows [][]string, skipHeader bool) ([]models.Word, []string) {
	var words []models.Word
	var errs []string

	for i, row := range rows {
		if skipHeader && i == 0 {
			continue
		}
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" || strings.TrimSpace(row[1]) == "" {
			errs = append(errs, fmt.Sprintf("Row %d: missing word or meaning", i+1))
			continue
		}

		w := models.Word{
			ID:      len(words) + 1,
			Text:    strings.TrimSpace(row[0]),
			Meaning: strings.TrimSpace(row[1]),
		}
		if len(row) > 2 {
			w.Pronunciation = strings.TrimSpace(row[2])
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			for _, example := range strings.Split(row[3], ";") {
				if example = strings.TrimSpace(example); example != "" {
					w.Examples = append(w.Examples, example)
				}
			}
		}
		words = append(words, w)
	}
	return words, errs
}
