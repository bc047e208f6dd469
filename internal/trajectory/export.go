package trajectory

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

type measurementData struct {
	Index int     `json:"index"`
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
}

type stepData struct {
	Step         int               `json:"step"`
	Measurements []measurementData `json:"measurements"`
	Motion       [2]float64        `json:"motion"`
}

type exportData struct {
	Steps int        `json:"steps"`
	Data  []stepData `json:"data"`
}

// WriteJSON writes the log as indented JSON.
func WriteJSON(w io.Writer, log *Log) error {
	data := exportData{
		Steps: log.Len(),
		Data:  make([]stepData, 0, log.Len()),
	}
	for i, step := range log.Steps() {
		sd := stepData{
			Step:         i,
			Measurements: make([]measurementData, 0, len(step.Measurements)),
			Motion:       [2]float64{step.DX, step.DY},
		}
		for _, m := range step.Measurements {
			sd.Measurements = append(sd.Measurements, measurementData{Index: m.Index, DX: m.DX, DY: m.DY})
		}
		data.Data = append(data.Data, sd)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSON writes the log as JSON to a file.
func ExportJSON(path string, log *Log) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, log)
}

// WriteCSV writes one row per measurement with the step's motion delta
// repeated on each. Steps without measurements emit a single row with a
// landmark index of -1 and empty offset columns.
func WriteCSV(w io.Writer, log *Log) error {
	cw := csv.NewWriter(w)

	header := []string{"step", "landmark", "meas_dx", "meas_dy", "motion_dx", "motion_dy"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, step := range log.Steps() {
		dxs := strconv.FormatFloat(step.DX, 'f', -1, 64)
		dys := strconv.FormatFloat(step.DY, 'f', -1, 64)

		if len(step.Measurements) == 0 {
			row := []string{strconv.Itoa(i), "-1", "", "", dxs, dys}
			if err := cw.Write(row); err != nil {
				return err
			}
			continue
		}
		for _, m := range step.Measurements {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(m.Index),
				strconv.FormatFloat(m.DX, 'f', -1, 64),
				strconv.FormatFloat(m.DY, 'f', -1, 64),
				dxs,
				dys,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the log as CSV to a file.
func ExportCSV(path string, log *Log) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, log)
}
