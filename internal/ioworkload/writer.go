package ioworkload

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/gnames/gnfmt"
	"github.com/ixsel/ixsel/pkg/optimizer"
	"github.com/ixsel/ixsel/pkg/workload"
)

// FormatReport renders a report as indented JSON.
func FormatReport(rep *optimizer.Report) ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(rep)
	if err != nil {
		return nil, EncodeReportError(err)
	}
	return data, nil
}

// WriteReport writes a report to path; an empty path or "-" writes to
// the standard output.
func WriteReport(path string, rep *optimizer.Report) error {
	data, err := FormatReport(rep)
	if err != nil {
		return err
	}
	if path == "" || path == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// FormatWorkload renders scans and indexes in the workload wire format,
// the inverse of ParseWorkload. Coverage entries are emitted in OID
// order so equal inputs produce identical files.
func FormatWorkload(
	scans []workload.Scan, indexes []workload.Index,
) ([]byte, error) {
	kind := make(map[string]workload.IndexKind, len(indexes))
	var w workloadJSON
	for _, idx := range indexes {
		kind[idx.ID] = idx.Kind
		ij := indexJSON{
			Index:              indexIDJSON{IndexOID: idx.ID},
			IndexWriteOverhead: idx.WriteOverhead,
		}
		if idx.Kind == workload.Existing {
			w.ExistingIndexes = append(w.ExistingIndexes, ij)
		} else {
			w.PossibleIndexes = append(w.PossibleIndexes, ij)
		}
	}

	for _, s := range scans {
		cost := s.DefaultCost
		sj := scanJSON{ScanID: s.ID, SequentialScanCost: &cost}
		for _, oid := range slices.Sorted(maps.Keys(s.Coverage)) {
			cj := coverageJSON{IndexOID: oid, Cost: s.Coverage[oid]}
			if kind[oid] == workload.Existing {
				sj.ExistingIndexCosts = append(sj.ExistingIndexCosts, cj)
			} else {
				sj.PossibleIndexCosts = append(sj.PossibleIndexCosts, cj)
			}
		}
		w.Scans = append(w.Scans, sj)
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(w)
	if err != nil {
		return nil, EncodeReportError(err)
	}
	return data, nil
}

// WriteWorkload writes a generated workload to path.
func WriteWorkload(
	path string, scans []workload.Scan, indexes []workload.Index,
) error {
	data, err := FormatWorkload(scans, indexes)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
