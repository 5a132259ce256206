package tools

/**
Stores scanned price snapshots as CSV for later inspection
*/
import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var snapshotHeader = []string{"ID", "Name", "Quantity", "MinBuyout", "AvgPrice", "VendorPrice", "LastSeen"}

// Store snapshots to a CSV file, absent values are left blank
func StoreSnapshots(path string, snapshots []PriceSnapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(snapshotHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, s := range snapshots {
		avg := ""
		if s.AvgPrice != nil {
			avg = strconv.Itoa(*s.AvgPrice)
		}
		lastSeen := ""
		if s.LastSeen != nil {
			lastSeen = s.LastSeen.UTC().Format(time.RFC3339)
		}
		record := []string{
			strconv.Itoa(s.ItemID),
			s.ItemName,
			strconv.Itoa(s.Quantity),
			strconv.Itoa(s.MinBuyout),
			avg,
			strconv.Itoa(s.VendorPrice),
			lastSeen,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record for %d: %w", s.ItemID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Retrieves snapshots previously written by StoreSnapshots
func RetrieveSnapshots(path string) ([]PriceSnapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	snapshots := make([]PriceSnapshot, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(snapshotHeader) {
			continue // Skip malformed rows
		}
		s := PriceSnapshot{ItemName: record[1]}
		ints := []*int{&s.ItemID, nil, &s.Quantity, &s.MinBuyout, nil, &s.VendorPrice}
		for col, dst := range ints {
			if dst == nil {
				continue
			}
			if *dst, err = strconv.Atoi(record[col]); err != nil {
				return nil, fmt.Errorf("row %d column %s: %w", i, snapshotHeader[col], err)
			}
		}
		if record[4] != "" {
			avg, err := strconv.Atoi(record[4])
			if err != nil {
				return nil, fmt.Errorf("row %d column AvgPrice: %w", i, err)
			}
			s.AvgPrice = &avg
		}
		if record[6] != "" {
			t, err := time.Parse(time.RFC3339, record[6])
			if err != nil {
				return nil, fmt.Errorf("row %d column LastSeen: %w", i, err)
			}
			s.LastSeen = &t
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}
