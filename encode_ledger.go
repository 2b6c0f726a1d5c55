package papertrade

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// The trade ledger is persisted as CSV, one record per row:
//
//	symbol,side,price,quantity,timestamp
//
// with side ∈ {"Buy","Sell"}, price as a decimal string, and the
// timestamp in RFC 3339. The file is machine-written and append-only, so
// a malformed row is an error on read, not something to skip over.

// EncodeTrade appends a single record to w in the ledger CSV format.
func EncodeTrade(w io.Writer, rec TradeRecord) error {
	cw := csv.NewWriter(w)
	row := []string{
		rec.Symbol,
		rec.Side.String(),
		rec.Price.Decimal().String(),
		strconv.FormatInt(rec.Quantity, 10),
		rec.Time.Format(time.RFC3339),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// DecodeTrades reads back all records from a ledger CSV stream, in the
// order they were appended.
func DecodeTrades(r io.Reader) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5

	var records []TradeRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading trade ledger: %w", err)
		}
		rec, err := decodeTradeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeTradeRow(row []string) (TradeRecord, error) {
	side, err := ParseSide(row[1])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade row %v: %w", row, err)
	}
	price, err := ParseMoney(row[2])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade row %v: %w", row, err)
	}
	quantity, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade row %v: invalid quantity %q: %w", row, row[3], err)
	}
	when, err := time.Parse(time.RFC3339, row[4])
	if err != nil {
		return TradeRecord{}, fmt.Errorf("trade row %v: invalid timestamp %q: %w", row, row[4], err)
	}
	return TradeRecord{
		Symbol:   row[0],
		Side:     side,
		Price:    price,
		Quantity: quantity,
		Time:     when,
	}, nil
}

// FileTradeLog is the append-only per-user trade ledger on disk, one
// "<username>_trades.csv" file per user under a common directory.
type FileTradeLog struct {
	Dir string
}

// NewFileTradeLog creates a trade log rooted at dir.
func NewFileTradeLog(dir string) *FileTradeLog {
	return &FileTradeLog{Dir: dir}
}

func (t *FileTradeLog) path(username string) string {
	return filepath.Join(t.Dir, username+"_trades.csv")
}

// Append durably appends one record to the user's ledger file, creating
// it on first trade.
func (t *FileTradeLog) Append(username string, rec TradeRecord) error {
	f, err := os.OpenFile(t.path(username), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening trade ledger for %q: %w", username, err)
	}
	defer f.Close()
	return EncodeTrade(f, rec)
}

// Records reads back the user's full ledger in append order. A user with
// no trades yet has no file, which reads as an empty ledger.
func (t *FileTradeLog) Records(username string) ([]TradeRecord, error) {
	f, err := os.Open(t.path(username))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening trade ledger for %q: %w", username, err)
	}
	defer f.Close()
	return DecodeTrades(f)
}
