package indexer

import "fmt"

// HeightError ties a failure to the height, transaction and step it came from.
type HeightError struct {
	Op     string
	Height uint64
	TxID   string
	Err    error
}

func (e *HeightError) Error() string {
	if e.TxID != "" {
		return fmt.Sprintf("%s height %d tx %s: %v", e.Op, e.Height, e.TxID, e.Err)
	}
	return fmt.Sprintf("%s height %d: %v", e.Op, e.Height, e.Err)
}

func (e *HeightError) Unwrap() error {
	return e.Err
}

func heightError(op string, height uint64, err error) error {
	return &HeightError{Op: op, Height: height, Err: err}
}

func txError(op string, height uint64, txid string, err error) error {
	return &HeightError{Op: op, Height: height, TxID: txid, Err: err}
}
