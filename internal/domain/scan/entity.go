// internal/domain/scan/entity.go
package scan

import "time"

// maxHistory bounds the retained per-user scan history.
const maxHistory = 50

// Record represents one barcode lookup. ProductName is snapshotted at scan
// time so history survives catalog changes.
type Record struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Barcode     string    `json:"barcode"`
	ProductName string    `json:"product_name"`
	ScannedAt   time.Time `json:"scanned_at"`
}
