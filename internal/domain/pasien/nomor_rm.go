package pasien

import (
	"fmt"
	"time"
)

// FormatNomorRM builds the medical record number for a patient id issued at
// the given time, e.g. id 7 in June 2025 becomes "RM25060007".
func FormatNomorRM(id int64, at time.Time) string {
	return fmt.Sprintf("RM%02d%02d%04d", at.Year()%100, int(at.Month()), id)
}
