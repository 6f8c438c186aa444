package usecase

import (
	"fmt"
	"math/rand"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const idSuffixLen = 6

// NewLeadID builds a human-readable lead identifier of the form
// L-<YYYYMMDD>-<6 random base36 chars>. The date part uses loc, so IDs
// sort by the calendar day the lead was captured in the configured
// time zone. Collisions are statistically negligible and not checked.
func NewLeadID(now time.Time, loc *time.Location) string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("L-%s-%s", now.In(loc).Format("20060102"), suffix)
}
