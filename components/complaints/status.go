package complaints

import "strings"

// Bucket is one of the four canonical status classes.
type Bucket string

const (
	BucketPending  Bucket = "pending"
	BucketActive   Bucket = "active"
	BucketResolved Bucket = "resolved"
	BucketRejected Bucket = "rejected"
)

// Classification is the per-row badge derived from a raw status string.
type Classification struct {
	Bucket    Bucket `json:"bucket"`
	Label     string `json:"label"`
	Indicator string `json:"indicator"`
}

// Badge returns the label followed by its indicator, e.g. "Closed ❌".
func (c Classification) Badge() string {
	return c.Label + " " + c.Indicator
}

// BadgeClass returns the CSS class used by the page templates.
func (c Classification) BadgeClass() string {
	return "badge-" + string(c.Bucket)
}

var (
	resolvedClass = Classification{Bucket: BucketResolved, Label: "Resolved", Indicator: "✅"}
	closedClass   = Classification{Bucket: BucketRejected, Label: "Closed", Indicator: "❌"}
	activeClass   = Classification{Bucket: BucketActive, Label: "Active", Indicator: "🔧"}
	pendingClass  = Classification{Bucket: BucketPending, Label: "Pending", Indicator: "⏳"}
)

// Classify maps a raw status to its badge. Matching is case-insensitive and
// exact; anything unrecognized (including "open", "pending" and "") degrades to
// Pending so no complaint ever drops out of the lists.
func Classify(status string) Classification {
	switch strings.ToLower(status) {
	case "resolved":
		return resolvedClass
	case "closed":
		return closedClass
	case "active", "in progress":
		return activeClass
	default:
		return pendingClass
	}
}

// Summary counters use their own two-keyword rule, compared case-sensitively.
// "Closed" counts toward Resolved here while Classify renders it as Rejected;
// the two mappings intentionally differ.
var summaryStatuses = map[Bucket][]string{
	BucketPending:  {"Open", "Pending"},
	BucketActive:   {"In Progress", "Active"},
	BucketResolved: {"Resolved", "Closed"},
}

func countsToward(bucket Bucket, status string) bool {
	for _, candidate := range summaryStatuses[bucket] {
		if status == candidate {
			return true
		}
	}
	return false
}
