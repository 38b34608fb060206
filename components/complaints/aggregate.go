package complaints

const (
	// RecentLimit caps the "recent" list on the dashboard tab.
	RecentLimit = 3
	// NoDescriptionPlaceholder replaces an absent description at render time.
	NoDescriptionPlaceholder = "No description provided"
	// EmptyStateMessage is shown in both lists when the user has no complaints.
	EmptyStateMessage = "No complaints filed yet. Head to 'New Complaint' to report an issue."
)

// DashboardView is the render-ready structure produced by Aggregate.
type DashboardView struct {
	Total    int   `json:"total"`
	Pending  int   `json:"pending"`
	Active   int   `json:"active"`
	Resolved int   `json:"resolved"`
	Recent   []Row `json:"recent"`
	Full     []Row `json:"full"`
}

// Empty reports whether the view carries only the empty-state placeholder.
func (v DashboardView) Empty() bool {
	return v.Total == 0
}

// Row is a single rendered complaint line, or the empty-state placeholder.
type Row struct {
	ID          int            `json:"id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Status      Classification `json:"status"`
	Placeholder bool           `json:"placeholder,omitempty"`
	Message     string         `json:"message,omitempty"`
}

// EmptyStateRow returns the placeholder row rendered when there is nothing to list.
func EmptyStateRow() Row {
	return Row{Placeholder: true, Message: EmptyStateMessage}
}

// FilterByEmail keeps the complaints owned by email. The match is exact: no
// case folding or whitespace trimming is applied.
func FilterByEmail(complaints []Complaint, email string) []Complaint {
	filtered := make([]Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.UserEmail == email {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Aggregate derives the dashboard counters and both list views for the session
// email. The input slice is never mutated.
func Aggregate(complaints []Complaint, sessionEmail string) DashboardView {
	filtered := FilterByEmail(complaints, sessionEmail)
	view := DashboardView{Total: len(filtered)}
	for _, c := range filtered {
		if countsToward(BucketPending, c.Status) {
			view.Pending++
		}
		if countsToward(BucketActive, c.Status) {
			view.Active++
		}
		if countsToward(BucketResolved, c.Status) {
			view.Resolved++
		}
	}

	if view.Total == 0 {
		view.Recent = []Row{EmptyStateRow()}
		view.Full = []Row{EmptyStateRow()}
		return view
	}

	// The backend is append-only, so reversing approximates newest-first.
	view.Full = make([]Row, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		view.Full = append(view.Full, rowFor(filtered[i]))
	}
	limit := min(RecentLimit, len(view.Full))
	view.Recent = append([]Row(nil), view.Full[:limit]...)
	return view
}

func rowFor(c Complaint) Row {
	description := c.Description
	if description == "" {
		description = NoDescriptionPlaceholder
	}
	return Row{
		ID:      c.ID,
		Title:   c.Title,
		Summary: c.Category + " • " + description,
		Status:  Classify(c.Status),
	}
}

func emptyDashboardView() DashboardView {
	return Aggregate(nil, "")
}
