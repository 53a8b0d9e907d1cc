package draft

// CanSubmit decides whether the draft may be submitted. Submission is
// allowed only if the item list is non-empty, at least one item has both a
// name and an amount, and the running total is strictly positive.
//
// The predicate is pure: callers re-evaluate it after every ledger
// mutation to keep the submit action's availability current.
func CanSubmit(d *Draft) bool {
	items := d.Ledger.Items()
	if len(items) == 0 {
		return false
	}

	complete := false
	for _, item := range items {
		if item.Name != "" && item.Amount != "" {
			complete = true
			break
		}
	}
	if !complete {
		return false
	}

	return d.Ledger.Total() > 0
}
