package model

var (
	incomeCategories = []string{
		"Allowance",
		"New-Year-Gift",
		"Chore-Reward",
		"Present",
		"Other",
	}
	expenseCategories = []string{
		"Snacks",
		"Toys",
		"Books-or-Comics",
		"Games",
		"Stationery",
		"Savings",
		"Other",
	}
)

// Categories returns the category choices offered for a kind.
// The ledger itself stores any category it is given.
func Categories(kind Kind) []string {
	switch kind {
	case KindIncome:
		return append([]string(nil), incomeCategories...)
	case KindExpense:
		return append([]string(nil), expenseCategories...)
	default:
		return nil
	}
}

// IsKnownCategory reports whether name is in the vocabulary for kind.
func IsKnownCategory(kind Kind, name string) bool {
	for _, c := range Categories(kind) {
		if c == name {
			return true
		}
	}
	return false
}
