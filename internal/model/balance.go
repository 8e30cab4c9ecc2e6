package model

// Balance is a best-effort balance report. Failed distinguishes "the
// address holds zero" from "the query did not succeed"; the amount is
// zero in both cases.
type Balance struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Failed bool    `json:"failed,omitempty"`
}
