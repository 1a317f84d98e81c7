package bank

// MonthEnd runs the fixed month-end sequence on one account: the pre hook,
// then interest calculation and application, then the post hook. No current
// kind uses the pre hook; loans use the post hook to count down their
// remaining term.
func MonthEnd(a Account) {
	a.preMonth()
	a.ApplyInterest(a.CalculateInterest())
	a.postMonth()
}
