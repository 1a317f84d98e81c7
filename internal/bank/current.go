package bank

// Current is a day-to-day transaction account. It earns no interest and has
// no extension parameters.
type Current struct {
	base
}

func (c *Current) Kind() Kind { return KindCurrent }

func (c *Current) CalculateInterest() float64 { return 0 }

func (c *Current) Extra() string { return "" }
