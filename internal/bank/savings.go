package bank

import (
	"fmt"
	"math"
)

// Savings earns monthly compound interest on positive balances.
type Savings struct {
	base
	rate float64 // annual rate as a fraction, e.g. 0.04
}

func (s *Savings) Kind() Kind { return KindSavings }

// Rate returns the annual interest rate.
func (s *Savings) Rate() float64 { return s.rate }

// CalculateInterest returns one month's compound interest component,
// balance * ((1 + rate/12)^1 - 1), using the current balance as principal.
// Zero when the balance or rate is not positive.
func (s *Savings) CalculateInterest() float64 {
	return compoundComponent(s.balance, s.rate, 12, 1.0/12.0)
}

func (s *Savings) Extra() string {
	return fmt.Sprintf("rate=%.4f", s.rate)
}

// compoundComponent computes P*((1+r/n)^(n*t) - 1), the interest portion of
// compound growth over t years with n compounding periods per year.
func compoundComponent(principal, annualRate float64, perYear int, years float64) float64 {
	if annualRate <= 0 || principal <= 0 {
		return 0
	}
	growth := math.Pow(1+annualRate/float64(perYear), float64(perYear)*years)
	return principal * (growth - 1)
}
