// Package debtplan computes how debts are paid off.
//
// It is a pure calculation library, it owns no state and performs no I/O:
//   - Payoff: [SolvePayoff] computes, in closed form, the number of months a
//     fixed monthly payment takes to retire a debt, the total paid and the
//     interest accrued.
//   - Strategy: [SimulateStrategy] orders a set of debts (snowball or
//     avalanche) and devotes a monthly budget to one debt at a time, giving
//     the payoff month and calendar date of each.
//   - Projection: [ProjectBalances] produces the month by month balance of a
//     debt, suitable for charting.
//
// Inputs that cannot produce a result are reported as a [*Rejection] error
// carrying a [Reason] and a message suitable for display.
//
// This package serves as the foundational logic for the `dp` command-line
// tool.
package debtplan
