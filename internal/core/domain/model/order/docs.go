// Package order contains the order aggregate and its lifecycle state
// machine. An order progresses Created -> Assembling -> Delivering -> Done;
// only Created orders are candidates for restaurant ranking, and Done
// orders are excluded from routing entirely.
package order
