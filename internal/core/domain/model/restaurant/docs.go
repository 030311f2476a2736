// Package restaurant contains the restaurant aggregate and its menu.
// A restaurant's available menu items form the authoritative
// "restaurant sells product" relation used for fulfillment eligibility.
package restaurant
