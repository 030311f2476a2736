// Package services contains stateless domain services for the fulfillment
// core: eligibility resolution (which restaurants can cook an entire order)
// and distance ranking of the eligible candidates. Both services are pure
// computations over value objects; all I/O stays in the application layer.
package services
