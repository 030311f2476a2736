package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the fulfillment workflow.
//
// State transitions:
//
//	Created ──> Assembling ──> Delivering ──> Done
//
// Created orders have no restaurant assigned yet and are the only orders the
// router ranks. Done is a final state excluded from routing entirely.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a freshly placed order.
	// No restaurant is assigned; the router ranks candidates for it.
	Created

	// Assembling indicates an assigned restaurant is preparing the order.
	Assembling

	// Delivering indicates the order has left the restaurant and is on its
	// way to the customer.
	Delivering

	// Done indicates the order was delivered. Final state.
	Done
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Assembling: "Assembling",
		Delivering: "Delivering",
		Done:       "Done",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Assembling: "Assembling",
		Delivering: "Delivering",
		Done:       "Done",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, Assembling, Delivering and Done.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored in the database.
// Returns an error for unknown names, including "Unknown" itself.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", value),
	)
}

// IsFinal reports whether the status is terminal for routing purposes.
// Done orders are excluded from routing entirely.
func (s Status) IsFinal() bool {
	return s == Done
}

// ValidateCanHaveRestaurant validates consistency between order status and
// restaurant assignment.
//
// Business rules:
//   - Created orders must not have a restaurant assigned
//   - Assembling, Delivering and Done orders must have one
func (s Status) ValidateCanHaveRestaurant(hasRestaurant bool) error {
	if hasRestaurant && s == Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a restaurant", s.String()),
		)
	}

	if !hasRestaurant && (s == Assembling || s == Delivering || s == Done) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no restaurant", s.String()),
		)
	}

	return nil
}

// StartAssembling transitions the status to Assembling.
//
// Valid transitions:
//   - Created -> Assembling (restaurant accepted the order)
func (s Status) StartAssembling() (Status, error) {
	if s != Created {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start assembling", s.String()),
		)
	}

	return Assembling, nil
}

// StartDelivering transitions the status to Delivering.
//
// Valid transitions:
//   - Assembling -> Delivering (order handed to a courier)
func (s Status) StartDelivering() (Status, error) {
	if s != Assembling {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivering", s.String()),
		)
	}

	return Delivering, nil
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - Delivering -> Done (order delivered)
//
// Done is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivering {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Done, nil
}
