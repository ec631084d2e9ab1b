// Package validation checks request values before they reach a handler.
//
// Requests are validated in one of two ways. A request type that implements
// Validatable is asked to validate itself; any other struct is checked
// against its `validate` struct tags:
//
//	type CreateUser struct {
//	    mediator.Returns[UserID]
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//
// Hand-written Validate methods can collect field errors with a Validator:
//
//	func (c Rename) Validate() error {
//	    return validation.New().
//	        RequiredUUID("id", c.ID).
//	        MaxLength("name", c.Name, 64).
//	        Err()
//	}
//
// Failures are *errors.AppError values with code INVALID_INPUT; the offending
// fields are listed under Details["fields"].
package validation
