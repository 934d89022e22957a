package errors

// UserError is the interface an error has to comply to to be consumable by an
// external client of the registry. It carries an HTTP status along with a
// stable error code and a human readable message.
type UserError interface {
	Status() int
	Code() string
	Message() string
	Cause() error
}

// ConcreteUserError is the materialization of a UserError for marshalling.
type ConcreteUserError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Build constructs a ConcreteUserError from a UserError.
func Build(e UserError) *ConcreteUserError {
	return &ConcreteUserError{
		Status:  e.Status(),
		Code:    e.Code(),
		Message: e.Message(),
	}
}

// ExtractUserError extracts the UserError marking of an error if any,
// returning nil otherwise.
func ExtractUserError(err error) UserError {
	if err == nil {
		return nil
	}
	if e, ok := err.(UserError); ok {
		if e.Status() != 0 {
			return e
		}
	}
	return nil
}
