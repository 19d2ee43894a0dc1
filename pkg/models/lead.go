package models

// Lead is a customer contact submitted through the form. It lives only for
// the duration of the request.
type Lead struct {
	CustomerName string
	Phone        string
}

// DeliveryError describes one reason the provider refused a message.
type DeliveryError struct {
	Code        int
	Description string
}

// DeliveryOutcome is the result of handing a lead to the SMS provider. An
// outcome with no errors is a success.
type DeliveryOutcome struct {
	Recipient string
	Errors    []DeliveryError
}

// Succeeded reports whether the provider accepted the message.
func (o DeliveryOutcome) Succeeded() bool {
	return len(o.Errors) == 0
}
