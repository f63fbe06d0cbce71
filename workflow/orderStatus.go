package workflow

import "bitbucket.org/pawhaus/backoffice_backend/models"

// orderTransitions is the finite progression shared by sales and
// purchase orders. Cancellation is reachable from every pre-terminal
// state; returned only follows the fulfilled terminal.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusDraft:     {models.OrderStatusSubmitted, models.OrderStatusCancelled},
	models.OrderStatusSubmitted: {models.OrderStatusApproved, models.OrderStatusCancelled},
	models.OrderStatusApproved:  {models.OrderStatusOrdered, models.OrderStatusCancelled},
	models.OrderStatusOrdered:   {models.OrderStatusPartial, models.OrderStatusReceived, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusPartial:   {models.OrderStatusReceived, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusReceived:  {models.OrderStatusReturned},
	models.OrderStatusDelivered: {models.OrderStatusReturned},
}

func validOrderTransition(from, to models.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
